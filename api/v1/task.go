package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/ojohpeters/ecocoin-back/errcode"
	"github.com/ojohpeters/ecocoin-back/kit/validator"
	"github.com/ojohpeters/ecocoin-back/service/svc"
	service "github.com/ojohpeters/ecocoin-back/service/v1"
	types "github.com/ojohpeters/ecocoin-back/types/v1"
	"github.com/ojohpeters/ecocoin-back/xhttp"
)

func GetTasksHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		tasks, err := service.GetTasks(c.Request.Context(), svcCtx)
		if err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		xhttp.OkJson(c, types.TaskListResp{Result: tasks})
	}
}

func CreateTaskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CreateTaskRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		task, err := service.CreateTask(c.Request.Context(), svcCtx, req)
		if err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		xhttp.OkJson(c, task)
	}
}

func CompleteTaskHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.CompleteTaskRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		if err := service.CompleteTask(c.Request.Context(), svcCtx, req.WalletAddress, req.TaskID); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		xhttp.OkJson(c, types.CompleteTaskResp{Status: "task recorded"})
	}
}
