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

func ClaimAirdropHandler(svcCtx *svc.ServerCtx) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := types.ClaimRequest{}
		if err := c.BindJSON(&req); err != nil {
			xhttp.Error(c, errcode.ErrInvalidParams)
			return
		}

		if err := validator.Verify(&req); err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		res, err := service.ClaimAirdrop(c.Request.Context(), svcCtx, req.WalletAddress)
		if err != nil {
			xhttp.Error(c, errcode.NewCustomErr(err.Error()))
			return
		}

		xhttp.OkJson(c, res)
	}
}
