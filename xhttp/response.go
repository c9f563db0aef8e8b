package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojohpeters/ecocoin-back/errcode"
)

type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// OkJson writes the standard success envelope.
func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: errcode.CodeOK,
		Msg:  "success",
		Data: data,
	})
}

// Error writes an error envelope. *errcode.Err keeps its business code;
// anything else is reported as an unexpected server error.
func Error(c *gin.Context, err error) {
	e, ok := err.(*errcode.Err)
	if !ok {
		c.JSON(http.StatusInternalServerError, Response{
			Code: errcode.CodeUnexpected,
			Msg:  errcode.ErrUnexpected.Msg,
		})
		return
	}

	status := http.StatusInternalServerError
	if errcode.IsClientErr(e.Code) {
		status = http.StatusBadRequest
	}
	c.JSON(status, Response{Code: e.Code, Msg: e.Msg})
}
