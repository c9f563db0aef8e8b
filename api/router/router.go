package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/ojohpeters/ecocoin-back/api/v1"
	"github.com/ojohpeters/ecocoin-back/service/svc"
)

// NewRouter wires the HTTP surface. CORS is wide open: the frontend is
// served from a separate origin.
func NewRouter(svcCtx *svc.ServerCtx) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConf := cors.DefaultConfig()
	corsConf.AllowAllOrigins = true
	corsConf.AllowHeaders = append(corsConf.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConf))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := r.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/connect_wallet", v1.ConnectWalletHandler(svcCtx))
			user.POST("/complete_task", v1.CompleteTaskHandler(svcCtx))
			user.POST("/claim_airdrop", v1.ClaimAirdropHandler(svcCtx))
			user.GET("/points", v1.GetPointsHandler(svcCtx))
			user.GET("/stats", v1.GetUserStatsHandler(svcCtx))
			user.GET("/ref_link/:address", v1.GetRefLinkHandler(svcCtx))
		}

		tasks := api.Group("/tasks")
		{
			tasks.GET("", v1.GetTasksHandler(svcCtx))
			tasks.POST("", v1.CreateTaskHandler(svcCtx))
		}
	}

	return r
}
