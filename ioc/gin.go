package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/curriculum"
	"github.com/manabiya/manabiya/internal/dashboard"
	"github.com/manabiya/manabiya/internal/feed"
	"github.com/manabiya/manabiya/internal/interactive"
	"github.com/manabiya/manabiya/internal/pkg/middleware"
	"github.com/manabiya/manabiya/internal/report"
	"github.com/manabiya/manabiya/internal/team"
	"github.com/manabiya/manabiya/internal/user"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	teamHdl *team.Handler,
	curriculumHdl *curriculum.Handler,
	contentHdl *content.Handler,
	intrHdl *interactive.Handler,
	feedHdl *feed.Handler,
	reportHdl *report.Handler,
	dashboardHdl *dashboard.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "manabiya.jp")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	teamHdl.PrivateRoutes(res.Engine)
	curriculumHdl.PrivateRoutes(res.Engine)
	contentHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	feedHdl.PrivateRoutes(res.Engine)
	reportHdl.PrivateRoutes(res.Engine)
	dashboardHdl.PrivateRoutes(res.Engine)
	return res
}
