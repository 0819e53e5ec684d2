// Package api 汇总 HTTP 服务的路由注册.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/internal/router"
)

// RegisterGroup 将全部业务路由注册到 /api/v1 路由组.
func RegisterGroup(e *gin.Engine) *gin.Engine {
	v1 := e.Group("/api/v1")
	{
		router.RegisterDriveRoutes(v1)
		router.RegisterDestinationRoutes(v1)
		router.RegisterStatsRoutes(v1)
		router.RegisterHealthCheckRoute(v1)
		router.RegisterSchedulerRoutes(v1)
	}

	router.RegisterSwaggerRoute(e)

	return e
}
