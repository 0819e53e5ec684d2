// Package router 管理路由配置，用于设置HTTP服务的路由.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/internal/handle"
)

// RegisterDriveRoutes 注册驱动器相关路由.
func RegisterDriveRoutes(g *gin.RouterGroup) {
	driveRoutes := g.Group("/drives")
	{
		driveRoutes.POST("", handle.RegisterDrive)                  // 注册/刷新单个驱动器
		driveRoutes.POST("/batch", handle.RegisterDrivesBatch)      // 批量注册（原子）
		driveRoutes.PUT("/availability", handle.SetDriveAvailability) // 更新当前客户端可用性
		driveRoutes.GET("", handle.ListDrives)                      // 驱动器列表
		driveRoutes.GET("/resolve", handle.ResolveDrive)            // 路径归属解析
		driveRoutes.GET("/:id", handle.GetDrive)                    // 驱动器详情
	}
}
