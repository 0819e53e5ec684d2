package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/internal/handle"
)

// RegisterDestinationRoutes 注册目标目录相关路由.
func RegisterDestinationRoutes(g *gin.RouterGroup) {
	destRoutes := g.Group("/destinations")
	{
		// ===== 目录记忆 =====
		destRoutes.POST("", handle.AddDestination)            // 手动添加
		destRoutes.GET("", handle.ListDestinations)           // 可见目录列表
		destRoutes.DELETE("", handle.RemoveDestination)       // 按路径移除（可级联）
		destRoutes.DELETE("/:id", handle.RemoveDestinationByID) // 按 ID 移除（可级联）
		destRoutes.POST("/capture", handle.CaptureDestinations) // 从已完成操作自动捕获

		// ===== 使用记录 =====
		destRoutes.POST("/:id/usage", handle.RecordUsage) // 记一次使用
	}
}
