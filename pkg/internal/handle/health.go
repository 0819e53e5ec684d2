// Package handle 新增健康检查处理器实现.
package handle

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/destvault/pkg/context"
)

const timeout = 2 * time.Second

// HealthDB 数据库健康检查.
func HealthDB(c *gin.Context) {
	dbc := ctxPkg.GetDBClient(c.Request.Context())
	if dbc == nil || dbc.DB == nil { // dbc.DB 来自于嵌入的 *gorm.DB
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "db", "status": "unhealthy", "error": "db client not initialized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	sqlDB, err := dbc.DB.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "db", "status": "unhealthy", "error": err.Error()})
		return
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "db", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "db", "status": "ok"})
}

// HealthKV 键值缓存健康检查.
func HealthKV(c *gin.Context) {
	kvc := ctxPkg.GetKVClient(c.Request.Context())
	if kvc == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "kv", "status": "unhealthy", "error": "kv client not initialized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	if _, err := kvc.Exists(ctx, "health:probe"); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "kv", "status": "unhealthy", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "kv", "status": "ok"})
}

// HealthMQ 消息队列健康检查.
func HealthMQ(c *gin.Context) {
	mqc := ctxPkg.GetMQClient(c.Request.Context())
	if mqc == nil { // MQ 可选，未启用时视为不健康但不影响主流程
		c.JSON(http.StatusServiceUnavailable, gin.H{"component": "mq", "status": "unhealthy", "error": "mq client not initialized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"component": "mq", "status": "ok"})
}
