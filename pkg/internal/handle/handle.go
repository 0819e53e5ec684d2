// Package handle 提供请求处理器的实现，用于处理HTTP请求.
package handle

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/rule"
)

func DefaultHandler(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"message": "Not Implemented"})
}

// checkUser 提取用户标识：Header 优先 -> query 参数 -> 配置的默认用户（单用户部署）.
func checkUser(c *gin.Context) (string, error) {
	user := c.GetHeader("X-User")
	if user == "" {
		user = c.Query("user")
	}

	if user == "" {
		user = configs.GetConfig().Organizer.DefaultUser
	}

	user = strings.TrimSpace(user)

	if err := rule.ValidateVar(user, "required,max=255"); err != nil {
		return "", err
	}

	return user, nil
}

// checkClient 提取客户端/设备标识，规则同 checkUser.
func checkClient(c *gin.Context) string {
	client := c.GetHeader("X-Client-ID")
	if client == "" {
		client = c.Query("client_id")
	}

	if client == "" {
		client = configs.GetConfig().Organizer.DefaultClient
	}

	return strings.TrimSpace(client)
}

// statusFromErr 将业务错误哨兵映射为 HTTP 状态码.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// abortWithErr 统一错误响应.
func abortWithErr(c *gin.Context, err error) {
	c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
}
