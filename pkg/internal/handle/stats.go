package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/log"
)

// UsageAnalytics 当前用户的使用统计汇总.
//
//	@Summary	使用统计
//	@Tags		统计
//	@Produce	json
//	@Success	200	{object}	types.UsageAnalyticsResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/stats/usage [get]
func UsageAnalytics(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	svc := service.NewAnalyticsService(c.Request.Context())

	resp, err := svc.UsageAnalytics(c.Request.Context(), user)
	if err != nil {
		log.Logger().Error().Err(err).Str("user", user).Msg("usage analytics failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
