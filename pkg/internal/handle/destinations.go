package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/types"
	"github.com/yeisme/destvault/pkg/log"
)

// AddDestination 手动记住一个目标目录.
//
//	@Summary	添加目标目录
//	@Tags		目标目录
//	@Accept		json
//	@Produce	json
//	@Param		request		body		types.AddDestinationRequest	true	"目录参数"
//	@Param		check_disk	query		bool						false	"校验路径在磁盘上存在且为目录"
//	@Success	200			{object}	types.DestinationInfo
//	@Success	201			{object}	types.DestinationInfo
//	@Failure	400			{object}	map[string]string
//	@Failure	500			{object}	map[string]string
//	@Router		/api/v1/destinations [post]
func AddDestination(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	var req types.AddDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	checkDisk, _ := strconv.ParseBool(c.Query("check_disk"))

	svc := service.NewDestinationService(c.Request.Context())

	info, created, err := svc.Add(c.Request.Context(), user, checkClient(c), &req, checkDisk)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("path", req.Path).Msg("add destination failed")
		abortWithErr(c, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, info)
}

// RemoveDestination 按路径停用一个目标目录.
//
//	@Summary	移除目标目录
//	@Tags		目标目录
//	@Produce	json
//	@Param		path	query		string	true	"目录路径"
//	@Param		cascade	query		bool	false	"同时停用所有后代目录(默认 true)"
//	@Success	200		{object}	types.RemoveDestinationResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/destinations [delete]
func RemoveDestination(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path"})
		return
	}

	cascade := true
	if v := c.Query("cascade"); v != "" {
		cascade, _ = strconv.ParseBool(v)
	}

	svc := service.NewDestinationService(c.Request.Context())

	resp, err := svc.Remove(c.Request.Context(), user, path, cascade)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("path", path).Msg("remove destination failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// RemoveDestinationByID 按 ID 停用一个目标目录.
//
//	@Summary	按 ID 移除目标目录
//	@Tags		目标目录
//	@Produce	json
//	@Param		id		path		string	true	"目录 ID"
//	@Param		cascade	query		bool	false	"同时停用所有后代目录(默认 true)"
//	@Success	200		{object}	types.RemoveDestinationResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/destinations/{id} [delete]
func RemoveDestinationByID(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	id := c.Param("id")

	cascade := true
	if v := c.Query("cascade"); v != "" {
		cascade, _ = strconv.ParseBool(v)
	}

	svc := service.NewDestinationService(c.Request.Context())

	resp, err := svc.RemoveByID(c.Request.Context(), user, id, cascade)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("id", id).Msg("remove destination failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListDestinations 列出当前客户端可见的目标目录.
//
//	@Summary	目标目录列表
//	@Tags		目标目录
//	@Produce	json
//	@Param		category	query		string	false	"按分类过滤"
//	@Success	200			{object}	types.ListDestinationsResponse
//	@Failure	400			{object}	map[string]string
//	@Failure	500			{object}	map[string]string
//	@Router		/api/v1/destinations [get]
func ListDestinations(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	svc := service.NewDestinationService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), user, checkClient(c), c.Query("category"))
	if err != nil {
		log.Logger().Error().Err(err).Str("user", user).Msg("list destinations failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// CaptureDestinations 从一批已完成文件操作中自动学习目标目录.
//
//	@Summary	自动捕获目标目录
//	@Tags		目标目录
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.CaptureRequest	true	"已完成操作列表"
//	@Success	200		{object}	types.CaptureResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/destinations/capture [post]
func CaptureDestinations(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	var req types.CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewCaptureService(c.Request.Context())

	resp, err := svc.Capture(c.Request.Context(), user, checkClient(c), &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Int("ops", len(req.Operations)).Msg("capture failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// RecordUsage 给目录记一次使用.
//
//	@Summary	记录一次使用
//	@Tags		目标目录
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"目录 ID"
//	@Param		request	body		types.RecordUsageRequest	false	"使用参数"
//	@Success	200		{object}	types.RecordUsageResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/destinations/{id}/usage [post]
func RecordUsage(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing id"})
		return
	}

	// body 可省略，全部取默认值
	var req types.RecordUsageRequest

	_ = c.ShouldBindJSON(&req)

	svc := service.NewUsageService(c.Request.Context())

	resp, err := svc.Record(c.Request.Context(), user, id, &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("destination", id).Msg("record usage failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
