package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/types"
	"github.com/yeisme/destvault/pkg/log"
)

// RegisterDrive 注册或刷新单个驱动器.
//
//	@Summary	注册驱动器
//	@Tags		驱动器
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.RegisterDriveRequest	true	"注册参数"
//	@Success	200		{object}	types.DriveInfo
//	@Success	201		{object}	types.DriveInfo
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/drives [post]
func RegisterDrive(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	var req types.RegisterDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewDriveService(c.Request.Context())

	info, created, err := svc.Register(c.Request.Context(), user, checkClient(c), &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Msg("register drive failed")
		abortWithErr(c, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, info)
}

// RegisterDrivesBatch 批量注册驱动器，整批原子生效.
//
//	@Summary	批量注册驱动器
//	@Tags		驱动器
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.RegisterDrivesBatchRequest	true	"批量注册参数"
//	@Success	200		{object}	types.ListDrivesResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/drives/batch [post]
func RegisterDrivesBatch(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	var req types.RegisterDrivesBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewDriveService(c.Request.Context())

	resp, err := svc.RegisterBatch(c.Request.Context(), user, checkClient(c), &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Int("count", len(req.Drives)).Msg("register drives batch failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// SetDriveAvailability 更新当前客户端视角下驱动器的可用性.
//
//	@Summary	更新驱动器可用性
//	@Tags		驱动器
//	@Accept		json
//	@Produce	json
//	@Param		request	body		types.SetAvailabilityRequest	true	"可用性参数"
//	@Success	200		{object}	types.DriveInfo
//	@Failure	400		{object}	map[string]string
//	@Failure	404		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/drives/availability [put]
func SetDriveAvailability(c *gin.Context) {
	l := log.Logger()

	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	var req types.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewDriveService(c.Request.Context())

	info, err := svc.SetAvailability(c.Request.Context(), user, checkClient(c), &req)
	if err != nil {
		l.Error().Err(err).Str("user", user).Str("uid", req.UniqueIdentifier).Msg("set availability failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, info)
}

// ListDrives 列出用户所有驱动器.
//
//	@Summary	驱动器列表
//	@Tags		驱动器
//	@Produce	json
//	@Success	200	{object}	types.ListDrivesResponse
//	@Failure	400	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/drives [get]
func ListDrives(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	svc := service.NewDriveService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), user)
	if err != nil {
		log.Logger().Error().Err(err).Str("user", user).Msg("list drives failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetDrive 按 ID 取单个驱动器及其各客户端挂载.
//
//	@Summary	驱动器详情
//	@Tags		驱动器
//	@Produce	json
//	@Param		id	path		string	true	"驱动器 ID"
//	@Success	200	{object}	types.DriveInfo
//	@Failure	400	{object}	map[string]string
//	@Failure	404	{object}	map[string]string
//	@Failure	500	{object}	map[string]string
//	@Router		/api/v1/drives/{id} [get]
func GetDrive(c *gin.Context) {
	user, err := checkUser(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user"})
		return
	}

	id := c.Param("id")

	svc := service.NewDriveService(c.Request.Context())

	info, err := svc.Get(c.Request.Context(), user, id)
	if err != nil {
		log.Logger().Error().Err(err).Str("user", user).Str("id", id).Msg("get drive failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, info)
}

// ResolveDrive 把路径归属到驱动器（最长挂载点前缀），用于调试与前端展示.
//
//	@Summary	解析路径归属
//	@Tags		驱动器
//	@Produce	json
//	@Param		path	query		string	true	"待解析路径"
//	@Success	200		{object}	types.ResolveDriveResponse
//	@Failure	400		{object}	map[string]string
//	@Failure	500		{object}	map[string]string
//	@Router		/api/v1/drives/resolve [get]
func ResolveDrive(c *gin.Context) {
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

	svc := service.NewDriveService(c.Request.Context())

	resp, err := svc.ResolveForPath(c.Request.Context(), user, checkClient(c), path)
	if err != nil {
		log.Logger().Error().Err(err).Str("user", user).Str("path", path).Msg("resolve drive failed")
		abortWithErr(c, err)

		return
	}

	c.JSON(http.StatusOK, resp)
}
