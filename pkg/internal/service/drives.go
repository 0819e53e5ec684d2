package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/model"
	"github.com/yeisme/destvault/pkg/internal/types"
	"github.com/yeisme/destvault/pkg/metrics"
	"github.com/yeisme/destvault/pkg/pathutil"
	"github.com/yeisme/destvault/pkg/queue"
)

// DriveService 负责驱动器注册、挂载与路径归属解析.
type DriveService struct{ *DestinationService }

func NewDriveService(c context.Context) *DriveService { return &DriveService{NewDestinationService(c)} }

// Register 注册或刷新一个驱动器及其在当前客户端的挂载。
// 驱动器按 (user, unique_identifier) 去重；缺省 unique_identifier 时以
// "mount:<挂载点>" 兜底，同一挂载点反复上报不会堆积重复行。
func (s *DriveService) Register(ctx context.Context, user, clientID string, req *types.RegisterDriveRequest) (*types.DriveInfo, bool, error) {
	if err := validateRegister(user, req); err != nil {
		return nil, false, err
	}

	var (
		info    *types.DriveInfo
		created bool
	)

	err := s.dbClient.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		info, created, err = s.registerTx(tx, user, clientID, req)

		return err
	})
	if err != nil {
		return nil, false, err
	}

	metrics.DrivesRegistered.WithLabelValues(driveTypeLabel(req.DriveType)).Inc()
	s.publishEvent(queue.TopicDriveRegistered, queue.DriveRegisteredPayload{
		User: user,
		Drive: queue.DriveRef{
			DriveID:          info.ID,
			UniqueIdentifier: info.UniqueIdentifier,
			Label:            info.Label,
			DriveType:        info.DriveType,
			CloudProvider:    info.CloudProvider,
			ClientID:         clientID,
		},
		Created: created,
	})

	return info, created, nil
}

// RegisterBatch 批量注册驱动器，整体在一个事务里执行：任何一条失败全部回滚。
func (s *DriveService) RegisterBatch(ctx context.Context, user, clientID string, req *types.RegisterDrivesBatchRequest) (*types.ListDrivesResponse, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	if req == nil || len(req.Drives) == 0 {
		return nil, fmt.Errorf("%w: drives is required", ErrValidation)
	}

	// 参数校验放在事务外，坏请求不开事务
	for i := range req.Drives {
		if err := validateRegister(user, &req.Drives[i]); err != nil {
			return nil, err
		}
	}

	out := make([]types.DriveInfo, 0, len(req.Drives))

	err := s.dbClient.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range req.Drives {
			info, _, err := s.registerTx(tx, user, clientID, &req.Drives[i])
			if err != nil {
				return err
			}

			out = append(out, *info)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransaction, err)
	}

	for i := range req.Drives {
		metrics.DrivesRegistered.WithLabelValues(driveTypeLabel(req.Drives[i].DriveType)).Inc()
	}

	return &types.ListDrivesResponse{Total: len(out), Drives: out}, nil
}

// SetAvailability 更新某客户端视角下驱动器的可用性，并刷新驱动器的聚合状态。
func (s *DriveService) SetAvailability(ctx context.Context, user, clientID string, req *types.SetAvailabilityRequest) (*types.DriveInfo, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	if req == nil || req.UniqueIdentifier == "" || req.Available == nil {
		return nil, fmt.Errorf("%w: unique_identifier/available required", ErrValidation)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var drive model.Drive
	if err := dbx.Where("user = ? AND unique_identifier = ?", user, req.UniqueIdentifier).First(&drive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: drive %s", ErrNotFound, req.UniqueIdentifier)
		}

		return nil, err
	}

	now := time.Now().UTC()
	available := *req.Available

	err := dbx.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.DriveMount{}).
			Where("drive_id = ? AND client_id = ?", drive.ID, clientID).
			Updates(map[string]any{"is_available": available, "last_seen_at": now})
		if res.Error != nil {
			return res.Error
		}

		// 该客户端从未挂载过这块盘
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: drive %s has no mount for client %s", ErrNotFound, req.UniqueIdentifier, clientID)
		}

		return recomputeDriveAvailability(tx, &drive, now)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(queue.TopicDriveAvailability, queue.DriveAvailabilityPayload{
		User: user, DriveID: drive.ID, ClientID: clientID, Available: available,
	})

	return s.getDriveInfo(ctx, user, drive.ID)
}

// List 列出用户所有已注册驱动器及各客户端挂载.
func (s *DriveService) List(ctx context.Context, user string) (*types.ListDrivesResponse, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var rows []model.Drive
	if err := dbx.Preload("Mounts").Where("user = ?", user).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.DriveInfo, 0, len(rows))
	for i := range rows {
		out = append(out, toDriveInfo(&rows[i]))
	}

	return &types.ListDrivesResponse{Total: len(out), Drives: out}, nil
}

// Get 按 ID 取单个驱动器及其各客户端挂载，跨用户不可见.
func (s *DriveService) Get(ctx context.Context, user, id string) (*types.DriveInfo, error) {
	if user == "" || id == "" {
		return nil, fmt.Errorf("%w: user/id required", ErrValidation)
	}

	return s.getDriveInfo(ctx, user, id)
}

// ResolveForPath 把任意路径归属到某个驱动器：在当前客户端的挂载（加上云驱动器
// 的全局挂载）里取能覆盖该路径的最长挂载点。未命中任何挂载时 Drive 为空，不报错。
func (s *DriveService) ResolveForPath(ctx context.Context, user, clientID, rawPath string) (*types.ResolveDriveResponse, error) {
	if user == "" || rawPath == "" {
		return nil, fmt.Errorf("%w: user/path required", ErrValidation)
	}

	path, err := pathutil.Normalize(rawPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	driveID, err := s.resolveDriveIDForPath(ctx, user, clientID, path)
	if err != nil {
		return nil, err
	}

	resp := &types.ResolveDriveResponse{Path: path}

	if driveID != "" {
		info, err := s.getDriveInfo(ctx, user, driveID)
		if err != nil {
			return nil, err
		}

		resp.Drive = info
	}

	return resp, nil
}

// SweepStaleMounts 将超过配置时限未上报的挂载标记为不可用，并刷新受影响驱动器
// 的聚合可用性。返回被标记的挂载数。
func (s *DriveService) SweepStaleMounts(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-configs.GetConfig().Organizer.StaleMountAfter)
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var stale []model.DriveMount
	if err := dbx.Where("is_available = ? AND last_seen_at < ?", true, cutoff).Find(&stale).Error; err != nil {
		return 0, err
	}

	if len(stale) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()

	err := dbx.Transaction(func(tx *gorm.DB) error {
		ids := make([]string, 0, len(stale))
		driveIDs := make(map[string]struct{})

		for _, m := range stale {
			ids = append(ids, m.ID)
			driveIDs[m.DriveID] = struct{}{}
		}

		if err := tx.Model(&model.DriveMount{}).
			Where("id IN ?", ids).
			Update("is_available", false).Error; err != nil {
			return err
		}

		for id := range driveIDs {
			var drive model.Drive
			if err := tx.First(&drive, "id = ?", id).Error; err != nil {
				return err
			}

			if err := recomputeDriveAvailability(tx, &drive, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return int64(len(stale)), nil
}

// registerTx 在事务内完成驱动器与挂载的 upsert，返回最终状态.
func (s *DriveService) registerTx(tx *gorm.DB, user, clientID string, req *types.RegisterDriveRequest) (*types.DriveInfo, bool, error) {
	mountPoint, err := pathutil.Normalize(req.MountPoint)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	uid := req.UniqueIdentifier
	if uid == "" {
		uid = "mount:" + mountPoint
	}

	label := req.Label
	if label == "" {
		label = mountPoint
	}

	now := time.Now().UTC()
	created := false

	var drive model.Drive

	err = tx.Where("user = ? AND unique_identifier = ?", user, uid).First(&drive).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		drive = model.Drive{
			User:             user,
			UniqueIdentifier: uid,
			Label:            label,
			DriveType:        req.DriveType,
			CloudProvider:    req.CloudProvider,
			IsAvailable:      true,
			LastSeenAt:       now,
		}
		if err := tx.Create(&drive).Error; err != nil {
			return nil, false, err
		}

		created = true

	case err != nil:
		return nil, false, err

	default:
		updates := map[string]any{
			"label":        label,
			"drive_type":   req.DriveType,
			"is_available": true,
			"last_seen_at": now,
		}
		if req.CloudProvider != "" {
			updates["cloud_provider"] = req.CloudProvider
		}

		if err := tx.Model(&drive).Updates(updates).Error; err != nil {
			return nil, false, err
		}
	}

	// 挂载 upsert：(drive_id, client_id) 唯一
	var mount model.DriveMount

	err = tx.Where("drive_id = ? AND client_id = ?", drive.ID, clientID).First(&mount).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		mount = model.DriveMount{
			DriveID:     drive.ID,
			ClientID:    clientID,
			MountPoint:  mountPoint,
			IsAvailable: true,
			LastSeenAt:  now,
		}
		if err := tx.Create(&mount).Error; err != nil {
			return nil, false, err
		}

	case err != nil:
		return nil, false, err

	default:
		if err := tx.Model(&mount).Updates(map[string]any{
			"mount_point":  mountPoint,
			"is_available": true,
			"last_seen_at": now,
		}).Error; err != nil {
			return nil, false, err
		}
	}

	var fresh model.Drive
	if err := tx.Preload("Mounts").First(&fresh, "id = ?", drive.ID).Error; err != nil {
		return nil, false, err
	}

	info := toDriveInfo(&fresh)

	return &info, created, nil
}

// getDriveInfo 读取单个驱动器的完整信息.
func (s *DriveService) getDriveInfo(ctx context.Context, user, id string) (*types.DriveInfo, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var drive model.Drive
	if err := dbx.Preload("Mounts").Where("user = ? AND id = ?", user, id).First(&drive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: drive %s", ErrNotFound, id)
		}

		return nil, err
	}

	info := toDriveInfo(&drive)

	return &info, nil
}

// recomputeDriveAvailability 聚合可用性：云驱动器恒可用，其余取各挂载可用性的并集.
func recomputeDriveAvailability(tx *gorm.DB, drive *model.Drive, now time.Time) error {
	available := drive.IsCloud()

	if !available {
		var cnt int64
		if err := tx.Model(&model.DriveMount{}).
			Where("drive_id = ? AND is_available = ?", drive.ID, true).
			Count(&cnt).Error; err != nil {
			return err
		}

		available = cnt > 0
	}

	return tx.Model(&model.Drive{}).
		Where("id = ?", drive.ID).
		Updates(map[string]any{"is_available": available, "last_seen_at": now}).Error
}

// driveTypeLabel 把自由取值的 drive_type 收敛到有限的指标标签集，控制基数.
func driveTypeLabel(t string) string {
	switch t {
	case model.DriveTypeInternal, model.DriveTypeUSB, model.DriveTypeFixed, model.DriveTypeCloud:
		return t
	default:
		return "other"
	}
}

// validateRegister 校验注册参数.
func validateRegister(user string, req *types.RegisterDriveRequest) error {
	if user == "" {
		return fmt.Errorf("%w: user is required", ErrValidation)
	}

	if req == nil || req.MountPoint == "" {
		return fmt.Errorf("%w: mount_point is required", ErrValidation)
	}

	if req.DriveType == "" {
		return fmt.Errorf("%w: drive_type is required", ErrValidation)
	}

	if req.DriveType == model.DriveTypeCloud && req.CloudProvider == "" {
		return fmt.Errorf("%w: cloud_provider is required for cloud drives", ErrValidation)
	}

	return nil
}

// toDriveInfo 转换为对外结构.
func toDriveInfo(d *model.Drive) types.DriveInfo {
	info := types.DriveInfo{
		ID:               d.ID,
		UniqueIdentifier: d.UniqueIdentifier,
		Label:            d.Label,
		DriveType:        d.DriveType,
		CloudProvider:    d.CloudProvider,
		IsAvailable:      d.IsAvailable,
		LastSeenAt:       d.LastSeenAt.UTC().Format(time.RFC3339),
		CreatedAt:        d.CreatedAt.UTC().Format(time.RFC3339),
	}

	for _, m := range d.Mounts {
		info.Mounts = append(info.Mounts, types.MountInfo{
			ID:          m.ID,
			ClientID:    m.ClientID,
			MountPoint:  m.MountPoint,
			IsAvailable: m.IsAvailable,
			LastSeenAt:  m.LastSeenAt.UTC().Format(time.RFC3339),
		})
	}

	return info
}
