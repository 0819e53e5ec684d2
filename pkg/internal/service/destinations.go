package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/model"
	"github.com/yeisme/destvault/pkg/internal/types"
	nlog "github.com/yeisme/destvault/pkg/log"
	"github.com/yeisme/destvault/pkg/metrics"
	"github.com/yeisme/destvault/pkg/pathutil"
	"github.com/yeisme/destvault/pkg/queue"
)

// Add 记住一个目标目录。路径先规范化，(user, path) 唯一：
//   - 已有活跃记录：幂等返回，不报错，created=false；
//   - 已有软删除记录：复活该行并刷新分类/驱动器归属；
//   - 否则新建。
//
// checkDisk 为 true 时要求路径在磁盘上存在且为目录。
func (s *DestinationService) Add(ctx context.Context, user, clientID string, req *types.AddDestinationRequest, checkDisk bool) (*types.DestinationInfo, bool, error) {
	return s.add(ctx, user, clientID, req, checkDisk, "manual")
}

func (s *DestinationService) add(ctx context.Context, user, clientID string, req *types.AddDestinationRequest, checkDisk bool, source string) (*types.DestinationInfo, bool, error) {
	if user == "" {
		return nil, false, fmt.Errorf("%w: user is required", ErrValidation)
	}

	if req == nil || req.Path == "" {
		return nil, false, fmt.Errorf("%w: path is required", ErrValidation)
	}

	path, err := pathutil.Normalize(req.Path)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	if checkDisk {
		fi, statErr := os.Stat(path)
		if statErr != nil {
			return nil, false, fmt.Errorf("%w: %s does not exist", ErrInvalidPath, path)
		}

		if !fi.IsDir() {
			return nil, false, fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, path)
		}
	}

	category := req.Category
	if category == "" {
		category = pathutil.CategoryFromPath(path)
	}

	driveID := req.DriveID
	if driveID == "" {
		// 尽力而为：按挂载点解析所属驱动器，失败不阻塞写入
		driveID, _ = s.resolveDriveIDForPath(ctx, user, clientID, path)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var existing model.Destination

	err = dbx.Unscoped().Where("user = ? AND path = ?", user, path).First(&existing).Error

	switch {
	case err == nil && existing.IsActive():
		// 幂等：已经记住了
		info := toDestinationInfo(&existing)
		return &info, false, nil

	case err == nil:
		// 复活软删除的行
		updates := map[string]any{
			"deleted_at": nil,
			"category":   category,
			"updated_at": time.Now().UTC(),
		}
		if driveID != "" {
			updates["drive_id"] = driveID
		}

		if err := dbx.Unscoped().Model(&model.Destination{}).
			Where("id = ?", existing.ID).
			Updates(updates).Error; err != nil {
			return nil, false, err
		}

		existing.DeletedAt = gorm.DeletedAt{}
		existing.Category = category

		if driveID != "" {
			existing.DriveID = driveID
		}

		s.afterDestinationCaptured(ctx, user, &existing, source)

		info := toDestinationInfo(&existing)

		return &info, true, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		rec := model.Destination{
			User:     user,
			Path:     path,
			Category: category,
			DriveID:  driveID,
		}
		if err := dbx.Create(&rec).Error; err != nil {
			return nil, false, err
		}

		s.afterDestinationCaptured(ctx, user, &rec, source)

		info := toDestinationInfo(&rec)

		return &info, true, nil

	default:
		return nil, false, err
	}
}

// RemoveByID 按 ID 删除一个目标目录（软删除），目录不存在或跨用户时返回 ErrNotFound.
// cascade 语义同 Remove.
func (s *DestinationService) RemoveByID(ctx context.Context, user, id string, cascade bool) (*types.RemoveDestinationResponse, error) {
	target, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}

	return s.removeTarget(ctx, user, target, cascade)
}

// Remove 按规范化路径删除一个目标目录（软删除）。
// cascade 为 true 时将该路径的所有活跃后代一并停用；后代判断按路径段比较，
// /tmp/Video 不会波及 /tmp/Videos2。
func (s *DestinationService) Remove(ctx context.Context, user, rawPath string, cascade bool) (*types.RemoveDestinationResponse, error) {
	if user == "" || rawPath == "" {
		return nil, fmt.Errorf("%w: user/path required", ErrValidation)
	}

	path, err := pathutil.Normalize(rawPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var target model.Destination
	if err := dbx.Where("user = ? AND path = ?", user, path).First(&target).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: destination %s", ErrNotFound, path)
		}

		return nil, err
	}

	return s.removeTarget(ctx, user, &target, cascade)
}

// removeTarget 在一个事务内停用目标及其（可选的）活跃后代.
func (s *DestinationService) removeTarget(ctx context.Context, user string, target *model.Destination, cascade bool) (*types.RemoveDestinationResponse, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)
	path := target.Path

	removed := 0
	cascaded := int64(0)

	err := dbx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.Destination{}, "id = ?", target.ID).Error; err != nil {
			return err
		}

		removed++

		if !cascade {
			return nil
		}

		// 候选集用 LIKE 粗筛，再按路径段精确判断后代关系
		var children []model.Destination
		if err := tx.Where("user = ? AND path LIKE ?", user, path+"%").Find(&children).Error; err != nil {
			return err
		}

		ids := make([]string, 0, len(children))
		for _, c := range children {
			if pathutil.IsDescendant(c.Path, path) {
				ids = append(ids, c.ID)
			}
		}

		if len(ids) > 0 {
			res := tx.Delete(&model.Destination{}, "id IN ?", ids)
			if res.Error != nil {
				return res.Error
			}

			cascaded = res.RowsAffected
			removed += int(cascaded)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransaction, err)
	}

	if cascaded > 0 {
		metrics.DestinationsCascaded.Add(float64(cascaded))
	}

	s.invalidateAnalyticsCache(ctx, user)
	s.publishEvent(queue.TopicDestinationRemoved, queue.DestinationRemovedPayload{
		User: user, Path: path, CascadedCount: cascaded,
	})

	return &types.RemoveDestinationResponse{ID: target.ID, Removed: removed, Cascade: cascade}, nil
}

// List 列出用户可见的活跃目标目录，按使用次数降序，同次数按最近使用优先。
// 可见性规则：
//   - 无驱动器归属的目录对所有客户端可见；
//   - 云驱动器上的目录对所有客户端可见；
//   - 其余驱动器上的目录仅对挂载了该驱动器的客户端可见。
//
// category 非空时按分类过滤，不区分大小写。
func (s *DestinationService) List(ctx context.Context, user, clientID, category string) (*types.ListDestinationsResponse, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	q := dbx.Where("user = ?", user)
	if category != "" {
		// 分类比较不区分大小写
		q = q.Where("LOWER(category) = LOWER(?)", category)
	}

	var rows []model.Destination
	if err := q.Order("usage_count DESC, last_used_at DESC, path ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	visible, err := s.filterVisible(ctx, user, clientID, rows)
	if err != nil {
		return nil, err
	}

	out := make([]types.DestinationInfo, 0, len(visible))
	for i := range visible {
		out = append(out, toDestinationInfo(&visible[i]))
	}

	return &types.ListDestinationsResponse{Total: len(out), Destinations: out}, nil
}

// Get 按 ID 取单个活跃目录，跨用户不可见.
func (s *DestinationService) Get(ctx context.Context, user, id string) (*model.Destination, error) {
	if user == "" || id == "" {
		return nil, fmt.Errorf("%w: user/id required", ErrValidation)
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var rec model.Destination
	if err := dbx.Where("user = ? AND id = ?", user, id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: destination %s", ErrNotFound, id)
		}

		return nil, err
	}

	return &rec, nil
}

// filterVisible 按驱动器可见性过滤目录集合。
func (s *DestinationService) filterVisible(ctx context.Context, user, clientID string, rows []model.Destination) ([]model.Destination, error) {
	// 收集涉及的驱动器
	driveIDs := make([]string, 0)
	seen := make(map[string]struct{})

	for i := range rows {
		if rows[i].DriveID == "" {
			continue
		}

		if _, ok := seen[rows[i].DriveID]; !ok {
			seen[rows[i].DriveID] = struct{}{}

			driveIDs = append(driveIDs, rows[i].DriveID)
		}
	}

	if len(driveIDs) == 0 {
		return rows, nil
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)

	var drives []model.Drive
	if err := dbx.Preload("Mounts").Where("user = ? AND id IN ?", user, driveIDs).Find(&drives).Error; err != nil {
		return nil, err
	}

	visibleDrive := make(map[string]bool, len(drives))

	for i := range drives {
		d := &drives[i]
		if d.IsCloud() {
			visibleDrive[d.ID] = true
			continue
		}

		for _, m := range d.Mounts {
			if m.ClientID == clientID && m.IsAvailable {
				visibleDrive[d.ID] = true
				break
			}
		}
	}

	out := make([]model.Destination, 0, len(rows))

	for i := range rows {
		// 未知 drive_id 视为不可见，跳过；无归属始终可见
		if rows[i].DriveID == "" || visibleDrive[rows[i].DriveID] {
			out = append(out, rows[i])
		}
	}

	return out, nil
}

// resolveDriveIDForPath 在某客户端视角下，按最长挂载点前缀把路径归属到驱动器。
// 云驱动器的挂载对所有客户端生效。未命中返回空串。
func (s *DestinationService) resolveDriveIDForPath(ctx context.Context, user, clientID, path string) (string, error) {
	dbx := s.dbClient.GetDB().WithContext(ctx)

	var drives []model.Drive
	if err := dbx.Preload("Mounts").Where("user = ?", user).Find(&drives).Error; err != nil {
		return "", err
	}

	bestID := ""
	bestLen := -1

	for i := range drives {
		d := &drives[i]
		for _, m := range d.Mounts {
			if m.MountPoint == "" {
				continue
			}

			// 云挂载恒可用且对所有客户端生效；其余只考虑当前客户端的在线挂载
			if !d.IsCloud() && (m.ClientID != clientID || !m.IsAvailable) {
				continue
			}

			if pathutil.HasPrefix(path, m.MountPoint) && len(m.MountPoint) > bestLen {
				bestID = d.ID
				bestLen = len(m.MountPoint)
			}
		}
	}

	return bestID, nil
}

// afterDestinationCaptured 捕获成功后的公共收尾：缓存失效 + 事件广播.
func (s *DestinationService) afterDestinationCaptured(ctx context.Context, user string, rec *model.Destination, source string) {
	metrics.DestinationsCaptured.Inc()
	s.invalidateAnalyticsCache(ctx, user)
	s.publishEvent(queue.TopicDestinationCaptured, queue.DestinationCapturedPayload{
		User: user, Path: rec.Path, Category: rec.Category, DriveID: rec.DriveID, Source: source,
	})
}

// publishEvent 尽力而为地发布事件；MQ 未启用或失败时仅记录日志.
func (s *DestinationService) publishEvent(topic string, payload any) {
	if s.mqClient == nil {
		return
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(configs.AppName))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("build event failed")
		return
	}

	if err := s.mqClient.Publish(context.Background(), topic, msg); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("publish event failed")
	}
}

// toDestinationInfo 转换为对外结构.
func toDestinationInfo(d *model.Destination) types.DestinationInfo {
	info := types.DestinationInfo{
		ID:         d.ID,
		Path:       d.Path,
		Category:   d.Category,
		DriveID:    d.DriveID,
		UsageCount: d.UsageCount,
		CreatedAt:  d.CreatedAt.UTC().Format(time.RFC3339),
	}
	if d.LastUsedAt != nil {
		info.LastUsedAt = d.LastUsedAt.UTC().Format(time.RFC3339)
	}

	return info
}
