package service

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid"
	"gorm.io/gorm"

	"github.com/yeisme/destvault/pkg/internal/model"
	"github.com/yeisme/destvault/pkg/internal/types"
	nlog "github.com/yeisme/destvault/pkg/log"
	"github.com/yeisme/destvault/pkg/metrics"
	"github.com/yeisme/destvault/pkg/queue"
)

// 全局单例的 ULID 熵源，使用单调递增策略，确保同一毫秒内生成的使用事件 ID 排序稳定。
var ulidEntropy = ulid.Monotonic(crand.Reader, 0)

const (
	defaultOperationType = "move"
)

// UsageService 负责使用事件的追加记录.
type UsageService struct{ *DestinationService }

func NewUsageService(c context.Context) *UsageService { return &UsageService{NewDestinationService(c)} }

// Record 给目录记一次使用：追加一条使用事件，并累加目录的 usage_count 与
// last_used_at。目录不存在（或已被停用）时不报错，Recorded 返回 false——调用方
// 在文件操作完成后才上报，这里失败不应让已完成的操作看起来出错。
func (u *UsageService) Record(ctx context.Context, user, destinationID string, req *types.RecordUsageRequest) (*types.RecordUsageResponse, error) {
	if user == "" || destinationID == "" {
		return nil, fmt.Errorf("%w: user/destination_id required", ErrValidation)
	}

	fileCount := 1
	opType := defaultOperationType

	if req != nil {
		if req.FileCount < 0 {
			return nil, fmt.Errorf("%w: file_count must not be negative", ErrValidation)
		}

		if req.FileCount > 0 {
			fileCount = req.FileCount
		}

		if req.OperationType != "" {
			opType = req.OperationType
		}
	}

	dbx := u.dbClient.GetDB().WithContext(ctx)

	var dest model.Destination
	if err := dbx.Where("user = ? AND id = ?", user, destinationID).First(&dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			nlog.Logger().Warn().Str("user", user).Str("destination", destinationID).
				Msg("usage for unknown destination ignored")

			return &types.RecordUsageResponse{DestinationID: destinationID, Recorded: false}, nil
		}

		return nil, err
	}

	now := time.Now().UTC()
	event := model.DestinationUsage{
		ID:            ulid.MustNew(ulid.Timestamp(now), ulidEntropy).String(),
		DestinationID: dest.ID,
		UsedAt:        now,
		FileCount:     fileCount,
		OperationType: opType,
	}

	err := dbx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		return tx.Model(&model.Destination{}).
			Where("id = ?", dest.ID).
			Updates(map[string]any{
				"usage_count":  gorm.Expr("usage_count + ?", fileCount),
				"last_used_at": now,
			}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTransaction, err)
	}

	metrics.UsageEventsRecorded.Inc()
	u.invalidateAnalyticsCache(ctx, user)
	u.publishEvent(queue.TopicUsageRecorded, queue.UsageRecordedPayload{
		User:          user,
		DestinationID: dest.ID,
		Path:          dest.Path,
		FileCount:     fileCount,
		OperationType: opType,
		UsedAt:        now,
	})

	return &types.RecordUsageResponse{DestinationID: dest.ID, Recorded: true}, nil
}
