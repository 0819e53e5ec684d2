// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"

	ctxPkg "github.com/yeisme/destvault/pkg/context"
	"github.com/yeisme/destvault/pkg/internal/model"
	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/storage"
	"github.com/yeisme/destvault/pkg/log"
	"github.com/yeisme/destvault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 每 30 分钟扫描一次长时间未上报的挂载点并标记为不可用
//   - 每天 03:30 以使用事件重算各目录的累计使用次数，修复潜在偏差
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于 service 使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	// 每 30 分钟清理失联挂载
	_ = sched.AddCron(JobMountSweepStale, CronMountSweepStale, func(ctx context.Context) {
		runMountSweepStale(ctx)
	}, baseCtx)

	// 每天 03:30 重算使用次数
	_ = sched.AddCron(JobUsageRecountNite, CronUsageRecountNite, func(ctx context.Context) {
		runUsageRecount(ctx, mgr)
	}, baseCtx)

	return nil
}

// runMountSweepStale 将超过配置时限未上报的挂载标记为不可用，并刷新所属驱动器的聚合状态。
func runMountSweepStale(ctx context.Context) {
	l := log.Logger().With().Str("job", JobMountSweepStale).Logger()

	svc := service.NewDriveService(ctx)

	n, err := svc.SweepStaleMounts(ctx)
	if err != nil {
		l.Error().Err(err).Msg("sweep stale mounts failed")
		return
	}

	if n > 0 {
		l.Info().Int64("affected", n).Msg("marked stale mounts unavailable")
	}
}

// runUsageRecount 将各目录的 usage_count 重算为其使用事件的 file_count 之和。
// 正常路径下两者始终一致，这里兜底修复崩溃或手工改库造成的偏差。
func runUsageRecount(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobUsageRecountNite).Logger()

	if mgr == nil || mgr.GetDBClient() == nil || mgr.GetDBClient().GetDB() == nil {
		l.Error().Msg("db not initialized")
		return
	}

	dbx := mgr.GetDBClient().GetDB().WithContext(ctx)

	res := dbx.Model(&model.Destination{}).
		Where("deleted_at IS NULL").
		Update("usage_count", dbx.Model(&model.DestinationUsage{}).
			Select("COALESCE(SUM(file_count), 0)").
			Where("destination_usages.destination_id = destinations.id"))
	if res.Error != nil {
		l.Error().Err(res.Error).Msg("usage recount failed")
		return
	}

	l.Info().Int64("rows", res.RowsAffected).Msg("usage recount done")
}
