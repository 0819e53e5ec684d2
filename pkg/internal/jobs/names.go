package jobs

// 任务名称常量，便于统一管理与引用.
const (
	JobMountSweepStale  = "mount.sweep_stale"
	JobUsageRecountNite = "usage.recount.nightly"
)

// Cron 表达式常量（可选，但推荐一并集中管理）.
const (
	CronMountSweepStale  = "*/30 * * * *"
	CronUsageRecountNite = "30 3 * * *"
)
