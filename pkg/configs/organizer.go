package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultUser 单用户部署时调用方未携带用户标识的兜底值.
	DefaultUser = "dev_user"
	// DefaultClient 调用方未携带客户端标识的兜底值.
	DefaultClient = "default_client"

	// DefaultStaleMountAfter 挂载点多久未上报后视为失联.
	DefaultStaleMountAfter = 24 * time.Hour
	// DefaultCaptureBatchMax 单次自动捕获允许的最大操作条数.
	DefaultCaptureBatchMax = 1000
	// DefaultAnalyticsCacheTTL 使用统计的缓存时间.
	DefaultAnalyticsCacheTTL = 30 * time.Second
	// DefaultMostUsedLimit 统计中"最常用"列表的长度.
	DefaultMostUsedLimit = 10
)

// OrganizerConfig 整理器边界配置：默认身份、捕获限制与后台清扫参数.
type OrganizerConfig struct {
	DefaultUser       string        `mapstructure:"default_user"        rule:"required"`
	DefaultClient     string        `mapstructure:"default_client"      rule:"required"`
	StaleMountAfter   time.Duration `mapstructure:"stale_mount_after"`
	CaptureBatchMax   int           `mapstructure:"capture_batch_max"   rule:"min=1"`
	AnalyticsCacheTTL time.Duration `mapstructure:"analytics_cache_ttl"`
	MostUsedLimit     int           `mapstructure:"most_used_limit"     rule:"min=1,max=100"`
}

// setDefaults 设置整理器配置的默认值.
func (c *OrganizerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("organizer.default_user", DefaultUser)
	v.SetDefault("organizer.default_client", DefaultClient)
	v.SetDefault("organizer.stale_mount_after", DefaultStaleMountAfter)
	v.SetDefault("organizer.capture_batch_max", DefaultCaptureBatchMax)
	v.SetDefault("organizer.analytics_cache_ttl", DefaultAnalyticsCacheTTL)
	v.SetDefault("organizer.most_used_limit", DefaultMostUsedLimit)
}
