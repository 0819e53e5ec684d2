package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPort         = 8080      // 监听端口
	DefaultHost         = "0.0.0.0" // 监听地址
	DefaultReloadConfig = true      // 是否启用配置热重载
	DefaultDebug        = false     // 是否启用调试模式
	DefaultTimeout      = 30        // 超时时间，单位秒
)

type (
	// ServerConfig 服务器配置.
	ServerConfig struct {
		Port         int             `mapstructure:"port"          rule:"min=1,max=65535"`
		Host         string          `mapstructure:"host"          rule:"ip"`
		ReloadConfig bool            `mapstructure:"reload_config"`
		Debug        bool            `mapstructure:"debug"`
		Timeout      int             `mapstructure:"timeout"       rule:"min=1,max=300"`
		RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
	}

	// RateLimitConfig 写接口限流配置.
	RateLimitConfig struct {
		Enabled bool    `mapstructure:"enabled"`
		RPS     float64 `mapstructure:"rps"     rule:"min=0"`
		Burst   int     `mapstructure:"burst"   rule:"min=0"`
		Key     string  `mapstructure:"key"` // global / ip / header:<name>
	}
)

// GetTimeoutDuration 返回超时时间作为time.Duration.
func (s *ServerConfig) GetTimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// setDefaults 设置服务器配置的默认值.
func (s *ServerConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.host", DefaultHost)
	v.SetDefault("server.reload_config", DefaultReloadConfig)
	v.SetDefault("server.debug", DefaultDebug)
	v.SetDefault("server.timeout", DefaultTimeout)
	v.SetDefault("server.rate_limit.enabled", false)
	v.SetDefault("server.rate_limit.rps", 50)
	v.SetDefault("server.rate_limit.burst", 100)
	v.SetDefault("server.rate_limit.key", "ip")
}
