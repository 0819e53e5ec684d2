// Package configs 管理应用程序配置，包括数据库、缓存、消息队列与整理器的配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	import "path/to/configs"
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const (
	AppName    = "destvault"
	AppVersion = "1.0.0"
)

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		DB        DBConfig        `mapstructure:"db"`        // DBConfig 数据库配置
		KV        KVConfig        `mapstructure:"kv"`        // KVConfig 键值缓存配置
		MQ        MQConfig        `mapstructure:"mq"`        // MQConfig 消息队列配置
		Server    ServerConfig    `mapstructure:"server"`    // ServerConfig 服务器配置
		Log       LogConfig       `mapstructure:"log"`       // LogConfig 日志相关配置
		Metrics   MetricsConfig   `mapstructure:"metrics"`   // MetricsConfig 监控配置
		Tracing   TracingConfig   `mapstructure:"tracing"`   // TracingConfig 追踪配置
		Organizer OrganizerConfig `mapstructure:"organizer"` // OrganizerConfig 整理器边界配置
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("DESTVAULT")

	// 读取配置，找不到配置文件时退回默认值
	if err := appViper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var serverConfig ServerConfig

	var dbConfig DBConfig

	var kvConfig KVConfig

	var mqConfig MQConfig

	var logConfig LogConfig

	var metricsConfig MetricsConfig

	var tracingConfig TracingConfig

	var organizerConfig OrganizerConfig

	serverConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	kvConfig.setDefaults(v)
	mqConfig.setDefaults(v)
	logConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	tracingConfig.setDefaults(v)
	organizerConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置实例.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
