// Package metrics 提供监控指标功能.
// 支持Prometheus标准，收集应用和系统指标.
//
// Example:
//
//	import "github.com/yeisme/destvault/pkg/metrics"
//
//	err := metrics.InitMetrics(config.Metrics)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// 记录指标
//	metrics.RequestCounter.WithLabelValues("GET", "/api/v1/drives").Inc()
package metrics

import (
	"net/http"
	_ "net/http/pprof" // 自动注册pprof端点

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yeisme/destvault/pkg/configs"
)

// 全局指标变量.
var (
	// RequestCounter HTTP请求计数器.
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint"},
	)

	// RequestDuration HTTP请求持续时间.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// DestinationsCaptured 自动捕获创建的目标目录数.
	DestinationsCaptured = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "destvault_destinations_captured_total",
			Help: "Destinations created by auto capture",
		},
	)

	// DestinationsCascaded 级联软删除波及的目标目录数.
	DestinationsCascaded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "destvault_destinations_cascaded_total",
			Help: "Destinations deactivated by cascading delete",
		},
	)

	// UsageEventsRecorded 使用记录事件数.
	UsageEventsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "destvault_usage_events_total",
			Help: "Destination usage events recorded",
		},
	)

	// DrivesRegistered 驱动器注册（含更新）次数.
	DrivesRegistered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "destvault_drives_registered_total",
			Help: "Drive registrations by drive type",
		},
		[]string{"drive_type"},
	)

	// registry Prometheus注册表.
	registry = prometheus.NewRegistry()
)

// InitMetrics 初始化Metrics.
func InitMetrics(config configs.MetricsConfig) error {
	if !config.Enabled {
		return nil
	}

	// 注册标准收集器
	if config.RuntimeMetrics {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	// 注册自定义指标
	registry.MustRegister(
		RequestCounter,
		RequestDuration,
		DestinationsCaptured,
		DestinationsCascaded,
		UsageEventsRecorded,
		DrivesRegistered,
	)

	return nil
}

// StartMetricsServer 启动Metrics HTTP服务器.
func StartMetricsServer(config configs.MetricsConfig, debugEngine *gin.Engine) error {
	if !config.Enabled {
		return nil
	}

	debugEngine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// 如果启用pprof，注册pprof端点
	if config.Pprof {
		debugEngine.GET("/debug/pprof/*any", gin.WrapH(http.DefaultServeMux))
	}

	return nil
}

// GetRegistry 获取Prometheus注册表.
func GetRegistry() *prometheus.Registry {
	return registry
}
