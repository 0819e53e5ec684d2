package configs

import (
	"github.com/spf13/viper"
)

// MQType 消息队列类型.
type MQType string

const (
	MQTypeNATS MQType = "nats"

	DefaultMQURL         = "localhost:4222"
	DefaultMaxReconnects = 5               // 默认最大重连次数.
	DefaultReconnectWait = 5               // 默认重连等待时间（秒）.
	DefaultMQClientID    = "destvault-app" // 默认客户端ID
	DefaultPingInterval  = 20              // 默认ping间隔（秒）
	DefaultBufferSize    = 32768           // 默认重连缓冲区大小 (32KB)
)

// MQConfig 消息队列配置. MQ 为可选组件：Enabled 为 false 时事件发布被跳过.
type MQConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	Type        MQType   `mapstructure:"type"           rule:"oneof=nats"`
	URL         string   `mapstructure:"url"            rule:"hostname_port"`
	ClusterURLs []string `mapstructure:"cluster_urls"`
	ClientID    string   `mapstructure:"client_id"`
	User        string   `mapstructure:"user"`
	Password    string   `mapstructure:"password"`
	JWT         string   `mapstructure:"jwt"`
	NKey        string   `mapstructure:"nkey"`

	MaxReconnects int `mapstructure:"max_reconnects" rule:"min=0,max=100"`
	ReconnectWait int `mapstructure:"reconnect_wait" rule:"min=1,max=300"`
	PingInterval  int `mapstructure:"ping_interval"  rule:"min=1,max=300"`
	BufferSize    int `mapstructure:"buffer_size"    rule:"min=1024,max=1048576"`

	// JetStream 配置.
	JetStreamEnabled       bool   `mapstructure:"jetstream_enabled"`
	JetStreamAutoProvision bool   `mapstructure:"jetstream_auto_provision"`
	JetStreamTrackMsgID    bool   `mapstructure:"jetstream_track_msg_id"`
	JetStreamAckAsync      bool   `mapstructure:"jetstream_ack_async"`
	JetStreamDurablePrefix string `mapstructure:"jetstream_durable_prefix"`
	SubjectPrefix          string `mapstructure:"subject_prefix"`
}

// GetMQType 返回消息队列类型.
func (c *MQConfig) GetMQType() MQType {
	return c.Type
}

// setDefaults 设置 MQ 配置的默认值.
func (c *MQConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("mq.enabled", false)
	v.SetDefault("mq.type", MQTypeNATS)
	v.SetDefault("mq.url", DefaultMQURL)
	v.SetDefault("mq.cluster_urls", []string{})
	v.SetDefault("mq.client_id", DefaultMQClientID)
	v.SetDefault("mq.max_reconnects", DefaultMaxReconnects)
	v.SetDefault("mq.reconnect_wait", DefaultReconnectWait)
	v.SetDefault("mq.ping_interval", DefaultPingInterval)
	v.SetDefault("mq.buffer_size", DefaultBufferSize)
	v.SetDefault("mq.jetstream_enabled", false)
	v.SetDefault("mq.jetstream_auto_provision", true)
	v.SetDefault("mq.jetstream_track_msg_id", false)
	v.SetDefault("mq.jetstream_ack_async", false)
	v.SetDefault("mq.jetstream_durable_prefix", "destvault")
	v.SetDefault("mq.subject_prefix", "dv")
}
