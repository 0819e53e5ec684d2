// Package mq 提供 NATS 消息队列操作实现。
// 此文件包含 NATS 特定的工厂函数，用于创建配置了可选 JetStream 支持的 Publisher 和 Subscriber 实例。
//
// 配置从 configs.MQConfig 读取，支持集群 URL 以实现高可用性。
package mq

import (
	"context"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	nc "github.com/nats-io/nats.go"

	"github.com/yeisme/destvault/pkg/configs"
)

const (
	DefaultDrainTimeout   = 30 * time.Second
	DefaultFlusherTimeout = 10 * time.Second
)

// init 注册 NATS 工厂.
func init() {
	RegisterFactory(configs.MQTypeNATS, natsFactory)
}

// buildNatsOptions 构建 NATS 连接选项.
func buildNatsOptions(cfg *configs.MQConfig) []nc.Option {
	opts := []nc.Option{
		nc.Name(cfg.ClientID),
		nc.MaxReconnects(cfg.MaxReconnects),
		nc.ReconnectWait(time.Duration(cfg.ReconnectWait) * time.Second),
		nc.PingInterval(time.Duration(cfg.PingInterval) * time.Second),
		nc.ReconnectBufSize(cfg.BufferSize),
		nc.DrainTimeout(DefaultDrainTimeout),
		nc.FlusherTimeout(DefaultFlusherTimeout),
		nc.RetryOnFailedConnect(true),
	}

	// 添加认证选项
	opts = appendAuthOptions(opts, cfg)

	return opts
}

// appendAuthOptions 添加认证选项.
func appendAuthOptions(opts []nc.Option, cfg *configs.MQConfig) []nc.Option {
	if cfg.JWT != "" {
		opts = append(opts, nc.UserJWTAndSeed(cfg.JWT, cfg.NKey))
	} else if cfg.NKey != "" {
		opts = append(opts, nc.Nkey(cfg.NKey, nil))
	} else if cfg.User != "" {
		opts = append(opts, nc.UserInfo(cfg.User, cfg.Password))
	}

	return opts
}

// buildJetStreamConfig 构建 JetStream 配置.
func buildJetStreamConfig(cfg *configs.MQConfig, logger watermill.LoggerAdapter) nats.JetStreamConfig {
	jsCfg := nats.JetStreamConfig{
		Disabled: !cfg.JetStreamEnabled,
	}

	if cfg.JetStreamEnabled {
		jsCfg.AutoProvision = cfg.JetStreamAutoProvision
		jsCfg.TrackMsgId = cfg.JetStreamTrackMsgID
		jsCfg.AckAsync = cfg.JetStreamAckAsync
		jsCfg.DurablePrefix = cfg.JetStreamDurablePrefix

		logger.Info("JetStream enabled", watermill.LogFields{
			"auto_provision": cfg.JetStreamAutoProvision,
			"track_msg_id":   cfg.JetStreamTrackMsgID,
			"ack_async":      cfg.JetStreamAckAsync,
			"durable_prefix": cfg.JetStreamDurablePrefix,
			"subject_prefix": cfg.SubjectPrefix,
		})
	}

	return jsCfg
}

// buildURL 构建连接 URL.
func buildURL(cfg *configs.MQConfig) string {
	if len(cfg.ClusterURLs) > 0 {
		return strings.Join(cfg.ClusterURLs, ",")
	}

	return cfg.URL
}

// natsFactory 创建 NATS Publisher & Subscriber.
func natsFactory(
	_ context.Context,
	cfg *configs.MQConfig,
	logger watermill.LoggerAdapter) (
	message.Publisher, message.Subscriber, error) {
	opts := buildNatsOptions(cfg)
	jsCfg := buildJetStreamConfig(cfg, logger)
	marshaler := &nats.JSONMarshaler{}

	pub, err := nats.NewPublisher(nats.PublisherConfig{
		NatsOptions: opts,
		JetStream:   jsCfg,
		Marshaler:   marshaler,
		URL:         buildURL(cfg),
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	sub, err := nats.NewSubscriber(nats.SubscriberConfig{
		NatsOptions: opts,
		JetStream:   jsCfg,
		Unmarshaler: marshaler,
		URL:         buildURL(cfg),
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return pub, sub, nil
}
