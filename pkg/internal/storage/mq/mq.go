// Package mq 提供基于 Watermill 库的统一消息队列操作接口。
// 支持发布/订阅模式，并通过工厂模式抽象不同的 MQ 实现。
//
// MQ 是可选组件：未启用时 storage.Manager 的 MQ 客户端为 nil，
// 业务侧的事件发布是尽力而为的，不会阻塞主流程。
//
// 使用示例：
//
//	ctx := context.Background()
//	client, err := mq.New(ctx, &cfg.MQ)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	// 发布消息
//	msg := message.NewMessage(watermill.NewUUID(), []byte("hello world"))
//	err = client.Publish(ctx, "topic", msg)
package mq

import (
	"context"
	"fmt"

	watermill "github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/yeisme/destvault/pkg/configs"
	nlog "github.com/yeisme/destvault/pkg/log"
)

// Factory 定义创建 Publisher + Subscriber 的工厂函数.
type Factory func(ctx context.Context, cfg *configs.MQConfig, logger watermill.LoggerAdapter) (message.Publisher, message.Subscriber, error)

var (
	factories = map[configs.MQType]Factory{}
)

// RegisterFactory 注册指定 MQType 的工厂.
func RegisterFactory(t configs.MQType, f Factory) {
	factories[t] = f
}

// GetRegisteredMQTypes 返回已注册的 MQ 类型列表.
func GetRegisteredMQTypes() []configs.MQType {
	types := make([]configs.MQType, 0, len(factories))
	for t := range factories {
		types = append(types, t)
	}

	return types
}

// Client 封装 watermill Publisher 与 Subscriber.
type Client struct {
	publisher  message.Publisher
	subscriber message.Subscriber
}

// Publish 便捷发布.
func (c *Client) Publish(_ context.Context, topic string, msgs ...*message.Message) error {
	if c == nil || c.publisher == nil {
		return fmt.Errorf("mq publisher not initialized")
	}

	for _, m := range msgs {
		if err := c.publisher.Publish(topic, m); err != nil {
			return err
		}
	}

	return nil
}

// Subscribe 便捷订阅.
func (c *Client) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	if c == nil || c.subscriber == nil {
		return nil, fmt.Errorf("mq subscriber not initialized")
	}

	return c.subscriber.Subscribe(ctx, topic)
}

// Close 关闭资源.
func (c *Client) Close() error {
	var err error

	if c.publisher != nil {
		if e := c.publisher.Close(); e != nil {
			err = e
		}
	}

	if c.subscriber != nil {
		if e := c.subscriber.Close(); e != nil {
			err = e
		}
	}

	return err
}

// New 按配置初始化消息队列客户端.
func New(ctx context.Context, cfg *configs.MQConfig) (*Client, error) {
	factory, ok := factories[cfg.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported mq type: %s", cfg.Type)
	}

	logger := &zerologAdapter{l: nlog.Logger()}

	pub, sub, err := factory(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init mq (%s): %w", cfg.Type, err)
	}

	nlog.Logger().Info().Str("type", string(cfg.Type)).Msg("mq client initialized")

	return &Client{publisher: pub, subscriber: sub}, nil
}
