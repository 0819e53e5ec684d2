package queue

import "github.com/ThreeDotsLabs/watermill/message"

// -------------------------- 基于业务封装 events --------------------------

// PublishDestinationCaptured 发布 dv.destination.captured 事件。
// 在手动添加或自动捕获一个新目标目录后通知下游（如索引、提示系统）。
// 可通过可选项 opts 注入 TraceID、Producer 等头部信息。
func PublishDestinationCaptured(pub message.Publisher, payload DestinationCapturedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicDestinationCaptured, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicDestinationCaptured, msg)
}

// ParseDestinationCaptured 将 Watermill 消息解析为强类型 Envelope（DestinationCapturedPayload）。
func ParseDestinationCaptured(msg *message.Message) (Message[DestinationCapturedPayload], error) {
	return ParseWatermillMessage[DestinationCapturedPayload](msg)
}

// PublishUsageRecorded 发布 dv.usage.recorded 事件。
func PublishUsageRecorded(pub message.Publisher, payload UsageRecordedPayload, opts ...func(*EventHeader)) error {
	msg, err := NewWatermillMessage(TopicUsageRecorded, payload, opts...)
	if err != nil {
		return err
	}

	return pub.Publish(TopicUsageRecorded, msg)
}

// ParseUsageRecorded 将 Watermill 消息解析为强类型 Envelope（UsageRecordedPayload）。
func ParseUsageRecorded(msg *message.Message) (Message[UsageRecordedPayload], error) {
	return ParseWatermillMessage[UsageRecordedPayload](msg)
}
