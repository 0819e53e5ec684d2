package queue_test

import (
	"testing"

	"github.com/yeisme/destvault/pkg/queue"
)

// TestEncodeDecode 测试消息信封的编解码往返.
func TestEncodeDecode(t *testing.T) {
	env := queue.Message[queue.DestinationCapturedPayload]{
		Header: queue.NewEventHeader(queue.TopicDestinationCaptured,
			queue.WithProducer("destvault"),
			queue.WithTraceID("trace-1"),
		),
		Payload: queue.DestinationCapturedPayload{
			User:     "alice",
			Path:     "/mnt/media/Videos",
			Category: "Videos",
			Source:   "auto",
		},
	}

	data, err := queue.Encode(env)
	if err != nil {
		t.Fatalf("Encode 失败: %v", err)
	}

	decoded, err := queue.Decode[queue.DestinationCapturedPayload](data)
	if err != nil {
		t.Fatalf("Decode 失败: %v", err)
	}

	if decoded.Header.Topic != queue.TopicDestinationCaptured {
		t.Errorf("Topic = %q, 期望 %q", decoded.Header.Topic, queue.TopicDestinationCaptured)
	}

	if decoded.Header.Producer != "destvault" || decoded.Header.TraceID != "trace-1" {
		t.Errorf("Header 字段丢失: %+v", decoded.Header)
	}

	if decoded.Header.Version != queue.PayloadVersionV1 {
		t.Errorf("Version = %q, 期望 %q", decoded.Header.Version, queue.PayloadVersionV1)
	}

	if decoded.Payload != env.Payload {
		t.Errorf("Payload 往返不一致: %+v != %+v", decoded.Payload, env.Payload)
	}
}

// TestNewWatermillMessage 测试 watermill 消息的元数据与负载解析.
func TestNewWatermillMessage(t *testing.T) {
	payload := queue.UsageRecordedPayload{
		User:          "alice",
		DestinationID: "dest-1",
		Path:          "/mnt/media/Videos",
		FileCount:     3,
		OperationType: "move",
	}

	msg, err := queue.NewWatermillMessage(queue.TopicUsageRecorded, payload,
		queue.WithProducer("destvault"))
	if err != nil {
		t.Fatalf("NewWatermillMessage 失败: %v", err)
	}

	if msg.UUID == "" {
		t.Error("消息应当有 UUID")
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicUsageRecorded {
		t.Errorf("metadata topic = %q, 期望 %q", got, queue.TopicUsageRecorded)
	}

	if got := msg.Metadata.Get("producer"); got != "destvault" {
		t.Errorf("metadata producer = %q, 期望 destvault", got)
	}

	env, err := queue.ParseWatermillMessage[queue.UsageRecordedPayload](msg)
	if err != nil {
		t.Fatalf("ParseWatermillMessage 失败: %v", err)
	}

	if env.Payload.DestinationID != "dest-1" || env.Payload.FileCount != 3 {
		t.Errorf("负载解析错误: %+v", env.Payload)
	}
}
