package queue

import "time"

// EventHeader 定义所有事件的通用头部元数据.
// 建议在发布消息时填充 TraceID、OccurredAt、Producer 等，便于追踪链路与审计.
type EventHeader struct {
	// Topic 冗余记录消息主题，便于离线处理或转储后定位来源主题.
	Topic string `json:"topic"`
	// TraceID 分布式追踪/关联 ID，可来自中间件或业务生成.
	TraceID string `json:"trace_id,omitempty"`
	// Producer 生产者服务名或节点标识.
	Producer string `json:"producer,omitempty"`
	// OccurredAt 事件发生时间（UTC，RFC3339）.
	OccurredAt time.Time `json:"occurred_at"`
	// Version 事件负载版本，便于向后兼容演进.
	Version string `json:"version,omitempty"`
}

// Message 是统一的消息封装，Header + Payload.
// T 即不同主题对应的负载结构体.
type Message[T any] struct {
	Header  EventHeader `json:"header"`
	Payload T           `json:"payload"`
}

// -------------------------- 驱动器领域 --------------------------

// DriveRef 标识一个已注册驱动器及其在某客户端上的挂载.
type DriveRef struct {
	DriveID          string `json:"drive_id"`
	UniqueIdentifier string `json:"unique_identifier"`
	Label            string `json:"label,omitempty"`
	DriveType        string `json:"drive_type"`
	CloudProvider    string `json:"cloud_provider,omitempty"`
	ClientID         string `json:"client_id,omitempty"`
	MountPoint       string `json:"mount_point,omitempty"`
}

// DriveRegisteredPayload 驱动器注册完成.
type DriveRegisteredPayload struct {
	User  string   `json:"user"`
	Drive DriveRef `json:"drive"`
	// Created 为 false 表示命中已有驱动器，仅刷新了挂载信息.
	Created bool `json:"created"`
}

// DriveAvailabilityPayload 驱动器可用状态变化.
type DriveAvailabilityPayload struct {
	User      string `json:"user"`
	DriveID   string `json:"drive_id"`
	ClientID  string `json:"client_id,omitempty"`
	Available bool   `json:"available"`
}

// -------------------------- 目标目录领域 --------------------------

// DestinationCapturedPayload 新目标目录被记住.
type DestinationCapturedPayload struct {
	User     string `json:"user"`
	Path     string `json:"path"`
	Category string `json:"category,omitempty"`
	DriveID  string `json:"drive_id,omitempty"`
	// Source 捕获来源，manual / auto.
	Source string `json:"source,omitempty"`
}

// DestinationRemovedPayload 目标目录被移除.
type DestinationRemovedPayload struct {
	User string `json:"user"`
	Path string `json:"path"`
	// CascadedCount 随之移除的后代目录数量.
	CascadedCount int64 `json:"cascaded_count,omitempty"`
}

// -------------------------- 使用记录领域 --------------------------

// UsageRecordedPayload 目标目录产生一次新的使用.
type UsageRecordedPayload struct {
	User          string    `json:"user"`
	DestinationID string    `json:"destination_id"`
	Path          string    `json:"path,omitempty"`
	FileCount     int       `json:"file_count"`
	OperationType string    `json:"operation_type,omitempty"`
	UsedAt        time.Time `json:"used_at"`
}
