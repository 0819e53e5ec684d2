package types

// RegisterDriveRequest 注册/更新单个驱动器请求.
type RegisterDriveRequest struct {
	MountPoint string `binding:"required" json:"mount_point"` // 该客户端看到的挂载点
	DriveType  string `binding:"required" json:"drive_type"`  // internal/usb/fixed/cloud 或调用方自定义
	// 硬件序列号或云账号键；缺省时由挂载点合成 "mount:<path>"
	UniqueIdentifier string `json:"unique_identifier,omitempty"`
	Label            string `json:"label,omitempty"`          // 卷标，缺省取挂载点
	CloudProvider    string `json:"cloud_provider,omitempty"` // 仅 cloud 类型有意义
}

// RegisterDrivesBatchRequest 批量注册请求，整体在一个事务内生效.
type RegisterDrivesBatchRequest struct {
	Drives []RegisterDriveRequest `binding:"required" json:"drives"`
}

// SetAvailabilityRequest 更新某客户端视角下驱动器的可用性.
type SetAvailabilityRequest struct {
	UniqueIdentifier string `binding:"required" json:"unique_identifier"`
	Available        *bool  `binding:"required" json:"available"` // 指针以区分未设置和false
}

// MountInfo 某客户端的挂载记录.
type MountInfo struct {
	ID          string `json:"id"`
	ClientID    string `json:"client_id"`
	MountPoint  string `json:"mount_point"`
	IsAvailable bool   `json:"is_available"`
	LastSeenAt  string `json:"last_seen_at"`
}

// DriveInfo 驱动器及其嵌套挂载记录.
type DriveInfo struct {
	ID               string      `json:"id"`
	UniqueIdentifier string      `json:"unique_identifier"`
	Label            string      `json:"label"`
	DriveType        string      `json:"drive_type"`
	CloudProvider    string      `json:"cloud_provider,omitempty"`
	IsAvailable      bool        `json:"is_available"`
	LastSeenAt       string      `json:"last_seen_at"`
	CreatedAt        string      `json:"created_at"`
	Mounts           []MountInfo `json:"mounts,omitempty"`
}

// ListDrivesResponse 驱动器列表响应.
type ListDrivesResponse struct {
	Total  int         `json:"total"`
	Drives []DriveInfo `json:"drives"`
}

// ResolveDriveResponse 路径归属解析响应；未命中任何挂载时 Drive 为空.
type ResolveDriveResponse struct {
	Path  string     `json:"path"`
	Drive *DriveInfo `json:"drive,omitempty"`
}
