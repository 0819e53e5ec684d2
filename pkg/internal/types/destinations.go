package types

// AddDestinationRequest 手动添加目标目录请求.
type AddDestinationRequest struct {
	Path     string `binding:"required" json:"path"`
	Category string `json:"category,omitempty"` // 缺省时从路径最后一段推导
	DriveID  string `json:"drive_id,omitempty"` // 指定所属驱动器，缺省时按挂载点解析
}

// DestinationInfo 目标目录及其统计信息.
type DestinationInfo struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	Category   string `json:"category"`
	DriveID    string `json:"drive_id,omitempty"`
	UsageCount int64  `json:"usage_count"`
	LastUsedAt string `json:"last_used_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// ListDestinationsResponse 目标目录列表响应.
type ListDestinationsResponse struct {
	Total        int               `json:"total"`
	Destinations []DestinationInfo `json:"destinations"`
}

// RemoveDestinationResponse 删除响应；Removed 包含目标自身与被级联停用的后代数.
type RemoveDestinationResponse struct {
	ID      string `json:"id"`
	Removed int    `json:"removed"`
	Cascade bool   `json:"cascade"`
}

// RecordUsageRequest 记录一次使用.
type RecordUsageRequest struct {
	FileCount     int    `json:"file_count,omitempty"`     // 缺省 1
	OperationType string `json:"operation_type,omitempty"` // 缺省 "move"
}

// RecordUsageResponse 记录使用响应；目标不存在时 Recorded 为 false，不报错.
type RecordUsageResponse struct {
	DestinationID string `json:"destination_id"`
	Recorded      bool   `json:"recorded"`
}
