package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Destination 学习到的目标目录.
// 软删除用 gorm.DeletedAt 表达 is_active：重新添加已删除路径时清空 deleted_at 复活该行，
// (user, path) 的唯一约束因此在活跃与非活跃行之间都成立.
type Destination struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// 用户标识，和规范化路径一起唯一
	User string `gorm:"size:255;index:idx_user_path,unique;index" json:"user"`
	// 规范化后的目录路径
	Path     string `gorm:"size:1024;index:idx_user_path,unique" json:"path"`
	Category string `gorm:"size:128;index"                       json:"category"`
	// 所属驱动器，可为空（视为本地路径，对所有客户端可见）
	DriveID    string     `gorm:"size:36;index" json:"drive_id,omitempty"`
	UsageCount int64      `gorm:"index"         json:"usage_count"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DestinationUsage 使用事件，追加写入，不更新不删除.
// 主键为 ULID，按时间有序便于追溯.
type DestinationUsage struct {
	ID            string    `gorm:"primaryKey;size:26" json:"id"`
	DestinationID string    `gorm:"size:36;index"      json:"destination_id"`
	UsedAt        time.Time `gorm:"index"              json:"used_at"`
	FileCount     int       `json:"file_count"`
	OperationType string    `gorm:"size:32" json:"operation_type"`
}

// BeforeCreate 生成主键.
func (d *Destination) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	return nil
}

// IsActive 活跃即未被软删除.
func (d *Destination) IsActive() bool {
	return !d.DeletedAt.Valid
}
