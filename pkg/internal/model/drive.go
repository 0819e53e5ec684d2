package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 常见驱动器类型；drive_type 允许调用方自定义取值，这里只列出内置几种.
const (
	DriveTypeInternal = "internal"
	DriveTypeUSB      = "usb"
	DriveTypeFixed    = "fixed"
	DriveTypeCloud    = "cloud"
)

// Drive 驱动器模型：每个用户按 unique_identifier 去重，永不硬删除.
type Drive struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// 用户标识，和 unique_identifier 一起唯一
	User string `gorm:"size:255;index:idx_user_uid,unique;index" json:"user"`
	// 硬件序列号、"mount:<path>" 兜底键或云账号键
	UniqueIdentifier string `gorm:"size:1024;index:idx_user_uid,unique" json:"unique_identifier"`
	// 卷标，缺省时取挂载点
	Label     string `gorm:"size:255"       json:"label"`
	DriveType string `gorm:"size:64;index"  json:"drive_type"`
	// 云驱动器的提供商标识，仅 drive_type = cloud 时有值
	CloudProvider string `gorm:"size:128" json:"cloud_provider,omitempty"`
	// 聚合可用性：任一客户端报告挂载即为 true，单客户端可用性在 DriveMount 上
	IsAvailable bool      `gorm:"index" json:"is_available"`
	LastSeenAt  time.Time `json:"last_seen_at"`

	Mounts []DriveMount `gorm:"foreignKey:DriveID" json:"mounts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DriveMount 某客户端视角下驱动器的挂载点与可用性；(drive_id, client_id) 唯一.
type DriveMount struct {
	ID      string `gorm:"primaryKey;size:36"                          json:"id"`
	DriveID string `gorm:"size:36;index:idx_drive_client,unique;index" json:"drive_id"`
	// 上报该驱动器的客户端/设备标识
	ClientID    string    `gorm:"size:255;index:idx_drive_client,unique" json:"client_id"`
	MountPoint  string    `gorm:"size:1024"                              json:"mount_point"`
	IsAvailable bool      `gorm:"index"                                  json:"is_available"`
	LastSeenAt  time.Time `json:"last_seen_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate 生成主键.
func (d *Drive) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	return nil
}

// BeforeCreate 生成主键.
func (m *DriveMount) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}

// IsCloud 云驱动器对所有客户端可见.
func (d *Drive) IsCloud() bool {
	return d.DriveType == DriveTypeCloud
}
