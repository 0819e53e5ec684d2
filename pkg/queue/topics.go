// Package queue 定义消息主题常量与分组，供发布/订阅使用.
package queue

// 主题命名规范：dv.<域>.<动作>，尽量稳定且向后兼容.
// 域：drive(驱动器)、destination(目标目录)、usage(使用记录)
// 动作：registered/availability/captured/removed/recorded 等

const (
	// 驱动器领域.
	TopicDriveRegistered   = "dv.drive.registered"   // 驱动器完成注册（含挂载点信息）
	TopicDriveAvailability = "dv.drive.availability" // 驱动器可用状态变化（插拔、网络波动）

	// 目标目录领域.
	TopicDestinationCaptured = "dv.destination.captured" // 新目标目录被记住（手动或自动捕获）
	TopicDestinationRemoved  = "dv.destination.removed"  // 目标目录被移除（含级联移除的后代数量）

	// 使用记录领域.
	TopicUsageRecorded = "dv.usage.recorded" // 目标目录产生一次新的使用
)

// 主题分组，用于批量订阅.
var (
	// 驱动器相关主题集合.
	DriveTopics = []string{
		TopicDriveRegistered, TopicDriveAvailability,
	}

	// 目标目录相关主题集合.
	DestinationTopics = []string{
		TopicDestinationCaptured, TopicDestinationRemoved,
		TopicUsageRecorded,
	}
)
