package service_test

import (
	"testing"

	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/types"
)

// TestOrganizerScenario 模拟整理器客户端的完整生命周期：
// 注册驱动器 → 批量捕获 → 记录使用 → 查询统计 → 拔盘 → 级联删除.
func TestOrganizerScenario(t *testing.T) {
	ctx := newTestContext(t)
	drives := service.NewDriveService(ctx)
	dests := service.NewDestinationService(ctx)
	capture := service.NewCaptureService(ctx)
	usage := service.NewUsageService(ctx)
	analytics := service.NewAnalyticsService(ctx)

	// 客户端上线，批量上报两块盘
	batch, err := drives.RegisterBatch(ctx, "alice", "laptop", &types.RegisterDrivesBatchRequest{
		Drives: []types.RegisterDriveRequest{
			{MountPoint: "/mnt/media", DriveType: "usb", UniqueIdentifier: "serial-media"},
			{MountPoint: "/cloud/sync", DriveType: "cloud", CloudProvider: "dropbox", UniqueIdentifier: "cloud-1"},
		},
	})
	if err != nil {
		t.Fatalf("RegisterBatch 失败: %v", err)
	}

	if batch.Total != 2 {
		t.Fatalf("应注册 2 块盘, got %d", batch.Total)
	}

	// 整理器完成一批移动操作后上报
	cap1, err := capture.Capture(ctx, "alice", "laptop", &types.CaptureRequest{
		Operations: []types.FileOperation{
			{DestinationPath: "/mnt/media/Videos/movie.mkv", OperationType: "move"},
			{DestinationPath: "/mnt/media/Videos/show.mkv", OperationType: "move"},
			{DestinationPath: "/cloud/sync/docs/report.pdf", OperationType: "move"},
		},
	})
	if err != nil {
		t.Fatalf("Capture 失败: %v", err)
	}

	if cap1.Created != 2 {
		t.Fatalf("应学到 2 个目录, got %d", cap1.Created)
	}

	// 学到的目录带驱动器归属
	for _, d := range cap1.Captured {
		if d.DriveID == "" {
			t.Errorf("目录 %q 应归属到驱动器", d.Path)
		}

		// 对每个目录记一次使用
		if _, err := usage.Record(ctx, "alice", d.ID, &types.RecordUsageRequest{FileCount: 1}); err != nil {
			t.Fatalf("Record 失败: %v", err)
		}
	}

	// 统计反映两个活跃目录
	stats, err := analytics.UsageAnalytics(ctx, "alice")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if stats.Overall.TotalDestinations != 2 || stats.Overall.TotalUses != 2 {
		t.Errorf("统计错误: %+v", stats.Overall)
	}

	// USB 盘被拔出：其上的目录从列表里消失，云目录保留
	off := false
	if _, err := drives.SetAvailability(ctx, "alice", "laptop", &types.SetAvailabilityRequest{
		UniqueIdentifier: "serial-media",
		Available:        &off,
	}); err != nil {
		t.Fatalf("SetAvailability 失败: %v", err)
	}

	list, err := dests.List(ctx, "alice", "laptop", "")
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}

	if list.Total != 1 || list.Destinations[0].Path != "/cloud/sync/docs" {
		t.Errorf("拔盘后应只剩云目录: %+v", list.Destinations)
	}

	// 用户清理云目录树
	if _, _, err := dests.Add(ctx, "alice", "laptop", &types.AddDestinationRequest{Path: "/cloud/sync/docs/archive"}, false); err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	removed, err := dests.Remove(ctx, "alice", "/cloud/sync/docs", true)
	if err != nil {
		t.Fatalf("Remove 失败: %v", err)
	}

	if removed.Removed != 2 {
		t.Errorf("级联应删除 2 条, got %d", removed.Removed)
	}

	// USB 盘虽不可见但仍被记住，统计只剩它一条
	final, err := analytics.UsageAnalytics(ctx, "alice")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if final.Overall.TotalDestinations != 1 {
		t.Errorf("清理后应只剩离线盘上的目录: %+v", final.Overall)
	}
}
