package service_test

import (
	"errors"
	"testing"

	ctxPkg "github.com/yeisme/destvault/pkg/context"
	"github.com/yeisme/destvault/pkg/internal/model"
	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/types"
)

// TestRecordUsage 测试使用计数累加与事件追加.
func TestRecordUsage(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	svc := service.NewUsageService(ctx)

	info, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: "/srv/dv/docs"}, false)
	if err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	// 显式 file_count
	resp, err := svc.Record(ctx, "alice", info.ID, &types.RecordUsageRequest{FileCount: 3, OperationType: "copy"})
	if err != nil {
		t.Fatalf("Record 失败: %v", err)
	}

	if !resp.Recorded {
		t.Error("Recorded 应为 true")
	}

	// 缺省 file_count 记 1 次
	if _, err := svc.Record(ctx, "alice", info.ID, nil); err != nil {
		t.Fatalf("Record 失败: %v", err)
	}

	rec, err := dests.Get(ctx, "alice", info.ID)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}

	if rec.UsageCount != 4 {
		t.Errorf("usage_count = %d, 期望 4", rec.UsageCount)
	}

	if rec.LastUsedAt == nil {
		t.Error("last_used_at 应被刷新")
	}

	// 每次记录都应追加一条事件
	var events int64

	dbx := ctxPkg.GetDBClient(ctx).GetDB()
	if err := dbx.Model(&model.DestinationUsage{}).
		Where("destination_id = ?", info.ID).
		Count(&events).Error; err != nil {
		t.Fatalf("统计事件失败: %v", err)
	}

	if events != 2 {
		t.Errorf("事件数 = %d, 期望 2", events)
	}
}

// TestRecordUsageUnknownDestination 测试未知目录不报错，仅 Recorded=false.
func TestRecordUsageUnknownDestination(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewUsageService(ctx)

	resp, err := svc.Record(ctx, "alice", "no-such-id", nil)
	if err != nil {
		t.Fatalf("未知目录不应报错: %v", err)
	}

	if resp.Recorded {
		t.Error("未知目录 Recorded 应为 false")
	}
}

// TestRecordUsageRemovedDestination 测试软删除后的目录同样按未知处理.
func TestRecordUsageRemovedDestination(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	svc := service.NewUsageService(ctx)

	info, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: "/srv/dv/tmp"}, false)
	if err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	if _, err := dests.Remove(ctx, "alice", "/srv/dv/tmp", false); err != nil {
		t.Fatalf("Remove 失败: %v", err)
	}

	resp, err := svc.Record(ctx, "alice", info.ID, nil)
	if err != nil {
		t.Fatalf("已删除目录不应报错: %v", err)
	}

	if resp.Recorded {
		t.Error("已删除目录 Recorded 应为 false")
	}
}

// TestRecordUsageValidation 测试参数校验.
func TestRecordUsageValidation(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewUsageService(ctx)

	if _, err := svc.Record(ctx, "", "some-id", nil); !errors.Is(err, service.ErrValidation) {
		t.Errorf("缺少用户应返回 ErrValidation, got %v", err)
	}

	if _, err := svc.Record(ctx, "alice", "", nil); !errors.Is(err, service.ErrValidation) {
		t.Errorf("缺少目录 ID 应返回 ErrValidation, got %v", err)
	}

	if _, err := svc.Record(ctx, "alice", "some-id", &types.RecordUsageRequest{FileCount: -1}); !errors.Is(err, service.ErrValidation) {
		t.Errorf("负数 file_count 应返回 ErrValidation, got %v", err)
	}
}

// TestRecordUsageCrossUser 测试跨用户记录按未知目录处理.
func TestRecordUsageCrossUser(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	svc := service.NewUsageService(ctx)

	info, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: "/srv/dv/docs"}, false)
	if err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	resp, err := svc.Record(ctx, "bob", info.ID, nil)
	if err != nil {
		t.Fatalf("跨用户不应报错: %v", err)
	}

	if resp.Recorded {
		t.Error("跨用户 Recorded 应为 false")
	}

	rec, err := dests.Get(ctx, "alice", info.ID)
	if err != nil {
		t.Fatalf("Get 失败: %v", err)
	}

	if rec.UsageCount != 0 {
		t.Errorf("跨用户不应累加计数, got %d", rec.UsageCount)
	}
}
