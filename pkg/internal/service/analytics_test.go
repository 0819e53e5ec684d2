package service_test

import (
	"errors"
	"testing"

	"github.com/yeisme/destvault/pkg/internal/service"
	"github.com/yeisme/destvault/pkg/internal/types"
)

// TestUsageAnalytics 测试总量、分类聚合与最常用排序.
func TestUsageAnalytics(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	usage := service.NewUsageService(ctx)
	svc := service.NewAnalyticsService(ctx)

	seeds := []struct {
		path, category string
		uses           int
	}{
		{"/srv/dv/docs", "Documents", 5},
		{"/srv/dv/reports", "Documents", 2},
		{"/srv/dv/music", "Music", 1},
		{"/srv/dv/scratch", "Scratch", 0},
	}

	for _, s := range seeds {
		info, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: s.path, Category: s.category}, false)
		if err != nil {
			t.Fatalf("Add(%q) 失败: %v", s.path, err)
		}

		if s.uses > 0 {
			if _, err := usage.Record(ctx, "alice", info.ID, &types.RecordUsageRequest{FileCount: s.uses}); err != nil {
				t.Fatalf("Record 失败: %v", err)
			}
		}
	}

	resp, err := svc.UsageAnalytics(ctx, "alice")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if resp.Overall.TotalDestinations != 4 {
		t.Errorf("TotalDestinations = %d, 期望 4", resp.Overall.TotalDestinations)
	}

	if resp.Overall.TotalUses != 8 {
		t.Errorf("TotalUses = %d, 期望 8", resp.Overall.TotalUses)
	}

	// 分类按使用次数降序
	if len(resp.ByCategory) != 3 {
		t.Fatalf("分类数 = %d, 期望 3", len(resp.ByCategory))
	}

	if resp.ByCategory[0].Category != "Documents" || resp.ByCategory[0].Count != 2 || resp.ByCategory[0].Uses != 7 {
		t.Errorf("Documents 聚合错误: %+v", resp.ByCategory[0])
	}

	// 最常用只含有使用记录的目录，按次数降序
	if len(resp.MostUsed) != 3 {
		t.Fatalf("MostUsed 数 = %d, 期望 3", len(resp.MostUsed))
	}

	if resp.MostUsed[0].Path != "/srv/dv/docs" || resp.MostUsed[0].UsageCount != 5 {
		t.Errorf("MostUsed 排序错误: %+v", resp.MostUsed[0])
	}
}

// TestUsageAnalyticsCacheInvalidation 测试写路径让统计缓存失效.
func TestUsageAnalyticsCacheInvalidation(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	usage := service.NewUsageService(ctx)
	svc := service.NewAnalyticsService(ctx)

	info, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: "/srv/dv/docs"}, false)
	if err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	// 第一次查询填充缓存
	first, err := svc.UsageAnalytics(ctx, "alice")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if first.Overall.TotalUses != 0 {
		t.Fatalf("初始 TotalUses = %d, 期望 0", first.Overall.TotalUses)
	}

	// 写路径应当踢掉缓存，下次查询看到新数据
	if _, err := usage.Record(ctx, "alice", info.ID, &types.RecordUsageRequest{FileCount: 2}); err != nil {
		t.Fatalf("Record 失败: %v", err)
	}

	second, err := svc.UsageAnalytics(ctx, "alice")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if second.Overall.TotalUses != 2 {
		t.Errorf("记录使用后 TotalUses = %d, 期望 2", second.Overall.TotalUses)
	}

	// 删除目录同样使缓存失效
	if _, err := dests.Remove(ctx, "alice", "/srv/dv/docs", false); err != nil {
		t.Fatalf("Remove 失败: %v", err)
	}

	third, err := svc.UsageAnalytics(ctx, "alice")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if third.Overall.TotalDestinations != 0 {
		t.Errorf("删除后 TotalDestinations = %d, 期望 0", third.Overall.TotalDestinations)
	}
}

// TestUsageAnalyticsUserIsolation 测试统计只覆盖当前用户.
func TestUsageAnalyticsUserIsolation(t *testing.T) {
	ctx := newTestContext(t)
	dests := service.NewDestinationService(ctx)
	svc := service.NewAnalyticsService(ctx)

	if _, _, err := dests.Add(ctx, "alice", "c1", &types.AddDestinationRequest{Path: "/srv/dv/docs"}, false); err != nil {
		t.Fatalf("Add 失败: %v", err)
	}

	resp, err := svc.UsageAnalytics(ctx, "bob")
	if err != nil {
		t.Fatalf("UsageAnalytics 失败: %v", err)
	}

	if resp.Overall.TotalDestinations != 0 {
		t.Errorf("bob 不应看到 alice 的目录, got %d", resp.Overall.TotalDestinations)
	}
}

// TestUsageAnalyticsValidation 测试缺少用户返回 ErrValidation.
func TestUsageAnalyticsValidation(t *testing.T) {
	ctx := newTestContext(t)
	svc := service.NewAnalyticsService(ctx)

	if _, err := svc.UsageAnalytics(ctx, ""); !errors.Is(err, service.ErrValidation) {
		t.Errorf("期望 ErrValidation, got %v", err)
	}
}
