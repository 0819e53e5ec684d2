package service

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/yeisme/destvault/pkg/configs"
	"github.com/yeisme/destvault/pkg/internal/model"
	"github.com/yeisme/destvault/pkg/internal/types"
	nlog "github.com/yeisme/destvault/pkg/log"
)

// AnalyticsService 提供使用统计（基于 destinations 表的聚合），纯读取无副作用.
type AnalyticsService struct{ *DestinationService }

func NewAnalyticsService(c context.Context) *AnalyticsService {
	return &AnalyticsService{NewDestinationService(c)}
}

// UsageAnalytics 汇总当前用户的使用统计：总量、按分类聚合、最常用目录。
// 结果在 KV 里短暂缓存，任何写入路径都会使缓存失效。
func (a *AnalyticsService) UsageAnalytics(ctx context.Context, user string) (*types.UsageAnalyticsResponse, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: user is required", ErrValidation)
	}

	cacheKey := analyticsCacheKey(user)

	if a.kvClient != nil {
		if b, err := a.kvClient.Get(ctx, cacheKey); err == nil && len(b) > 0 {
			var cached types.UsageAnalyticsResponse
			if err := sonic.Unmarshal(b, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var (
		overall    types.UsageOverall
		byCategory []types.CategoryUsage
		mostUsed   []types.DestinationInfo
	)

	// 三路聚合相互独立，并发执行
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		overall, err = a.queryOverall(gctx, user)

		return err
	})

	g.Go(func() error {
		var err error
		byCategory, err = a.queryByCategory(gctx, user)

		return err
	})

	g.Go(func() error {
		var err error
		mostUsed, err = a.queryMostUsed(gctx, user)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &types.UsageAnalyticsResponse{
		Overall:    overall,
		ByCategory: byCategory,
		MostUsed:   mostUsed,
	}

	if a.kvClient != nil {
		if b, err := sonic.Marshal(resp); err == nil {
			ttl := configs.GetConfig().Organizer.AnalyticsCacheTTL
			if err := a.kvClient.Set(ctx, cacheKey, b, ttl); err != nil {
				nlog.Logger().Debug().Err(err).Msg("cache analytics failed")
			}
		}
	}

	return resp, nil
}

// queryOverall 活跃目录总量与累计使用次数.
func (a *AnalyticsService) queryOverall(ctx context.Context, user string) (types.UsageOverall, error) {
	dbx := a.dbClient.GetDB().WithContext(ctx)

	var agg struct {
		Cnt int64 `gorm:"column:cnt"`
		Sum int64 `gorm:"column:sum"`
	}

	if err := dbx.Model(&model.Destination{}).
		Select("COUNT(*) as cnt, COALESCE(SUM(usage_count),0) as sum").
		Where("user = ?", user).
		Scan(&agg).Error; err != nil {
		return types.UsageOverall{}, err
	}

	return types.UsageOverall{TotalDestinations: int(agg.Cnt), TotalUses: agg.Sum}, nil
}

// queryByCategory 按分类聚合，空分类归入 unknown.
func (a *AnalyticsService) queryByCategory(ctx context.Context, user string) ([]types.CategoryUsage, error) {
	dbx := a.dbClient.GetDB().WithContext(ctx)

	rows := []struct {
		K   string
		Cnt int64
		Sum int64
	}{}

	if err := dbx.Model(&model.Destination{}).
		Select("COALESCE(NULLIF(category,''),'unknown') as k, COUNT(*) as cnt, COALESCE(SUM(usage_count),0) as sum").
		Where("user = ?", user).
		Group("k").
		Order("sum DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.CategoryUsage, 0, len(rows))
	for _, r := range rows {
		out = append(out, types.CategoryUsage{Category: r.K, Count: int(r.Cnt), Uses: r.Sum})
	}

	return out, nil
}

// queryMostUsed 最常用目录 Top N.
func (a *AnalyticsService) queryMostUsed(ctx context.Context, user string) ([]types.DestinationInfo, error) {
	dbx := a.dbClient.GetDB().WithContext(ctx)
	limit := configs.GetConfig().Organizer.MostUsedLimit

	var rows []model.Destination
	if err := dbx.Where("user = ? AND usage_count > 0", user).
		Order("usage_count DESC, last_used_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]types.DestinationInfo, 0, len(rows))
	for i := range rows {
		out = append(out, toDestinationInfo(&rows[i]))
	}

	return out, nil
}

// invalidateAnalyticsCache 写路径调用，删除该用户的统计缓存.
func (s *DestinationService) invalidateAnalyticsCache(ctx context.Context, user string) {
	if s.kvClient == nil {
		return
	}

	if err := s.kvClient.Delete(ctx, analyticsCacheKey(user)); err != nil {
		nlog.Logger().Debug().Err(err).Str("user", user).Msg("invalidate analytics cache failed")
	}
}

// analyticsCacheKey 以 xxhash 压缩用户标识，避免超长 key.
func analyticsCacheKey(user string) string {
	return fmt.Sprintf("dv:stats:%016x", xxhash.Sum64String(user))
}
