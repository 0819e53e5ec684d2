package types

// UsageOverall 当前用户活跃目标目录总量与累计使用次数.
type UsageOverall struct {
	TotalDestinations int   `json:"total_destinations"`
	TotalUses         int64 `json:"total_uses"`
}

// CategoryUsage 按分类聚合.
type CategoryUsage struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Uses     int64  `json:"uses"`
}

// UsageAnalyticsResponse 使用统计汇总，纯读取无副作用.
type UsageAnalyticsResponse struct {
	Overall    UsageOverall      `json:"overall"`
	ByCategory []CategoryUsage   `json:"by_category"`
	MostUsed   []DestinationInfo `json:"most_used"`
}
