package models

// ClusterSummary represents aggregate statistics for one cluster.
type ClusterSummary struct {
	ClusterID   int     `json:"cluster_id"`
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	MeanTraffic float64 `json:"mean_traffic"`
	MinTraffic  float64 `json:"min_traffic"`
	MaxTraffic  float64 `json:"max_traffic"`
	StdDev      float64 `json:"std_dev"`
	Median      float64 `json:"median"`
}

// CategoryAverage represents the mean traffic for one category.
// HasData is false when no segment carries the category; the mean is then
// reported as "no data" instead of a misleading zero.
type CategoryAverage struct {
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	MeanTraffic float64 `json:"mean_traffic"`
	HasData     bool    `json:"has_data"`
}

// ClusterComparison represents a side-by-side comparison of two clusters.
type ClusterComparison struct {
	ClusterA  int     `json:"cluster_a"`
	ClusterB  int     `json:"cluster_b"`
	CountA    int     `json:"count_a"`
	CountB    int     `json:"count_b"`
	MeanA     float64 `json:"mean_a"`
	MeanB     float64 `json:"mean_b"`
	MeanDelta float64 `json:"mean_delta"` // MeanA - MeanB
}

// OverviewStats represents the dashboard KPI block.
type OverviewStats struct {
	TotalSegments  int            `json:"total_segments"`
	CategoryCounts map[string]int `json:"category_counts"`
	OverallMean    float64        `json:"overall_mean"`
	MaxTraffic     float64        `json:"max_traffic"`
	MinTraffic     float64        `json:"min_traffic"`
}
