package models

// Category constants for traffic levels. The clustering pipeline assigns
// exactly one of these to every cluster.
const (
	CategoryLow    = "Low Traffic"
	CategoryMedium = "Medium Traffic"
	CategoryHigh   = "High Traffic"
)

// Categories lists all traffic categories in reporting order.
var Categories = []string{CategoryLow, CategoryMedium, CategoryHigh}

// ClusterIDs lists the valid cluster labels produced by the offline pipeline.
var ClusterIDs = []int{0, 1, 2}

// clusterCategories is the fixed cluster -> traffic level mapping.
var clusterCategories = map[int]string{
	0: CategoryLow,
	1: CategoryMedium,
	2: CategoryHigh,
}

// SegmentRecord represents one road segment with its clustering result.
// Records are loaded once from the cluster CSV and are immutable afterwards.
type SegmentRecord struct {
	Segment    string  `json:"segment"`
	ClusterID  int     `json:"cluster_id"`
	Category   string  `json:"category"`
	AvgTraffic float64 `json:"avg_raw_traffic"`
}

// CategoryForCluster returns the traffic level for a cluster ID, or "Unknown"
// for IDs outside the trained label set.
func CategoryForCluster(clusterID int) string {
	if cat, ok := clusterCategories[clusterID]; ok {
		return cat
	}
	return "Unknown"
}

// ValidClusterID reports whether the given ID is one of the trained clusters.
func ValidClusterID(clusterID int) bool {
	_, ok := clusterCategories[clusterID]
	return ok
}

// ClusterLevelLegend is the mapping line shown in answers and sent to the
// generative model as grounding context.
const ClusterLevelLegend = "0: Low Traffic | 1: Medium Traffic | 2: High Traffic"
