// Package intent classifies free-text questions about the traffic dataset
// into a closed set of query intents.
package intent

// Kind enumerates the query intents the router can answer locally. Unknown
// questions are delegated to the generative fallback.
type Kind string

const (
	KindGreeting          Kind = "greeting"
	KindSegmentLookup     Kind = "segment_lookup"
	KindHighestTraffic    Kind = "highest_traffic"
	KindLowestTraffic     Kind = "lowest_traffic"
	KindClusterSummary    Kind = "cluster_summary"
	KindClusterOverview   Kind = "cluster_overview"
	KindCategoryFilter    Kind = "category_filter"
	KindCompare           Kind = "compare"
	KindAverageByCategory Kind = "average_by_category"
	KindDatasetSummary    Kind = "dataset_summary"
	KindUnknown           Kind = "unknown"
)

// Intent is the classified purpose of one question. Cluster is set for
// KindClusterSummary, Category for KindCategoryFilter and Segments for
// KindSegmentLookup.
type Intent struct {
	Kind     Kind
	Cluster  int
	Category string
	Segments []string
}

// Local reports whether the intent can be answered from the in-memory table
// without the generative fallback.
func (i Intent) Local() bool {
	return i.Kind != KindUnknown
}
