package models

// SegmentFilter represents filter parameters for querying segments.
// It mirrors the dashboard sidebar controls: cluster multi-select, category
// multi-select, substring search and traffic range.
type SegmentFilter struct {
	Clusters   []int    `form:"cluster"`
	Categories []string `form:"category"`
	Search     string   `form:"search"`
	MinTraffic float64  `form:"minTraffic"`
	MaxTraffic float64  `form:"maxTraffic"`
	Page       int      `form:"page"`
	PageSize   int      `form:"pageSize"`
}

// HistoryFilter represents filter parameters for the chat history endpoint.
type HistoryFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}
