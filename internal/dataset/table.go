package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
	"github.com/sdvn-lab/traffic-backend-go/internal/stats"
)

// Table is a read-only view over the loaded segment records with lookup
// indexes by segment id, cluster and category. A Table is never mutated after
// construction, so it is safe for concurrent readers without locking.
type Table struct {
	records    []models.SegmentRecord
	bySegment  map[string]int // lower-cased segment id -> index into records
	byCluster  map[int][]int
	byCategory map[string][]int
}

// NewTable builds a table and its indexes from loaded records.
func NewTable(records []models.SegmentRecord) *Table {
	t := &Table{
		records:    records,
		bySegment:  make(map[string]int, len(records)),
		byCluster:  make(map[int][]int),
		byCategory: make(map[string][]int),
	}
	for i, rec := range records {
		t.bySegment[strings.ToLower(rec.Segment)] = i
		t.byCluster[rec.ClusterID] = append(t.byCluster[rec.ClusterID], i)
		t.byCategory[rec.Category] = append(t.byCategory[rec.Category], i)
	}
	return t
}

// Len returns the number of segment records.
func (t *Table) Len() int {
	return len(t.records)
}

// All returns a copy of every record.
func (t *Table) All() []models.SegmentRecord {
	out := make([]models.SegmentRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Lookup finds a segment by id, case-insensitively.
func (t *Table) Lookup(segment string) (models.SegmentRecord, bool) {
	i, ok := t.bySegment[strings.ToLower(segment)]
	if !ok {
		return models.SegmentRecord{}, false
	}
	return t.records[i], true
}

// SegmentIDs returns every segment id, lower-cased.
func (t *Table) SegmentIDs() []string {
	ids := make([]string, 0, len(t.bySegment))
	for id := range t.bySegment {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByCluster returns the records belonging to a cluster.
func (t *Table) ByCluster(clusterID int) []models.SegmentRecord {
	return t.collect(t.byCluster[clusterID])
}

// ByCategory returns the records carrying a category.
func (t *Table) ByCategory(category string) []models.SegmentRecord {
	return t.collect(t.byCategory[category])
}

func (t *Table) collect(indexes []int) []models.SegmentRecord {
	out := make([]models.SegmentRecord, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, t.records[i])
	}
	return out
}

// TopK returns the k records with the highest (desc) or lowest (asc) average
// traffic. Ties are broken by segment id so the order is deterministic.
func (t *Table) TopK(k int, desc bool) []models.SegmentRecord {
	out := t.All()
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgTraffic != out[j].AvgTraffic {
			if desc {
				return out[i].AvgTraffic > out[j].AvgTraffic
			}
			return out[i].AvgTraffic < out[j].AvgTraffic
		}
		return out[i].Segment < out[j].Segment
	})
	if k > 0 && k < len(out) {
		out = out[:k]
	}
	return out
}

// Filter returns the records matching every set field of the filter, plus the
// total match count before pagination.
func (t *Table) Filter(filter models.SegmentFilter) ([]models.SegmentRecord, int) {
	clusterSet := make(map[int]bool, len(filter.Clusters))
	for _, c := range filter.Clusters {
		clusterSet[c] = true
	}
	categorySet := make(map[string]bool, len(filter.Categories))
	for _, c := range filter.Categories {
		categorySet[c] = true
	}
	search := strings.ToLower(filter.Search)

	var matched []models.SegmentRecord
	for _, rec := range t.records {
		if len(clusterSet) > 0 && !clusterSet[rec.ClusterID] {
			continue
		}
		if len(categorySet) > 0 && !categorySet[rec.Category] {
			continue
		}
		if filter.MinTraffic > 0 && rec.AvgTraffic < filter.MinTraffic {
			continue
		}
		if filter.MaxTraffic > 0 && rec.AvgTraffic > filter.MaxTraffic {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(rec.Segment), search) {
			continue
		}
		matched = append(matched, rec)
	}
	total := len(matched)

	// Pagination
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 100
	}
	start := (page - 1) * pageSize
	if start >= len(matched) {
		return []models.SegmentRecord{}, total
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total
}

// ClusterTraffic returns the avg_raw_traffic values of a cluster.
func (t *Table) ClusterTraffic(clusterID int) []float64 {
	return trafficValues(t.ByCluster(clusterID))
}

// CategoryTraffic returns the avg_raw_traffic values of a category.
func (t *Table) CategoryTraffic(category string) []float64 {
	return trafficValues(t.ByCategory(category))
}

// Traffic returns every avg_raw_traffic value.
func (t *Table) Traffic() []float64 {
	return trafficValues(t.records)
}

func trafficValues(records []models.SegmentRecord) []float64 {
	values := make([]float64, 0, len(records))
	for _, rec := range records {
		values = append(values, rec.AvgTraffic)
	}
	return values
}

// Summary renders the compact dataset description used as grounding context
// for the generative fallback and as the local answer of last resort.
func (t *Table) Summary() string {
	var b strings.Builder
	b.WriteString("Dataset Summary:\n")
	fmt.Fprintf(&b, "Total segments: %d\n", t.Len())

	b.WriteString("Traffic categories: ")
	parts := make([]string, 0, len(models.Categories))
	for _, cat := range models.Categories {
		parts = append(parts, fmt.Sprintf("%s: %d", cat, len(t.byCategory[cat])))
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString("\n")

	b.WriteString("Cluster -> Traffic Level Mapping: " + models.ClusterLevelLegend + "\n")
	for _, cid := range models.ClusterIDs {
		values := t.ClusterTraffic(cid)
		fmt.Fprintf(&b, "Cluster %d (%s) -> segments: %d, avg traffic: %.2f\n",
			cid, models.CategoryForCluster(cid), len(values), stats.Mean(values))
	}

	b.WriteString("\nTop 5 highest traffic segments:\n")
	for _, rec := range t.TopK(5, true) {
		fmt.Fprintf(&b, "%s  %.2f  %s\n", rec.Segment, rec.AvgTraffic, rec.Category)
	}
	return b.String()
}
