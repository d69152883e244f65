package service

import (
	"fmt"

	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/models"
	"github.com/sdvn-lab/traffic-backend-go/internal/stats"
)

// ErrNoSuchCluster is returned for cluster IDs outside the trained label set.
var ErrNoSuchCluster = fmt.Errorf("no such cluster")

// StatsService computes aggregate statistics over the current dataset
// snapshot for the dashboard endpoints.
type StatsService struct {
	store *dataset.Store
}

// NewStatsService creates a new stats service.
func NewStatsService(store *dataset.Store) *StatsService {
	return &StatsService{store: store}
}

// Overview returns the dashboard KPI block.
func (s *StatsService) Overview() models.OverviewStats {
	return ComputeOverview(s.store.Table())
}

// ClusterSummaries returns aggregate statistics for every trained cluster.
func (s *StatsService) ClusterSummaries() []models.ClusterSummary {
	t := s.store.Table()
	out := make([]models.ClusterSummary, 0, len(models.ClusterIDs))
	for _, cid := range models.ClusterIDs {
		out = append(out, ComputeClusterSummary(t, cid))
	}
	return out
}

// ClusterSummary returns aggregate statistics for one cluster.
func (s *StatsService) ClusterSummary(clusterID int) (models.ClusterSummary, error) {
	if !models.ValidClusterID(clusterID) {
		return models.ClusterSummary{}, fmt.Errorf("%w: %d", ErrNoSuchCluster, clusterID)
	}
	return ComputeClusterSummary(s.store.Table(), clusterID), nil
}

// CategoryAverages returns the mean traffic per category, always reporting
// all three categories.
func (s *StatsService) CategoryAverages() []models.CategoryAverage {
	return ComputeCategoryAverages(s.store.Table())
}

// Compare returns the pairwise cluster comparison.
func (s *StatsService) Compare() []models.ClusterComparison {
	return ComputeComparisons(s.store.Table())
}

// ComputeOverview aggregates the KPI block from one table snapshot.
func ComputeOverview(t *dataset.Table) models.OverviewStats {
	counts := make(map[string]int, len(models.Categories))
	for _, cat := range models.Categories {
		counts[cat] = len(t.ByCategory(cat))
	}
	values := t.Traffic()
	return models.OverviewStats{
		TotalSegments:  t.Len(),
		CategoryCounts: counts,
		OverallMean:    stats.Round2(stats.Mean(values)),
		MaxTraffic:     stats.Round2(stats.Max(values)),
		MinTraffic:     stats.Round2(stats.Min(values)),
	}
}

// ComputeClusterSummary aggregates count/mean/min/max/median/stddev for one
// cluster. The caller is responsible for validating the cluster ID.
func ComputeClusterSummary(t *dataset.Table, clusterID int) models.ClusterSummary {
	values := t.ClusterTraffic(clusterID)
	return models.ClusterSummary{
		ClusterID:   clusterID,
		Category:    models.CategoryForCluster(clusterID),
		Count:       len(values),
		MeanTraffic: stats.Round2(stats.Mean(values)),
		MinTraffic:  stats.Round2(stats.Min(values)),
		MaxTraffic:  stats.Round2(stats.Max(values)),
		StdDev:      stats.Round2(stats.StdDev(values)),
		Median:      stats.Round2(stats.Median(values)),
	}
}

// ComputeCategoryAverages reports the mean per category. Empty categories are
// kept in the result with HasData=false so the caller can print "no data"
// instead of dividing by zero.
func ComputeCategoryAverages(t *dataset.Table) []models.CategoryAverage {
	out := make([]models.CategoryAverage, 0, len(models.Categories))
	for _, cat := range models.Categories {
		values := t.CategoryTraffic(cat)
		avg := models.CategoryAverage{
			Category: cat,
			Count:    len(values),
			HasData:  len(values) > 0,
		}
		if avg.HasData {
			avg.MeanTraffic = stats.Round2(stats.Mean(values))
		}
		out = append(out, avg)
	}
	return out
}

// ComputeComparisons builds the side-by-side mean/count for every cluster
// pair, in ascending (a, b) order.
func ComputeComparisons(t *dataset.Table) []models.ClusterComparison {
	var out []models.ClusterComparison
	for i := 0; i < len(models.ClusterIDs); i++ {
		for j := i + 1; j < len(models.ClusterIDs); j++ {
			a, b := models.ClusterIDs[i], models.ClusterIDs[j]
			va, vb := t.ClusterTraffic(a), t.ClusterTraffic(b)
			meanA, meanB := stats.Round2(stats.Mean(va)), stats.Round2(stats.Mean(vb))
			out = append(out, models.ClusterComparison{
				ClusterA:  a,
				ClusterB:  b,
				CountA:    len(va),
				CountB:    len(vb),
				MeanA:     meanA,
				MeanB:     meanB,
				MeanDelta: stats.Round2(meanA - meanB),
			})
		}
	}
	return out
}
