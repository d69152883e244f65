package service

import (
	"errors"
	"testing"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

func TestStatsServiceOverview(t *testing.T) {
	s := NewStatsService(testStore())

	overview := s.Overview()
	if overview.TotalSegments != 5 {
		t.Errorf("total = %d", overview.TotalSegments)
	}
	if overview.CategoryCounts[models.CategoryHigh] != 2 {
		t.Errorf("high count = %d", overview.CategoryCounts[models.CategoryHigh])
	}
	// (15.4+1.2+7.8+12.1+0.4)/5 = 7.38
	if overview.OverallMean != 7.38 {
		t.Errorf("overall mean = %v, want 7.38", overview.OverallMean)
	}
}

func TestStatsServiceClusterSummaries(t *testing.T) {
	s := NewStatsService(testStore())

	summaries := s.ClusterSummaries()
	if len(summaries) != 3 {
		t.Fatalf("got %d summaries, want one per trained cluster", len(summaries))
	}
	for i, summary := range summaries {
		if summary.ClusterID != i {
			t.Errorf("summary %d has cluster id %d", i, summary.ClusterID)
		}
	}
}

func TestStatsServiceInvalidCluster(t *testing.T) {
	s := NewStatsService(testStore())
	if _, err := s.ClusterSummary(5); !errors.Is(err, ErrNoSuchCluster) {
		t.Errorf("got %v, want ErrNoSuchCluster", err)
	}
	if _, err := s.ClusterSummary(-1); !errors.Is(err, ErrNoSuchCluster) {
		t.Errorf("got %v, want ErrNoSuchCluster", err)
	}
}

func TestSegmentService(t *testing.T) {
	s := NewSegmentService(testStore())

	rec, err := s.GetSegment("B1C1")
	if err != nil || rec.Segment != "b1c1" {
		t.Errorf("GetSegment = %v, %v", rec, err)
	}

	if _, err := s.GetSegment("missing"); !errors.Is(err, ErrSegmentNotFound) {
		t.Errorf("got %v, want ErrSegmentNotFound", err)
	}

	rows, total := s.GetSegments(models.SegmentFilter{Clusters: []int{0, 1}})
	if total != 3 || len(rows) != 3 {
		t.Errorf("filter: total=%d rows=%d", total, len(rows))
	}
}
