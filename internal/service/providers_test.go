package service

import (
	"context"
	"strings"
	"testing"

	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/intent"
	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

func localAnswer(t *testing.T, it intent.Intent) models.ChatAnswer {
	t.Helper()
	p := NewLocalAggregateProvider(3, 2)
	answer, err := p.Answer(context.Background(), "", it, testStore().Table())
	if err != nil {
		t.Fatalf("local provider errored: %v", err)
	}
	return answer
}

func TestLocalHighestTraffic(t *testing.T) {
	answer := localAnswer(t, intent.Intent{Kind: intent.KindHighestTraffic})
	if len(answer.Rows) != 3 {
		t.Fatalf("rows = %d, want top 3", len(answer.Rows))
	}
	if answer.Rows[0].Segment != "a0a1" {
		t.Errorf("top segment = %s, want a0a1", answer.Rows[0].Segment)
	}
	for i := 1; i < len(answer.Rows); i++ {
		if answer.Rows[i].AvgTraffic > answer.Rows[i-1].AvgTraffic {
			t.Errorf("ranking not monotonic: %v", answer.Rows)
		}
	}
}

func TestLocalLowestTraffic(t *testing.T) {
	answer := localAnswer(t, intent.Intent{Kind: intent.KindLowestTraffic})
	if answer.Rows[0].Segment != "c0c1" {
		t.Errorf("lowest segment = %s, want c0c1", answer.Rows[0].Segment)
	}
}

func TestLocalCategoryFilterTruncates(t *testing.T) {
	// maxRows is 2 but Low Traffic has exactly 2 rows; High Traffic also 2.
	answer := localAnswer(t, intent.Intent{Kind: intent.KindCategoryFilter, Category: models.CategoryHigh})
	if len(answer.Rows) != 2 {
		t.Fatalf("rows = %d", len(answer.Rows))
	}
	if !strings.Contains(answer.Text, "2 segments in High Traffic") {
		t.Errorf("text = %q", answer.Text)
	}
}

func TestLocalCategoryFilterEmptyCategory(t *testing.T) {
	store := dataset.NewStoreFromTable(dataset.NewTable([]models.SegmentRecord{
		{Segment: "a", ClusterID: 0, Category: models.CategoryLow, AvgTraffic: 1},
	}))
	p := NewLocalAggregateProvider(5, 10)
	answer, _ := p.Answer(context.Background(), "", intent.Intent{Kind: intent.KindCategoryFilter, Category: models.CategoryHigh}, store.Table())
	if !strings.Contains(answer.Text, "No segments") {
		t.Errorf("text = %q", answer.Text)
	}
}

func TestLocalAverageByCategoryAlwaysThreeEntries(t *testing.T) {
	// Dataset with an empty Medium category.
	store := dataset.NewStoreFromTable(dataset.NewTable([]models.SegmentRecord{
		{Segment: "a", ClusterID: 0, Category: models.CategoryLow, AvgTraffic: 2},
		{Segment: "b", ClusterID: 2, Category: models.CategoryHigh, AvgTraffic: 10},
	}))

	averages := ComputeCategoryAverages(store.Table())
	if len(averages) != 3 {
		t.Fatalf("got %d entries, want 3", len(averages))
	}
	if averages[1].Category != models.CategoryMedium || averages[1].HasData {
		t.Errorf("medium entry = %+v, want empty no-data entry", averages[1])
	}

	p := NewLocalAggregateProvider(5, 10)
	answer, _ := p.Answer(context.Background(), "", intent.Intent{Kind: intent.KindAverageByCategory}, store.Table())
	if !strings.Contains(answer.Text, "Medium Traffic: no data") {
		t.Errorf("text = %q, want no-data line", answer.Text)
	}
}

func TestLocalCompareCoversAllPairs(t *testing.T) {
	answer := localAnswer(t, intent.Intent{Kind: intent.KindCompare})
	for _, pair := range []string{"Cluster 0", "Cluster 1", "Cluster 2"} {
		if !strings.Contains(answer.Text, pair) {
			t.Errorf("comparison missing %s:\n%s", pair, answer.Text)
		}
	}
	pairs := ComputeComparisons(testStore().Table())
	if len(pairs) != 3 {
		t.Errorf("got %d pairs, want 3 (0-1, 0-2, 1-2)", len(pairs))
	}
}

func TestLocalSegmentLookup(t *testing.T) {
	answer := localAnswer(t, intent.Intent{Kind: intent.KindSegmentLookup, Segments: []string{"a0a1", "nope"}})
	if !strings.Contains(answer.Text, "Segment a0a1: avg traffic 15.40") {
		t.Errorf("text = %q", answer.Text)
	}
	if !strings.Contains(answer.Text, "not in the dataset") {
		t.Errorf("missing-segment line absent: %q", answer.Text)
	}
	if len(answer.Rows) != 1 {
		t.Errorf("rows = %d, want 1", len(answer.Rows))
	}
}

func TestClusterSummaryStats(t *testing.T) {
	summary := ComputeClusterSummary(testStore().Table(), 0)
	if summary.Count != 2 {
		t.Errorf("count = %d, want 2", summary.Count)
	}
	if summary.MeanTraffic != 0.8 { // (1.2+0.4)/2
		t.Errorf("mean = %v, want 0.8", summary.MeanTraffic)
	}
	if summary.MinTraffic != 0.4 || summary.MaxTraffic != 1.2 {
		t.Errorf("min/max = %v/%v", summary.MinTraffic, summary.MaxTraffic)
	}
	if summary.Category != models.CategoryLow {
		t.Errorf("category = %q", summary.Category)
	}
}

func TestRemoteProviderPromptGrounding(t *testing.T) {
	var captured string
	gen := &promptCapturingGenerator{capture: &captured}
	p := NewRemoteGenerativeProvider(gen)

	table := testStore().Table()
	_, err := p.Answer(context.Background(), "what changed last week?", intent.Intent{Kind: intent.KindUnknown}, table)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(captured, "what changed last week?") {
		t.Error("prompt missing the raw question")
	}
	if !strings.Contains(captured, "Total segments: 5") {
		t.Error("prompt missing the dataset summary")
	}
	if !strings.Contains(captured, "Cluster 0 = Low Traffic") {
		t.Error("prompt missing the fixed cluster mapping")
	}
}

type promptCapturingGenerator struct {
	capture *string
}

func (g *promptCapturingGenerator) Configured() bool { return true }

func (g *promptCapturingGenerator) Generate(_ context.Context, prompt string) (string, error) {
	*g.capture = prompt
	return "ok", nil
}
