package intent

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()
	segments := []string{"a0a1", "a0b0", "b1c1"}

	cases := []struct {
		question string
		want     Kind
	}{
		{"Hello there", KindGreeting},
		{"good morning", KindGreeting},
		{"Tell me about segment a0a1", KindSegmentLookup},
		{"Compare traffic between clusters", KindCompare},
		{"Tell me about cluster 2", KindClusterSummary},
		{"what is cluster 7", KindClusterSummary},
		{"Explain the different clusters and their characteristics", KindClusterOverview},
		{"What's the average traffic in each category?", KindAverageByCategory},
		{"Which segments have the highest traffic?", KindHighestTraffic},
		{"show the lowest traffic roads", KindLowestTraffic},
		{"Show me low traffic segments", KindCategoryFilter},
		{"give me an overview of the traffic data", KindDatasetSummary},
		{"asdkjhasd", KindUnknown},
		{"", KindUnknown},
		{"   ", KindUnknown},
	}

	for _, tc := range cases {
		got := c.Classify(tc.question, segments)
		if got.Kind != tc.want {
			t.Errorf("Classify(%q) = %v, want %v", tc.question, got.Kind, tc.want)
		}
	}
}

func TestClassifyClusterNumber(t *testing.T) {
	c := NewClassifier()

	it := c.Classify("Tell me about cluster 2", nil)
	if it.Kind != KindClusterSummary || it.Cluster != 2 {
		t.Fatalf("got %+v, want cluster summary for cluster 2", it)
	}

	it = c.Classify("cluster  0 stats please", nil)
	if it.Kind != KindClusterSummary || it.Cluster != 0 {
		t.Fatalf("got %+v, want cluster summary for cluster 0", it)
	}
}

func TestClassifySegmentMentions(t *testing.T) {
	c := NewClassifier()

	it := c.Classify("how busy are A0A1 and b1c1?", []string{"a0a1", "a0b0", "b1c1"})
	if it.Kind != KindSegmentLookup {
		t.Fatalf("got %v, want segment lookup", it.Kind)
	}
	want := []string{"a0a1", "b1c1"}
	if !reflect.DeepEqual(it.Segments, want) {
		t.Errorf("Segments = %v, want %v", it.Segments, want)
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	c := NewClassifier()

	// "compare" outranks the cluster rules.
	it := c.Classify("compare cluster 1 and cluster 2", nil)
	if it.Kind != KindCompare {
		t.Errorf("got %v, want compare", it.Kind)
	}

	// A numbered cluster outranks the generic overview.
	it = c.Classify("cluster 1 segments in this cluster", nil)
	if it.Kind != KindClusterSummary {
		t.Errorf("got %v, want cluster summary", it.Kind)
	}

	// "high traffic" alone is a category phrase, not a top-K request.
	it = c.Classify("list high traffic segments", nil)
	if it.Kind != KindCategoryFilter || it.Category != "High Traffic" {
		t.Errorf("got %+v, want High Traffic category filter", it)
	}
}

func TestClassifyGreetingDoesNotMatchHigh(t *testing.T) {
	c := NewClassifier()
	// "high" must not trip the greeting rule through its "hi" prefix.
	it := c.Classify("high traffic please", nil)
	if it.Kind == KindGreeting {
		t.Fatal("greeting rule matched inside the word 'high'")
	}
}

func TestRuleNamesStable(t *testing.T) {
	c := NewClassifier()
	names := c.RuleNames()
	want := []string{
		"compare",
		"cluster_summary",
		"cluster_overview",
		"average_by_category",
		"highest_traffic",
		"lowest_traffic",
		"category_filter",
		"dataset_summary",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("rule order = %v, want %v", names, want)
	}
}
