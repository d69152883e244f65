package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sdvn-lab/traffic-backend-go/internal/dataset"
	"github.com/sdvn-lab/traffic-backend-go/internal/intent"
	"github.com/sdvn-lab/traffic-backend-go/internal/logger"
	"github.com/sdvn-lab/traffic-backend-go/internal/models"
	"github.com/sdvn-lab/traffic-backend-go/internal/stats"
)

// GreetingText is returned for greeting questions before any data lookup.
const GreetingText = "Hello! I'm your traffic data assistant. I can help you analyze " +
	"road segment traffic data, explain patterns in different clusters, and answer " +
	"questions about traffic levels. What would you like to know?"

// AnswerProvider produces an answer for one classified question against one
// table snapshot. Implementations must not return errors for bad questions;
// only infrastructure failures (remote call) may error, and the caller
// converts those to fallback text.
type AnswerProvider interface {
	Answer(ctx context.Context, question string, it intent.Intent, table *dataset.Table) (models.ChatAnswer, error)
}

// LocalAggregateProvider answers matched intents from the in-memory table.
type LocalAggregateProvider struct {
	topK    int // rows in highest/lowest answers
	maxRows int // display limit for filter-style answers
}

// NewLocalAggregateProvider creates the local provider. topK and maxRows fall
// back to 5 and 10 when not positive.
func NewLocalAggregateProvider(topK, maxRows int) *LocalAggregateProvider {
	if topK <= 0 {
		topK = 5
	}
	if maxRows <= 0 {
		maxRows = 10
	}
	return &LocalAggregateProvider{topK: topK, maxRows: maxRows}
}

// Answer computes the local aggregate answer for a matched intent.
func (p *LocalAggregateProvider) Answer(_ context.Context, _ string, it intent.Intent, t *dataset.Table) (models.ChatAnswer, error) {
	answer := models.ChatAnswer{Intent: string(it.Kind), Source: "local"}

	switch it.Kind {
	case intent.KindGreeting:
		answer.Text = GreetingText

	case intent.KindSegmentLookup:
		answer.Text, answer.Rows = p.segmentLookup(t, it.Segments)

	case intent.KindHighestTraffic:
		rows := t.TopK(p.topK, true)
		answer.Text = formatRanking(rows, "highest")
		answer.Rows = rows

	case intent.KindLowestTraffic:
		rows := t.TopK(p.topK, false)
		answer.Text = formatRanking(rows, "lowest")
		answer.Rows = rows

	case intent.KindClusterSummary:
		answer.Text, answer.Rows = p.clusterSummary(t, it.Cluster)

	case intent.KindClusterOverview:
		answer.Text = formatClusterOverview(t)

	case intent.KindCategoryFilter:
		answer.Text, answer.Rows = p.categoryFilter(t, it.Category)

	case intent.KindAverageByCategory:
		answer.Text = formatCategoryAverages(ComputeCategoryAverages(t))

	case intent.KindCompare:
		answer.Text = formatComparisons(ComputeComparisons(t))

	case intent.KindDatasetSummary:
		answer.Text = t.Summary()

	default:
		// Unknown intents belong to the remote provider; answering with the
		// summary keeps this provider total anyway.
		answer.Text = t.Summary()
	}

	return answer, nil
}

func (p *LocalAggregateProvider) segmentLookup(t *dataset.Table, ids []string) (string, []models.SegmentRecord) {
	var b strings.Builder
	var rows []models.SegmentRecord
	for _, id := range ids {
		rec, ok := t.Lookup(id)
		if !ok {
			fmt.Fprintf(&b, "Segment %s is not in the dataset.\n", id)
			continue
		}
		rows = append(rows, rec)
		fmt.Fprintf(&b, "Segment %s: avg traffic %.2f, cluster %d (%s)\n",
			rec.Segment, rec.AvgTraffic, rec.ClusterID, rec.Category)
	}
	return strings.TrimRight(b.String(), "\n"), rows
}

func (p *LocalAggregateProvider) clusterSummary(t *dataset.Table, clusterID int) (string, []models.SegmentRecord) {
	if !models.ValidClusterID(clusterID) {
		return fmt.Sprintf("No such cluster: %d. Valid clusters are 0, 1 and 2 (%s).",
			clusterID, models.ClusterLevelLegend), nil
	}

	summary := ComputeClusterSummary(t, clusterID)
	rows := t.ByCluster(clusterID)
	if len(rows) > p.maxRows {
		rows = rows[:p.maxRows]
	}

	var b strings.Builder
	b.WriteString("Cluster Analysis:\n")
	fmt.Fprintf(&b, "Cluster %d corresponds to %s.\n", clusterID, summary.Category)
	fmt.Fprintf(&b, "Segments: %d, mean traffic: %.2f, min: %.2f, max: %.2f, median: %.2f\n",
		summary.Count, summary.MeanTraffic, summary.MinTraffic, summary.MaxTraffic, summary.Median)
	b.WriteString("Cluster -> Traffic Level Mapping: " + models.ClusterLevelLegend)
	return b.String(), rows
}

func (p *LocalAggregateProvider) categoryFilter(t *dataset.Table, category string) (string, []models.SegmentRecord) {
	rows := t.ByCategory(category)
	total := len(rows)
	if total == 0 {
		return fmt.Sprintf("No segments carry the %s category.", category), nil
	}
	if total > p.maxRows {
		rows = rows[:p.maxRows]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d segments in %s", total, category)
	if total > len(rows) {
		fmt.Fprintf(&b, " (showing first %d)", len(rows))
	}
	b.WriteString(":\n")
	for _, rec := range rows {
		fmt.Fprintf(&b, "%s  %.2f\n", rec.Segment, rec.AvgTraffic)
	}
	return strings.TrimRight(b.String(), "\n"), rows
}

func formatRanking(rows []models.SegmentRecord, direction string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Top %d %s traffic segments:\n", len(rows), direction)
	for i, rec := range rows {
		fmt.Fprintf(&b, "%d. %s  %.2f  (%s)\n", i+1, rec.Segment, rec.AvgTraffic, rec.Category)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatClusterOverview(t *dataset.Table) string {
	var b strings.Builder
	b.WriteString("Cluster -> Traffic Level Mapping:\n")
	b.WriteString(models.ClusterLevelLegend + "\n\n")
	for _, cid := range models.ClusterIDs {
		values := t.ClusterTraffic(cid)
		fmt.Fprintf(&b, "Cluster %d (%s) -> segments: %d, avg traffic: %.2f\n",
			cid, models.CategoryForCluster(cid), len(values), stats.Mean(values))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatCategoryAverages(averages []models.CategoryAverage) string {
	var b strings.Builder
	b.WriteString("Average traffic by category:\n")
	for _, avg := range averages {
		if avg.HasData {
			fmt.Fprintf(&b, "%s: %.2f (%d segments)\n", avg.Category, avg.MeanTraffic, avg.Count)
		} else {
			fmt.Fprintf(&b, "%s: no data\n", avg.Category)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatComparisons(pairs []models.ClusterComparison) string {
	var b strings.Builder
	b.WriteString("Cluster comparison (mean traffic / segment count):\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "Cluster %d (%.2f / %d)  vs  Cluster %d (%.2f / %d), mean delta %.2f\n",
			p.ClusterA, p.MeanA, p.CountA, p.ClusterB, p.MeanB, p.CountB, p.MeanDelta)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Generator is the surface of the Gemini client the remote provider uses.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Configured() bool
}

// RemoteGenerativeProvider delegates unmatched questions to the generative
// model, grounding the prompt with the dataset summary. Any failure degrades
// to a static fallback answer built from the same summary.
type RemoteGenerativeProvider struct {
	generator Generator
}

// NewRemoteGenerativeProvider creates the remote provider.
func NewRemoteGenerativeProvider(generator Generator) *RemoteGenerativeProvider {
	return &RemoteGenerativeProvider{generator: generator}
}

// FallbackText builds the answer used when the generative model is
// unavailable.
func FallbackText(context string) string {
	return "Traffic Data Analysis:\n\n" + context +
		"\nNote: AI assistant unavailable, showing raw data analysis."
}

// Answer sends the question to the generative model. It never returns an
// error to the user path: failures are logged and converted to fallback text.
func (p *RemoteGenerativeProvider) Answer(ctx context.Context, question string, it intent.Intent, t *dataset.Table) (models.ChatAnswer, error) {
	answer := models.ChatAnswer{Intent: string(it.Kind), Source: "remote"}
	summary := t.Summary()

	text, err := p.generator.Generate(ctx, buildPrompt(question, summary))
	if err != nil {
		logger.Warnf("generative fallback failed: %v", err)
		answer.Source = "fallback"
		answer.Text = FallbackText(summary)
		return answer, nil
	}

	answer.Text = text
	return answer, nil
}

func buildPrompt(question, context string) string {
	return fmt.Sprintf(`You are a traffic data assistant for road segment analysis.
Answer the question ONLY using this CSV data context:
%s

Important: Use the following fixed mapping from cluster IDs to traffic levels:
Cluster 0 = Low Traffic
Cluster 1 = Medium Traffic
Cluster 2 = High Traffic

Guidelines:
- Be specific and provide numerical data when available
- Mention segment names, traffic values, and categories
- If asked about trends, compare different segments or clusters
- Keep responses concise but informative
- If the data doesn't contain enough information, say so clearly

Question: %s`, context, question)
}
