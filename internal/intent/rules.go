package intent

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sdvn-lab/traffic-backend-go/internal/models"
)

var (
	greetingRe   = regexp.MustCompile(`\b(?:hi|hello|hey|greetings|good\s+morning|good\s+afternoon|good\s+evening)\b`)
	clusterNumRe = regexp.MustCompile(`cluster\s*#?(\d+)`)
	tokenSplitRe = regexp.MustCompile(`[^a-z0-9_-]+`)
)

// question carries the pre-processed form of one user question through the
// rule table.
type question struct {
	lower  string
	tokens map[string]bool
}

// rule is one (predicate, intent-constructor) entry. Rules are evaluated in
// declaration order and the first match wins, which makes priority auditable.
type rule struct {
	name  string
	match func(q *question) (Intent, bool)
}

// Classifier maps free text to an Intent using an ordered rule table.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the default rule table.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules()}
}

// Classify routes one question. segmentIDs is the set of known segment ids
// (lower-cased) used by the segment-lookup rule; it may be nil.
func (c *Classifier) Classify(text string, segmentIDs []string) Intent {
	q := newQuestion(text)
	if q.lower == "" {
		return Intent{Kind: KindUnknown}
	}

	// The segment rule needs the live id set, so it runs outside the static
	// table, after greetings.
	if it, ok := matchGreeting(q); ok {
		return it
	}
	if it, ok := matchSegments(q, segmentIDs); ok {
		return it
	}

	for _, r := range c.rules {
		if it, ok := r.match(q); ok {
			return it
		}
	}
	return Intent{Kind: KindUnknown}
}

// RuleNames returns the static rule names in priority order.
func (c *Classifier) RuleNames() []string {
	names := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		names = append(names, r.name)
	}
	return names
}

func newQuestion(text string) *question {
	lower := strings.ToLower(strings.TrimSpace(text))
	tokens := make(map[string]bool)
	for _, tok := range tokenSplitRe.Split(lower, -1) {
		if tok != "" {
			tokens[tok] = true
		}
	}
	return &question{lower: lower, tokens: tokens}
}

func (q *question) containsAny(substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(q.lower, s) {
			return true
		}
	}
	return false
}

func matchGreeting(q *question) (Intent, bool) {
	if greetingRe.MatchString(q.lower) {
		return Intent{Kind: KindGreeting}, true
	}
	return Intent{}, false
}

// matchSegments fires when the question names segments that exist in the
// table, matched token-exact to avoid short-id false positives.
func matchSegments(q *question, segmentIDs []string) (Intent, bool) {
	var mentioned []string
	for _, id := range segmentIDs {
		if q.tokens[id] {
			mentioned = append(mentioned, id)
		}
	}
	if len(mentioned) == 0 {
		return Intent{}, false
	}
	return Intent{Kind: KindSegmentLookup, Segments: mentioned}, true
}

func defaultRules() []rule {
	return []rule{
		{
			name: "compare",
			match: func(q *question) (Intent, bool) {
				if q.containsAny("compare", "versus", " vs ", "difference between") {
					return Intent{Kind: KindCompare}, true
				}
				return Intent{}, false
			},
		},
		{
			name: "cluster_summary",
			match: func(q *question) (Intent, bool) {
				m := clusterNumRe.FindStringSubmatch(q.lower)
				if m == nil {
					return Intent{}, false
				}
				n, err := strconv.Atoi(m[1])
				if err != nil {
					return Intent{}, false
				}
				return Intent{Kind: KindClusterSummary, Cluster: n}, true
			},
		},
		{
			name: "cluster_overview",
			match: func(q *question) (Intent, bool) {
				if strings.Contains(q.lower, "cluster") {
					return Intent{Kind: KindClusterOverview}, true
				}
				return Intent{}, false
			},
		},
		{
			name: "average_by_category",
			match: func(q *question) (Intent, bool) {
				if !q.containsAny("average", "mean") {
					return Intent{}, false
				}
				if q.containsAny("category", "categories", "each", "per level") {
					return Intent{Kind: KindAverageByCategory}, true
				}
				return Intent{}, false
			},
		},
		{
			name: "highest_traffic",
			match: func(q *question) (Intent, bool) {
				if q.containsAny("highest", "busiest", "most traffic", "top segments") {
					return Intent{Kind: KindHighestTraffic}, true
				}
				return Intent{}, false
			},
		},
		{
			name: "lowest_traffic",
			match: func(q *question) (Intent, bool) {
				if q.containsAny("lowest", "quietest", "least traffic") {
					return Intent{Kind: KindLowestTraffic}, true
				}
				return Intent{}, false
			},
		},
		{
			name: "category_filter",
			match: func(q *question) (Intent, bool) {
				for _, cat := range models.Categories {
					if strings.Contains(q.lower, strings.ToLower(cat)) {
						return Intent{Kind: KindCategoryFilter, Category: cat}, true
					}
				}
				return Intent{}, false
			},
		},
		{
			name: "dataset_summary",
			match: func(q *question) (Intent, bool) {
				if q.containsAny("summary", "overview", "describe the data", "about the data") {
					return Intent{Kind: KindDatasetSummary}, true
				}
				return Intent{}, false
			},
		},
	}
}
