package rank

import (
	"path/filepath"
	"sort"
	"strings"
)

// Scorer rates how well a candidate matches a query. Higher is better; zero
// means no match information. Scorers compose over the accumulator as an
// optional re-ranking step.
type Scorer interface {
	Score(c Candidate, query string) float64
}

// Order sorts candidates by descending score while keeping input order for
// ties. A nil scorer or empty query preserves the tool's native order.
func Order(candidates []Candidate, query string, scorer Scorer) {
	if scorer == nil || query == "" {
		return
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return scorer.Score(candidates[i], query) > scorer.Score(candidates[j], query)
	})
}

// FuzzyScorer ranks by tiered filename relevance: exact name, exact path,
// name prefix, path prefix, name substring, path substring, then an ordered
// subsequence match with a bonus for consecutive runs.
type FuzzyScorer struct{}

func (FuzzyScorer) Score(c Candidate, query string) float64 {
	if query == "" {
		return 1.0
	}

	q := strings.ToLower(query)
	name := strings.ToLower(filepath.Base(c.DisplayPath))
	path := strings.ToLower(c.DisplayPath)

	switch {
	case name == q:
		return 1000.0
	case path == q:
		return 900.0
	case strings.HasPrefix(name, q):
		return 800.0
	case strings.HasPrefix(path, q):
		return 700.0
	case strings.Contains(name, q):
		return 600.0
	case strings.Contains(path, q):
		return 500.0
	}

	if s := subsequenceScore(name, q); s > 0 {
		return 300.0 + s
	}
	if s := subsequenceScore(path, q); s > 0 {
		return 200.0 + s
	}
	return 0
}

// subsequenceScore returns a positive score when every pattern byte occurs
// in text in order, rewarding consecutive runs and shorter texts.
func subsequenceScore(text, pattern string) float64 {
	if len(pattern) == 0 {
		return 0
	}

	matched := 0
	run := 0
	score := 0.0

	pi := 0
	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if text[ti] == pattern[pi] {
			matched++
			run++
			pi++
			score += float64(run) * 2
		} else {
			run = 0
		}
	}

	if pi < len(pattern) {
		return 0 // not all pattern bytes found
	}

	lengthBonus := float64(max(0, 50-len(text)))
	matchRatio := float64(matched) / float64(len(pattern))
	return score + lengthBonus + matchRatio*100
}
