package match

import (
	"sort"
)

const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.5
	// DefaultMaxSuggestions caps the number of "did you mean" suggestions.
	DefaultMaxSuggestions = 3
)

// Candidate is a known name scored against an unresolved one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against target.
// Returns candidates sorted by score (descending).
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NormalizedLevenshteinScore(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}

// Suggest returns up to DefaultMaxSuggestions names similar to target.
// An exact match is never suggested.
func Suggest(target string, names []string) []string {
	var out []string

	for _, cand := range RankCandidates(target, names).AboveThreshold(DefaultMinScore) {
		if cand.Name == target {
			continue
		}

		out = append(out, cand.Name)
		if len(out) == DefaultMaxSuggestions {
			break
		}
	}

	return out
}
