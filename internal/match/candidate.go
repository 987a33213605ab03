package match

import (
	"sort"
)

// Candidate is a known name scored against an input.
type Candidate struct {
	Name string

	// NameScore is the normalized Levenshtein similarity (0-1).
	NameScore float64

	// Exact is set when the normalized forms are equal.
	Exact bool
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Thresholds for accepting a candidate.
const (
	// DefaultMinScore is the minimum score for a suggestion.
	DefaultMinScore = 0.5
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)

// RankCandidates scores every known name against input.
// Returns candidates sorted by score (descending), then by name.
func RankCandidates(input string, names []string) CandidateList {
	inputNorm := NormalizeIdent(input)

	candidates := make(CandidateList, 0, len(names))
	for _, name := range names {
		nameNorm := NormalizeIdent(name)
		candidates = append(candidates, Candidate{
			Name:      name,
			NameScore: LevenshteinNormalized(inputNorm, nameNorm),
			Exact:     inputNorm == nameNorm,
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns the best ranked name if it scores at least minScore and no
// runner-up comes within DefaultAmbiguityThreshold of it.
func Suggest(input string, names []string, minScore float64) (string, bool) {
	ranked := RankCandidates(input, names)

	best := ranked.Best()
	if best == nil || best.NameScore < minScore || ranked.IsAmbiguous(DefaultAmbiguityThreshold) {
		return "", false
	}

	return best.Name, true
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].NameScore != c[j].NameScore {
		return c[i].NameScore > c[j].NameScore
	}

	return c[i].Name < c[j].Name
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// Exact returns every candidate whose normalized form equals the input's.
func (c CandidateList) Exact() CandidateList {
	var result CandidateList
	for _, cand := range c {
		if cand.Exact {
			result = append(result, cand)
		}
	}

	return result
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].NameScore-c[1].NameScore < threshold
}
