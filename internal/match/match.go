// Package match implements the fuzzy matcher used to filter and rank
// branch names against the picker query.
//
// A candidate matches when the query is a case-insensitive subsequence
// of its name. Scoring is a single left-to-right pass: one point per
// matched rune, plus one bonus point when the rune's position in the
// candidate equals the number of query runes consumed so far. The bonus
// therefore only rewards a run aligned with the very start of the
// candidate; this is deliberate and kept as-is.
package match

import (
	"sort"
	"unicode"
)

// localPriority is added to local candidates when ranking, so local
// branches always sort before remote ones that matched.
const localPriority = 100

// Candidate is a branch name eligible for matching. Remote marks
// branches mirrored from a remote, which rank below local ones.
type Candidate struct {
	Name   string
	Remote bool
}

// Match pairs a candidate with its relevance for the current query.
// Index is the candidate's position in the input slice. Positions holds
// the rune indices in Name that matched the query, for highlighting.
// Score is the raw fuzzy score without the local-priority addend.
type Match struct {
	Candidate Candidate
	Index     int
	Score     int
	Positions []int
}

// Score reports whether query is a case-insensitive subsequence of text
// and computes the relevance score and matched rune positions.
// The empty query matches everything with score 0.
func Score(text, query string) (score int, positions []int, ok bool) {
	if query == "" {
		return 0, nil, true
	}

	t := []rune(text)
	q := []rune(query)

	qi := 0
	for i := 0; i < len(t) && qi < len(q); i++ {
		if unicode.ToLower(t[i]) != unicode.ToLower(q[qi]) {
			continue
		}
		score++
		if i == qi {
			score++
		}
		positions = append(positions, i)
		qi++
	}

	if qi < len(q) {
		return 0, nil, false
	}
	return score, positions, true
}

// Filter returns the candidates matching query, ranked by descending
// relevance. Local candidates rank above remote ones regardless of raw
// score; ties keep input order. Pure function, never fails.
func Filter(candidates []Candidate, query string) []Match {
	var matches []Match
	for i, c := range candidates {
		score, positions, ok := Score(c.Name, query)
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Candidate: c,
			Index:     i,
			Score:     score,
			Positions: positions,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return rank(matches[i]) > rank(matches[j])
	})
	return matches
}

// rank is the effective sort key: raw score plus the local addend.
func rank(m Match) int {
	if m.Candidate.Remote {
		return m.Score
	}
	return m.Score + localPriority
}

// Candidates extracts the candidates from a ranked match list, in rank
// order. Useful for re-filtering or display.
func Candidates(matches []Match) []Candidate {
	out := make([]Candidate, len(matches))
	for i, m := range matches {
		out[i] = m.Candidate
	}
	return out
}
