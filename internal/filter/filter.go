// ABOUTME: Character-multiplicity scoring and filtering of candidate lines
// ABOUTME: Pure functions with no TUI imports; recomputed from scratch per query

package filter

import (
	"sort"
	"strings"
)

// Score sums, for each character of query, the number of times that
// character occurs in candidate. Case-sensitive and order-insensitive:
// a repeated query character counts its occurrences again.
func Score(query, candidate string) int {
	total := 0
	for _, c := range query {
		total += strings.Count(candidate, string(c))
	}
	return total
}

// Apply returns the candidates matching query, ordered by ascending score.
// An empty query returns candidates unchanged. Candidates with score zero
// are dropped; ties keep their original relative order.
//
// Ascending order means the weakest matches surface first. That is the
// historical behavior of this tool and is kept deliberately.
func Apply(query string, candidates []string) []string {
	if query == "" {
		return candidates
	}

	type scored struct {
		index int
		score int
	}

	matches := make([]scored, 0, len(candidates))
	for i, c := range candidates {
		if s := Score(query, c); s > 0 {
			matches = append(matches, scored{index: i, score: s})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].score < matches[b].score
	})

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = candidates[m.index]
	}
	return out
}
