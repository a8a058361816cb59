// Package search matches user queries against carousel item titles.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match is a filter hit
type Match struct {
	Index          int   // Index in source slice
	Score          int   // Match score (higher = better)
	MatchedIndexes []int // Character positions that matched (for highlighting)
}

// titleIndex implements sahilm/fuzzy.Source over pre-lowered titles
type titleIndex struct {
	lowerTitles []string
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx titleIndex) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of titles (implements fuzzy.Source)
func (idx titleIndex) Len() int { return len(idx.lowerTitles) }

// Filter returns the titles matching query as a subsequence, case
// insensitive. Results keep source order so the carousel does not reshuffle
// as the user types. An empty query matches nothing.
func Filter(query string, titles []string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	idx := titleIndex{lowerTitles: make([]string, len(titles))}
	for i, t := range titles {
		idx.lowerTitles[i] = strings.ToLower(t)
	}

	found := fuzzy.FindFrom(query, idx)
	matches := make([]Match, len(found))
	for i, m := range found {
		matches[i] = Match{Index: m.Index, Score: m.Score, MatchedIndexes: m.MatchedIndexes}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
	return matches
}

// Indexes returns the source indices of matches
func Indexes(matches []Match) []int {
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}
