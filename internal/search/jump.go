package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Best returns the index of the title that best matches query, for
// jump-to navigation. Ranking is by edit distance after normalizing case and
// diacritics; ties go to the earlier item.
func Best(query string, titles []string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" || len(titles) == 0 {
		return 0, false
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	if len(ranks) == 0 {
		return 0, false
	}

	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	return ranks[0].OriginalIndex, true
}
