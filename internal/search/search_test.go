package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var titles = []string{
	"Metropolis (1927)",
	"Seven Samurai (1954)",
	"Vertigo (1958)",
	"Solaris (1972)",
	"Stalker (1979)",
	"Amélie (2001)",
}

func TestFilterKeepsSourceOrder(t *testing.T) {
	matches := Filter("s", titles)
	idx := Indexes(matches)
	assert.NotEmpty(t, idx)
	for i := 1; i < len(idx); i++ {
		assert.Less(t, idx[i-1], idx[i])
	}
}

func TestFilterSubsequence(t *testing.T) {
	matches := Filter("STLK", titles)
	assert.Equal(t, []int{4}, Indexes(matches))
	assert.NotEmpty(t, matches[0].MatchedIndexes)
}

func TestFilterEmptyQuery(t *testing.T) {
	assert.Nil(t, Filter("  ", titles))
	assert.Empty(t, Filter("zzzz", titles))
}

func TestBest(t *testing.T) {
	tests := []struct {
		query string
		want  int
		ok    bool
	}{
		{"vertigo", 2, true},
		{"sol", 3, true},
		{"amelie", 5, true},
		{"xyz", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Best(tt.query, titles)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
