package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogItemDisplayTitle(t *testing.T) {
	assert.Equal(t, "Alien (1979)", CatalogItem{Title: "Alien", Year: 1979}.DisplayTitle())
	assert.Equal(t, "Untitled", CatalogItem{Title: "Untitled"}.DisplayTitle())
}

func TestCatalogIndexOf(t *testing.T) {
	c := Catalog{Items: []CatalogItem{{ID: "a"}, {ID: "b"}}}
	assert.Equal(t, 1, c.IndexOf("b"))
	assert.Equal(t, -1, c.IndexOf("zzz"))
	assert.Equal(t, []string{"", ""}, c.Titles())
}
