package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
name = "Films"

[[items]]
id = "a"
title = "Alpha"
year = 2001

[[items]]
id = "draft-b"
title = "Bravo"

[[items]]
title = "Charlie"
tags = ["x"]
`

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]byte(testCatalog), nil)
	require.NoError(t, err)

	assert.Equal(t, "Films", c.Name)
	require.Len(t, c.Items, 3)
	assert.Equal(t, "Alpha (2001)", c.Items[0].DisplayTitle())
	assert.NotEmpty(t, c.Items[2].ID)
	assert.Equal(t, []string{"x"}, c.Items[2].Tags)

	again, err := ParseCatalog([]byte(testCatalog), nil)
	require.NoError(t, err)
	assert.Equal(t, c.Items[2].ID, again.Items[2].ID, "generated IDs must be stable")
}

func TestParseCatalogHidden(t *testing.T) {
	c, err := ParseCatalog([]byte(testCatalog), []string{"draft-*"})
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, -1, c.IndexOf("draft-b"))
}

func TestParseCatalogAllHidden(t *testing.T) {
	_, err := ParseCatalog([]byte(testCatalog), []string{"*"})
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)
}

func TestParseCatalogErrors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		hidden []string
	}{
		{"bad toml", "name = ", nil},
		{"unknown field", "colour = 1", nil},
		{"missing title", "[[items]]\nid = \"x\"", nil},
		{"duplicate id", "[[items]]\nid = \"x\"\ntitle = \"a\"\n[[items]]\nid = \"x\"\ntitle = \"b\"", nil},
		{"bad pattern", "[[items]]\ntitle = \"a\"", []string{"[unclosed"}},
		{"empty", "name = \"n\"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.data), tt.hidden)
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.toml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0644))

	c, err := LoadCatalog(path, nil)
	require.NoError(t, err)
	assert.Len(t, c.Items, 3)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.toml"), nil)
	assert.Error(t, err)
}

func TestSampleCatalog(t *testing.T) {
	c, err := SampleCatalog(nil)
	require.NoError(t, err)
	assert.Equal(t, "Sample", c.Name)
	assert.GreaterOrEqual(t, len(c.Items), 5)
}
