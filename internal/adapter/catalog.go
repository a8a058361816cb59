package adapter

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/gobwas/glob"
	"github.com/google/uuid"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// catalogFile is the on-disk TOML layout
type catalogFile struct {
	Name  string         `toml:"name"`
	Items []catalogEntry `toml:"items"`
}

type catalogEntry struct {
	ID       string   `toml:"id"`
	Title    string   `toml:"title"`
	Subtitle string   `toml:"subtitle"`
	Year     int      `toml:"year"`
	Tags     []string `toml:"tags"`
}

// itemNamespace seeds generated IDs so they are stable across runs
var itemNamespace = uuid.MustParse("6f1b2a8e-7d0c-4f6b-9a51-2f6c3e1d9b47")

// LoadCatalog reads a TOML catalog from path. Items whose ID matches any of
// the hidden glob patterns are dropped. Entries without an ID get one derived
// from their title.
func LoadCatalog(path string, hidden []string) (*domain.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data, hidden)
}

// ParseCatalog decodes TOML catalog data. See LoadCatalog.
func ParseCatalog(data []byte, hidden []string) (*domain.Catalog, error) {
	var file catalogFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	patterns, err := compileHidden(hidden)
	if err != nil {
		return nil, err
	}

	catalog := &domain.Catalog{Name: file.Name}
	if catalog.Name == "" {
		catalog.Name = "catalog"
	}

	seen := make(map[string]bool, len(file.Items))
	for i, entry := range file.Items {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			return nil, fmt.Errorf("catalog item %d: title is required", i)
		}

		id := entry.ID
		if id == "" {
			id = uuid.NewSHA1(itemNamespace, []byte(title)).String()
		}
		if seen[id] {
			return nil, fmt.Errorf("catalog item %d: duplicate id %q", i, id)
		}
		seen[id] = true

		if isHidden(patterns, id) {
			continue
		}

		catalog.Items = append(catalog.Items, domain.CatalogItem{
			ID:       id,
			Title:    title,
			Subtitle: entry.Subtitle,
			Year:     entry.Year,
			Tags:     entry.Tags,
		})
	}

	if len(catalog.Items) == 0 {
		return nil, fmt.Errorf("%s: %w", catalog.Name, domain.ErrEmptyCatalog)
	}
	return catalog, nil
}

func compileHidden(patterns []string) ([]glob.Glob, error) {
	out := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid hidden pattern %q: %w", p, err)
		}
		out = append(out, g)
	}
	return out, nil
}

func isHidden(patterns []glob.Glob, id string) bool {
	for _, g := range patterns {
		if g.Match(id) {
			return true
		}
	}
	return false
}

// sampleCatalog is shown when no catalog file is configured
const sampleCatalog = `
name = "Sample"

[[items]]
id = "metropolis"
title = "Metropolis"
subtitle = "Fritz Lang"
year = 1927

[[items]]
id = "seven-samurai"
title = "Seven Samurai"
subtitle = "Akira Kurosawa"
year = 1954

[[items]]
id = "vertigo"
title = "Vertigo"
subtitle = "Alfred Hitchcock"
year = 1958

[[items]]
id = "solaris"
title = "Solaris"
subtitle = "Andrei Tarkovsky"
year = 1972

[[items]]
id = "stalker"
title = "Stalker"
subtitle = "Andrei Tarkovsky"
year = 1979

[[items]]
id = "blade-runner"
title = "Blade Runner"
subtitle = "Ridley Scott"
year = 1982

[[items]]
id = "spirited-away"
title = "Spirited Away"
subtitle = "Hayao Miyazaki"
year = 2001
`

// SampleCatalog returns the built-in demo catalog
func SampleCatalog(hidden []string) (*domain.Catalog, error) {
	return ParseCatalog([]byte(sampleCatalog), hidden)
}
