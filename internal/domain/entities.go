package domain

import "fmt"

// CatalogItem is a single entry shown in the carousel
type CatalogItem struct {
	ID       string   // Stable identifier (used for focus persistence)
	Title    string   // Display title
	Subtitle string   // Secondary line, e.g. director or artist
	Year     int      // Release year (0 if unknown)
	Tags     []string // Free-form labels
}

// DisplayTitle returns the title with the year appended when known
func (c CatalogItem) DisplayTitle() string {
	if c.Year > 0 {
		return fmt.Sprintf("%s (%d)", c.Title, c.Year)
	}
	return c.Title
}

// Catalog is a named, ordered collection of items
type Catalog struct {
	Name  string
	Items []CatalogItem
}

// IndexOf returns the position of the item with the given ID, or -1
func (c Catalog) IndexOf(id string) int {
	for i, item := range c.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Titles returns the display titles of all items in order
func (c Catalog) Titles() []string {
	titles := make([]string, len(c.Items))
	for i, item := range c.Items {
		titles[i] = item.DisplayTitle()
	}
	return titles
}
