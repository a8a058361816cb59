package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrItemNotFound indicates the requested catalog item does not exist
	ErrItemNotFound = errors.New("catalog item not found")

	// ErrEmptyCatalog indicates a catalog has no visible items
	ErrEmptyCatalog = errors.New("catalog has no items")
)
