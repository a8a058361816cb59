package domain

// FocusStore persists which item each carousel was focused on, so focus
// survives restarts. Keys identify a carousel (usually the catalog name).
type FocusStore interface {
	GetFocus(key string) (itemID string, ok bool)
	SaveFocus(key, itemID string) error
	ClearFocus(key string) error

	Close() error
}
