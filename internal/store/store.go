package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/reel/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketFocus = []byte("focus")
)

// focusRecord is the persisted value for one carousel
type focusRecord struct {
	ItemID    string `json:"item_id"`
	UpdatedAt int64  `json:"updated_at"`
}

// FocusStore implements domain.FocusStore using BoltDB.
type FocusStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte

	now func() time.Time
}

var _ domain.FocusStore = (*FocusStore)(nil)

// NewFocusStore opens (or creates) the focus database under dir. An empty
// dir gives a memory-only store.
func NewFocusStore(dir string) (*FocusStore, error) {
	if dir == "" {
		// Memory-only mode (no persistence)
		return &FocusStore{cache: make(map[string][]byte), now: time.Now}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "reel.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFocus)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &FocusStore{db: db, cache: make(map[string][]byte), now: time.Now}, nil
}

func (s *FocusStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// === Generic helpers ===

func (s *FocusStore) get(bucket []byte, key string, dest interface{}) bool {
	cacheKey := string(bucket) + ":" + key

	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[cacheKey]; ok {
		s.mu.RUnlock()
		return json.Unmarshal(data, dest) == nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})

	if data == nil {
		return false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	return json.Unmarshal(data, dest) == nil
}

func (s *FocusStore) set(bucket []byte, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	s.cache[cacheKey] = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

func (s *FocusStore) delete(bucket []byte, key string) error {
	cacheKey := string(bucket) + ":" + key

	s.mu.Lock()
	delete(s.cache, cacheKey)
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}

// === Focus ===

// GetFocus returns the item ID last focused in the carousel identified by key
func (s *FocusStore) GetFocus(key string) (string, bool) {
	var rec focusRecord
	if !s.get(bucketFocus, key, &rec) || rec.ItemID == "" {
		return "", false
	}
	return rec.ItemID, true
}

// SaveFocus records itemID as the focused item for key
func (s *FocusStore) SaveFocus(key, itemID string) error {
	return s.set(bucketFocus, key, focusRecord{ItemID: itemID, UpdatedAt: s.now().Unix()})
}

// ClearFocus forgets the focus for key
func (s *FocusStore) ClearFocus(key string) error {
	return s.delete(bucketFocus, key)
}
