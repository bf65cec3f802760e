package owned

import (
	"sync"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// RecentStore marks the product created most recently in this process. It is
// deliberately not persisted: a restart clears it, and each creation
// supersedes the previous pointer.
type RecentStore struct {
	mu      sync.Mutex
	product *catalog.Product
}

// NewRecentStore constructs an empty pointer.
func NewRecentStore() *RecentStore {
	return &RecentStore{}
}

// Set replaces the pointer.
func (s *RecentStore) Set(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = &product
}

// Clear drops the pointer.
func (s *RecentStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = nil
}

// Recent returns a copy of the pointer, or nil when unset.
func (s *RecentStore) Recent() *catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.product == nil {
		return nil
	}
	p := *s.product
	return &p
}
