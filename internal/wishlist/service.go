package wishlist

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// Service is the wishlist store. Same write-through discipline as the cart:
// mutations hold the lock end to end and persist before returning.
type Service struct {
	mu     sync.Mutex
	items  []Item
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the wishlist store, hydrating once from persistence.
func NewService(ctx context.Context, repo Repository, logger *slog.Logger) *Service {
	s := &Service{repo: repo, logger: logger}
	if items, ok := repo.Load(ctx); ok {
		s.items = items
	}
	return s
}

// AddItem inserts the product unless it is already wishlisted.
func (s *Service) AddItem(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(ctx, product)
}

// RemoveItem deletes the entry for productID, a no-op when absent.
func (s *Service) RemoveItem(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, productID)
}

// ToggleItem removes the product when present, adds it when absent. Exactly
// one of the two happens per call.
func (s *Service) ToggleItem(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(product.ID) >= 0 {
		s.removeLocked(ctx, product.ID)
		return
	}
	s.addLocked(ctx, product)
}

// IsInWishlist reports membership for productID.
func (s *Service) IsInWishlist(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(productID) >= 0
}

// Items returns a copy of the current entries.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Count returns the number of entries.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Service) addLocked(ctx context.Context, product catalog.Product) {
	if s.indexOf(product.ID) >= 0 {
		return
	}
	s.items = append(s.items, toItem(product))
	s.persist(ctx)
}

func (s *Service) removeLocked(ctx context.Context, productID int64) {
	at := s.indexOf(productID)
	if at < 0 {
		return
	}
	s.items = append(s.items[:at], s.items[at+1:]...)
	s.persist(ctx)
}

func (s *Service) indexOf(productID int64) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s *Service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.items); err != nil && s.logger != nil {
		s.logger.Warn("persist wishlist", slog.Any("error", err))
	}
}
