package cart

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// Service is the cart store: the in-memory collection is authoritative, and
// every mutation is written through the repository. Mutations take the lock
// for their whole read-modify-write so concurrent calls never interleave on
// stale state.
type Service struct {
	mu     sync.Mutex
	items  []Item
	repo   Repository
	logger *slog.Logger
}

// NewService constructs the cart store, hydrating once from persistence.
// Missing or corrupt persisted state hydrates as an empty cart.
func NewService(ctx context.Context, repo Repository, logger *slog.Logger) *Service {
	s := &Service{repo: repo, logger: logger}
	if items, ok := repo.Load(ctx); ok {
		s.items = items
	}
	return s
}

// AddItem inserts a line for the product, snapshotting title/image/price, or
// increments the existing line's quantity when the product is already carted.
func (s *Service) AddItem(ctx context.Context, product catalog.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ProductID == product.ID {
			s.items[i].Quantity += quantity
			s.persist(ctx)
			return
		}
	}
	s.items = append(s.items, Item{
		ProductID: product.ID,
		Title:     product.Title,
		Image:     product.Image,
		Price:     product.Price,
		Quantity:  quantity,
	})
	s.persist(ctx)
}

// UpdateQuantity replaces the line's quantity. A quantity below one removes
// the line entirely; the cart never stores a zero or negative quantity.
func (s *Service) UpdateQuantity(ctx context.Context, productID int64, quantity int) {
	if quantity < 1 {
		s.RemoveItem(ctx, productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item.ProductID == productID {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// RemoveItem deletes the line for productID, a no-op when absent.
func (s *Service) RemoveItem(ctx context.Context, productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(s.items) {
		return
	}
	s.items = kept
	s.persist(ctx)
}

// Items returns a copy of the current lines.
func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Total sums price times quantity over all lines, computed on demand.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount sums quantities over all lines.
func (s *Service) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// persist writes through to storage. Failures are logged and swallowed so
// the cart stays usable when persistence is unavailable. Callers hold mu.
func (s *Service) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.items); err != nil && s.logger != nil {
		s.logger.Warn("persist cart", slog.Any("error", err))
	}
}
