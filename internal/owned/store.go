package owned

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// Store holds the products authored by this client, newest first. An entry
// here is authoritative over any upstream copy sharing the same id.
type Store struct {
	mu     sync.Mutex
	items  []catalog.Product
	repo   Repository
	logger *slog.Logger
}

// NewStore constructs the owned-products store, hydrating once from
// persistence.
func NewStore(ctx context.Context, repo Repository, logger *slog.Logger) *Store {
	s := &Store{repo: repo, logger: logger}
	if items, ok := repo.Load(ctx); ok {
		s.items = items
	}
	return s
}

// AddProduct prepends the product. When an entry with the same id already
// exists its fields are overwritten in place and the ordering is kept.
func (s *Store) AddProduct(ctx context.Context, product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == product.ID {
			s.items[i] = mergeProduct(p, product)
			s.persist(ctx)
			return
		}
	}
	s.items = append([]catalog.Product{product}, s.items...)
	s.persist(ctx)
}

// UpdateProduct shallow-merges updates onto the entry with the given id,
// a no-op when the id is not owned.
func (s *Store) UpdateProduct(ctx context.Context, id int64, updates catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == id {
			updates.ID = id
			s.items[i] = mergeProduct(p, updates)
			s.persist(ctx)
			return
		}
	}
}

// RemoveProduct deletes the entry with the given id, a no-op when absent.
func (s *Store) RemoveProduct(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Products returns a copy of the owned collection, newest first.
func (s *Store) Products() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]catalog.Product, len(s.items))
	copy(products, s.items)
	return products
}

// Get returns the owned entry for id, if any.
func (s *Store) Get(id int64) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.items {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// mergeProduct overlays next onto prev field by field, keeping prev's value
// wherever next left a field zero. The id always comes from next.
func mergeProduct(prev, next catalog.Product) catalog.Product {
	merged := next
	if merged.APIID == 0 {
		merged.APIID = prev.APIID
	}
	if merged.Title == "" {
		merged.Title = prev.Title
	}
	if merged.Description == "" {
		merged.Description = prev.Description
	}
	if merged.Price == 0 {
		merged.Price = prev.Price
	}
	if merged.Category == "" {
		merged.Category = prev.Category
	}
	if merged.Image == "" {
		merged.Image = prev.Image
	}
	if merged.Rating == nil {
		merged.Rating = prev.Rating
	}
	return merged
}

func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.items); err != nil && s.logger != nil {
		s.logger.Warn("persist owned products", slog.Any("error", err))
	}
}
