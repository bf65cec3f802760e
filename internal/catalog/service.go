package catalog

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// OwnedSource exposes the client's owned products to the composers without
// binding the catalog to a concrete store.
type OwnedSource interface {
	Products() []Product
	Get(id int64) (Product, bool)
}

// RecentSource exposes the ephemeral just-created pointer.
type RecentSource interface {
	Recent() *Product
}

// Service resolves the composed read models: the merged listing page and the
// effective single product. Upstream pages are cached by (category, sort)
// and concurrent fetches for the same key are coalesced, so at most one
// upstream call is in flight per key.
type Service struct {
	client *Client
	cache  *Cache
	owned  OwnedSource
	recent RecentSource

	group singleflight.Group

	mu       sync.Mutex
	resolved map[int64]bool
}

// NewService constructs the catalog service.
func NewService(client *Client, cache *Cache, owned OwnedSource, recent RecentSource) *Service {
	return &Service{
		client:   client,
		cache:    cache,
		owned:    owned,
		recent:   recent,
		resolved: make(map[int64]bool),
	}
}

// ListPage returns the composed page for the query: upstream page merged
// with owned products, sorted, filtered, paginated and recency-promoted.
// Upstream failure propagates; a failed fetch is an error state, never an
// empty listing.
func (s *Service) ListPage(ctx context.Context, q ListQuery) (Page, error) {
	remote, err := s.fetchPage(ctx, q)
	if err != nil {
		return Page{}, err
	}
	var recent *Product
	if s.recent != nil {
		recent = s.recent.Recent()
	}
	return ComposePage(remote, s.owned.Products(), q, recent), nil
}

// fetchPage loads the upstream page for (category, sort), consulting the
// cache first and coalescing concurrent misses for the same key.
func (s *Service) fetchPage(ctx context.Context, q ListQuery) ([]Product, error) {
	key := q.CacheKey()
	if products, ok := s.cache.GetPage(ctx, key); ok {
		return products, nil
	}

	// The shared fetch runs detached from the triggering caller so that one
	// caller cancelling does not abort the request out from under coalesced
	// peers. The client's own timeout still bounds the detached request.
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		var (
			products []Product
			err      error
		)
		if q.Category != "" {
			products, err = s.client.ListProductsByCategory(fetchCtx, q.Category, q.Sort)
		} else {
			products, err = s.client.ListProducts(fetchCtx, 0, q.Sort)
		}
		if err != nil {
			return nil, err
		}
		s.cache.SetPage(fetchCtx, key, products)
		return products, nil
	})

	// Results are bound to the cache key they were requested under; a caller
	// that navigates away simply stops waiting, it never receives a page for
	// some other key.
	select {
	case <-ctx.Done():
		return nil, &APIError{Message: ctx.Err().Error()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Product), nil
	}
}

// EffectiveProduct resolves the single product shown for id, applying source
// precedence: owned copy, then the caller-supplied prefetched copy, then an
// upstream fetch with bounded retry.
//
// An owned copy suppresses the upstream fetch entirely. A prefetched copy
// suppresses it only the first time the id is resolved, so a flaky upstream
// cannot overwrite a known-good value on initial render; later resolutions
// refresh normally.
func (s *Service) EffectiveProduct(ctx context.Context, id int64, initial *Product) (*Product, error) {
	if owned, ok := s.owned.Get(id); ok {
		return &owned, nil
	}

	if initial != nil && s.firstResolution(id) {
		return initial, nil
	}

	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(fmt.Sprintf("product:%d", id), func() (any, error) {
		return s.client.GetProductWithRetry(fetchCtx, id)
	})
	select {
	case <-ctx.Done():
		return nil, &APIError{Message: ctx.Err().Error()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Product), nil
	}
}

// Categories returns the upstream category names, cached.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	if categories, ok := s.cache.GetCategories(ctx); ok {
		return categories, nil
	}
	fetchCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("categories", func() (any, error) {
		categories, err := s.client.ListCategories(fetchCtx)
		if err != nil {
			return nil, err
		}
		s.cache.SetCategories(fetchCtx, categories)
		return categories, nil
	})
	select {
	case <-ctx.Done():
		return nil, &APIError{Message: ctx.Err().Error()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]string), nil
	}
}

func (s *Service) firstResolution(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved[id] {
		return false
	}
	s.resolved[id] = true
	return true
}
