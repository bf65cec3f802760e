package catalog

import "context"

// Warmer refreshes the cached default listing page and the category list.
// It needs only the upstream client and the cache, so the background worker
// can run it without the full read-model wiring.
type Warmer struct {
	client *Client
	cache  *Cache
}

// NewWarmer constructs a Warmer.
func NewWarmer(client *Client, cache *Cache) *Warmer {
	return &Warmer{client: client, cache: cache}
}

// Warm fetches the default page and the categories into the cache.
func (w *Warmer) Warm(ctx context.Context) error {
	products, err := w.client.ListProducts(ctx, 0, SortAsc)
	if err != nil {
		return err
	}
	w.cache.SetPage(ctx, ListQuery{Sort: SortAsc}.CacheKey(), products)

	categories, err := w.client.ListCategories(ctx)
	if err != nil {
		return err
	}
	w.cache.SetCategories(ctx, categories)
	return nil
}
