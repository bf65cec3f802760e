package wishlist

import (
	"context"

	"github.com/bosta-shop/bosta/internal/platform/blob"
)

const storageKey = "bosta:wishlist"

// Repository persists the wishlist collection.
type Repository interface {
	Load(ctx context.Context) ([]Item, bool)
	Save(ctx context.Context, items []Item) error
}

type blobRepository struct {
	store *blob.Store
}

// NewRepository builds a Repository over the shared blob store.
func NewRepository(store *blob.Store) Repository {
	return &blobRepository{store: store}
}

func (r *blobRepository) Load(ctx context.Context) ([]Item, bool) {
	var items []Item
	if !r.store.Load(ctx, storageKey, &items) {
		return nil, false
	}
	return items, true
}

func (r *blobRepository) Save(ctx context.Context, items []Item) error {
	return r.store.Save(ctx, storageKey, items)
}
