package owned

import (
	"context"

	"github.com/bosta-shop/bosta/internal/catalog"
	"github.com/bosta-shop/bosta/internal/platform/blob"
)

const storageKey = "bosta:owned-products"

// Repository persists the owned product collection.
type Repository interface {
	Load(ctx context.Context) ([]catalog.Product, bool)
	Save(ctx context.Context, products []catalog.Product) error
}

type blobRepository struct {
	store *blob.Store
}

// NewRepository builds a Repository over the shared blob store.
func NewRepository(store *blob.Store) Repository {
	return &blobRepository{store: store}
}

func (r *blobRepository) Load(ctx context.Context) ([]catalog.Product, bool) {
	var products []catalog.Product
	if !r.store.Load(ctx, storageKey, &products) {
		return nil, false
	}
	return products, true
}

func (r *blobRepository) Save(ctx context.Context, products []catalog.Product) error {
	return r.store.Save(ctx, storageKey, products)
}
