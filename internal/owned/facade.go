package owned

import (
	"context"
	"strings"

	"github.com/bosta-shop/bosta/internal/catalog"
)

// CatalogAPI is the slice of the upstream client the facade writes through.
type CatalogAPI interface {
	CreateProduct(ctx context.Context, req catalog.CreateProductRequest) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id int64, req catalog.UpdateProductRequest) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// WishlistCleaner removes wishlist entries during cross-store cleanup.
type WishlistCleaner interface {
	RemoveItem(ctx context.Context, productID int64)
}

// Facade composes an upstream write with the local store mutations it
// implies, so create/update/delete look atomic from the caller's side.
// The upstream is the source of truth for whether a write happened: local
// state changes only after the upstream call succeeds, and an upstream
// failure leaves every store untouched.
type Facade struct {
	api      CatalogAPI
	store    *Store
	recent   *RecentStore
	wishlist WishlistCleaner
}

// NewFacade constructs the my-product lifecycle facade.
func NewFacade(api CatalogAPI, store *Store, recent *RecentStore, wishlist WishlistCleaner) *Facade {
	return &Facade{api: api, store: store, recent: recent, wishlist: wishlist}
}

// Create submits the payload upstream and, on success, records the result as
// an owned product under a fresh synthetic id, remembering the upstream id
// for later writes, and publishes it as the recent product.
func (f *Facade) Create(ctx context.Context, req catalog.CreateProductRequest) (*catalog.Product, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Image = strings.TrimSpace(req.Image)

	created, err := f.api.CreateProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	product := *created
	product.ID = NextSyntheticID()
	product.APIID = created.ID
	// The upstream echoes the payload back, but keep the normalized request
	// fields authoritative in case it rewrites them.
	product.Title = req.Title
	product.Description = req.Description
	product.Price = req.Price
	product.Category = req.Category
	product.Image = req.Image

	f.store.AddProduct(ctx, product)
	f.recent.Set(product)
	return &product, nil
}

// Update writes the partial payload upstream, addressed at the product's
// upstream id, then layers the upstream result and the requested updates over
// the existing copy (requested updates win) under the unchanged local id.
func (f *Facade) Update(ctx context.Context, product catalog.Product, updates catalog.UpdateProductRequest) (*catalog.Product, error) {
	remote, err := f.api.UpdateProduct(ctx, product.RemoteID(), updates)
	if err != nil {
		return nil, err
	}

	merged := product
	if remote != nil {
		merged = mergeProduct(merged, catalog.Product{
			ID:          product.ID,
			Title:       remote.Title,
			Description: remote.Description,
			Price:       remote.Price,
			Category:    remote.Category,
			Image:       remote.Image,
			Rating:      remote.Rating,
		})
	}
	applyUpdates(&merged, updates)
	merged.ID = product.ID
	if merged.APIID == 0 && remote != nil {
		merged.APIID = remote.ID
	}

	f.store.UpdateProduct(ctx, product.ID, merged)
	return &merged, nil
}

// Delete removes the product upstream, then from the owned store and from
// the wishlist, so a deleted product cannot linger anywhere locally.
func (f *Facade) Delete(ctx context.Context, product catalog.Product) error {
	if err := f.api.DeleteProduct(ctx, product.RemoteID()); err != nil {
		return err
	}
	f.store.RemoveProduct(ctx, product.ID)
	if f.wishlist != nil {
		f.wishlist.RemoveItem(ctx, product.ID)
	}
	return nil
}

func applyUpdates(p *catalog.Product, updates catalog.UpdateProductRequest) {
	if updates.Title != nil {
		p.Title = strings.TrimSpace(*updates.Title)
	}
	if updates.Description != nil {
		p.Description = strings.TrimSpace(*updates.Description)
	}
	if updates.Price != nil {
		p.Price = *updates.Price
	}
	if updates.Category != nil {
		p.Category = *updates.Category
	}
	if updates.Image != nil {
		p.Image = strings.TrimSpace(*updates.Image)
	}
}
