package wishlist

import "github.com/bosta-shop/bosta/internal/catalog"

// Item is one wishlist entry, a denormalized product summary. Membership has
// set semantics: at most one entry per product id.
type Item struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
}

func toItem(p catalog.Product) Item {
	return Item{
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.Image,
		Price:     p.Price,
	}
}
