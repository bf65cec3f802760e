package catalog

import "fmt"

// SortOrder selects price ordering for product listings.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder normalises a query-string sort value, defaulting to ascending.
func ParseSortOrder(s string) SortOrder {
	if s == string(SortDesc) {
		return SortDesc
	}
	return SortAsc
}

// Rating is the upstream review summary attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is the canonical catalog entity. ID is the identity this client
// uses everywhere (cart keys, wishlist keys, routes). For products authored
// locally, ID is a synthetic id and APIID carries the id the upstream API
// assigned on create; upstream writes must address APIID when present.
type Product struct {
	ID          int64   `json:"id"`
	APIID       int64   `json:"apiId,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// RemoteID returns the id to use when addressing the upstream API.
func (p Product) RemoteID() int64 {
	if p.APIID != 0 {
		return p.APIID
	}
	return p.ID
}

// ListQuery carries the URL-derived parameters consumed by the list composer.
type ListQuery struct {
	Category string
	Sort     SortOrder
	Page     int
	Search   string
}

// CacheKey identifies the upstream page this query resolves against.
// Search and page are applied client-side and do not fragment the cache.
func (q ListQuery) CacheKey() string {
	category := q.Category
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("catalog:page:%s:%s", category, q.Sort)
}

// Page is the composed, paginated read model rendered by list consumers.
type Page struct {
	Items       []Product `json:"items"`
	TotalCount  int       `json:"totalCount"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}

// CreateProductRequest is the validated payload for an upstream create.
type CreateProductRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0,lte=1000"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image" validate:"required,url"`
}

// UpdateProductRequest is a partial payload; nil fields are left untouched.
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty" validate:"omitempty,url"`
}
