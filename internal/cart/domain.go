package cart

// Item is one cart line. Title, image and price are snapshots taken when the
// product was added; later edits to the product do not flow back into lines
// already in the cart.
type Item struct {
	ProductID int64   `json:"productId"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}
