package domain

// CartLine is the persisted (product, quantity) pair inside a user's cart.
// A quantity of zero is never stored; the line is removed instead.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// CartItem is a CartLine joined with its product's catalog fields. Derived on
// every read, never persisted.
type CartItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Cost      int64  `json:"cost"`
	Rating    int    `json:"rating"`
	ImageURL  string `json:"image"`
	Quantity  int    `json:"qty"`
}
