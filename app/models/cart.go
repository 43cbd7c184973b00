package models

// CartItem is a line entry in the shopping cart. Name and price are copied
// from the catalogue when the line is first added, so later catalogue edits
// never change lines already in a cart.
type CartItem struct {
	ID    string `json:"id"` // product id
	Name  string `json:"name"`
	Price int    `json:"price"`
	Qty   int    `json:"qty"` // always >= 1 while the line exists
}

// LineTotal is price times quantity for this line.
func (i CartItem) LineTotal() int {
	return i.Price * i.Qty
}
