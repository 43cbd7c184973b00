package models

// Product is one entry in the static catalogue.
// Prices are whole rupees; there are no fractional amounts anywhere.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
}
