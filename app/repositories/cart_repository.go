package repositories

import (
	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/store"
)

// CartRepository handles the cart record: the full line-item list, replaced
// on every mutation.
type CartRepository struct {
	store *store.Store
}

func NewCartRepository(st *store.Store) *CartRepository {
	return &CartRepository{store: st}
}

// Get returns the cart lines; an absent record is an empty cart.
func (r *CartRepository) Get() ([]models.CartItem, error) {
	var items []models.CartItem
	if _, err := r.store.ReadRecord(store.KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Save replaces the whole cart record.
func (r *CartRepository) Save(items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	return r.store.WriteRecord(store.KeyCart, items)
}
