package repositories

import (
	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/store"
)

// OrderRepository handles the last-order record. Only the most recent order
// is kept; saving overwrites whatever was there.
type OrderRepository struct {
	store *store.Store
}

func NewOrderRepository(st *store.Store) *OrderRepository {
	return &OrderRepository{store: st}
}

// Last returns the most recent order, or nil when none has been placed.
func (r *OrderRepository) Last() (*models.Order, error) {
	var order *models.Order
	ok, err := r.store.ReadRecord(store.KeyLastOrder, &order)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return order, nil
}

// Save overwrites the last-order record.
func (r *OrderRepository) Save(order models.Order) error {
	return r.store.WriteRecord(store.KeyLastOrder, order)
}
