// Package services holds the shop's state-transition logic: cart mutations,
// signup/login, and checkout. Services are pure of any HTTP or template
// concern so the page controllers stay thin and the rules stay unit-testable.
package services

import (
	"sync"

	"github.com/shashiranjanraj/quickstationery/app/catalog"
	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/repositories"
	"github.com/shashiranjanraj/quickstationery/pkg/collection"
	"github.com/shashiranjanraj/quickstationery/pkg/event"
)

// EventCartUpdated fires after every cart mutation; payload is the new
// item count (the header badge value).
const EventCartUpdated = "cart.updated"

// CartService mutates the cart record. The mutex serializes the
// read-modify-write cycle: handlers run concurrently, record writes are
// whole-record, and two interleaved mutations would otherwise lose one.
type CartService struct {
	mu   sync.Mutex
	repo *repositories.CartRepository
}

func NewCartService(repo *repositories.CartRepository) *CartService {
	return &CartService{repo: repo}
}

// Add puts one unit of the product in the cart. Unknown product ids are a
// silent no-op. An existing line gains a unit; a new line snapshots the
// product's name and price at this instant.
func (s *CartService) Add(productID string) error {
	product, ok := catalog.Find(productID)
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Get()
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.CartItem{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
			Qty:   1,
		})
	}

	return s.save(items)
}

// ChangeQty adjusts a line's quantity by delta. A missing line is a no-op.
// A quantity at or below zero removes the line entirely, so a large negative
// delta doubles as explicit removal.
func (s *CartService) ChangeQty(productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.Get()
	if err != nil {
		return err
	}

	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Qty += delta
			changed = true
			break
		}
	}
	if !changed {
		return nil
	}

	items = collection.Reject(items, func(i models.CartItem) bool {
		return i.Qty <= 0
	})
	return s.save(items)
}

// Clear empties the cart.
func (s *CartService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(nil)
}

// Items returns the cart lines in insertion order.
func (s *CartService) Items() ([]models.CartItem, error) {
	return s.repo.Get()
}

// Total is the sum of price times quantity across all lines.
func (s *CartService) Total() (int, error) {
	items, err := s.repo.Get()
	if err != nil {
		return 0, err
	}
	return collection.SumInt(items, models.CartItem.LineTotal), nil
}

// Count is the sum of quantities across all lines (the header badge).
func (s *CartService) Count() (int, error) {
	items, err := s.repo.Get()
	if err != nil {
		return 0, err
	}
	return countOf(items), nil
}

// Qty returns the quantity of one product in the cart, 0 when absent.
// The shop page uses it to decide between an Add button and +/- controls.
func (s *CartService) Qty(productID string) (int, error) {
	items, err := s.repo.Get()
	if err != nil {
		return 0, err
	}
	line, ok := collection.First(items, func(i models.CartItem) bool {
		return i.ID == productID
	})
	if !ok {
		return 0, nil
	}
	return line.Qty, nil
}

func (s *CartService) save(items []models.CartItem) error {
	if err := s.repo.Save(items); err != nil {
		return err
	}
	event.Fire(EventCartUpdated, countOf(items))
	return nil
}

func countOf(items []models.CartItem) int {
	return collection.SumInt(items, func(i models.CartItem) int { return i.Qty })
}
