package services

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/repositories"
	"github.com/shashiranjanraj/quickstationery/pkg/event"
)

// EventOrderPlaced fires after a successful checkout; payload is the Order.
const EventOrderPlaced = "order.placed"

var (
	// ErrEmptyCart is returned by Checkout when there is nothing to order.
	ErrEmptyCart = errors.New("checkout: cart is empty")

	// ErrNotAuthenticated is returned by Checkout when no user is signed in;
	// the controller redirects to the login page.
	ErrNotAuthenticated = errors.New("checkout: not signed in")
)

// CheckoutService turns the current cart into the last-order record.
type CheckoutService struct {
	cart   *CartService
	auth   *AuthService
	orders *repositories.OrderRepository
	now    func() time.Time
}

func NewCheckoutService(cart *CartService, auth *AuthService, orders *repositories.OrderRepository) *CheckoutService {
	return &CheckoutService{cart: cart, auth: auth, orders: orders, now: time.Now}
}

// Checkout validates cart and session, persists the order (overwriting any
// previous one) and clears the cart. Order then cart-clear is best effort,
// not a transaction: a failure between the two leaves the order placed with
// the cart intact, matching the original shop's behaviour.
func (s *CheckoutService) Checkout() (models.Order, error) {
	total, err := s.cart.Total()
	if err != nil {
		return models.Order{}, err
	}

	count, err := s.cart.Count()
	if err != nil {
		return models.Order{}, err
	}
	if count == 0 {
		return models.Order{}, ErrEmptyCart
	}

	user, err := s.auth.Current()
	if err != nil {
		return models.Order{}, err
	}
	if user == nil {
		return models.Order{}, ErrNotAuthenticated
	}

	order := models.Order{
		ID:        newOrderToken(),
		Total:     total,
		Timestamp: s.now().UnixMilli(),
	}

	if err := s.orders.Save(order); err != nil {
		return models.Order{}, err
	}
	if err := s.cart.Clear(); err != nil {
		return models.Order{}, err
	}

	event.Fire(EventOrderPlaced, order)
	return order, nil
}

// LastOrder returns the most recent order, or nil when none exists.
func (s *CheckoutService) LastOrder() (*models.Order, error) {
	return s.orders.Last()
}

// newOrderToken builds a display token like QS482913. It is a receipt
// number for the confirmation page, not a unique identifier; collisions
// are possible and acceptable.
func newOrderToken() string {
	return fmt.Sprintf("QS%d", rand.Intn(1_000_000))
}
