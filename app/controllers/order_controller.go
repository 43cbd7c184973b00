package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
)

type OrderController struct {
	chrome
	orders *services.CheckoutService
}

func NewOrderController(auth *services.AuthService, cart *services.CartService, orders *services.CheckoutService) *OrderController {
	return &OrderController{chrome{auth: auth, cart: cart}, orders}
}

type orderSuccessPage struct {
	views.Base
	Order *models.Order
}

// Success is the post-checkout confirmation page. Opening it without a
// recorded order just shows the page without an order card.
func (c *OrderController) Success(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.LastOrder()
	if err != nil {
		logger.WithCtx(r.Context()).Warn("order: last order unreadable", "error", err)
	}

	render(r, w, "order-success.html", orderSuccessPage{
		Base:  c.base(r, "Order placed", "order-success"),
		Order: order,
	})
}
