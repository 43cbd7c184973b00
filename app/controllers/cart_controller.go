package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/store"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
	"github.com/shashiranjanraj/quickstationery/pkg/session"
)

type CartController struct {
	chrome
	checkout *services.CheckoutService
}

func NewCartController(auth *services.AuthService, cart *services.CartService, checkout *services.CheckoutService) *CartController {
	return &CartController{
		chrome:   chrome{auth: auth, cart: cart},
		checkout: checkout,
	}
}

type cartPage struct {
	views.Base
	Items   []models.CartItem
	Total   int
	Message string
}

// Show renders the cart with line items, totals and any pending message.
// A corrupt cart record renders as an empty cart with an inline notice
// instead of failing the page.
func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	c.show(w, r, "")
}

func (c *CartController) show(w http.ResponseWriter, r *http.Request, message string) {
	items, err := c.cart.Items()
	if err != nil {
		logger.WithCtx(r.Context()).Warn("cart: items unreadable", "error", err)
		if errors.Is(err, store.ErrRecordParse) && message == "" {
			message = "Your saved cart could not be read and was treated as empty."
		}
		items = nil
	}

	total, err := c.cart.Total()
	if err != nil {
		total = 0
	}

	render(r, w, "cart.html", cartPage{
		Base:    c.base(r, "Cart", "cart"),
		Items:   items,
		Total:   total,
		Message: message,
	})
}

// Add handles the Add button on the shop page.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	if err := c.cart.Add(r.PostFormValue("id")); err != nil {
		logger.WithCtx(r.Context()).Error("cart: add failed", "error", err)
	}

	redirectBack(w, r)
}

// Change handles the +/−/remove controls. delta=-999 is the remove button.
func (c *CartController) Change(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	delta, err := strconv.Atoi(r.PostFormValue("delta"))
	if err != nil {
		redirectBack(w, r)
		return
	}

	if err := c.cart.ChangeQty(r.PostFormValue("id"), delta); err != nil {
		logger.WithCtx(r.Context()).Error("cart: change failed", "error", err)
	}

	redirectBack(w, r)
}

// Checkout places the order. An empty cart re-renders the cart page with a
// message; an anonymous user is sent to the login page, cart untouched.
func (c *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	order, err := c.checkout.Checkout()
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		c.show(w, r, "Cart is empty. Add some items first.")
		return
	case errors.Is(err, services.ErrNotAuthenticated):
		sess := session.FromCtx(r)
		sess.Flash(flashAuthMessage, "Please log in or sign up before placing an order.")
		_ = sess.Save(w)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		logger.WithCtx(r.Context()).Error("checkout failed", "error", err)
		c.show(w, r, "Something went wrong placing your order. Please try again.")
		return
	}

	logger.WithCtx(r.Context()).Info("order placed", "order_id", order.ID, "total", order.Total)
	http.Redirect(w, r, "/order-success", http.StatusSeeOther)
}

// redirectBack returns to the page the mutation came from: the shop keeps
// the user browsing, everything else lands on the cart.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := "/cart"
	if r.PostFormValue("back") == "shop" {
		target = "/shop"
		if ref := r.Header.Get("Referer"); ref != "" {
			target = ref // keep the active filter and query
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
