package controllers

import (
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
)

type ProfileController struct {
	chrome
	orders *services.CheckoutService
}

func NewProfileController(auth *services.AuthService, cart *services.CartService, orders *services.CheckoutService) *ProfileController {
	return &ProfileController{chrome{auth: auth, cart: cart}, orders}
}

type profilePage struct {
	views.Base
	Greeting  string
	LastOrder *models.Order
}

// Show renders the profile greeting and, for signed-in users, the most
// recent order. Anonymous visitors get a prompt instead of a redirect.
func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	base := c.base(r, "Profile", "profile")

	page := profilePage{
		Base:     base,
		Greeting: "You are not logged in. Please log in to view your profile.",
	}
	if base.User != nil {
		page.Greeting = fmt.Sprintf("Hi, %s. This is your QuickStationery profile.", base.User.Name)

		order, err := c.orders.LastOrder()
		if err != nil {
			logger.WithCtx(r.Context()).Warn("profile: last order unreadable", "error", err)
		}
		page.LastOrder = order
	}

	render(r, w, "profile.html", page)
}
