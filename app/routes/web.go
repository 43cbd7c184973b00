// Package routes maps the storefront's pages and JSON endpoints onto the
// named-route router. Registration takes the already-built controllers so
// the route table stays free of wiring concerns.
package routes

import (
	"github.com/shashiranjanraj/quickstationery/app/controllers"
	"github.com/shashiranjanraj/quickstationery/pkg/router"
)

// Controllers holds every page controller the route table needs.
type Controllers struct {
	Home    *controllers.HomeController
	Shop    *controllers.ShopController
	Cart    *controllers.CartController
	Auth    *controllers.AuthController
	Profile *controllers.ProfileController
	Order   *controllers.OrderController
	Api     *controllers.ApiController
}

// RegisterWeb mounts the storefront pages.
func RegisterWeb(r *router.Router, c Controllers) {
	r.Get("/", "home", c.Home.Show)
	r.Post("/search", "home.search", c.Home.Search)
	r.Get("/category/{category}", "home.category", c.Home.Category)

	r.Get("/shop", "shop", c.Shop.Index)

	r.Get("/cart", "cart", c.Cart.Show)
	r.Post("/cart/add", "cart.add", c.Cart.Add)
	r.Post("/cart/change", "cart.change", c.Cart.Change)
	r.Post("/checkout", "cart.checkout", c.Cart.Checkout)
	r.Get("/order-success", "order.success", c.Order.Success)

	r.Get("/login", "auth.login", c.Auth.ShowLogin)
	r.Post("/login", "auth.login.submit", c.Auth.Login)
	r.Get("/signup", "auth.signup", c.Auth.ShowSignup)
	r.Post("/signup", "auth.signup.submit", c.Auth.Signup)
	r.Post("/logout", "auth.logout", c.Auth.Logout)

	r.Get("/profile", "profile", c.Profile.Show)
}

// RegisterAPI mounts the JSON mirrors of the page state.
func RegisterAPI(r *router.Router, c Controllers) {
	api := r.Group("/api")
	api.Get("/products", "api.products", c.Api.Products)
	api.Get("/cart/count", "api.cart.count", c.Api.CartCount)
}
