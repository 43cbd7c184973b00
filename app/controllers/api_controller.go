package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/catalog"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
	"github.com/shashiranjanraj/quickstationery/pkg/response"
)

// ApiController exposes the catalog and cart badge as JSON, mirroring what
// the pages render server-side.
type ApiController struct {
	cart *services.CartService
}

func NewApiController(cart *services.CartService) *ApiController {
	return &ApiController{cart: cart}
}

// Products lists the catalog, optionally filtered by ?category= and ?q=.
func (c *ApiController) Products(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = catalog.CategoryAll
	}
	query := r.URL.Query().Get("q")

	response.Success(w, catalog.Filter(category, query))
}

// CartCount returns the header badge value.
func (c *ApiController) CartCount(w http.ResponseWriter, r *http.Request) {
	count, err := c.cart.Count()
	if err != nil {
		logger.WithCtx(r.Context()).Warn("api: cart count unreadable", "error", err)
	}

	response.Success(w, map[string]int{"count": count})
}
