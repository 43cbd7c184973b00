package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/catalog"
	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
	"github.com/shashiranjanraj/quickstationery/pkg/session"
)

type ShopController struct {
	chrome
}

func NewShopController(auth *services.AuthService, cart *services.CartService) *ShopController {
	return &ShopController{chrome{auth: auth, cart: cart}}
}

type shopProduct struct {
	models.Product
	InCartQty int
}

type shopPage struct {
	views.Base
	Query      string
	Category   string
	Categories []string
	Products   []shopProduct
}

// Index renders the catalogue filtered by category and query. Explicit URL
// params win; otherwise a query or category flashed by the home page is
// consumed. The filter is recomputed from scratch on every request.
func (c *ShopController) Index(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)

	query := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	if query == "" {
		if q, ok := sess.GetFlashString(flashSearchQuery); ok {
			query = q
		}
	}
	if category == "" {
		if cat, ok := sess.GetFlashString(flashCategory); ok {
			category = cat
		}
	}
	if category == "" {
		category = catalog.CategoryAll
	}
	_ = sess.Save(w)

	products := catalog.Filter(category, query)

	items := make([]shopProduct, 0, len(products))
	for _, p := range products {
		qty, err := c.cart.Qty(p.ID)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("shop: cart qty unreadable", "product", p.ID, "error", err)
		}
		items = append(items, shopProduct{Product: p, InCartQty: qty})
	}

	render(r, w, "shop.html", shopPage{
		Base:       c.base(r, "Shop", "shop"),
		Query:      query,
		Category:   category,
		Categories: catalog.Categories(),
		Products:   items,
	})
}
