// Package controllers wires the storefront pages to the services. Each
// controller reads state on load, renders a page, and handles the page's
// form posts with POST-redirect-GET. All domain errors surface as inline
// page messages; none are fatal.
package controllers

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/logger"
)

// Session flash keys for the cross-page handoff channel.
const (
	flashSearchQuery = "search_query"
	flashCategory    = "category_filter"
	flashAuthMessage = "auth_message"
)

// chrome builds the header/footer state every page shares. A failing read
// (e.g. a corrupt record) is logged and rendered as the default so the page
// chrome never takes the whole page down.
type chrome struct {
	auth *services.AuthService
	cart *services.CartService
}

func (c chrome) base(r *http.Request, title, page string) views.Base {
	log := logger.WithCtx(r.Context())

	user, err := c.auth.Current()
	if err != nil {
		log.Warn("header: current user unreadable", "error", err)
	}

	count, err := c.cart.Count()
	if err != nil {
		log.Warn("header: cart count unreadable", "error", err)
	}

	return views.Base{
		Title:     title,
		Page:      page,
		User:      user,
		CartCount: count,
		Year:      time.Now().Year(),
	}
}

// render logs template failures; by then half a response may be written, so
// there is nothing better to do than record it.
func render(r *http.Request, w http.ResponseWriter, page string, data interface{}) {
	if err := views.Render(w, page, data); err != nil {
		logger.WithCtx(r.Context()).Error("render failed", "page", page, "error", err)
	}
}

func renderStatus(r *http.Request, w http.ResponseWriter, status int, page string, data interface{}) {
	if err := views.RenderStatus(w, status, page, data); err != nil {
		logger.WithCtx(r.Context()).Error("render failed", "page", page, "error", err)
	}
}

// firstError picks one field message from a validation error map in a
// stable field order, for the single inline error slot the pages have.
func firstError(errs map[string]string, fields ...string) string {
	for _, f := range fields {
		if msg, ok := errs[f]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}
