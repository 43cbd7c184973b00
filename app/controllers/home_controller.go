package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/quickstationery/app/catalog"
	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/app/services"
	"github.com/shashiranjanraj/quickstationery/app/views"
	"github.com/shashiranjanraj/quickstationery/pkg/session"
)

type HomeController struct {
	chrome
}

func NewHomeController(auth *services.AuthService, cart *services.CartService) *HomeController {
	return &HomeController{chrome{auth: auth, cart: cart}}
}

type homePage struct {
	views.Base
	Categories []string
	Featured   []models.Product
}

// Show renders the landing page with category chips and a few picks.
func (c *HomeController) Show(w http.ResponseWriter, r *http.Request) {
	all := catalog.All()
	featured := all
	if len(featured) > 4 {
		featured = featured[:4]
	}

	render(r, w, "home.html", homePage{
		Base:       c.base(r, "Home", "home"),
		Categories: catalog.Categories(),
		Featured:   featured,
	})
}

// Search hands the home-page query to the shop page through the session
// flash channel. An empty query stays on the home page.
func (c *HomeController) Search(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	q := strings.TrimSpace(r.PostFormValue("q"))
	if q == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sess := session.FromCtx(r)
	sess.Flash(flashSearchQuery, q)
	_ = sess.Save(w)

	http.Redirect(w, r, "/shop", http.StatusSeeOther)
}

// Category sends a home-page category chip to the shop page, filter preset.
func (c *HomeController) Category(w http.ResponseWriter, r *http.Request) {
	cat := chi.URLParam(r, "category")

	sess := session.FromCtx(r)
	sess.Flash(flashCategory, cat)
	_ = sess.Save(w)

	http.Redirect(w, r, "/shop", http.StatusSeeOther)
}
