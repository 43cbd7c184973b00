// Package views renders the storefront pages from embedded templates.
// Every page shares the layout (header with cart badge and auth button,
// footer with year stamp) and supplies a "content" block.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/shashiranjanraj/quickstationery/app/models"
)

//go:embed templates/*.html
var files embed.FS

var pageNames = []string{
	"home.html",
	"shop.html",
	"cart.html",
	"login.html",
	"signup.html",
	"profile.html",
	"order-success.html",
}

var pages = map[string]*template.Template{}

func init() {
	for _, name := range pageNames {
		pages[name] = template.Must(template.ParseFS(files,
			"templates/layout.html", "templates/"+name))
	}
}

// Base carries the header/footer state every page needs.
type Base struct {
	Title     string
	Page      string // body data-page marker
	User      *models.User
	CartCount int
	Year      int
}

// Render writes the named page to w with status 200.
func Render(w http.ResponseWriter, name string, data interface{}) error {
	return RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus writes the named page with an explicit status code.
func RenderStatus(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := pages[name]
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return fmt.Errorf("views: render %s: %w", name, err)
	}
	return nil
}
