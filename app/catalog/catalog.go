// Package catalog holds the fixed product list and the filter/search over it.
//
// The catalogue is build-time data: it is never mutated at runtime, and every
// accessor returns a copy so callers cannot mutate it either.
package catalog

import (
	"strings"

	"github.com/shashiranjanraj/quickstationery/app/models"
	"github.com/shashiranjanraj/quickstationery/pkg/collection"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

var products = []models.Product{
	{
		ID:       "notebook-ruled-a5",
		Name:     "A5 Ruled Notebook (200 pages)",
		Price:    89,
		Category: "notebooks",
		Tag:      "college essentials",
	},
	{
		ID:       "notebook-dotted-a5",
		Name:     "A5 Dotted Journal",
		Price:    149,
		Category: "notebooks",
		Tag:      "bullet journaling",
	},
	{
		ID:       "pen-gel-smooth",
		Name:     "Smooth Gel Pen (Pack of 3)",
		Price:    59,
		Category: "pens",
		Tag:      "exam friendly",
	},
	{
		ID:       "pen-ball-blue",
		Name:     "Blue Ball Pen (Pack of 10)",
		Price:    75,
		Category: "pens",
		Tag:      "everyday writing",
	},
	{
		ID:       "marker-highlighter",
		Name:     "Pastel Highlighters (Set of 5)",
		Price:    199,
		Category: "art",
		Tag:      "study notes",
	},
	{
		ID:       "sketchbook-a4",
		Name:     "A4 Sketchbook (120 gsm)",
		Price:    249,
		Category: "art",
		Tag:      "artists choice",
	},
	{
		ID:       "sticky-notes-neon",
		Name:     "Neon Sticky Notes (Pack of 4)",
		Price:    99,
		Category: "supplies",
		Tag:      "quick reminders",
	},
	{
		ID:       "binder-clips",
		Name:     "Binder Clips (Assorted, 24 pcs)",
		Price:    69,
		Category: "supplies",
		Tag:      "organize papers",
	},
}

// All returns the full catalogue in its fixed order.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// Find looks up a product by id.
func Find(id string) (models.Product, bool) {
	return collection.First(products, func(p models.Product) bool {
		return p.ID == id
	})
}

// Categories returns the distinct categories in catalogue order.
func Categories() []string {
	return collection.Unique(collection.Map(products, func(p models.Product) string {
		return p.Category
	}))
}

// Filter returns the catalogue subsequence matching the active category
// (CategoryAll matches everything) and a case-insensitive substring query
// against product name or tag. Order is the catalogue's fixed order; the
// result is recomputed from scratch on every call.
func Filter(category, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))

	return collection.Filter(All(), func(p models.Product) bool {
		if category != "" && category != CategoryAll && p.Category != category {
			return false
		}
		if q == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Tag), q)
	})
}
