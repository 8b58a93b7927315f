// Package catalog serves the static product catalog and its listing and
// search queries. Everything here is a read over immutable data.
package catalog

import (
	"strings"

	"decoration_room/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// All returns every product in catalog order.
func All() []models.Product {
	return append([]models.Product(nil), products...)
}

// Colors returns the palette products draw their color options from.
func Colors() []models.ColorOption {
	return append([]models.ColorOption(nil), palette...)
}

func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory returns the products of category, or all products for
// models.CategoryAll.
func ByCategory(category models.Category) []models.Product {
	if category == models.CategoryAll {
		return All()
	}
	return filter(products, func(p models.Product) bool {
		return p.Category == category
	})
}

func Featured() []models.Product {
	return filter(products, func(p models.Product) bool {
		return p.Featured
	})
}

// Search narrows ByCategory(category) to names containing query (ignoring
// case) and list prices within [minPrice, maxPrice]. Promotional prices are
// not considered.
func Search(query string, minPrice, maxPrice decimal.Decimal, category models.Category) []models.Product {
	found := ByCategory(category)

	if query != "" {
		fold := cases.Fold()
		needle := fold.String(query)
		found = filter(found, func(p models.Product) bool {
			return strings.Contains(fold.String(p.Name), needle)
		})
	}

	return filter(found, func(p models.Product) bool {
		return p.Price.GreaterThanOrEqual(minPrice) && p.Price.LessThanOrEqual(maxPrice)
	})
}

func filter(in []models.Product, keep func(models.Product) bool) []models.Product {
	out := []models.Product{}
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
