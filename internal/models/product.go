package models

import "github.com/shopspring/decimal"

type Product struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Category         Category         `json:"category"`
	Price            decimal.Decimal  `json:"price"`
	OriginalPrice    *decimal.Decimal `json:"originalPrice,omitempty"`
	PromotionalPrice *decimal.Decimal `json:"promotionalPrice,omitempty"`
	Description      string           `json:"description"`
	Image            string           `json:"image"`
	Colors           []ColorOption    `json:"colors"`
	InStock          bool             `json:"inStock"`
	Featured         bool             `json:"featured,omitempty"`
	Rating           *float64         `json:"rating,omitempty"`
	Reviews          []Review         `json:"reviews,omitempty"`
}

// DisplayPrice is the price shown to the shopper: the promotional price when
// one is set below the list price, otherwise the list price.
func (p Product) DisplayPrice() decimal.Decimal {
	if p.PromotionalPrice != nil && p.PromotionalPrice.LessThan(p.Price) {
		return *p.PromotionalPrice
	}
	return p.Price
}

func (p Product) OnSale() bool {
	return !p.DisplayPrice().Equal(p.Price)
}

// Color returns the product's color option with the given name.
func (p Product) Color(name string) (ColorOption, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return ColorOption{}, false
}
