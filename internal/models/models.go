package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidCategory = errors.New("models: invalid category")

func init() {
	// Prices encode as plain JSON numbers, the format stored carts and the
	// API use. The setting is process-wide. A reloaded price is Equal to the
	// saved one but may carry a shorter exponent.
	decimal.MarshalJSONWithoutQuotes = true
}

type Category string

const (
	CategoryAll    Category = "all"
	CategoryTable  Category = "mesa"
	CategoryChair  Category = "cadeira"
	CategoryBundle Category = "pacote"
)

// ParseCategory maps a filter value onto the closed category set. An empty
// string selects every category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return CategoryAll, nil
	case CategoryAll, CategoryTable, CategoryChair, CategoryBundle:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

type ColorOption struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// SameAs reports whether two options denote the same color. Options are
// identified by name; the hex value is display-only.
func (c ColorOption) SameAs(other ColorOption) bool {
	return c.Name == other.Name
}

type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"`
}

type AuthProvider string

const (
	ProviderEmail  AuthProvider = "email"
	ProviderGoogle AuthProvider = "google"
)

type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	CPF          string       `json:"cpf"`
	Phone        string       `json:"phone"`
	AuthProvider AuthProvider `json:"authProvider"`
	CreatedAt    time.Time    `json:"createdAt"`
}

type ShippingInfo struct {
	CEP           string          `json:"cep"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays int             `json:"estimatedDays"`
}
