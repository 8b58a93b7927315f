// Package pricing computes cart subtotals, the first-purchase coupon discount,
// CEP based shipping quotes and order totals. All functions are pure.
package pricing

import (
	"errors"
	"strconv"
	"strings"

	"decoration_room/internal/models"

	"github.com/shopspring/decimal"
)

var ErrInvalidCEP = errors.New("pricing: CEP must have 8 digits")

// CouponRate is the share of the subtotal taken off by the coupon.
var CouponRate = decimal.RequireFromString("0.10")

// Subtotal sums list price times quantity over items. Promotional prices do
// not apply to the cart.
func Subtotal(items []models.CartItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

func Discount(subtotal decimal.Decimal, couponApplied bool) decimal.Decimal {
	if !couponApplied {
		return decimal.Zero
	}
	return subtotal.Mul(CouponRate)
}

func Total(subtotal, discount, shipping decimal.Decimal) decimal.Decimal {
	return subtotal.Sub(discount).Add(shipping)
}

type region struct {
	from, to int
	cost     decimal.Decimal
	days     int
}

// Shipping regions keyed by the first two CEP digits.
var regions = []region{
	{from: 1, to: 19, cost: decimal.RequireFromString("29.90"), days: 3},  // São Paulo
	{from: 20, to: 28, cost: decimal.RequireFromString("35.90"), days: 5}, // Rio de Janeiro
	{from: 80, to: 99, cost: decimal.RequireFromString("45.90"), days: 7}, // South
	{from: 40, to: 65, cost: decimal.RequireFromString("55.90"), days: 10},
}

var fallback = region{cost: decimal.RequireFromString("39.90"), days: 6}

// NormalizeCEP strips everything but digits from cep.
func NormalizeCEP(cep string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cep)
}

// ShippingQuote prices delivery to cep. The CEP is accepted in any
// punctuation as long as exactly eight digits remain.
func ShippingQuote(cep string) (models.ShippingInfo, error) {
	clean := NormalizeCEP(cep)
	if len(clean) != 8 {
		return models.ShippingInfo{}, ErrInvalidCEP
	}

	prefix, err := strconv.Atoi(clean[:2])
	if err != nil {
		return models.ShippingInfo{}, ErrInvalidCEP
	}

	r := fallback
	for _, candidate := range regions {
		if prefix >= candidate.from && prefix <= candidate.to {
			r = candidate
			break
		}
	}

	return models.ShippingInfo{CEP: clean, Cost: r.cost, EstimatedDays: r.days}, nil
}
