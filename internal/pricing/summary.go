package pricing

import (
	"decoration_room/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Summary is the priced view of a cart shown in the cart sidebar and at
// checkout. Shipping is nil until a CEP has been quoted.
type Summary struct {
	ItemCount int                  `json:"itemCount"`
	Subtotal  decimal.Decimal      `json:"subtotal"`
	Discount  decimal.Decimal      `json:"discount"`
	Shipping  *models.ShippingInfo `json:"shipping,omitempty"`
	Total     decimal.Decimal      `json:"total"`
}

func Summarize(cart models.Cart, shipping *models.ShippingInfo) Summary {
	subtotal := Subtotal(cart.Items)
	discount := Discount(subtotal, cart.CouponApplied)

	shippingCost := decimal.Zero
	if shipping != nil {
		shippingCost = shipping.Cost
	}

	return Summary{
		ItemCount: cart.ItemCount(),
		Subtotal:  subtotal,
		Discount:  discount,
		Shipping:  shipping,
		Total:     Total(subtotal, discount, shippingCost),
	}
}

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount in reais with two decimals, e.g. "R$ 1.299,90".
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + brl.Sprint(number.Decimal(amount.Round(2).InexactFloat64(), number.Scale(2)))
}
