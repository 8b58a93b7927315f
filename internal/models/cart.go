package models

type CartItem struct {
	Product       Product     `json:"product"`
	Quantity      int         `json:"quantity"`
	SelectedColor ColorOption `json:"selectedColor"`
}

// Matches reports whether the line holds the given product in the given color.
func (i CartItem) Matches(productID string, color ColorOption) bool {
	return i.Product.ID == productID && i.SelectedColor.SameAs(color)
}

type Cart struct {
	Items         []CartItem `json:"items"`
	CouponApplied bool       `json:"couponApplied"`
	CouponCode    string     `json:"couponCode,omitempty"`
}

func EmptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// ItemCount is the number of units across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
