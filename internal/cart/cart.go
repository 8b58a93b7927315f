// Package cart manages the shopper's persisted cart and the one-time
// first-purchase coupon.
package cart

import (
	"context"
	"errors"
	"strings"

	"decoration_room/internal/models"
	"decoration_room/internal/pricing"
	"decoration_room/internal/storage"
)

// CouponCode is the only recognised coupon. It is matched ignoring case.
const CouponCode = "PRIMEIRA10"

var (
	ErrIndexOutOfRange = errors.New("cart: item index out of range")
	ErrInvalidQuantity = errors.New("cart: quantity must be at least 1")
	ErrCouponUsed      = errors.New("cart: coupon already used")
	ErrInvalidCoupon   = errors.New("cart: invalid coupon code")
)

// Manager reads and writes the cart held in a storage.Store. Every mutation
// loads the latest persisted cart and writes the result back before
// returning; concurrent writers are not coordinated and the last write wins.
type Manager struct {
	store storage.Store
}

func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// Load returns the persisted cart. A missing or malformed value yields an
// empty cart rather than an error.
func (m *Manager) Load(ctx context.Context) (models.Cart, error) {
	var c models.Cart
	err := storage.GetJSON(ctx, m.store, storage.KeyCart, &c)
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrCorrupt):
		return models.EmptyCart(), nil
	case err != nil:
		return models.Cart{}, err
	}

	if !wellFormed(c) {
		return models.EmptyCart(), nil
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return c, nil
}

func wellFormed(c models.Cart) bool {
	for _, item := range c.Items {
		if item.Product.ID == "" || item.Quantity < 1 || item.SelectedColor.Name == "" {
			return false
		}
	}
	return true
}

func (m *Manager) save(ctx context.Context, c models.Cart) error {
	return storage.SetJSON(ctx, m.store, storage.KeyCart, c)
}

// AddItem puts one unit of product in color into the cart. A line holding
// the same product in the same color gains a unit; otherwise a new line is
// appended.
func (m *Manager) AddItem(ctx context.Context, product models.Product, color models.ColorOption) (models.Cart, error) {
	c, err := m.Load(ctx)
	if err != nil {
		return models.Cart{}, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].Matches(product.ID, color) {
			c.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		c.Items = append(c.Items, models.CartItem{
			Product:       product,
			Quantity:      1,
			SelectedColor: color,
		})
	}

	if err := m.save(ctx, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

func (m *Manager) UpdateQuantity(ctx context.Context, index, quantity int) (models.Cart, error) {
	if quantity < 1 {
		return models.Cart{}, ErrInvalidQuantity
	}

	c, err := m.Load(ctx)
	if err != nil {
		return models.Cart{}, err
	}
	if index < 0 || index >= len(c.Items) {
		return models.Cart{}, ErrIndexOutOfRange
	}

	c.Items[index].Quantity = quantity
	if err := m.save(ctx, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

func (m *Manager) RemoveItem(ctx context.Context, index int) (models.Cart, error) {
	c, err := m.Load(ctx)
	if err != nil {
		return models.Cart{}, err
	}
	if index < 0 || index >= len(c.Items) {
		return models.Cart{}, ErrIndexOutOfRange
	}

	c.Items = append(c.Items[:index], c.Items[index+1:]...)
	if err := m.save(ctx, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// CouponUsed reports whether the coupon has been redeemed in this store.
func (m *Manager) CouponUsed(ctx context.Context) (bool, error) {
	v, err := m.store.Get(ctx, storage.KeyCouponUsed)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "true", nil
}

// ApplyCoupon redeems code against the cart. The coupon can be redeemed once
// per store: after a successful redemption every later call fails with
// ErrCouponUsed, whatever the cart's own coupon flag says.
func (m *Manager) ApplyCoupon(ctx context.Context, code string) (models.Cart, error) {
	used, err := m.CouponUsed(ctx)
	if err != nil {
		return models.Cart{}, err
	}
	if used {
		return models.Cart{}, ErrCouponUsed
	}
	if !strings.EqualFold(code, CouponCode) {
		return models.Cart{}, ErrInvalidCoupon
	}

	c, err := m.Load(ctx)
	if err != nil {
		return models.Cart{}, err
	}
	// The coupon is spent before the discount lands in the cart.
	if err := m.store.Set(ctx, storage.KeyCouponUsed, "true"); err != nil {
		return models.Cart{}, err
	}

	c.CouponApplied = true
	c.CouponCode = CouponCode
	if err := m.save(ctx, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

// Summary prices the persisted cart. Shipping is quoted when cep is not
// empty; a malformed cep fails with pricing.ErrInvalidCEP.
func (m *Manager) Summary(ctx context.Context, cep string) (pricing.Summary, error) {
	c, err := m.Load(ctx)
	if err != nil {
		return pricing.Summary{}, err
	}

	if cep == "" {
		return pricing.Summarize(c, nil), nil
	}

	info, err := pricing.ShippingQuote(cep)
	if err != nil {
		return pricing.Summary{}, err
	}
	return pricing.Summarize(c, &info), nil
}
