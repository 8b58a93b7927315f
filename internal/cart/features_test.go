package cart_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"decoration_room/internal/cart"
	"decoration_room/internal/catalog"
	"decoration_room/internal/models"
	"decoration_room/internal/pricing"
	"decoration_room/internal/storage"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type checkoutTestContext struct {
	store    storage.Store
	manager  *cart.Manager
	cart     models.Cart
	shipping *models.ShippingInfo
	err      error
}

func (c *checkoutTestContext) reset() {
	c.store = storage.NewMemoryStore()
	c.manager = cart.NewManager(c.store)
	c.cart = models.EmptyCart()
	c.shipping = nil
	c.err = nil
}

func (c *checkoutTestContext) anEmptyCart() error {
	got, err := c.manager.Load(context.Background())
	if err != nil {
		return err
	}
	if len(got.Items) != 0 {
		return fmt.Errorf("expected empty cart, got %d lines", len(got.Items))
	}
	c.cart = got
	return nil
}

func (c *checkoutTestContext) iAddInToTheCart(productID, color string) error {
	p, ok := catalog.ByID(productID)
	if !ok {
		return fmt.Errorf("unknown product %q", productID)
	}
	opt, ok := p.Color(color)
	if !ok {
		return fmt.Errorf("product %q has no color %q", productID, color)
	}
	c.cart, c.err = c.manager.AddItem(context.Background(), p, opt)
	return c.err
}

func (c *checkoutTestContext) iApplyTheCoupon(code string) error {
	got, err := c.manager.ApplyCoupon(context.Background(), code)
	c.err = err
	if err == nil {
		c.cart = got
	}
	return nil
}

func (c *checkoutTestContext) iStartANewCartInTheSameStore() error {
	if err := c.store.Delete(context.Background(), storage.KeyCart); err != nil {
		return err
	}
	c.manager = cart.NewManager(c.store)
	return c.anEmptyCart()
}

func (c *checkoutTestContext) iQuoteShippingTo(cep string) error {
	info, err := pricing.ShippingQuote(cep)
	c.err = err
	if err == nil {
		c.shipping = &info
	}
	return nil
}

func (c *checkoutTestContext) summary() pricing.Summary {
	return pricing.Summarize(c.cart, c.shipping)
}

func expectDecimal(what string, got decimal.Decimal, want string) error {
	w, err := decimal.NewFromString(want)
	if err != nil {
		return err
	}
	if !got.Equal(w) {
		return fmt.Errorf("expected %s %s, got %s", what, want, got)
	}
	return nil
}

func expectFixed(what string, got decimal.Decimal, want string) error {
	if got.StringFixed(2) != want {
		return fmt.Errorf("expected %s to show as %s, got %s", what, want, got.StringFixed(2))
	}
	return nil
}

func (c *checkoutTestContext) theSubtotalIs(want string) error {
	return expectDecimal("subtotal", c.summary().Subtotal, want)
}

func (c *checkoutTestContext) theDiscountIs(want string) error {
	return expectDecimal("discount", c.summary().Discount, want)
}

func (c *checkoutTestContext) theDiscountShowsAs(want string) error {
	return expectFixed("discount", c.summary().Discount, want)
}

func (c *checkoutTestContext) theTotalShowsAs(want string) error {
	return expectFixed("total", c.summary().Total, want)
}

func (c *checkoutTestContext) shippingCostsAndTakesDays(cost string, days int) error {
	if c.err != nil {
		return c.err
	}
	if c.shipping == nil {
		return errors.New("no shipping quote")
	}
	if err := expectDecimal("shipping", c.shipping.Cost, cost); err != nil {
		return err
	}
	if c.shipping.EstimatedDays != days {
		return fmt.Errorf("expected %d days, got %d", days, c.shipping.EstimatedDays)
	}
	return nil
}

func (c *checkoutTestContext) theCartHasLines(n int) error {
	if len(c.cart.Items) != n {
		return fmt.Errorf("expected %d lines, got %d", n, len(c.cart.Items))
	}
	return nil
}

func (c *checkoutTestContext) lineHasQuantity(line, qty int) error {
	if line < 1 || line > len(c.cart.Items) {
		return fmt.Errorf("no line %d", line)
	}
	if got := c.cart.Items[line-1].Quantity; got != qty {
		return fmt.Errorf("expected quantity %d, got %d", qty, got)
	}
	return nil
}

func (c *checkoutTestContext) theCouponIsRejectedAsAlreadyUsed() error {
	if !errors.Is(c.err, cart.ErrCouponUsed) {
		return fmt.Errorf("expected ErrCouponUsed, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCouponIsRejectedAsInvalid() error {
	if !errors.Is(c.err, cart.ErrInvalidCoupon) {
		return fmt.Errorf("expected ErrInvalidCoupon, got %v", c.err)
	}
	return nil
}

func (c *checkoutTestContext) theCEPIsRejected() error {
	if !errors.Is(c.err, pricing.ErrInvalidCEP) {
		return fmt.Errorf("expected ErrInvalidCEP, got %v", c.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &checkoutTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)

	// When steps
	ctx.Step(`^I add "([^"]*)" in "([^"]*)" to the cart$`, tc.iAddInToTheCart)
	ctx.Step(`^I apply the coupon "([^"]*)"$`, tc.iApplyTheCoupon)
	ctx.Step(`^I start a new cart in the same store$`, tc.iStartANewCartInTheSameStore)
	ctx.Step(`^I quote shipping to "([^"]*)"$`, tc.iQuoteShippingTo)

	// Then steps
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
	ctx.Step(`^the discount is "([^"]*)"$`, tc.theDiscountIs)
	ctx.Step(`^the discount shows as "([^"]*)"$`, tc.theDiscountShowsAs)
	ctx.Step(`^the total shows as "([^"]*)"$`, tc.theTotalShowsAs)
	ctx.Step(`^shipping costs "([^"]*)" and takes (\d+) days$`, tc.shippingCostsAndTakesDays)
	ctx.Step(`^the cart has (\d+) lines?$`, tc.theCartHasLines)
	ctx.Step(`^line (\d+) has quantity (\d+)$`, tc.lineHasQuantity)
	ctx.Step(`^the coupon is rejected as already used$`, tc.theCouponIsRejectedAsAlreadyUsed)
	ctx.Step(`^the coupon is rejected as invalid$`, tc.theCouponIsRejectedAsInvalid)
	ctx.Step(`^the CEP is rejected$`, tc.theCEPIsRejected)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/checkout.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
