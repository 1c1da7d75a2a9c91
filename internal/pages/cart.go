package pages

import (
	"fmt"

	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/locators"
	"go.uber.org/zap"
)

// CartPage wraps the cart screen
type CartPage struct {
	page   Actions
	urls   config.URLs
	logger *zap.Logger
}

// NewCartPage creates a new cart page wrapper
func NewCartPage(page Actions, urls config.URLs, logger *zap.Logger) *CartPage {
	return &CartPage{
		page:   page,
		urls:   urls,
		logger: logger.Named("CartPage"),
	}
}

// VerifyCartItemCount checks the cart lists exactly want line items
func (p *CartPage) VerifyCartItemCount(want int) error {
	p.logger.Info("verifying cart item count", zap.Int("expected", want))
	if err := p.page.ExpectCount(locators.Cart.CartItem, want); err != nil {
		return fmt.Errorf("cart item count: %w", err)
	}
	return nil
}

// ClickCheckoutButton starts checkout
func (p *CartPage) ClickCheckoutButton() error {
	p.logger.Info("clicking checkout button")
	if err := p.page.Click(locators.Cart.CheckoutButton); err != nil {
		return fmt.Errorf("click checkout button: %w", err)
	}
	return nil
}

// NavigateToCheckout starts checkout and checks step one was reached
func (p *CartPage) NavigateToCheckout() error {
	p.logger.Info("navigating to checkout page")
	if err := p.ClickCheckoutButton(); err != nil {
		return err
	}
	if err := p.page.ExpectURL(p.urls.CheckoutURL); err != nil {
		return fmt.Errorf("checkout page not reached: %w", err)
	}
	return nil
}

// ClickContinueShopping returns to the inventory
func (p *CartPage) ClickContinueShopping() error {
	p.logger.Info("clicking continue shopping button")
	if err := p.page.Click(locators.Cart.ContinueShoppingButton); err != nil {
		return fmt.Errorf("click continue shopping: %w", err)
	}
	return nil
}
