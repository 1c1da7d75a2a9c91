package pages

import (
	"fmt"
	"strconv"

	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/locators"
	"go.uber.org/zap"
)

// catalogItem ties a product fixture key to the button that adds it
type catalogItem struct {
	key       string
	name      string
	addToCart locators.Selector
}

// catalog is the fixed order products are added and verified in
var catalog = []catalogItem{
	{config.ProductBackpack, "Sauce Labs Backpack", locators.Products.AddToCartBackpack},
	{config.ProductBikeLight, "Sauce Labs Bike Light", locators.Products.AddToCartBikeLight},
	{config.ProductBoltTShirt, "Sauce Labs Bolt T-Shirt", locators.Products.AddToCartBoltTShirt},
	{config.ProductFleeceJacket, "Sauce Labs Fleece Jacket", locators.Products.AddToCartFleeceJacket},
	{config.ProductOnesie, "Sauce Labs Onesie", locators.Products.AddToCartOnesie},
	{config.ProductTShirtRed, "Test.allTheThings() T-Shirt (Red)", locators.Products.AddToCartTShirtRed},
}

// CatalogSize is the number of products SauceDemo lists
var CatalogSize = len(catalog)

// ProductsPage wraps the inventory screen
type ProductsPage struct {
	page   Actions
	urls   config.URLs
	logger *zap.Logger
}

// NewProductsPage creates a new products page wrapper
func NewProductsPage(page Actions, urls config.URLs, logger *zap.Logger) *ProductsPage {
	return &ProductsPage{
		page:   page,
		urls:   urls,
		logger: logger.Named("ProductsPage"),
	}
}

func (p *ProductsPage) addToCart(item catalogItem) error {
	p.logger.Info("adding product to cart", zap.String("product", item.name))
	if err := p.page.Click(item.addToCart); err != nil {
		return fmt.Errorf("add %s to cart: %w", item.name, err)
	}
	return nil
}

// AddBackpackToCart clicks "Add to cart" on Sauce Labs Backpack
func (p *ProductsPage) AddBackpackToCart() error { return p.addToCart(catalog[0]) }

// AddBikeLightToCart clicks "Add to cart" on Sauce Labs Bike Light
func (p *ProductsPage) AddBikeLightToCart() error { return p.addToCart(catalog[1]) }

// AddBoltTShirtToCart clicks "Add to cart" on Sauce Labs Bolt T-Shirt
func (p *ProductsPage) AddBoltTShirtToCart() error { return p.addToCart(catalog[2]) }

// AddFleeceJacketToCart clicks "Add to cart" on Sauce Labs Fleece Jacket
func (p *ProductsPage) AddFleeceJacketToCart() error { return p.addToCart(catalog[3]) }

// AddOnesieToCart clicks "Add to cart" on Sauce Labs Onesie
func (p *ProductsPage) AddOnesieToCart() error { return p.addToCart(catalog[4]) }

// AddTShirtRedToCart clicks "Add to cart" on Test.allTheThings() T-Shirt (Red)
func (p *ProductsPage) AddTShirtRedToCart() error { return p.addToCart(catalog[5]) }

// AddAllProductsToCart adds the whole catalog in catalog order
func (p *ProductsPage) AddAllProductsToCart() error {
	p.logger.Info("adding all products to cart", zap.Int("count", len(catalog)))
	for _, item := range catalog {
		if err := p.addToCart(item); err != nil {
			return err
		}
	}
	return nil
}

// VerifyCartBadgeCount checks the cart badge shows want
func (p *ProductsPage) VerifyCartBadgeCount(want int) error {
	p.logger.Info("verifying cart badge", zap.Int("expected", want))
	if err := p.page.ExpectVisible(locators.Products.CartBadge); err != nil {
		return fmt.Errorf("cart badge not visible: %w", err)
	}
	if err := p.page.ExpectText(locators.Products.CartBadge, strconv.Itoa(want)); err != nil {
		return fmt.Errorf("cart badge count: %w", err)
	}
	return nil
}

// ClickCartIcon opens the cart
func (p *ProductsPage) ClickCartIcon() error {
	p.logger.Info("clicking cart icon")
	if err := p.page.Click(locators.Products.CartIcon); err != nil {
		return fmt.Errorf("click cart icon: %w", err)
	}
	return nil
}

// NavigateToCart opens the cart and checks the cart URL was reached
func (p *ProductsPage) NavigateToCart() error {
	p.logger.Info("navigating to cart page")
	if err := p.ClickCartIcon(); err != nil {
		return err
	}
	if err := p.page.ExpectURL(p.urls.CartURL); err != nil {
		return fmt.Errorf("cart page not reached: %w", err)
	}
	return nil
}

// VerifyProductDetails checks name, price, description and image inside the
// product card holding addToCart.
func (p *ProductsPage) VerifyProductDetails(addToCart locators.Selector, want config.Product) error {
	p.logger.Info("verifying product details", zap.String("product", want.Name))
	card := p.page.Within(locators.Products.ProductContainer, addToCart)

	if err := card.ExpectText(locators.Products.ProductName, want.Name); err != nil {
		return fmt.Errorf("%s name: %w", want.Name, err)
	}
	if err := card.ExpectText(locators.Products.ProductPrice, want.Price); err != nil {
		return fmt.Errorf("%s price: %w", want.Name, err)
	}
	if err := card.ExpectContainsText(locators.Products.ProductDescription, want.Description); err != nil {
		return fmt.Errorf("%s description: %w", want.Name, err)
	}
	if err := card.ExpectVisible(locators.Products.ProductImage); err != nil {
		return fmt.Errorf("%s image: %w", want.Name, err)
	}

	p.logger.Debug("product verified", zap.String("product", want.Name), zap.String("price", want.Price))
	return nil
}

// VerifyBackpackDetails checks the Sauce Labs Backpack card
func (p *ProductsPage) VerifyBackpackDetails(want config.Product) error {
	return p.VerifyProductDetails(locators.Products.AddToCartBackpack, want)
}

// VerifyBikeLightDetails checks the Sauce Labs Bike Light card
func (p *ProductsPage) VerifyBikeLightDetails(want config.Product) error {
	return p.VerifyProductDetails(locators.Products.AddToCartBikeLight, want)
}

// VerifyBoltTShirtDetails checks the Sauce Labs Bolt T-Shirt card
func (p *ProductsPage) VerifyBoltTShirtDetails(want config.Product) error {
	return p.VerifyProductDetails(locators.Products.AddToCartBoltTShirt, want)
}

// VerifyFleeceJacketDetails checks the Sauce Labs Fleece Jacket card
func (p *ProductsPage) VerifyFleeceJacketDetails(want config.Product) error {
	return p.VerifyProductDetails(locators.Products.AddToCartFleeceJacket, want)
}

// VerifyOnesieDetails checks the Sauce Labs Onesie card
func (p *ProductsPage) VerifyOnesieDetails(want config.Product) error {
	return p.VerifyProductDetails(locators.Products.AddToCartOnesie, want)
}

// VerifyTShirtRedDetails checks the Test.allTheThings() T-Shirt (Red) card
func (p *ProductsPage) VerifyTShirtRedDetails(want config.Product) error {
	return p.VerifyProductDetails(locators.Products.AddToCartTShirtRed, want)
}

// VerifyAllProductDetails checks every catalog product against its fixture.
// A fixture missing from products is an error before any check runs.
func (p *ProductsPage) VerifyAllProductDetails(products map[string]config.Product) error {
	p.logger.Info("validating all product details")
	for _, item := range catalog {
		if _, ok := products[item.key]; !ok {
			return fmt.Errorf("%w: product %q", config.ErrFixtureMissing, item.key)
		}
	}
	for _, item := range catalog {
		if err := p.VerifyProductDetails(item.addToCart, products[item.key]); err != nil {
			return err
		}
	}
	return nil
}
