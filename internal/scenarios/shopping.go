package scenarios

import (
	"github.com/themizzi/saucecheck/internal/pages"
)

// FullCheckout adds the whole catalog and completes an order
var FullCheckout = Scenario{
	Name:        "FullCheckout",
	Description: "Add all Products to Cart and Verify Checkout Page",
	Run: func(env Env) error {
		urls := env.Profile.URLs
		products := pages.NewProductsPage(env.Page, urls, env.Logger)
		cart := pages.NewCartPage(env.Page, urls, env.Logger)
		checkout := pages.NewCheckoutPage(env.Page, urls, env.Logger)
		info := env.Profile.TestData.Checkout

		steps := []func() error{
			func() error { return loginAsStandard(env) },
			products.AddAllProductsToCart,
			func() error { return products.VerifyCartBadgeCount(pages.CatalogSize) },
			products.NavigateToCart,
			func() error { return cart.VerifyCartItemCount(pages.CatalogSize) },
			cart.NavigateToCheckout,
			checkout.VerifyCheckoutPageElements,
			func() error { return checkout.FillCheckoutInformation(info) },
			func() error { return checkout.VerifyCheckoutInformation(info) },
			checkout.ClickContinueButton,
			checkout.VerifyCheckoutStepTwoURL,
			checkout.VerifyCheckoutStepTwoElements,
			func() error { return checkout.VerifyAllProductsVisible(pages.CatalogSize) },
			checkout.ClickFinishButton,
			checkout.VerifyCheckoutCompleteURL,
			checkout.ValidateCheckoutComplete,
		}
		return runSteps(steps)
	},
}

// ProductDetails checks every catalog card against the profile fixtures
var ProductDetails = Scenario{
	Name:        "ProductDetails",
	Description: "Validate Product Details for Each Product",
	Run: func(env Env) error {
		if err := loginAsStandard(env); err != nil {
			return err
		}
		products := pages.NewProductsPage(env.Page, env.Profile.URLs, env.Logger)
		return products.VerifyAllProductDetails(env.Profile.TestData.Products)
	},
}

// LogoutReturnsToLogin checks logging out lands back on the login form
var LogoutReturnsToLogin = Scenario{
	Name:        "LogoutReturnsToLogin",
	Description: "Verify User Logout Is Successful",
	Run: func(env Env) error {
		login := pages.NewLoginPage(env.Page, env.Profile.URLs, env.Logger)
		menu := pages.NewMenuPage(env.Page, env.Logger)

		return runSteps([]func() error{
			func() error { return loginAsStandard(env) },
			menu.Logout,
			login.VerifyAtLoginPage,
			login.VerifyLoginPageElements,
		})
	},
}

// runSteps stops at the first failing step
func runSteps(steps []func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
