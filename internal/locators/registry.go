package locators

import "github.com/playwright-community/playwright-go"

// Login page
var Login = struct {
	Username     Selector
	Password     Selector
	LoginButton  Selector
	ErrorMessage Selector
	ProfileLink  Selector
}{
	Username:     CSS("login.username", `[data-test="username"]`),
	Password:     CSS("login.password", `[data-test="password"]`),
	LoginButton:  CSS("login.loginButton", `[data-test="login-button"]`),
	ErrorMessage: CSS("login.errorMessage", `[data-test="error"]`),
	ProfileLink:  CSS("login.profileLink", "#profile-link"),
}

// Products (inventory) page
var Products = struct {
	AddToCartBackpack     Selector
	AddToCartBikeLight    Selector
	AddToCartBoltTShirt   Selector
	AddToCartFleeceJacket Selector
	AddToCartOnesie       Selector
	AddToCartTShirtRed    Selector

	CartBadge Selector
	CartIcon  Selector

	ProductContainer   Selector
	ProductName        Selector
	ProductPrice       Selector
	ProductDescription Selector
	ProductImage       Selector
}{
	AddToCartBackpack:     CSS("products.addToCartBackpack", `[data-test="add-to-cart-sauce-labs-backpack"]`),
	AddToCartBikeLight:    CSS("products.addToCartBikeLight", `[data-test="add-to-cart-sauce-labs-bike-light"]`),
	AddToCartBoltTShirt:   CSS("products.addToCartBoltTShirt", `[data-test="add-to-cart-sauce-labs-bolt-t-shirt"]`),
	AddToCartFleeceJacket: CSS("products.addToCartFleeceJacket", `[data-test="add-to-cart-sauce-labs-fleece-jacket"]`),
	AddToCartOnesie:       CSS("products.addToCartOnesie", `[data-test="add-to-cart-sauce-labs-onesie"]`),
	AddToCartTShirtRed:    CSS("products.addToCartTShirtRed", `[data-test="add-to-cart-test.allthethings()-t-shirt-(red)"]`),

	CartBadge: CSS("products.cartBadge", ".shopping_cart_badge"),
	CartIcon:  CSS("products.cartIcon", ".shopping_cart_link"),

	ProductContainer:   CSS("products.productContainer", ".inventory_item"),
	ProductName:        CSS("products.productName", ".inventory_item_name"),
	ProductPrice:       CSS("products.productPrice", ".inventory_item_price"),
	ProductDescription: CSS("products.productDescription", ".inventory_item_desc"),
	ProductImage:       CSS("products.productImage", ".inventory_item_img img"),
}

// Cart page
var Cart = struct {
	CartItem               Selector
	CheckoutButton         Selector
	ContinueShoppingButton Selector
}{
	CartItem:               CSS("cart.cartItem", ".cart_item"),
	CheckoutButton:         CSS("cart.checkoutButton", `[data-test="checkout"]`),
	ContinueShoppingButton: CSS("cart.continueShoppingButton", `[data-test="continue-shopping"]`),
}

// Checkout step one (customer information)
var Checkout = struct {
	FirstName      Selector
	LastName       Selector
	PostalCode     Selector
	ContinueButton Selector
	CancelButton   Selector
	ErrorMessage   Selector
}{
	FirstName:      CSS("checkout.firstName", `[data-test="firstName"]`),
	LastName:       CSS("checkout.lastName", `[data-test="lastName"]`),
	PostalCode:     CSS("checkout.postalCode", `[data-test="postalCode"]`),
	ContinueButton: CSS("checkout.continueButton", `[data-test="continue"]`),
	CancelButton:   CSS("checkout.cancelButton", `[data-test="cancel"]`),
	ErrorMessage:   CSS("checkout.errorMessage", `[data-test="error"]`),
}

// Checkout step two (overview)
var CheckoutStepTwo = struct {
	CartItem           Selector
	ProductName        Selector
	ProductPrice       Selector
	ProductDescription Selector
	FinishButton       Selector
	CancelButton       Selector
}{
	CartItem:           CSS("checkoutStepTwo.cartItem", ".cart_item"),
	ProductName:        CSS("checkoutStepTwo.productName", ".inventory_item_name"),
	ProductPrice:       CSS("checkoutStepTwo.productPrice", ".inventory_item_price"),
	ProductDescription: CSS("checkoutStepTwo.productDescription", ".inventory_item_desc"),
	FinishButton:       CSS("checkoutStepTwo.finishButton", `[data-test="finish"]`),
	CancelButton:       CSS("checkoutStepTwo.cancelButton", `[data-test="cancel"]`),
}

// Checkout complete (order confirmation)
var CheckoutComplete = struct {
	CompleteHeader   Selector
	CompleteText     Selector
	BackHomeButton   Selector
	PonyExpressImage Selector
}{
	CompleteHeader:   CSS("checkoutComplete.completeHeader", ".complete-header"),
	CompleteText:     CSS("checkoutComplete.completeText", ".complete-text"),
	BackHomeButton:   CSS("checkoutComplete.backHomeButton", `[data-test="back-to-products"]`),
	PonyExpressImage: CSS("checkoutComplete.ponyExpressImage", ".pony_express"),
}

// Hamburger menu
var Menu = struct {
	HamburgerButton       Selector
	MenuContainer         Selector
	MenuItemAllItems      Selector
	MenuItemAbout         Selector
	MenuItemLogout        Selector
	MenuItemResetAppState Selector
	CloseMenuButton       Selector
}{
	HamburgerButton:       CSS("menu.hamburgerButton", "#react-burger-menu-btn"),
	MenuContainer:         CSS("menu.menuContainer", ".bm-menu-wrap"),
	MenuItemAllItems:      CSS("menu.menuItemAllItems", "#inventory_sidebar_link"),
	MenuItemAbout:         CSS("menu.menuItemAbout", "#about_sidebar_link"),
	MenuItemLogout:        CSS("menu.menuItemLogout", "#logout_sidebar_link"),
	MenuItemResetAppState: CSS("menu.menuItemResetAppState", "#reset_sidebar_link"),
	CloseMenuButton:       CSS("menu.closeMenuButton", "#react-burger-cross-btn"),
}

// Example holds role-based locators for the playwright.dev landing page
var Example = struct {
	GetStartedLink      Selector
	InstallationHeading Selector
}{
	GetStartedLink:      Role("example.getStartedLink", *playwright.AriaRoleLink, "Get started"),
	InstallationHeading: Role("example.installationHeading", *playwright.AriaRoleHeading, "Installation"),
}

// All returns every registered selector keyed by its name
func All() map[string]Selector {
	all := map[string]Selector{}
	for _, group := range [][]Selector{
		{Login.Username, Login.Password, Login.LoginButton, Login.ErrorMessage, Login.ProfileLink},
		{
			Products.AddToCartBackpack, Products.AddToCartBikeLight, Products.AddToCartBoltTShirt,
			Products.AddToCartFleeceJacket, Products.AddToCartOnesie, Products.AddToCartTShirtRed,
			Products.CartBadge, Products.CartIcon, Products.ProductContainer, Products.ProductName,
			Products.ProductPrice, Products.ProductDescription, Products.ProductImage,
		},
		{Cart.CartItem, Cart.CheckoutButton, Cart.ContinueShoppingButton},
		{
			Checkout.FirstName, Checkout.LastName, Checkout.PostalCode,
			Checkout.ContinueButton, Checkout.CancelButton, Checkout.ErrorMessage,
		},
		{
			CheckoutStepTwo.CartItem, CheckoutStepTwo.ProductName, CheckoutStepTwo.ProductPrice,
			CheckoutStepTwo.ProductDescription, CheckoutStepTwo.FinishButton, CheckoutStepTwo.CancelButton,
		},
		{
			CheckoutComplete.CompleteHeader, CheckoutComplete.CompleteText,
			CheckoutComplete.BackHomeButton, CheckoutComplete.PonyExpressImage,
		},
		{
			Menu.HamburgerButton, Menu.MenuContainer, Menu.MenuItemAllItems, Menu.MenuItemAbout,
			Menu.MenuItemLogout, Menu.MenuItemResetAppState, Menu.CloseMenuButton,
		},
		{Example.GetStartedLink, Example.InstallationHeading},
	} {
		for _, sel := range group {
			all[sel.Name()] = sel
		}
	}
	return all
}
