package pages

import (
	"fmt"

	"github.com/themizzi/saucecheck/internal/locators"
	"go.uber.org/zap"
)

// MenuPage wraps the hamburger side menu available on every logged in screen
type MenuPage struct {
	page   Actions
	logger *zap.Logger
}

// NewMenuPage creates a new menu wrapper
func NewMenuPage(page Actions, logger *zap.Logger) *MenuPage {
	return &MenuPage{
		page:   page,
		logger: logger.Named("MenuPage"),
	}
}

func (p *MenuPage) click(what string, sel locators.Selector) error {
	p.logger.Info("clicking " + what)
	if err := p.page.Click(sel); err != nil {
		return fmt.Errorf("click %s: %w", what, err)
	}
	return nil
}

// OpenMenu clicks the hamburger button
func (p *MenuPage) OpenMenu() error {
	return p.click("hamburger button", locators.Menu.HamburgerButton)
}

// VerifyMenuIsVisible checks the side menu is open
func (p *MenuPage) VerifyMenuIsVisible() error {
	p.logger.Info("verifying menu is visible")
	if err := p.page.ExpectVisible(locators.Menu.MenuContainer); err != nil {
		return fmt.Errorf("menu not visible: %w", err)
	}
	return nil
}

// OpenAndVerifyMenu opens the menu and waits for it
func (p *MenuPage) OpenAndVerifyMenu() error {
	if err := p.OpenMenu(); err != nil {
		return err
	}
	return p.VerifyMenuIsVisible()
}

// ClickLogout clicks the logout entry
func (p *MenuPage) ClickLogout() error {
	return p.click("logout", locators.Menu.MenuItemLogout)
}

// Logout opens the menu and logs out
func (p *MenuPage) Logout() error {
	p.logger.Info("performing logout")
	if err := p.OpenAndVerifyMenu(); err != nil {
		return err
	}
	return p.ClickLogout()
}

// ClickAllItems clicks the "All Items" entry
func (p *MenuPage) ClickAllItems() error {
	return p.click("all items", locators.Menu.MenuItemAllItems)
}

// ClickAbout clicks the "About" entry
func (p *MenuPage) ClickAbout() error {
	return p.click("about", locators.Menu.MenuItemAbout)
}

// ClickResetAppState clicks the "Reset App State" entry
func (p *MenuPage) ClickResetAppState() error {
	return p.click("reset app state", locators.Menu.MenuItemResetAppState)
}

// CloseMenu clicks the close (X) button
func (p *MenuPage) CloseMenu() error {
	return p.click("close menu button", locators.Menu.CloseMenuButton)
}
