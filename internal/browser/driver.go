// Package browser adapts playwright-go to pages.Actions and manages the
// browser, one isolated context per scenario.
package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/themizzi/saucecheck/internal/locators"
	"github.com/themizzi/saucecheck/internal/pages"
	"go.uber.org/zap"
)

// Driver implements pages.Actions on a playwright page. A Driver returned by
// Within or Nth resolves selectors inside its scope locator instead of the
// whole page. Waiting and timeouts are left to playwright.
type Driver struct {
	page   playwright.Page
	scope  playwright.Locator
	expect playwright.PlaywrightAssertions
	logger *zap.Logger
}

var _ pages.Actions = (*Driver)(nil)

// NewDriver wraps page. Assertions wait at most assertTimeout milliseconds.
func NewDriver(page playwright.Page, assertTimeout float64, logger *zap.Logger) *Driver {
	return &Driver{
		page:   page,
		expect: playwright.NewPlaywrightAssertions(assertTimeout),
		logger: logger.Named("driver"),
	}
}

func (d *Driver) locate(sel locators.Selector) playwright.Locator {
	if d.scope != nil {
		return sel.Within(d.scope)
	}
	return sel.On(d.page)
}

func (d *Driver) scoped(scope playwright.Locator) *Driver {
	return &Driver{page: d.page, scope: scope, expect: d.expect, logger: d.logger}
}

// Goto navigates the page to url
func (d *Driver) Goto(url string) error {
	d.logger.Debug("goto", zap.String("url", url))
	if _, err := d.page.Goto(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

// Fill types value into the element
func (d *Driver) Fill(sel locators.Selector, value string) error {
	d.logger.Debug("fill", zap.String("selector", sel.Name()))
	return d.locate(sel).Fill(value)
}

// Click clicks the element
func (d *Driver) Click(sel locators.Selector) error {
	d.logger.Debug("click", zap.String("selector", sel.Name()))
	return d.locate(sel).Click()
}

// Text returns the element's text content
func (d *Driver) Text(sel locators.Selector) (string, error) {
	d.logger.Debug("text", zap.String("selector", sel.Name()))
	return d.locate(sel).TextContent()
}

// Count returns how many elements match
func (d *Driver) Count(sel locators.Selector) (int, error) {
	d.logger.Debug("count", zap.String("selector", sel.Name()))
	return d.locate(sel).Count()
}

// ExpectVisible waits for the element to be visible
func (d *Driver) ExpectVisible(sel locators.Selector) error {
	d.logger.Debug("expect visible", zap.String("selector", sel.Name()))
	return d.expect.Locator(d.locate(sel)).ToBeVisible()
}

// ExpectText waits for the element text to equal want
func (d *Driver) ExpectText(sel locators.Selector, want string) error {
	d.logger.Debug("expect text", zap.String("selector", sel.Name()), zap.String("want", want))
	return d.expect.Locator(d.locate(sel)).ToHaveText(want)
}

// ExpectContainsText waits for the element text to contain want
func (d *Driver) ExpectContainsText(sel locators.Selector, want string) error {
	d.logger.Debug("expect contains text", zap.String("selector", sel.Name()), zap.String("want", want))
	return d.expect.Locator(d.locate(sel)).ToContainText(want)
}

// ExpectValue waits for the input value to equal want
func (d *Driver) ExpectValue(sel locators.Selector, want string) error {
	d.logger.Debug("expect value", zap.String("selector", sel.Name()), zap.String("want", want))
	return d.expect.Locator(d.locate(sel)).ToHaveValue(want)
}

// ExpectCount waits for exactly want matching elements
func (d *Driver) ExpectCount(sel locators.Selector, want int) error {
	d.logger.Debug("expect count", zap.String("selector", sel.Name()), zap.Int("want", want))
	return d.expect.Locator(d.locate(sel)).ToHaveCount(want)
}

// ExpectURL always checks the page URL, whatever the scope
func (d *Driver) ExpectURL(url string) error {
	d.logger.Debug("expect url", zap.String("url", url))
	return d.expect.Page(d.page).ToHaveURL(url)
}

// Within scopes to the container that holds a has element
func (d *Driver) Within(container, has locators.Selector) pages.Actions {
	return d.scoped(d.locate(container).Filter(playwright.LocatorFilterOptions{
		Has: has.On(d.page),
	}))
}

// Nth scopes to the i-th match of sel, counting from zero
func (d *Driver) Nth(sel locators.Selector, i int) pages.Actions {
	return d.scoped(d.locate(sel).Nth(i))
}
