// Package locators is the registry of selectors for every SauceDemo screen.
//
// Each screen is a struct value whose fields are the semantic labels, so a
// reference to a label that does not exist fails to compile.
package locators

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Selector identifies one UI element, either by a CSS/attribute selector or
// by an ARIA role and accessible name.
type Selector struct {
	name           string
	css            string
	role           playwright.AriaRole
	accessibleName string
}

// CSS builds a plain selector
func CSS(name, css string) Selector {
	return Selector{name: name, css: css}
}

// Role builds a role/accessible-name selector
func Role(name string, role playwright.AriaRole, accessibleName string) Selector {
	return Selector{name: name, role: role, accessibleName: accessibleName}
}

// Name is the dotted registry label, e.g. "login.username"
func (s Selector) Name() string {
	return s.name
}

// IsRole reports whether s is a role/accessible-name selector
func (s Selector) IsRole() bool {
	return s.role != ""
}

// IsZero reports whether s was never initialised
func (s Selector) IsZero() bool {
	return s.css == "" && s.role == ""
}

// String renders the selector the way playwright would print it
func (s Selector) String() string {
	if s.IsRole() {
		return fmt.Sprintf("role=%s[name=%q]", s.role, s.accessibleName)
	}
	return s.css
}

// On resolves s against the whole page
func (s Selector) On(page playwright.Page) playwright.Locator {
	if s.IsRole() {
		return page.GetByRole(s.role, playwright.PageGetByRoleOptions{Name: s.accessibleName})
	}
	return page.Locator(s.css)
}

// Within resolves s relative to parent
func (s Selector) Within(parent playwright.Locator) playwright.Locator {
	if s.IsRole() {
		return parent.GetByRole(s.role, playwright.LocatorGetByRoleOptions{Name: s.accessibleName})
	}
	return parent.Locator(s.css)
}
