// Package pages holds one wrapper per SauceDemo screen. Wrappers expose named
// user actions and checks and forward each of them to an Actions driver.
package pages

import "github.com/themizzi/saucecheck/internal/locators"

// Actions is the set of driver primitives every page wrapper is built from.
// Expect* methods wait and fail like a browser assertion would.
type Actions interface {
	Goto(url string) error
	Fill(sel locators.Selector, value string) error
	Click(sel locators.Selector) error
	Text(sel locators.Selector) (string, error)
	Count(sel locators.Selector) (int, error)

	ExpectVisible(sel locators.Selector) error
	ExpectText(sel locators.Selector, want string) error
	ExpectContainsText(sel locators.Selector, want string) error
	ExpectValue(sel locators.Selector, want string) error
	ExpectCount(sel locators.Selector, want int) error
	ExpectURL(url string) error

	// Within scopes to the container matches that contain has
	Within(container, has locators.Selector) Actions
	// Nth scopes to the i-th (zero based) match of sel
	Nth(sel locators.Selector, i int) Actions
}
