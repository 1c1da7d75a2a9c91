//go:build e2e

package e2e

import (
	"testing"

	"github.com/themizzi/saucecheck/internal/scenarios"
)

// Given the login page
// When a locked out user signs in
// Then "Epic sadface: Sorry, this user has been locked out." is shown and no navigation happens
func TestLockedUserCannotLogin(t *testing.T) {
	runScenario(t, scenarios.LockedUserCannotLogin)
}

// Given the login page
// When the form is submitted empty
// Then "Epic sadface: Username is required" is shown
func TestUsernameIsRequired(t *testing.T) {
	runScenario(t, scenarios.UsernameIsRequired)
}

// Given the login page
// When only the username is filled in
// Then "Epic sadface: Password is required" is shown
func TestPasswordIsRequired(t *testing.T) {
	runScenario(t, scenarios.PasswordIsRequired)
}

// Given the login page
// When the standard user signs in
// Then the browser lands on the inventory URL
func TestStandardUserCanLogin(t *testing.T) {
	runScenario(t, scenarios.StandardUserCanLogin)
}

// Given a logged in standard user
// When they log out from the side menu
// Then the browser is back on the base URL showing the login form
func TestLogoutReturnsToLogin(t *testing.T) {
	runScenario(t, scenarios.LogoutReturnsToLogin)
}
