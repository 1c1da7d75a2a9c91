package scenarios

import (
	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/pages"
)

// Login error banners shown by SauceDemo
const (
	LockedOutMessage        = "Epic sadface: Sorry, this user has been locked out."
	UsernameRequiredMessage = "Epic sadface: Username is required"
	PasswordRequiredMessage = "Epic sadface: Password is required"
)

// LockedUserCannotLogin checks a locked account is rejected and stays on the
// login page
var LockedUserCannotLogin = Scenario{
	Name:        "LockedUserCannotLogin",
	Description: "Verify Locked User is not able to login",
	Run: func(env Env) error {
		login := pages.NewLoginPage(env.Page, env.Profile.URLs, env.Logger)

		locked, err := env.Profile.User(config.RoleLocked)
		if err != nil {
			return err
		}
		if err := login.AttemptLoginWithLockedUser(locked); err != nil {
			return err
		}
		if err := login.VerifyErrorMessage(LockedOutMessage); err != nil {
			return err
		}
		return login.VerifyAtLoginPage()
	},
}

// UsernameIsRequired checks submitting an empty form
var UsernameIsRequired = Scenario{
	Name:        "UsernameIsRequired",
	Description: "Validate username is required",
	Run: func(env Env) error {
		login := pages.NewLoginPage(env.Page, env.Profile.URLs, env.Logger)

		if err := login.AttemptLoginWithoutUsername(); err != nil {
			return err
		}
		return login.VerifyErrorMessage(UsernameRequiredMessage)
	},
}

// PasswordIsRequired checks submitting a username alone
var PasswordIsRequired = Scenario{
	Name:        "PasswordIsRequired",
	Description: "Validate password is required",
	Run: func(env Env) error {
		login := pages.NewLoginPage(env.Page, env.Profile.URLs, env.Logger)

		standard, err := env.Profile.User(config.RoleStandard)
		if err != nil {
			return err
		}
		if err := login.AttemptLoginWithoutPassword(standard.Username); err != nil {
			return err
		}
		return login.VerifyErrorMessage(PasswordRequiredMessage)
	},
}

// StandardUserCanLogin checks a valid login lands on the inventory
var StandardUserCanLogin = Scenario{
	Name:        "StandardUserCanLogin",
	Description: "Verify User Login Is Successful",
	Run: func(env Env) error {
		return loginAsStandard(env)
	},
}

// loginAsStandard logs in with the standard user and waits for the inventory
func loginAsStandard(env Env) error {
	login := pages.NewLoginPage(env.Page, env.Profile.URLs, env.Logger)

	standard, err := env.Profile.User(config.RoleStandard)
	if err != nil {
		return err
	}
	if err := login.Login(standard); err != nil {
		return err
	}
	return login.VerifySuccessfulLogin(env.Profile.URLs.InventoryURL)
}
