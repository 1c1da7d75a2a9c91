package pages

import (
	"fmt"

	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/locators"
	"go.uber.org/zap"
)

// LoginPage wraps the SauceDemo login screen
type LoginPage struct {
	page   Actions
	urls   config.URLs
	logger *zap.Logger
}

// NewLoginPage creates a new login page wrapper
func NewLoginPage(page Actions, urls config.URLs, logger *zap.Logger) *LoginPage {
	return &LoginPage{
		page:   page,
		urls:   urls,
		logger: logger.Named("LoginPage"),
	}
}

// Goto navigates to the base URL
func (p *LoginPage) Goto() error {
	p.logger.Info("navigating to base url", zap.String("url", p.urls.BaseURL))
	if err := p.page.Goto(p.urls.BaseURL); err != nil {
		return fmt.Errorf("open login page: %w", err)
	}
	return nil
}

// FillUsername types into the username field
func (p *LoginPage) FillUsername(username string) error {
	p.logger.Info("filling username", zap.String("username", username))
	if err := p.page.Fill(locators.Login.Username, username); err != nil {
		return fmt.Errorf("fill username: %w", err)
	}
	return nil
}

// FillPassword types into the password field. The value is never logged.
func (p *LoginPage) FillPassword(password string) error {
	p.logger.Info("filling password")
	if err := p.page.Fill(locators.Login.Password, password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	return nil
}

// ClickLoginButton submits the form
func (p *LoginPage) ClickLoginButton() error {
	p.logger.Info("clicking login button")
	if err := p.page.Click(locators.Login.LoginButton); err != nil {
		return fmt.Errorf("click login button: %w", err)
	}
	return nil
}

// Login fills both fields and submits
func (p *LoginPage) Login(creds config.Credentials) error {
	p.logger.Info("performing login", zap.String("username", creds.Username))
	if err := p.FillUsername(creds.Username); err != nil {
		return err
	}
	if err := p.FillPassword(creds.Password); err != nil {
		return err
	}
	return p.ClickLoginButton()
}

// AttemptLoginWithoutUsername submits the empty form
func (p *LoginPage) AttemptLoginWithoutUsername() error {
	p.logger.Info("attempting login without username")
	return p.ClickLoginButton()
}

// AttemptLoginWithoutPassword submits with only the username filled
func (p *LoginPage) AttemptLoginWithoutPassword(username string) error {
	p.logger.Info("attempting login without password", zap.String("username", username))
	if err := p.FillUsername(username); err != nil {
		return err
	}
	return p.ClickLoginButton()
}

// AttemptLoginWithLockedUser logs in with credentials expected to be rejected
func (p *LoginPage) AttemptLoginWithLockedUser(creds config.Credentials) error {
	p.logger.Info("attempting login with locked user", zap.String("username", creds.Username))
	return p.Login(creds)
}

// VerifyErrorMessage checks the login error banner shows exactly want
func (p *LoginPage) VerifyErrorMessage(want string) error {
	p.logger.Info("verifying error message", zap.String("expected", want))
	if err := p.page.ExpectVisible(locators.Login.ErrorMessage); err != nil {
		return fmt.Errorf("error message not visible: %w", err)
	}
	if err := p.page.ExpectText(locators.Login.ErrorMessage, want); err != nil {
		return fmt.Errorf("error message text: %w", err)
	}
	return nil
}

// VerifySuccessfulLogin checks the browser landed on expectedURL. An empty
// expectedURL means the inventory page.
func (p *LoginPage) VerifySuccessfulLogin(expectedURL string) error {
	if expectedURL == "" {
		expectedURL = p.urls.InventoryURL
	}
	p.logger.Info("verifying successful login", zap.String("url", expectedURL))
	if err := p.page.ExpectURL(expectedURL); err != nil {
		return fmt.Errorf("login did not reach %s: %w", expectedURL, err)
	}
	return nil
}

// VerifyAtLoginPage checks the browser is on the base URL, where the login
// form lives
func (p *LoginPage) VerifyAtLoginPage() error {
	p.logger.Info("verifying login page url", zap.String("url", p.urls.BaseURL))
	if err := p.page.ExpectURL(p.urls.BaseURL); err != nil {
		return fmt.Errorf("not on login page: %w", err)
	}
	return nil
}

// VerifyLoginPageElements checks the login form is displayed
func (p *LoginPage) VerifyLoginPageElements() error {
	p.logger.Info("verifying login page elements are visible")
	return expectAllVisible(p.page,
		locators.Login.Username,
		locators.Login.Password,
		locators.Login.LoginButton,
	)
}

// expectAllVisible stops at the first selector that is not visible
func expectAllVisible(page Actions, sels ...locators.Selector) error {
	for _, sel := range sels {
		if err := page.ExpectVisible(sel); err != nil {
			return fmt.Errorf("%s not visible: %w", sel.Name(), err)
		}
	}
	return nil
}
