package pages

import (
	"fmt"
	"strings"

	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/locators"
	"go.uber.org/zap"
)

// Order confirmation copy shown by SauceDemo
const (
	CompletionHeader = "Thank you for your order!"
	CompletionText   = "Your order has been dispatched"
)

// CheckoutPage wraps checkout step one, step two and the complete screen
type CheckoutPage struct {
	page   Actions
	urls   config.URLs
	logger *zap.Logger
}

// NewCheckoutPage creates a new checkout page wrapper
func NewCheckoutPage(page Actions, urls config.URLs, logger *zap.Logger) *CheckoutPage {
	return &CheckoutPage{
		page:   page,
		urls:   urls,
		logger: logger.Named("CheckoutPage"),
	}
}

func (p *CheckoutPage) fill(field string, sel locators.Selector, value string) error {
	p.logger.Info("filling "+field, zap.String("value", value))
	if err := p.page.Fill(sel, value); err != nil {
		return fmt.Errorf("fill %s: %w", field, err)
	}
	return nil
}

func (p *CheckoutPage) verifyValue(field string, sel locators.Selector, want string) error {
	p.logger.Info("verifying "+field, zap.String("expected", want))
	if err := p.page.ExpectValue(sel, want); err != nil {
		return fmt.Errorf("%s value: %w", field, err)
	}
	return nil
}

// FillFirstName types the first name
func (p *CheckoutPage) FillFirstName(v string) error {
	return p.fill("first name", locators.Checkout.FirstName, v)
}

// FillLastName types the last name
func (p *CheckoutPage) FillLastName(v string) error {
	return p.fill("last name", locators.Checkout.LastName, v)
}

// FillPostalCode types the postal code
func (p *CheckoutPage) FillPostalCode(v string) error {
	return p.fill("postal code", locators.Checkout.PostalCode, v)
}

// FillCheckoutInformation fills the whole step one form
func (p *CheckoutPage) FillCheckoutInformation(info config.CheckoutInfo) error {
	p.logger.Info("filling checkout information")
	if err := p.FillFirstName(info.FirstName); err != nil {
		return err
	}
	if err := p.FillLastName(info.LastName); err != nil {
		return err
	}
	return p.FillPostalCode(info.PostalCode)
}

// VerifyFirstName checks the first name field holds want
func (p *CheckoutPage) VerifyFirstName(want string) error {
	return p.verifyValue("first name", locators.Checkout.FirstName, want)
}

// VerifyLastName checks the last name field holds want
func (p *CheckoutPage) VerifyLastName(want string) error {
	return p.verifyValue("last name", locators.Checkout.LastName, want)
}

// VerifyPostalCode checks the postal code field holds want
func (p *CheckoutPage) VerifyPostalCode(want string) error {
	return p.verifyValue("postal code", locators.Checkout.PostalCode, want)
}

// VerifyCheckoutInformation checks every step one field holds the fixture value
func (p *CheckoutPage) VerifyCheckoutInformation(info config.CheckoutInfo) error {
	p.logger.Info("verifying checkout information")
	if err := p.VerifyFirstName(info.FirstName); err != nil {
		return err
	}
	if err := p.VerifyLastName(info.LastName); err != nil {
		return err
	}
	return p.VerifyPostalCode(info.PostalCode)
}

// VerifyCheckoutPageElements checks the step one form and its buttons
func (p *CheckoutPage) VerifyCheckoutPageElements() error {
	p.logger.Info("verifying checkout page elements are visible")
	return expectAllVisible(p.page,
		locators.Checkout.FirstName,
		locators.Checkout.LastName,
		locators.Checkout.PostalCode,
		locators.Checkout.ContinueButton,
		locators.Checkout.CancelButton,
	)
}

// ClickContinueButton submits step one
func (p *CheckoutPage) ClickContinueButton() error {
	p.logger.Info("clicking continue button")
	if err := p.page.Click(locators.Checkout.ContinueButton); err != nil {
		return fmt.Errorf("click continue: %w", err)
	}
	return nil
}

// ClickCancelButton abandons step one
func (p *CheckoutPage) ClickCancelButton() error {
	p.logger.Info("clicking cancel button")
	if err := p.page.Click(locators.Checkout.CancelButton); err != nil {
		return fmt.Errorf("click cancel: %w", err)
	}
	return nil
}

// VerifyCheckoutStepTwoURL checks the overview page was reached
func (p *CheckoutPage) VerifyCheckoutStepTwoURL() error {
	if err := p.page.ExpectURL(p.urls.CheckoutStepTwoURL); err != nil {
		return fmt.Errorf("checkout step two not reached: %w", err)
	}
	return nil
}

// VerifyCheckoutStepTwoElements checks the overview buttons
func (p *CheckoutPage) VerifyCheckoutStepTwoElements() error {
	p.logger.Info("verifying checkout step two elements are visible")
	return expectAllVisible(p.page,
		locators.CheckoutStepTwo.FinishButton,
		locators.CheckoutStepTwo.CancelButton,
	)
}

// VerifyAllProductsVisible checks the overview lists want items and that each
// one shows a name and a price. Descriptions are checked when present.
func (p *CheckoutPage) VerifyAllProductsVisible(want int) error {
	p.logger.Info("verifying products on checkout step two", zap.Int("expected", want))
	if err := p.page.ExpectCount(locators.CheckoutStepTwo.CartItem, want); err != nil {
		return fmt.Errorf("checkout item count: %w", err)
	}

	count, err := p.page.Count(locators.CheckoutStepTwo.CartItem)
	if err != nil {
		return fmt.Errorf("count checkout items: %w", err)
	}

	for i := 0; i < count; i++ {
		item := p.page.Nth(locators.CheckoutStepTwo.CartItem, i)

		if err := expectAllVisible(item,
			locators.CheckoutStepTwo.ProductName,
			locators.CheckoutStepTwo.ProductPrice,
		); err != nil {
			return fmt.Errorf("checkout item %d: %w", i+1, err)
		}

		descriptions, err := item.Count(locators.CheckoutStepTwo.ProductDescription)
		if err != nil {
			return fmt.Errorf("checkout item %d: %w", i+1, err)
		}
		if descriptions > 0 {
			if err := item.ExpectVisible(locators.CheckoutStepTwo.ProductDescription); err != nil {
				return fmt.Errorf("checkout item %d description: %w", i+1, err)
			}
		}

		name, err := item.Text(locators.CheckoutStepTwo.ProductName)
		if err != nil {
			return fmt.Errorf("checkout item %d name: %w", i+1, err)
		}
		price, err := item.Text(locators.CheckoutStepTwo.ProductPrice)
		if err != nil {
			return fmt.Errorf("checkout item %d price: %w", i+1, err)
		}
		p.logger.Debug("checkout item verified",
			zap.Int("position", i+1),
			zap.String("name", strings.TrimSpace(name)),
			zap.String("price", strings.TrimSpace(price)),
		)
	}
	return nil
}

// ClickFinishButton places the order
func (p *CheckoutPage) ClickFinishButton() error {
	p.logger.Info("clicking finish button")
	if err := p.page.ExpectVisible(locators.CheckoutStepTwo.FinishButton); err != nil {
		return fmt.Errorf("finish button not visible: %w", err)
	}
	if err := p.page.Click(locators.CheckoutStepTwo.FinishButton); err != nil {
		return fmt.Errorf("click finish: %w", err)
	}
	return nil
}

// VerifyCheckoutCompleteURL checks the confirmation page was reached
func (p *CheckoutPage) VerifyCheckoutCompleteURL() error {
	if err := p.page.ExpectURL(p.urls.CheckoutCompleteURL); err != nil {
		return fmt.Errorf("checkout complete not reached: %w", err)
	}
	return nil
}

// VerifyCheckoutCompleteElements checks the confirmation screen layout
func (p *CheckoutPage) VerifyCheckoutCompleteElements() error {
	p.logger.Info("verifying checkout complete elements are visible")
	return expectAllVisible(p.page,
		locators.CheckoutComplete.CompleteHeader,
		locators.CheckoutComplete.CompleteText,
		locators.CheckoutComplete.BackHomeButton,
		locators.CheckoutComplete.PonyExpressImage,
	)
}

// VerifyCompletionHeader checks the header equals want, or CompletionHeader
// when want is empty.
func (p *CheckoutPage) VerifyCompletionHeader(want string) error {
	if want == "" {
		want = CompletionHeader
	}
	p.logger.Info("verifying completion header", zap.String("expected", want))
	if err := p.page.ExpectVisible(locators.CheckoutComplete.CompleteHeader); err != nil {
		return fmt.Errorf("completion header not visible: %w", err)
	}
	if err := p.page.ExpectText(locators.CheckoutComplete.CompleteHeader, want); err != nil {
		return fmt.Errorf("completion header: %w", err)
	}
	return nil
}

// VerifyCompletionText checks the confirmation message is shown and, when
// want is set, that it contains want.
func (p *CheckoutPage) VerifyCompletionText(want string) error {
	p.logger.Info("verifying completion text", zap.String("expected", want))
	if err := p.page.ExpectVisible(locators.CheckoutComplete.CompleteText); err != nil {
		return fmt.Errorf("completion text not visible: %w", err)
	}
	if want == "" {
		text, err := p.page.Text(locators.CheckoutComplete.CompleteText)
		if err != nil {
			return fmt.Errorf("read completion text: %w", err)
		}
		p.logger.Debug("completion text", zap.String("text", strings.TrimSpace(text)))
		return nil
	}
	if err := p.page.ExpectContainsText(locators.CheckoutComplete.CompleteText, want); err != nil {
		return fmt.Errorf("completion text: %w", err)
	}
	return nil
}

// ValidateCheckoutComplete checks the confirmation layout and copy
func (p *CheckoutPage) ValidateCheckoutComplete() error {
	p.logger.Info("validating checkout complete page")
	if err := p.VerifyCheckoutCompleteElements(); err != nil {
		return err
	}
	if err := p.VerifyCompletionHeader(CompletionHeader); err != nil {
		return err
	}
	return p.VerifyCompletionText(CompletionText)
}

// ClickBackHomeButton returns to the inventory after an order
func (p *CheckoutPage) ClickBackHomeButton() error {
	p.logger.Info("clicking back home button")
	if err := p.page.ExpectVisible(locators.CheckoutComplete.BackHomeButton); err != nil {
		return fmt.Errorf("back home button not visible: %w", err)
	}
	if err := p.page.Click(locators.CheckoutComplete.BackHomeButton); err != nil {
		return fmt.Errorf("click back home: %w", err)
	}
	return nil
}
