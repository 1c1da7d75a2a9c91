package pages_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/pages"
	"github.com/themizzi/saucecheck/internal/pages/pagestest"
	"go.uber.org/zap/zaptest"
)

func TestCheckoutPage_FillAndVerifyInformation(t *testing.T) {
	// GIVEN
	rec := &pagestest.Recorder{}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))
	info := config.CheckoutInfo{FirstName: "John", LastName: "Doe", PostalCode: "12345"}

	// WHEN
	require.NoError(t, page.FillCheckoutInformation(info))
	require.NoError(t, page.VerifyCheckoutInformation(info))

	// THEN
	assert.Equal(t, []string{
		"Fill checkout.firstName=John",
		"Fill checkout.lastName=Doe",
		"Fill checkout.postalCode=12345",
		"ExpectValue checkout.firstName=John",
		"ExpectValue checkout.lastName=Doe",
		"ExpectValue checkout.postalCode=12345",
	}, rec.Strings())
}

func TestCheckoutPage_FillStopsAtFirstFailure(t *testing.T) {
	boom := errors.New("element detached")
	rec := &pagestest.Recorder{FailOn: map[string]error{"Fill checkout.lastName": boom}}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	err := page.FillCheckoutInformation(config.CheckoutInfo{FirstName: "John", LastName: "Doe", PostalCode: "12345"})

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "fill last name")
	assert.Len(t, rec.Calls(), 2)
}

func TestCheckoutPage_StepOneElementsAndButtons(t *testing.T) {
	rec := &pagestest.Recorder{}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	require.NoError(t, page.VerifyCheckoutPageElements())
	require.NoError(t, page.ClickContinueButton())
	require.NoError(t, page.ClickCancelButton())

	assert.Equal(t, []string{
		"ExpectVisible checkout.firstName",
		"ExpectVisible checkout.lastName",
		"ExpectVisible checkout.postalCode",
		"ExpectVisible checkout.continueButton",
		"ExpectVisible checkout.cancelButton",
		"Click checkout.continueButton",
		"Click checkout.cancelButton",
	}, rec.Strings())
}

func TestCheckoutPage_VerifyAllProductsVisible(t *testing.T) {
	// GIVEN
	rec := &pagestest.Recorder{
		Counts: map[string]int{
			"checkoutStepTwo.cartItem":           2,
			"checkoutStepTwo.productDescription": 1,
		},
		Texts: map[string]string{
			"checkoutStepTwo.productName":  " Sauce Labs Backpack ",
			"checkoutStepTwo.productPrice": "$29.99",
		},
	}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	// WHEN
	err := page.VerifyAllProductsVisible(2)

	// THEN
	require.NoError(t, err)
	want := []string{
		"ExpectCount checkoutStepTwo.cartItem=2",
		"Count checkoutStepTwo.cartItem",
	}
	for _, scope := range []string{"checkoutStepTwo.cartItem[0] ", "checkoutStepTwo.cartItem[1] "} {
		want = append(want,
			scope+"ExpectVisible checkoutStepTwo.productName",
			scope+"ExpectVisible checkoutStepTwo.productPrice",
			scope+"Count checkoutStepTwo.productDescription",
			scope+"ExpectVisible checkoutStepTwo.productDescription",
			scope+"Text checkoutStepTwo.productName",
			scope+"Text checkoutStepTwo.productPrice",
		)
	}
	assert.Equal(t, want, rec.Strings())
}

func TestCheckoutPage_VerifyAllProductsVisible_SkipsMissingDescription(t *testing.T) {
	rec := &pagestest.Recorder{Counts: map[string]int{"checkoutStepTwo.cartItem": 1}}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	require.NoError(t, page.VerifyAllProductsVisible(1))

	assert.NotContains(t, rec.Strings(), "checkoutStepTwo.cartItem[0] ExpectVisible checkoutStepTwo.productDescription")
}

func TestCheckoutPage_VerifyAllProductsVisible_WrongCount(t *testing.T) {
	boom := errors.New("expected 6, got 5")
	rec := &pagestest.Recorder{FailOn: map[string]error{"ExpectCount checkoutStepTwo.cartItem": boom}}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	err := page.VerifyAllProductsVisible(6)

	require.ErrorIs(t, err, boom)
	assert.Len(t, rec.Calls(), 1)
}

func TestCheckoutPage_StepTwoAndComplete(t *testing.T) {
	// GIVEN
	rec := &pagestest.Recorder{}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	// WHEN
	require.NoError(t, page.VerifyCheckoutStepTwoURL())
	require.NoError(t, page.VerifyCheckoutStepTwoElements())
	require.NoError(t, page.ClickFinishButton())
	require.NoError(t, page.VerifyCheckoutCompleteURL())
	require.NoError(t, page.ValidateCheckoutComplete())
	require.NoError(t, page.ClickBackHomeButton())

	// THEN
	assert.Equal(t, []string{
		"ExpectURL https://shop.test/checkout-step-two.html",
		"ExpectVisible checkoutStepTwo.finishButton",
		"ExpectVisible checkoutStepTwo.cancelButton",
		"ExpectVisible checkoutStepTwo.finishButton",
		"Click checkoutStepTwo.finishButton",
		"ExpectURL https://shop.test/checkout-complete.html",
		"ExpectVisible checkoutComplete.completeHeader",
		"ExpectVisible checkoutComplete.completeText",
		"ExpectVisible checkoutComplete.backHomeButton",
		"ExpectVisible checkoutComplete.ponyExpressImage",
		"ExpectVisible checkoutComplete.completeHeader",
		"ExpectText checkoutComplete.completeHeader=Thank you for your order!",
		"ExpectVisible checkoutComplete.completeText",
		"ExpectContainsText checkoutComplete.completeText=Your order has been dispatched",
		"ExpectVisible checkoutComplete.backHomeButton",
		"Click checkoutComplete.backHomeButton",
	}, rec.Strings())
}

func TestCheckoutPage_CompletionDefaults(t *testing.T) {
	rec := &pagestest.Recorder{Texts: map[string]string{"checkoutComplete.completeText": "Your order has been dispatched"}}
	page := pages.NewCheckoutPage(rec, testURLs, zaptest.NewLogger(t))

	require.NoError(t, page.VerifyCompletionHeader(""))
	require.NoError(t, page.VerifyCompletionText(""))

	assert.Equal(t, []string{
		"ExpectVisible checkoutComplete.completeHeader",
		"ExpectText checkoutComplete.completeHeader=" + pages.CompletionHeader,
		"ExpectVisible checkoutComplete.completeText",
		"Text checkoutComplete.completeText",
	}, rec.Strings())
}
