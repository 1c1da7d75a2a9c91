package scenarios

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/saucecheck/configs"
	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/pages/pagestest"
	"go.uber.org/zap/zaptest"
)

func localProfile(t *testing.T) *config.Profile {
	t.Helper()
	profile, err := config.LoadProfile(configs.FS, "local")
	require.NoError(t, err)
	return profile
}

func run(t *testing.T, s Scenario, rec *pagestest.Recorder) error {
	t.Helper()
	return s.Execute(Env{Profile: localProfile(t), Page: rec, Logger: zaptest.NewLogger(t)})
}

func TestScenarios_StartFromLoginPage(t *testing.T) {
	for _, s := range All() {
		t.Run(s.Name, func(t *testing.T) {
			rec := &pagestest.Recorder{Counts: map[string]int{"checkoutStepTwo.cartItem": 6}}

			require.NoError(t, run(t, s, rec))

			calls := rec.Strings()
			require.NotEmpty(t, calls)
			assert.Equal(t, "Goto https://www.saucedemo.com/", calls[0])
		})
	}
}

func TestLockedUserCannotLogin(t *testing.T) {
	// GIVEN
	rec := &pagestest.Recorder{}

	// WHEN
	err := run(t, LockedUserCannotLogin, rec)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Goto https://www.saucedemo.com/",
		"Fill login.username=locked_out_user",
		"Fill login.password=secret_sauce",
		"Click login.loginButton",
		"ExpectVisible login.errorMessage",
		"ExpectText login.errorMessage=Epic sadface: Sorry, this user has been locked out.",
		"ExpectURL https://www.saucedemo.com/",
	}, rec.Strings())
}

func TestLockedUserCannotLogin_FailsWhenNavigated(t *testing.T) {
	// GIVEN the site lets the locked user through
	navigated := errors.New("page is at inventory.html")
	rec := &pagestest.Recorder{FailOn: map[string]error{
		"ExpectURL https://www.saucedemo.com/": navigated,
	}}

	// WHEN
	err := run(t, LockedUserCannotLogin, rec)

	// THEN
	require.ErrorIs(t, err, navigated)
}

func TestLoginValidationMessages(t *testing.T) {
	tests := []struct {
		scenario Scenario
		want     []string
	}{
		{
			scenario: UsernameIsRequired,
			want: []string{
				"Goto https://www.saucedemo.com/",
				"Click login.loginButton",
				"ExpectVisible login.errorMessage",
				"ExpectText login.errorMessage=Epic sadface: Username is required",
			},
		},
		{
			scenario: PasswordIsRequired,
			want: []string{
				"Goto https://www.saucedemo.com/",
				"Fill login.username=standard_user",
				"Click login.loginButton",
				"ExpectVisible login.errorMessage",
				"ExpectText login.errorMessage=Epic sadface: Password is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.scenario.Name, func(t *testing.T) {
			rec := &pagestest.Recorder{}
			require.NoError(t, run(t, tt.scenario, rec))
			assert.Equal(t, tt.want, rec.Strings())
		})
	}
}

func TestStandardUserCanLogin(t *testing.T) {
	rec := &pagestest.Recorder{}

	require.NoError(t, run(t, StandardUserCanLogin, rec))

	calls := rec.Strings()
	assert.Equal(t, "ExpectURL https://www.saucedemo.com/inventory.html", calls[len(calls)-1])
}

func TestFullCheckout(t *testing.T) {
	// GIVEN
	rec := &pagestest.Recorder{Counts: map[string]int{"checkoutStepTwo.cartItem": 6}}

	// WHEN
	err := run(t, FullCheckout, rec)

	// THEN
	require.NoError(t, err)
	calls := rec.Strings()
	for _, want := range []string{
		"ExpectText products.cartBadge=6",
		"ExpectURL https://www.saucedemo.com/cart.html",
		"ExpectCount cart.cartItem=6",
		"ExpectURL https://www.saucedemo.com/checkout-step-one.html",
		"ExpectValue checkout.firstName=John",
		"ExpectValue checkout.lastName=Doe",
		"ExpectValue checkout.postalCode=12345",
		"ExpectURL https://www.saucedemo.com/checkout-step-two.html",
		"ExpectCount checkoutStepTwo.cartItem=6",
		"checkoutStepTwo.cartItem[5] ExpectVisible checkoutStepTwo.productName",
		"Click checkoutStepTwo.finishButton",
		"ExpectURL https://www.saucedemo.com/checkout-complete.html",
		"ExpectText checkoutComplete.completeHeader=Thank you for your order!",
		"ExpectContainsText checkoutComplete.completeText=Your order has been dispatched",
	} {
		assert.Contains(t, calls, want)
	}
	assert.Equal(t, "ExpectContainsText checkoutComplete.completeText=Your order has been dispatched", calls[len(calls)-1])
}

func TestFullCheckout_StopsAtFirstFailure(t *testing.T) {
	// GIVEN
	boom := errors.New(`expected "6", got "5"`)
	rec := &pagestest.Recorder{FailOn: map[string]error{"ExpectText products.cartBadge": boom}}

	// WHEN
	err := run(t, FullCheckout, rec)

	// THEN
	require.ErrorIs(t, err, boom)
	calls := rec.Strings()
	assert.Equal(t, "ExpectText products.cartBadge=6", calls[len(calls)-1])
	assert.NotContains(t, calls, "Click products.cartIcon")
}

func TestProductDetails(t *testing.T) {
	rec := &pagestest.Recorder{}

	require.NoError(t, run(t, ProductDetails, rec))

	calls := rec.Strings()
	assert.Contains(t, calls, "products.productContainer{products.addToCartBackpack} ExpectText products.productPrice=$29.99")
	assert.Contains(t, calls, "products.productContainer{products.addToCartTShirtRed} ExpectText products.productName=Test.allTheThings() T-Shirt (Red)")
}

func TestProductDetails_MissingFixture(t *testing.T) {
	profile := localProfile(t)
	delete(profile.TestData.Products, config.ProductOnesie)
	rec := &pagestest.Recorder{}

	err := ProductDetails.Execute(Env{Profile: profile, Page: rec, Logger: zaptest.NewLogger(t)})

	assert.ErrorIs(t, err, config.ErrFixtureMissing)
}

func TestLogoutReturnsToLogin(t *testing.T) {
	rec := &pagestest.Recorder{}

	require.NoError(t, run(t, LogoutReturnsToLogin, rec))

	calls := rec.Strings()
	assert.Equal(t, []string{
		"Click menu.hamburgerButton",
		"ExpectVisible menu.menuContainer",
		"Click menu.menuItemLogout",
		"ExpectURL https://www.saucedemo.com/",
		"ExpectVisible login.username",
		"ExpectVisible login.password",
		"ExpectVisible login.loginButton",
	}, calls[len(calls)-7:])
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr bool
	}{
		{name: "none selects all", names: nil, want: Names()},
		{name: "keeps requested order", names: []string{"FullCheckout", "UsernameIsRequired"}, want: []string{"FullCheckout", "UsernameIsRequired"}},
		{name: "unknown name", names: []string{"FullCheckout", "Nope"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Select(tt.names)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownScenario)
				assert.Contains(t, err.Error(), `"Nope"`)
				assert.Contains(t, err.Error(), "LogoutReturnsToLogin")
				return
			}
			require.NoError(t, err)
			names := make([]string, len(got))
			for i, s := range got {
				names[i] = s.Name
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestAll_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range All() {
		assert.False(t, seen[s.Name], "duplicate %s", s.Name)
		seen[s.Name] = true
		assert.NotEmpty(t, s.Description)
		assert.NotNil(t, s.Run)
	}
	assert.Len(t, seen, 7)
}
