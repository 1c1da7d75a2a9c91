package locators

import (
	"strings"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
)

func TestAll_EveryEntryIsUsable(t *testing.T) {
	all := All()

	// 5 login + 13 products + 3 cart + 6 checkout + 6 step two + 4 complete + 7 menu + 2 example
	assert.Len(t, all, 46, "duplicate names collapse map entries")

	for name, sel := range all {
		assert.False(t, sel.IsZero(), "%s has no selector", name)
		assert.NotEmpty(t, sel.String(), name)

		screen, label, ok := strings.Cut(name, ".")
		assert.True(t, ok, "%s is not a dotted screen.label name", name)
		assert.NotEmpty(t, screen, name)
		assert.NotEmpty(t, label, name)
	}
}

func TestSelector_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selector
		wantRole bool
		wantStr  string
	}{
		{
			name:    "css",
			sel:     Login.LoginButton,
			wantStr: `[data-test="login-button"]`,
		},
		{
			name:     "role",
			sel:      Example.GetStartedLink,
			wantRole: true,
			wantStr:  `role=link[name="Get started"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRole, tt.sel.IsRole())
			assert.Equal(t, tt.wantStr, tt.sel.String())
		})
	}
}

func TestSelector_ZeroValue(t *testing.T) {
	var sel Selector
	assert.True(t, sel.IsZero())
	assert.False(t, CSS("x.y", ".y").IsZero())
	assert.False(t, Role("x.z", *playwright.AriaRoleButton, "Z").IsZero())
}

func TestProducts_AddToCartMatchesSlug(t *testing.T) {
	for _, sel := range []Selector{
		Products.AddToCartBackpack,
		Products.AddToCartBikeLight,
		Products.AddToCartBoltTShirt,
		Products.AddToCartFleeceJacket,
		Products.AddToCartOnesie,
		Products.AddToCartTShirtRed,
	} {
		assert.True(t, strings.HasPrefix(sel.String(), `[data-test="add-to-cart-`), sel.Name())
	}
}
