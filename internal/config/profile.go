package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// User roles defined by every profile
const (
	RoleStandard    = "standard"
	RoleLocked      = "locked"
	RoleProblem     = "problem"
	RolePerformance = "performance"
)

// Product fixture keys, in catalog order
const (
	ProductBackpack     = "backpack"
	ProductBikeLight    = "bikeLight"
	ProductBoltTShirt   = "boltTShirt"
	ProductFleeceJacket = "fleeceJacket"
	ProductOnesie       = "onesie"
	ProductTShirtRed    = "tShirtRed"
)

// ErrFixtureMissing is returned when a profile lacks a requested user or product
var ErrFixtureMissing = errors.New("fixture missing from profile")

// Profile is one environment's URLs, credentials, fixtures and timeouts.
// It is immutable once loaded.
type Profile struct {
	Environment string   `yaml:"environment"`
	URLs        URLs     `yaml:"urls"`
	TestData    TestData `yaml:"testData"`
	Timeouts    Timeouts `yaml:"timeouts"`
}

// URLs holds the application endpoints of a profile
type URLs struct {
	BaseURL             string `yaml:"baseUrl"`
	InventoryURL        string `yaml:"inventoryUrl"`
	CartURL             string `yaml:"cartUrl"`
	CheckoutURL         string `yaml:"checkoutUrl"`
	CheckoutStepTwoURL  string `yaml:"checkoutStepTwoUrl"`
	CheckoutCompleteURL string `yaml:"checkoutCompleteUrl"`
}

// TestData groups the literal fixtures used to drive and assert scenarios
type TestData struct {
	Users    map[string]Credentials `yaml:"users"`
	Products map[string]Product     `yaml:"products"`
	Checkout CheckoutInfo           `yaml:"checkout"`
}

// Credentials is a username/password pair for one user role
type Credentials struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// Product is the expected catalog entry for one product
type Product struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
}

// CheckoutInfo is the customer information entered on checkout step one
type CheckoutInfo struct {
	FirstName  string `yaml:"firstName"`
	LastName   string `yaml:"lastName"`
	PostalCode string `yaml:"postalCode"`
}

// Timeouts are in milliseconds and are handed to the driver as-is
type Timeouts struct {
	DefaultTimeout    int `yaml:"defaultTimeout"`
	NavigationTimeout int `yaml:"navigationTimeout"`
}

// User returns the credentials for a role
func (p *Profile) User(role string) (Credentials, error) {
	creds, ok := p.TestData.Users[role]
	if !ok {
		return Credentials{}, fmt.Errorf("%w: user %q (profile %s has: %s)",
			ErrFixtureMissing, role, p.Environment, strings.Join(sortedKeys(p.TestData.Users), ", "))
	}
	return creds, nil
}

// Product returns the product fixture for a key
func (p *Profile) Product(key string) (Product, error) {
	product, ok := p.TestData.Products[key]
	if !ok {
		return Product{}, fmt.Errorf("%w: product %q (profile %s has: %s)",
			ErrFixtureMissing, key, p.Environment, strings.Join(sortedKeys(p.TestData.Products), ", "))
	}
	return product, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
