// Package scenarios holds the end-to-end scripts. Each one is a fixed,
// linear sequence of page wrapper calls ending in checks against literal
// values from the profile.
package scenarios

import (
	"errors"
	"fmt"
	"strings"

	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/pages"
	"go.uber.org/zap"
)

// ErrUnknownScenario is returned by Select for a name not in All
var ErrUnknownScenario = errors.New("unknown scenario")

// Env is what a scenario runs against
type Env struct {
	Profile *config.Profile
	Page    pages.Actions
	Logger  *zap.Logger
}

// Scenario is one independent end-to-end test case
type Scenario struct {
	Name        string
	Description string
	Run         func(Env) error
}

// Execute opens a fresh login page, then runs the scenario
func (s Scenario) Execute(env Env) error {
	env.Logger = env.Logger.With(zap.String("scenario", s.Name))
	if err := pages.NewLoginPage(env.Page, env.Profile.URLs, env.Logger).Goto(); err != nil {
		return err
	}
	return s.Run(env)
}

// All returns every scenario in a stable order
func All() []Scenario {
	return []Scenario{
		LockedUserCannotLogin,
		UsernameIsRequired,
		PasswordIsRequired,
		StandardUserCanLogin,
		FullCheckout,
		ProductDetails,
		LogoutReturnsToLogin,
	}
}

// Names lists the scenario names in All order
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name
	}
	return names
}

// Select returns the named scenarios in the order given. No names selects all.
func Select(names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return All(), nil
	}

	byName := make(map[string]Scenario)
	for _, s := range All() {
		byName[s.Name] = s
	}

	selected := make([]Scenario, 0, len(names))
	for _, name := range names {
		s, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w %q\navailable scenarios: %s",
				ErrUnknownScenario, name, strings.Join(Names(), ", "))
		}
		selected = append(selected, s)
	}
	return selected, nil
}
