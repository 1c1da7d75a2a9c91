package cli

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/themizzi/saucecheck/internal/config"
	"github.com/themizzi/saucecheck/internal/scenarios"
	"gopkg.in/yaml.v3"
)

const maskedPassword = "********"

// ListProfiles prints every available profile, marking the active one
func ListProfiles(w io.Writer, fsys fs.FS, active string) error {
	names, err := config.AvailableProfiles(fsys)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	for _, name := range names {
		marker := " "
		if name == active {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
	return nil
}

// ShowProfile prints the resolved profile as YAML with passwords masked
func ShowProfile(w io.Writer, profile *config.Profile) error {
	masked := *profile
	masked.TestData.Users = make(map[string]config.Credentials, len(profile.TestData.Users))
	for role, creds := range profile.TestData.Users {
		creds.Password = maskedPassword
		masked.TestData.Users[role] = creds
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&masked); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}

// ValidateProfiles loads every profile and reports each one's status. It
// fails if any profile does not load.
func ValidateProfiles(w io.Writer, fsys fs.FS) error {
	names, err := config.AvailableProfiles(fsys)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	invalid := 0
	for _, name := range names {
		if _, err := config.LoadProfile(fsys, name); err != nil {
			invalid++
			fmt.Fprintf(w, "FAIL %s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "ok   %s\n", name)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d profiles invalid", invalid, len(names))
	}
	return nil
}

// ListScenarios prints every scenario name and description
func ListScenarios(w io.Writer) {
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "%-22s %s\n", s.Name, s.Description)
	}
}
