package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/themizzi/saucecheck/configs"
	"gopkg.in/yaml.v3"
)

const (
	// EnvProfile names the environment variable selecting the active profile
	EnvProfile = "ENV_CONFIG"
	// EnvConfigDir overrides the embedded profiles with a directory on disk
	EnvConfigDir = "CONFIG_DIR"
	// DefaultProfile is used when ENV_CONFIG is unset
	DefaultProfile = "local"
	// ProfileSuffix is the naming convention for profile files
	ProfileSuffix = ".config.yaml"
)

// Profile resolution errors
var (
	ErrProfileNotFound = errors.New("configuration profile not found")
	ErrProfileInvalid  = errors.New("error loading configuration file")
)

// Resolver resolves the active profile once and hands out the same value
// on every later call.
type Resolver struct {
	fsys   fs.FS
	getenv func(string) string

	once    sync.Once
	profile *Profile
	err     error
}

// NewResolver creates a resolver reading profiles from fsys and the profile
// name from getenv
func NewResolver(fsys fs.FS, getenv func(string) string) *Resolver {
	return &Resolver{
		fsys:   fsys,
		getenv: getenv,
	}
}

// Source returns the directory named by CONFIG_DIR, or the profiles
// embedded in the binary when it is unset
func Source(getenv func(string) string) fs.FS {
	if dir := getenv(EnvConfigDir); dir != "" {
		return os.DirFS(dir)
	}
	return configs.FS
}

// ProfileName returns the selected profile name
func (r *Resolver) ProfileName() string {
	if name := strings.TrimSpace(r.getenv(EnvProfile)); name != "" {
		return name
	}
	return DefaultProfile
}

// Resolve loads the selected profile on first use. A failed resolution is
// cached as well; there is no reload.
func (r *Resolver) Resolve() (*Profile, error) {
	r.once.Do(func() {
		r.profile, r.err = LoadProfile(r.fsys, r.ProfileName())
	})
	return r.profile, r.err
}

// LoadProfile reads and validates <name>.config.yaml from fsys
func LoadProfile(fsys fs.FS, name string) (*Profile, error) {
	fileName := name + ProfileSuffix

	raw, err := fs.ReadFile(fsys, fileName)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w %s: %w", ErrProfileInvalid, fileName, err)
		}
		available, listErr := AvailableProfiles(fsys)
		if listErr != nil {
			return nil, fmt.Errorf("%w: %s (listing profiles also failed: %v)", ErrProfileNotFound, fileName, listErr)
		}
		return nil, fmt.Errorf("%w: %s\nplease create %s in the configuration directory\navailable profiles: %s",
			ErrProfileNotFound, fileName, fileName, strings.Join(available, ", "))
	}

	if err := validateProfile(raw); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrProfileInvalid, fileName, err)
	}

	profile := &Profile{}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(profile); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrProfileInvalid, fileName, err)
	}

	return profile, nil
}

// AvailableProfiles lists the profile names present in fsys, sorted
func AvailableProfiles(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration directory: %w", err)
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ProfileSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ProfileSuffix))
	}
	sort.Strings(names)
	return names, nil
}
