package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Trace modes
const (
	TraceRetainOnFailure = "retain-on-failure"
	TraceOff             = "off"
)

// BrowserConfig holds driver launch settings
type BrowserConfig struct {
	Browser      string
	Headless     bool
	SlowMo       int // milliseconds
	ArtifactsDir string
	Trace        string
	Video        bool
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (*BrowserConfig, error) {
	config := &BrowserConfig{
		Browser:      strings.ToLower(getenv("BROWSER")),
		Headless:     true,
		ArtifactsDir: getenv("ARTIFACTS_DIR"),
		Trace:        strings.ToLower(getenv("TRACE")),
	}

	if config.Browser == "" {
		config.Browser = BrowserChromium
	}
	switch config.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return nil, fmt.Errorf("BROWSER must be one of %s, %s, %s; got %q",
			BrowserChromium, BrowserFirefox, BrowserWebKit, config.Browser)
	}

	if v := getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("HEADLESS must be a boolean: %w", err)
		}
		config.Headless = headless
	}

	if v := getenv("SLOW_MO"); v != "" {
		slowMo, err := strconv.Atoi(v)
		if err != nil || slowMo < 0 {
			return nil, fmt.Errorf("SLOW_MO must be a non-negative number of milliseconds, got %q", v)
		}
		config.SlowMo = slowMo
	}

	if v := getenv("VIDEO"); v != "" {
		video, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("VIDEO must be a boolean: %w", err)
		}
		config.Video = video
	}

	if config.ArtifactsDir == "" {
		config.ArtifactsDir = "test-results"
	}

	if config.Trace == "" {
		config.Trace = TraceRetainOnFailure
	}
	if config.Trace != TraceRetainOnFailure && config.Trace != TraceOff {
		return nil, fmt.Errorf("TRACE must be %s or %s, got %q", TraceRetainOnFailure, TraceOff, config.Trace)
	}

	return config, nil
}

// Tracing reports whether traces should be recorded
func (c *BrowserConfig) Tracing() bool {
	return c.Trace == TraceRetainOnFailure
}
