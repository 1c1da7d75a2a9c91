package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBrowserConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *BrowserConfig
		wantErr string
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: &BrowserConfig{
				Browser:      BrowserChromium,
				Headless:     true,
				ArtifactsDir: "test-results",
				Trace:        TraceRetainOnFailure,
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"BROWSER":       "Firefox",
				"HEADLESS":      "false",
				"SLOW_MO":       "250",
				"ARTIFACTS_DIR": "/tmp/out",
				"TRACE":         "off",
				"VIDEO":         "true",
			},
			want: &BrowserConfig{
				Browser:      BrowserFirefox,
				Headless:     false,
				SlowMo:       250,
				ArtifactsDir: "/tmp/out",
				Trace:        TraceOff,
				Video:        true,
			},
		},
		{
			name:    "unknown browser",
			env:     map[string]string{"BROWSER": "netscape"},
			wantErr: "BROWSER must be one of",
		},
		{
			name:    "invalid headless",
			env:     map[string]string{"HEADLESS": "sometimes"},
			wantErr: "HEADLESS must be a boolean",
		},
		{
			name:    "negative slow mo",
			env:     map[string]string{"SLOW_MO": "-5"},
			wantErr: "SLOW_MO must be a non-negative number",
		},
		{
			name:    "invalid video",
			env:     map[string]string{"VIDEO": "maybe"},
			wantErr: "VIDEO must be a boolean",
		},
		{
			name:    "unknown trace mode",
			env:     map[string]string{"TRACE": "always"},
			wantErr: "TRACE must be",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadBrowserConfig(envFrom(tt.env))

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrowserConfig_Tracing(t *testing.T) {
	assert.True(t, (&BrowserConfig{Trace: TraceRetainOnFailure}).Tracing())
	assert.False(t, (&BrowserConfig{Trace: TraceOff}).Tracing())
}

func TestLoadLogConfig(t *testing.T) {
	assert.Equal(t, LogConfig{Level: "info", Format: "console"}, LoadLogConfig(envFrom(nil)))
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"},
		LoadLogConfig(envFrom(map[string]string{"LOG_LEVEL": "DEBUG", "LOG_FORMAT": "json"})))
}
