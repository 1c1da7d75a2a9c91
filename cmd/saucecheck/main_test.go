package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/themizzi/saucecheck/internal/config"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvProfile, config.EnvConfigDir} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"saucecheck"}, args...))
	return out.String(), err
}

func TestApp_Profiles(t *testing.T) {
	out, err := runApp(t, "--profile", "stg", "profiles")

	require.NoError(t, err)
	assert.Equal(t, "  local\n* stg\n", out)
}

func TestApp_ShowDefaultsToLocal(t *testing.T) {
	out, err := runApp(t, "show")

	require.NoError(t, err)
	assert.Contains(t, out, "environment: local")
}

func TestApp_ShowUnknownProfile(t *testing.T) {
	_, err := runApp(t, "--profile", "prod", "show")

	require.ErrorIs(t, err, config.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "available profiles: local, stg")
}

func TestApp_Validate(t *testing.T) {
	out, err := runApp(t, "validate")

	require.NoError(t, err)
	assert.Contains(t, out, "ok   local")
	assert.Contains(t, out, "ok   stg")
}

func TestApp_Scenarios(t *testing.T) {
	out, err := runApp(t, "scenarios")

	require.NoError(t, err)
	assert.Contains(t, out, "LockedUserCannotLogin")
	assert.Contains(t, out, "LogoutReturnsToLogin")
}

func TestApp_RunRejectsUnknownScenarioBeforeLaunch(t *testing.T) {
	_, err := runApp(t, "run", "--scenario", "Nope")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown scenario "Nope"`)
}
