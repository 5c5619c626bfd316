package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axdesc/internal/domain"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDefaultLocale, "")
	t.Setenv(EnvEmitRawSwitchValue, "")
	t.Setenv(EnvLogLevel, "")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDefaultLocale, "fr-CA")
	t.Setenv(EnvEmitRawSwitchValue, "true")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, &Config{DefaultLocale: "fr-CA", EmitRawSwitchValue: true, LogLevel: "debug"}, cfg)
}

func TestLoad_InvalidLocale(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDefaultLocale, "not_a_locale!")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidLocale))
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvEmitRawSwitchValue, "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, EnvEmitRawSwitchValue)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevel, "shout")

	_, err := Load()
	assert.ErrorContains(t, err, EnvLogLevel)
}
