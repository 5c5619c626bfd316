package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"axdesc/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runWithLocale(t, "", args...)
}

func runWithLocale(t *testing.T, locale string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvDefaultLocale, locale)
	t.Setenv(config.EnvEmitRawSwitchValue, "")
	t.Setenv(config.EnvLogLevel, "error")

	describeFlags.label, describeFlags.value, describeFlags.hint = "", "", ""
	describeFlags.traits, describeFlags.context, describeFlags.locale = nil, "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestDescribe(t *testing.T) {
	out, err := run(t, "describe", "--label", "Wi-Fi", "--value", "1", "--trait", "switchButton,button")
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi. Switch Button. On.\nDouble tap to toggle setting.\n", out)
}

func TestDescribe_Context(t *testing.T) {
	out, err := run(t, "describe", "--label", "Photo", "--context", "series:2/5")
	require.NoError(t, err)
	assert.Equal(t, "Photo 2 of 5.\n", out)
}

func TestDescribe_UnknownTrait(t *testing.T) {
	out, err := run(t, "describe", "--label", "X", "--trait", "sparkly")
	assert.ErrorContains(t, err, "sparkly")
	assert.NotContains(t, out, "Error:", "Execute reports the error once")
	assert.NotContains(t, out, "Usage:")
}

func TestDescribe_NonEnglishDefaultLocale(t *testing.T) {
	for _, locale := range []string{"de", "ja"} {
		t.Run(locale, func(t *testing.T) {
			out, err := runWithLocale(t, locale, "describe", "--label", "Submit", "--trait", "button")
			require.NoError(t, err)
			assert.Equal(t, "Submit. Button.\n", out)
		})
	}
}

func TestBatch(t *testing.T) {
	path := filepath.Join("..", "..", "internal", "infrastructure", "fixture", "testdata", "elements.toml")
	out, err := run(t, "batch", path)
	require.NoError(t, err)
	assert.Equal(t,
		"submit\tSubmit. Button.\t\n"+
			"photo\tSelected: Photo. Image. 2 of 5.\t\n"+
			"cell\tRegion. Quarter: Q1. Q1. Spans 2 rows. Row 1. Column 1.\t\n",
		out)
}

func TestBatch_UnsupportedFile(t *testing.T) {
	_, err := run(t, "batch", "elements.json")
	assert.Error(t, err)
}
