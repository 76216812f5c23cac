package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 2, c.UnitScale)
	assert.Equal(t, 1, c.Scale)
	assert.False(t, c.Paletted)
}

func TestOverlay(t *testing.T) {
	c, err := overlay(Default(), env(map[string]string{
		EnvOutput:    "out",
		EnvWorkers:   "4",
		EnvUnitScale: "3",
		EnvPaletted:  "true",
		EnvLedger:    "digests.db",
		EnvLogFormat: "json",
		EnvScale:     "",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Output:    "out",
		Workers:   4,
		UnitScale: 3,
		Scale:     1,
		Paletted:  true,
		Ledger:    "digests.db",
		LogLevel:  "info",
		LogFormat: "json",
	}, c)
}

func TestOverlayRejectsBadNumbers(t *testing.T) {
	tests := map[string]map[string]string{
		"workers":  {EnvWorkers: "many"},
		"scale":    {EnvScale: "1.5"},
		"paletted": {EnvPaletted: "maybe"},
	}
	for name, vars := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := overlay(Default(), env(vars))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output", func(c *Config) { c.Output = "" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero unit scale", func(c *Config) { c.UnitScale = 0 }},
		{"negative scale", func(c *Config) { c.Scale = -1 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestFromEnvReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvWorkers+"=6\n"), 0o644))
	t.Chdir(dir)
	t.Setenv(EnvScale, "2")
	// godotenv does not override variables that are already set, so make
	// sure the key it should fill starts out absent.
	os.Unsetenv(EnvWorkers)
	t.Cleanup(func() { os.Unsetenv(EnvWorkers) })

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 6, c.Workers)
	assert.Equal(t, 2, c.Scale)
}

func TestFromEnvWithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvOutput, "elsewhere")

	c, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", c.Output)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(&buf, "debug", "json")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("component", "test").Debug("hello")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "test", line["component"])

	_, err = NewLogger(&buf, "debug", "yaml")
	assert.Error(t, err)
	_, err = NewLogger(&buf, "chatty", "text")
	assert.Error(t, err)
}
