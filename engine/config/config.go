// Package config holds the generator's runtime settings and builds its
// logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment keys read by FromEnv.
const (
	EnvOutput    = "SPRITEFORGE_OUTPUT"
	EnvWorkers   = "SPRITEFORGE_WORKERS"
	EnvUnitScale = "SPRITEFORGE_UNIT_SCALE"
	EnvScale     = "SPRITEFORGE_SCALE"
	EnvPaletted  = "SPRITEFORGE_PALETTED"
	EnvLedger    = "SPRITEFORGE_LEDGER"
	EnvLogLevel  = "SPRITEFORGE_LOG_LEVEL"
	EnvLogFormat = "SPRITEFORGE_LOG_FORMAT"
)

type Config struct {
	Output    string
	Workers   int
	UnitScale int
	Scale     int
	Paletted  bool
	Ledger    string // sqlite file; empty disables digest recording
	LogLevel  string
	LogFormat string // "text" or "json"
}

func Default() Config {
	return Config{
		Output:    "sprites",
		Workers:   1,
		UnitScale: 2,
		Scale:     1,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// FromEnv loads .env from the working directory if present and overlays
// any SPRITEFORGE_* variables on the defaults.
func FromEnv() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: .env: %w", err)
	}
	return overlay(Default(), os.LookupEnv)
}

func overlay(c Config, lookup func(string) (string, bool)) (Config, error) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", key, err)
		}
		*dst = n
		return nil
	}

	str(EnvOutput, &c.Output)
	str(EnvLedger, &c.Ledger)
	str(EnvLogLevel, &c.LogLevel)
	str(EnvLogFormat, &c.LogFormat)
	for key, dst := range map[string]*int{
		EnvWorkers:   &c.Workers,
		EnvUnitScale: &c.UnitScale,
		EnvScale:     &c.Scale,
	} {
		if err := num(key, dst); err != nil {
			return Config{}, err
		}
	}
	if v, ok := lookup(EnvPaletted); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", EnvPaletted, err)
		}
		c.Paletted = b
	}
	return c, nil
}

// Validate rejects settings the generator cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Output == "" {
		errs = append(errs, errors.New("output directory is empty"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.UnitScale < 1 {
		errs = append(errs, fmt.Errorf("unit scale must be at least 1, got %d", c.UnitScale))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1, got %d", c.Scale))
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.LogFormat))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// NewLogger builds a logger writing to w at the given level and format.
func NewLogger(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("config: unknown log format %q", format)
	}
	return log, nil
}
