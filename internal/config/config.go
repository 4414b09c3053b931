// Package config reads service settings from the environment, after loading an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	TLSCert            string
	TLSKey             string
	TokenKey           string
	GradingFile        string
	GradingDatabaseURL string
	RateLimit          float64
	RateBurst          int
}

func (c Config) TLS() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load reads files (".env" when none are given) if present, then the environment.
// Variables already set in the environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function and reports every bad value.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Config{
		Addr:               strings.TrimSpace(getenv("ADDR")),
		TLSCert:            strings.TrimSpace(getenv("TLS_CERT")),
		TLSKey:             strings.TrimSpace(getenv("TLS_KEY")),
		TokenKey:           getenv("TOKEN_KEY"),
		GradingFile:        strings.TrimSpace(getenv("GRADING_FILE")),
		GradingDatabaseURL: strings.TrimSpace(getenv("GRADING_DATABASE_URL")),
		RateLimit:          5,
		RateBurst:          10,
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}

	var errs []string
	if v := strings.TrimSpace(getenv("RATE_LIMIT")); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			errs = append(errs, fmt.Sprintf("RATE_LIMIT must be a positive number, got %q", v))
		} else {
			c.RateLimit = f
		}
	}
	if v := strings.TrimSpace(getenv("RATE_BURST")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Sprintf("RATE_BURST must be a positive integer, got %q", v))
		} else {
			c.RateBurst = n
		}
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errs = append(errs, "TLS_CERT and TLS_KEY must be set together")
	}
	if c.GradingFile != "" && c.GradingDatabaseURL != "" {
		errs = append(errs, "GRADING_FILE and GRADING_DATABASE_URL are mutually exclusive")
	}
	if len(errs) > 0 {
		return Config{}, errors.New(strings.Join(errs, "; "))
	}
	return c, nil
}
