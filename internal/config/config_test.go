package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Addr != ":8080" || c.RateLimit != 5 || c.RateBurst != 10 || c.TLS() {
		t.Fatalf("defaults=%+v", c)
	}
}

func TestFromEnvValues(t *testing.T) {
	c, err := FromEnv(env(map[string]string{
		"ADDR":         ":9000",
		"TLS_CERT":     "server.crt",
		"TLS_KEY":      "server.key",
		"TOKEN_KEY":    "k",
		"GRADING_FILE": "tables.yaml",
		"RATE_LIMIT":   "2.5",
		"RATE_BURST":   "4",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Addr != ":9000" || !c.TLS() || c.TokenKey != "k" || c.GradingFile != "tables.yaml" || c.RateLimit != 2.5 || c.RateBurst != 4 {
		t.Fatalf("config=%+v", c)
	}
}

func TestFromEnvCollectsErrors(t *testing.T) {
	_, err := FromEnv(env(map[string]string{
		"RATE_LIMIT":           "fast",
		"RATE_BURST":           "0",
		"TLS_CERT":             "server.crt",
		"GRADING_FILE":         "a.yaml",
		"GRADING_DATABASE_URL": "postgres://x",
	}))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, part := range []string{"RATE_LIMIT", "RATE_BURST", "TLS_CERT and TLS_KEY", "mutually exclusive"} {
		if !strings.Contains(err.Error(), part) {
			t.Fatalf("error %q does not mention %s", err, part)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CIVILCALC_TEST_ADDR=:7000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ADDR", ":7100")
	t.Setenv("CIVILCALC_TEST_ADDR", "")
	os.Unsetenv("CIVILCALC_TEST_ADDR")
	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Addr != ":7100" {
		t.Fatalf("addr=%q", c.Addr)
	}
	if os.Getenv("CIVILCALC_TEST_ADDR") != ":7000" {
		t.Fatal("file value was not loaded into the environment")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
}
