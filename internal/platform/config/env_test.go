package config

import "testing"

type dbConfig struct {
	Path    string `env:"CONFIG_TEST_DB" envDefault:"calendar.db"`
	Timeout int    `env:"CONFIG_TEST_TIMEOUT" envDefault:"5"`
}

func TestParseEnvAppliesDefaultsAndOverrides(t *testing.T) {
	t.Setenv("CONFIG_TEST_DB", "/var/lib/calendar.db")

	var cfg dbConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Path != "/var/lib/calendar.db" {
		t.Fatalf("path = %q, want the env override", cfg.Path)
	}
	if cfg.Timeout != 5 {
		t.Fatalf("timeout = %d, want the tag default", cfg.Timeout)
	}
}

func TestParseEnvRejectsMalformedValue(t *testing.T) {
	t.Setenv("CONFIG_TEST_TIMEOUT", "soon")

	var cfg dbConfig
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected a parse error for a non-numeric timeout")
	}
}
