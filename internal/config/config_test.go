package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eugenenazirov/basket-splitter/internal/splitter"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{"PORT", "CATALOG_FILE", "MAX_DELIVERY_TYPES", "LOG_LEVEL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}
}

func writeYAML(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_FILE", "catalog.json")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.MaxDeliveryTypes != splitter.DefaultMaxDeliveryTypes {
		t.Fatalf("unexpected delivery type limit: %d", cfg.MaxDeliveryTypes)
	}
	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.SplitTimeout != 2*time.Second {
		t.Fatalf("unexpected split timeout: %s", cfg.SplitTimeout)
	}
}

func TestLoadRequiresCatalog(t *testing.T) {
	clearEnv(t)

	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error when no catalog file is configured")
	}
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("CATALOG_FILE", "/etc/basket/catalog.json")
	t.Setenv("MAX_DELIVERY_TYPES", "8")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "3.5")
	t.Setenv("RATE_LIMIT_BURST", "7")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.CatalogFile != "/etc/basket/catalog.json" {
		t.Fatalf("unexpected catalog file: %s", cfg.CatalogFile)
	}
	if cfg.MaxDeliveryTypes != 8 {
		t.Fatalf("unexpected delivery type limit: %d", cfg.MaxDeliveryTypes)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.RateLimitRPS != 3.5 || cfg.RateLimitBurst != 7 {
		t.Fatalf("unexpected rate limit: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("CATALOG_FILE", "env.json")
	t.Setenv("LOG_LEVEL", "warn")

	path := writeYAML(t, `
port: "7500"
catalog_file: yaml.json
max_delivery_types: 12
split_timeout: 500ms
enable_request_logging: false
rate_limit:
  rps: 0
  burst: 0
`)

	port := "7900"
	cfg, err := Load(&CLIOverrides{ConfigFile: path, Port: &port})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7900" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.CatalogFile != "yaml.json" {
		t.Fatalf("expected YAML catalog to override env, got %s", cfg.CatalogFile)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env log level to survive, got %s", cfg.LogLevel)
	}
	if cfg.MaxDeliveryTypes != 12 {
		t.Fatalf("unexpected delivery type limit: %d", cfg.MaxDeliveryTypes)
	}
	if cfg.SplitTimeout != 500*time.Millisecond {
		t.Fatalf("unexpected split timeout: %s", cfg.SplitTimeout)
	}
	if cfg.EnableRequestLogging {
		t.Fatalf("expected request logging to be disabled")
	}
	if cfg.RateLimitRPS != 0 || cfg.RateLimitBurst != 0 {
		t.Fatalf("expected rate limiting to be disabled, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		clearEnv(t)
		path := writeYAML(t, "catalog_file: c.json\nsplit_timeout: soon\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for invalid duration")
		}
	})

	t.Run("limit too wide", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CATALOG_FILE", "c.json")
		limit := 64
		if _, err := Load(&CLIOverrides{MaxDeliveryTypes: &limit}); err == nil {
			t.Fatalf("expected error for delivery type limit above search width")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CATALOG_FILE", "c.json")
		t.Setenv("LOG_LEVEL", "chatty")
		if _, err := Load(nil); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		clearEnv(t)
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "absent.yaml")}); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})
}
