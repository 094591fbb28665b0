package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/purchase-cost/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != constants.DefaultServerAddress {
		t.Fatalf("expected default address, got %q", cfg.Address)
	}
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("expected default body size, got %d", cfg.BodySizeBytes())
	}
	if cfg.Currency != constants.DefaultCurrency || cfg.Locale != constants.DefaultLocale {
		t.Fatalf("expected default presentation, got %q %q", cfg.Currency, cfg.Locale)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server-config.yaml")

	contents := []byte(`address: 127.0.0.1:9000
maxBodySize: 2M
currency: $
locale: en-US
logging:
  level: debug
  format: console
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Address)
	}
	if cfg.BodySizeBytes() != 2*1024*1024 {
		t.Fatalf("expected body size override, got %d", cfg.BodySizeBytes())
	}
	if cfg.Currency != "$" || cfg.Locale != "en-US" {
		t.Fatalf("expected presentation override, got %q %q", cfg.Currency, cfg.Locale)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("expected logging override, got %+v", cfg.Logging)
	}
}

func TestLoadConfigInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")

	if err := os.WriteFile(path, []byte("maxBodySize: invalid"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for invalid size but got nil")
	}
}

func TestSetBodySizeBytes(t *testing.T) {
	cfg, _ := LoadConfig("")
	cfg.SetBodySizeBytes(0)
	if cfg.BodySizeBytes() != constants.DefaultMaxBodySizeBytes {
		t.Fatalf("non-positive override should be ignored, got %d", cfg.BodySizeBytes())
	}
	cfg.SetBodySizeBytes(4096)
	if cfg.BodySizeBytes() != 4096 || cfg.MaxBodySize != "4096" {
		t.Fatalf("expected override to 4096, got %d (%s)", cfg.BodySizeBytes(), cfg.MaxBodySize)
	}
}

func TestParseSize(t *testing.T) {
	tests := map[string]int64{
		"":          constants.DefaultMaxBodySizeBytes,
		"1024":      1024,
		"512b":      512,
		"256K":      256 * 1024,
		"1m":        1024 * 1024,
		"3MB":       3 * 1024 * 1024,
		"1G":        1024 * 1024 * 1024,
		"2gb":       2 * 1024 * 1024 * 1024,
		"  4096   ": 4096,
	}

	for input, expected := range tests {
		got, err := ParseSize(input)
		if err != nil {
			t.Fatalf("ParseSize(%q) returned error: %v", input, err)
		}
		if got != expected {
			t.Fatalf("ParseSize(%q) = %d, expected %d", input, got, expected)
		}
	}

	if _, err := ParseSize("1T"); err == nil {
		t.Fatal("expected error for unsupported unit")
	}
	if _, err := ParseSize("abc"); err == nil {
		t.Fatal("expected error for invalid number")
	}
}
