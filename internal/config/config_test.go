package config

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Cycle.Algorithm != "brent" {
		t.Errorf("expected default algorithm 'brent', got %s", cfg.Cycle.Algorithm)
	}
	if cfg.Cycle.Limit != 1_000_000 {
		t.Errorf("expected default limit 1000000, got %d", cfg.Cycle.Limit)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default format 'text', got %s", cfg.Output.Format)
	}
	if cfg.Output.Precision != 6 {
		t.Errorf("expected default precision 6, got %d", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("debug", "json", "floyd", 500)

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Cycle.Algorithm != "floyd" {
		t.Errorf("expected algorithm 'floyd', got %s", cfg.Cycle.Algorithm)
	}
	if cfg.Cycle.Limit != 500 {
		t.Errorf("expected limit 500, got %d", cfg.Cycle.Limit)
	}
}

func TestApplyOverridesZeroValuesIgnored(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ApplyOverrides("", "", "", 0)

	if cfg.Logging.Level != "info" {
		t.Errorf("empty override must not change level, got %s", cfg.Logging.Level)
	}
	if cfg.Cycle.Algorithm != "brent" {
		t.Errorf("empty override must not change algorithm, got %s", cfg.Cycle.Algorithm)
	}
	if cfg.Cycle.Limit != 1_000_000 {
		t.Errorf("zero override must not change limit, got %d", cfg.Cycle.Limit)
	}
}
