package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test.yaml")

	configContent := `
cycle:
  algorithm: floyd
  limit: 5000

output:
  format: latex
  precision: 4

logging:
  level: debug
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Cycle.Algorithm != "floyd" {
		t.Errorf("expected algorithm 'floyd', got %s", cfg.Cycle.Algorithm)
	}
	if cfg.Cycle.Limit != 5000 {
		t.Errorf("expected limit 5000, got %d", cfg.Cycle.Limit)
	}
	if cfg.Output.Format != "latex" {
		t.Errorf("expected output format 'latex', got %s", cfg.Output.Format)
	}
	if cfg.Output.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Output.Precision)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected logging level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stdout" {
		t.Errorf("expected logging output 'stdout', got %s", cfg.Logging.Output)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.yaml")

	configContent := `
cycle:
  limit: 42
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Cycle.Limit != 42 {
		t.Errorf("expected limit 42, got %d", cfg.Cycle.Limit)
	}
	if cfg.Cycle.Algorithm != "brent" {
		t.Errorf("expected default algorithm 'brent', got %s", cfg.Cycle.Algorithm)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected default output format 'text', got %s", cfg.Output.Format)
	}
}

func TestLoadWithEnvVars(t *testing.T) {
	os.Setenv("TEST_LOG_DIR", "/var/log/goulib")
	defer os.Unsetenv("TEST_LOG_DIR")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-env.yaml")

	configContent := `
logging:
  output: ${TEST_LOG_DIR}/run.log
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Output != "/var/log/goulib/run.log" {
		t.Errorf("expected env-substituted output, got %s", cfg.Logging.Output)
	}
}

func TestLoadMissingEnvVarKept(t *testing.T) {
	os.Unsetenv("GOULIB_NO_SUCH_VAR")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "missing-env.yaml")

	configContent := `
logging:
  output: ${GOULIB_NO_SUCH_VAR}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Output != "${GOULIB_NO_SUCH_VAR}" {
		t.Errorf("expected unresolved env var to pass through, got %s", cfg.Logging.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestExpandEnvVar(t *testing.T) {
	os.Setenv("TEST_EXPAND_A", "alpha")
	defer os.Unsetenv("TEST_EXPAND_A")

	tests := []struct {
		in   string
		want string
	}{
		{"${TEST_EXPAND_A}", "alpha"},
		{"$TEST_EXPAND_A", "alpha"},
		{"pre-${TEST_EXPAND_A}-post", "pre-alpha-post"},
		{"no vars here", "no vars here"},
	}
	for _, tc := range tests {
		if got := expandEnvVar(tc.in); got != tc.want {
			t.Errorf("expandEnvVar(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
