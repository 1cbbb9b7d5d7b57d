package config

import (
	"strings"
	"testing"
)

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidateBadAlgorithm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cycle.Algorithm = "turtle"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "cycle.algorithm") {
		t.Errorf("expected cycle.algorithm in error, got %v", err)
	}
}

func TestValidateBadLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cycle.Limit = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "cycle.limit") {
		t.Errorf("expected cycle.limit in error, got %v", err)
	}
}

func TestValidateBadOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "pdf"
	cfg.Output.Precision = 99

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "output.format") {
		t.Errorf("expected output.format in error, got %v", err)
	}
	if !strings.Contains(msg, "output.precision") {
		t.Errorf("expected output.precision in error, got %v", err)
	}
}

func TestValidateBadLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "logging.level") {
		t.Errorf("expected logging.level in error, got %v", err)
	}
	if !strings.Contains(msg, "logging.format") {
		t.Errorf("expected logging.format in error, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cycle.Algorithm = "turtle"
	cfg.Cycle.Limit = -1
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verrs), verrs)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	e := ValidationError{Field: "cycle.limit", Message: "limit must be positive"}
	if e.Error() != "cycle.limit: limit must be positive" {
		t.Errorf("unexpected message: %s", e.Error())
	}

	var empty ValidationErrors
	if empty.Error() != "" {
		t.Errorf("empty ValidationErrors should render empty, got %q", empty.Error())
	}
}
