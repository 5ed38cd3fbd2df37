package validation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestConfigValidator_IntChecks(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(*ConfigValidator)
		wantError bool
	}{
		{"positive ok", func(cv *ConfigValidator) { cv.Positive("width", 10) }, false},
		{"positive zero", func(cv *ConfigValidator) { cv.Positive("width", 0) }, true},
		{"positive negative", func(cv *ConfigValidator) { cv.Positive("width", -3) }, true},
		{"range edge", func(cv *ConfigValidator) { cv.RangeInt("k", 10, 1, 10) }, false},
		{"range inside", func(cv *ConfigValidator) { cv.RangeInt("k", 5, 1, 10) }, false},
		{"range outside", func(cv *ConfigValidator) { cv.RangeInt("k", 11, 1, 10) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("visualization")
			tt.apply(cv)
			if cv.HasErrors() != tt.wantError {
				t.Errorf("HasErrors() = %v, want %v (%v)", cv.HasErrors(), tt.wantError, cv.Errors())
			}
		})
	}
}

func TestConfigValidator_FloatChecks(t *testing.T) {
	tests := []struct {
		name      string
		apply     func(*ConfigValidator)
		wantError bool
	}{
		{"positive", func(cv *ConfigValidator) { cv.PositiveFloat("resolution", 1.0) }, false},
		{"zero", func(cv *ConfigValidator) { cv.PositiveFloat("resolution", 0) }, true},
		{"nan", func(cv *ConfigValidator) { cv.PositiveFloat("resolution", math.NaN()) }, true},
		{"inf", func(cv *ConfigValidator) { cv.PositiveFloat("resolution", math.Inf(1)) }, true},
		{"range low edge", func(cv *ConfigValidator) { cv.RangeFloat("gap_threshold", 0, 0, 1) }, false},
		{"range high edge", func(cv *ConfigValidator) { cv.RangeFloat("gap_threshold", 1, 0, 1) }, false},
		{"range above", func(cv *ConfigValidator) { cv.RangeFloat("gap_threshold", 1.01, 0, 1) }, true},
		{"range nan", func(cv *ConfigValidator) { cv.RangeFloat("gap_threshold", math.NaN(), 0, 1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := NewConfigValidator("analysis")
			tt.apply(cv)
			if cv.HasErrors() != tt.wantError {
				t.Errorf("HasErrors() = %v, want %v (%v)", cv.HasErrors(), tt.wantError, cv.Errors())
			}
		})
	}
}

func TestConfigValidator_OneOf(t *testing.T) {
	cv := NewConfigValidator("analysis")
	cv.OneOf("format", "yaml", []string{"text", "json"})

	if !cv.HasErrors() {
		t.Fatal("Expected error for value outside allowed set")
	}
	if !strings.Contains(cv.Errors()[0].Error(), `analysis.format: value "yaml"`) {
		t.Errorf("unexpected message %q", cv.Errors()[0])
	}

	var fe *FieldError
	if !errors.As(cv.Errors()[0], &fe) {
		t.Fatalf("Expected *FieldError, got %T", cv.Errors()[0])
	}
	if fe.Section != "analysis" || fe.Field != "format" {
		t.Errorf("Expected analysis.format, got %s.%s", fe.Section, fe.Field)
	}

	if !NewConfigValidator("analysis").OneOf("format", "JSON", []string{"text", "json"}).HasErrors() {
		t.Error("OneOf should be case sensitive")
	}
}

func TestConfigValidator_OneOfFold(t *testing.T) {
	levels := []string{"DEBUG", "INFO", "WARN", "ERROR"}

	for _, ok := range []string{"debug", "Info", "WARN"} {
		if cv := NewConfigValidator("logging").OneOfFold("level", ok, levels); cv.HasErrors() {
			t.Errorf("Expected %q to be accepted: %v", ok, cv.Errors())
		}
	}
	if cv := NewConfigValidator("logging").OneOfFold("level", "loud", levels); !cv.HasErrors() {
		t.Error("Expected unknown level to be rejected")
	}
}

func TestConfigValidator_CustomAndWhen(t *testing.T) {
	sentinel := errors.New("bad path")

	cv := NewConfigValidator("logging")
	cv.Custom("file", func() error { return sentinel })
	cv.When(false, func(cv *ConfigValidator) { cv.Positive("iterations", 0) })

	if len(cv.Errors()) != 1 {
		t.Fatalf("Expected 1 error, got %v", cv.Errors())
	}
	if !errors.Is(cv.Validate(), sentinel) {
		t.Errorf("Validate() should wrap custom error, got %v", cv.Validate())
	}

	cv.When(true, func(cv *ConfigValidator) { cv.Positive("iterations", 0) })
	if len(cv.Errors()) != 2 {
		t.Errorf("Expected When(true) to add an error, got %v", cv.Errors())
	}
}

func TestConfigValidator_ValidateJoinsAllErrors(t *testing.T) {
	cv := NewConfigValidator("analysis").
		PositiveFloat("resolution", -1).
		RangeFloat("gap_threshold", 2, 0, 1).
		OneOf("format", "csv", []string{"text", "json"})

	err := cv.Validate()
	if err == nil {
		t.Fatal("Expected combined error")
	}
	for _, field := range []string{"resolution", "gap_threshold", "format"} {
		if !strings.Contains(err.Error(), "analysis."+field) {
			t.Errorf("combined error missing %s: %v", field, err)
		}
	}

	if NewConfigValidator("ok").Validate() != nil {
		t.Error("Validate() without errors should return nil")
	}
}
