package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// FieldError is one invalid configuration value, addressed as section.field.
type FieldError struct {
	Section string
	Field   string
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// ConfigValidator checks the values of one configuration section through
// chained calls and keeps every failure.
type ConfigValidator struct {
	section string
	errs    []error
}

// NewConfigValidator starts validating the named section.
func NewConfigValidator(section string) *ConfigValidator {
	return &ConfigValidator{section: section}
}

func (cv *ConfigValidator) fail(field string, format string, args ...any) {
	cv.addErr(field, fmt.Errorf(format, args...))
}

func (cv *ConfigValidator) addErr(field string, err error) {
	cv.errs = append(cv.errs, &FieldError{Section: cv.section, Field: field, Err: err})
}

// Positive requires value > 0.
func (cv *ConfigValidator) Positive(field string, value int) *ConfigValidator {
	if value <= 0 {
		cv.fail(field, "value %d must be positive", value)
	}
	return cv
}

// RangeInt requires min <= value <= max.
func (cv *ConfigValidator) RangeInt(field string, value, min, max int) *ConfigValidator {
	if value < min || value > max {
		cv.fail(field, "value %d is outside range [%d, %d]", value, min, max)
	}
	return cv
}

// PositiveFloat requires a finite value > 0.
func (cv *ConfigValidator) PositiveFloat(field string, value float64) *ConfigValidator {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		cv.fail(field, "value %g must be a positive finite number", value)
	}
	return cv
}

// RangeFloat requires min <= value <= max. NaN is always out of range.
func (cv *ConfigValidator) RangeFloat(field string, value, min, max float64) *ConfigValidator {
	if math.IsNaN(value) || value < min || value > max {
		cv.fail(field, "value %g is outside range [%g, %g]", value, min, max)
	}
	return cv
}

// OneOf requires value to equal one of allowed exactly.
func (cv *ConfigValidator) OneOf(field, value string, allowed []string) *ConfigValidator {
	for _, a := range allowed {
		if value == a {
			return cv
		}
	}
	cv.fail(field, "value %q must be one of %v", value, allowed)
	return cv
}

// OneOfFold is OneOf ignoring case, for values such as log levels.
func (cv *ConfigValidator) OneOfFold(field, value string, allowed []string) *ConfigValidator {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return cv
		}
	}
	cv.fail(field, "value %q must be one of %v", value, allowed)
	return cv
}

// Custom records the error returned by fn, if any.
func (cv *ConfigValidator) Custom(field string, fn func() error) *ConfigValidator {
	if err := fn(); err != nil {
		cv.addErr(field, err)
	}
	return cv
}

// When runs validations only if condition holds.
func (cv *ConfigValidator) When(condition bool, validations func(*ConfigValidator)) *ConfigValidator {
	if condition {
		validations(cv)
	}
	return cv
}

// HasErrors reports whether any check failed.
func (cv *ConfigValidator) HasErrors() bool {
	return len(cv.errs) > 0
}

// Errors returns the failures in check order. Each is a *FieldError.
func (cv *ConfigValidator) Errors() []error {
	return cv.errs
}

// Validate returns every failure joined into one error, or nil.
func (cv *ConfigValidator) Validate() error {
	return errors.Join(cv.errs...)
}
