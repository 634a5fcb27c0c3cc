package tankerkoenig

import (
	"fmt"
	"regexp"
)

var (
	postCodePattern = regexp.MustCompile(`^\d{5}$`)
	floatPattern    = regexp.MustCompile(`^-?[0-9]*\.[0-9]+$`)
	latLngPattern   = regexp.MustCompile(`^-?[0-9]*\.[0-9]+\s?,\s?-?[0-9]*\.[0-9]+$`)
)

func validationErrorf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, message: fmt.Sprintf(format, args...)}
}

// validateRequired fails if the value was never set. The zero value of a
// type is not absence; only a nil pointer fails.
func validateRequired[T any](value *T, label string) error {
	if value == nil {
		return validationErrorf(label, "%s must not be null", label)
	}
	return nil
}

func validateNonEmpty(value string, label string) error {
	if value == "" {
		return validationErrorf(label, "%s must not be empty", label)
	}
	return nil
}

func validateNonEmptyCollection[T any](collection []T, label string) error {
	if len(collection) == 0 {
		return validationErrorf(label, "%s must not be empty", label)
	}
	return nil
}

// validateMaxCount panics on a negative bound: that is a programming error
// in the caller, not a recoverable validation failure.
func validateMaxCount[T any](collection []T, max int, label string) error {
	if max < 0 {
		panic("max must not be below 0")
	}
	if len(collection) > max {
		return validationErrorf(label, "a maximum of %d %s is allowed per request", max, label)
	}
	return nil
}

// validateInRange fails if value is outside the inclusive [min, max] bounds.
func validateInRange(value float64, min, max float64, label string) error {
	if value < min || value > max {
		return validationErrorf(label, "%s has to be between %v and %v", label, min, max)
	}
	return nil
}

// validateFloatString fails unless value is an optionally signed decimal
// number with at least one digit after the point. Bare integers are
// rejected, matching the wire format the API expects for prices.
func validateFloatString(value string, label string) error {
	if !floatPattern.MatchString(value) {
		return validationErrorf(label, "%s is not a valid floating point value for %s", value, label)
	}
	return nil
}

func validatePostCode(value string) error {
	if !postCodePattern.MatchString(value) {
		return validationErrorf("Post Code", "%s is not a valid post code, it must have a format of 12345", value)
	}
	return nil
}

func validateLatLngPair(value string) error {
	if !latLngPattern.MatchString(value) {
		return validationErrorf("Location", "%s is not a location data, it must be in the format of \"58.0,13.0\"", value)
	}
	return nil
}
