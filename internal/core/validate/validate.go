// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"net/url"

	"github.com/hay-kot/criterio"
)

// HTTPURL validates that raw parses as an absolute http or https URL with a
// host.
func HTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url must have a host")
	}
	return nil
}

// Positive validates that n is at least 1.
func Positive(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}

// NonNegative validates that n is zero or greater.
func NonNegative[T int | int64 | float64](n T) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %v", n)
	}
	return nil
}

// HTTPURLField returns a criterio validator for URLs.
func HTTPURLField(field, raw string) error {
	return criterio.Run(field, raw, HTTPURL)
}

// PositiveField returns a criterio validator for counts.
func PositiveField(field string, n int) error {
	return criterio.Run(field, n, Positive)
}
