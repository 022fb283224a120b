// Package testutil provides reusable test helper functions for the
// interpolation engine tests.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// DefaultTolerance bounds the rounding drift decimal division may
// introduce (shopspring's default division precision is 16 digits).
const DefaultTolerance = 1e-10

// D parses a decimal literal, failing the test on malformed input.
func D(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// AssertDecimalEqual verifies that two decimals are numerically equal.
func AssertDecimalEqual(t *testing.T, want, got decimal.Decimal, msgAndArgs ...any) bool {
	t.Helper()
	if want.Equal(got) {
		return true
	}
	return assert.Fail(t, "decimals differ",
		"want %s, got %s (diff %s)", want, got, got.Sub(want))
}

// AssertDecimalInDelta verifies that two decimals differ by at most delta.
func AssertDecimalInDelta(t *testing.T, want, got decimal.Decimal, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	diff := got.Sub(want).Abs()
	if diff.LessThanOrEqual(decimal.NewFromFloat(delta)) {
		return true
	}
	return assert.Fail(t, "decimals differ beyond delta",
		"want %s, got %s (diff %s > %g)", want, got, diff, delta)
}
