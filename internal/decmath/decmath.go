// Package decmath provides shared decimal arithmetic kernels for the
// interpolation engine.
package decmath

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Small integer constants used throughout the interpolation formulas.
// Declared once so the hot paths never re-allocate them.
var (
	Two   = decimal.NewFromInt(2)
	Three = decimal.NewFromInt(3)
	Four  = decimal.NewFromInt(4)
	Five  = decimal.NewFromInt(5)
	Six   = decimal.NewFromInt(6)
	Half  = decimal.NewFromFloat(0.5)
)

// ErrSingular is returned by SolveTridiagonal when forward elimination hits
// a zero pivot.
var ErrSingular = errors.New("tridiagonal system is singular")

// Lerp linearly interpolates between a and b at parameter t:
// a + (b-a)*t.
func Lerp(a, b, t decimal.Decimal) decimal.Decimal {
	return a.Add(b.Sub(a).Mul(t))
}

// Frac returns the normalized position of q between lo and hi:
// (q-lo)/(hi-lo). lo and hi must differ.
func Frac(q, lo, hi decimal.Decimal) decimal.Decimal {
	return q.Sub(lo).Div(hi.Sub(lo))
}

// SolveTridiagonal solves a tridiagonal linear system with the Thomas
// algorithm (forward elimination followed by back substitution, O(n)).
//
// The system is
//
//	b[0]*x[0] + c[0]*x[1]                    = r[0]
//	a[i]*x[i-1] + b[i]*x[i] + c[i]*x[i+1]    = r[i]   0 < i < n-1
//	a[n-1]*x[n-2] + b[n-1]*x[n-1]            = r[n-1]
//
// a[0] and c[n-1] are ignored. All four slices must have equal length.
// The inputs are not modified.
func SolveTridiagonal(a, b, c, r []decimal.Decimal) ([]decimal.Decimal, error) {
	n := len(b)
	if n == 0 || len(a) != n || len(c) != n || len(r) != n {
		return nil, errors.New("tridiagonal slices must share a non-zero length")
	}

	cp := make([]decimal.Decimal, n)
	rp := make([]decimal.Decimal, n)

	if b[0].IsZero() {
		return nil, ErrSingular
	}
	cp[0] = c[0].Div(b[0])
	rp[0] = r[0].Div(b[0])

	for i := 1; i < n; i++ {
		denom := b[i].Sub(a[i].Mul(cp[i-1]))
		if denom.IsZero() {
			return nil, ErrSingular
		}
		if i < n-1 {
			cp[i] = c[i].Div(denom)
		}
		rp[i] = r[i].Sub(a[i].Mul(rp[i-1])).Div(denom)
	}

	x := make([]decimal.Decimal, n)
	x[n-1] = rp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = rp[i].Sub(cp[i].Mul(x[i+1]))
	}
	return x, nil
}
