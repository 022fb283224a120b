package curves

import (
	"testing"

	"github.com/quantfold/go-curves/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearInterpolateFormula(t *testing.T) {
	c := NewCurve(Pt2(2, 4), Pt2(5, 10))

	p, err := c.Interpolate(decimal.NewFromInt(3), InterpolationLinear)
	require.NoError(t, err)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(3), p.X)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(6), p.Y)
}

func TestLinearExactMatchIdentity(t *testing.T) {
	pts := []Point2D{Pt2(2, 4), Pt2(5, 10), Pt2(8, 12), Pt2(11, 9)}
	c := NewCurve(pts...)

	for _, want := range pts {
		got, err := c.Interpolate(want.X, InterpolationLinear)
		require.NoError(t, err)
		// Stored points come back verbatim, not recomputed.
		assert.Equal(t, want, got)
	}
}

func TestLinearOutOfRange(t *testing.T) {
	c := NewCurve(Pt2(2, 4), Pt2(5, 10))

	_, err := c.Interpolate(decimal.NewFromInt(1), InterpolationLinear)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = c.Interpolate(decimal.NewFromInt(6), InterpolationLinear)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestLinearInsufficientPoints(t *testing.T) {
	c := NewCurve(Pt2(2, 4))
	_, err := c.Interpolate(decimal.NewFromInt(2), InterpolationLinear)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestLinearDecimalExactness(t *testing.T) {
	// 1/3 of the way between y=0 and y=1: decimal division carries 16
	// digits, well beyond float64.
	c := NewCurve(Pt2(0, 0), Pt2(3, 1))

	p, err := c.Interpolate(decimal.NewFromInt(1), InterpolationLinear)
	require.NoError(t, err)
	testutil.AssertDecimalEqual(t, testutil.D(t, "0.3333333333333333"), p.Y)
}
