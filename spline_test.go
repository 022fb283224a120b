package curves

import (
	"testing"

	"github.com/quantfold/go-curves/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplinePreservesStraightLine(t *testing.T) {
	// Collinear data drives the tridiagonal right-hand side to zero, so
	// every second derivative is zero and the spline collapses to the line.
	c := NewCurve(Pt2(0, 0), Pt2(1, 1), Pt2(2, 2), Pt2(3, 3))

	for _, q := range []float64{0.25, 1.5, 2.75} {
		p, err := c.Interpolate(decimal.NewFromFloat(q), InterpolationSpline)
		require.NoError(t, err, "q=%g", q)
		testutil.AssertDecimalEqual(t, decimal.NewFromFloat(q), p.Y, "q=%g", q)
	}
}

func TestSplineKnownValue(t *testing.T) {
	// Symmetric tent y = (0, 1, 0) at x = (0, 1, 2). The single interior
	// equation gives m1 = -3, hence S(0.5) = 0.6875.
	c := NewCurve(Pt2(0, 0), Pt2(1, 1), Pt2(2, 0))

	p, err := c.Interpolate(decimal.NewFromFloat(0.5), InterpolationSpline)
	require.NoError(t, err)
	testutil.AssertDecimalInDelta(t, testutil.D(t, "0.6875"), p.Y, testutil.DefaultTolerance)

	// Symmetry: S(1.5) mirrors S(0.5).
	p2, err := c.Interpolate(decimal.NewFromFloat(1.5), InterpolationSpline)
	require.NoError(t, err)
	testutil.AssertDecimalInDelta(t, p.Y, p2.Y, testutil.DefaultTolerance)
}

func TestSplineNaturalBoundary(t *testing.T) {
	// The second derivative vanishes at both endpoints. The forward second
	// difference is exact for a cubic segment and equals S''(x+h), which is
	// proportional to h near a natural boundary.
	c := NewCurve(Pt2(0, 0), Pt2(1, 1), Pt2(2, 0), Pt2(3, 2), Pt2(4, 1))

	h := decimal.NewFromFloat(0.001)
	secondDiff := func(x0 decimal.Decimal, dir int) decimal.Decimal {
		step := h
		if dir < 0 {
			step = h.Neg()
		}
		f0, err := c.Interpolate(x0, InterpolationSpline)
		require.NoError(t, err)
		f1, err := c.Interpolate(x0.Add(step), InterpolationSpline)
		require.NoError(t, err)
		f2, err := c.Interpolate(x0.Add(step).Add(step), InterpolationSpline)
		require.NoError(t, err)
		return f0.Y.Sub(decimal.NewFromInt(2).Mul(f1.Y)).Add(f2.Y).Div(h.Mul(h))
	}

	minX, maxX := c.XRange()
	atStart := secondDiff(minX, +1)
	atEnd := secondDiff(maxX, -1)

	tolerance := decimal.NewFromFloat(0.05)
	assert.True(t, atStart.Abs().LessThan(tolerance), "S'' at start = %s", atStart)
	assert.True(t, atEnd.Abs().LessThan(tolerance), "S'' at end = %s", atEnd)
}

func TestSplineExactMatchIdentity(t *testing.T) {
	pts := []Point2D{Pt2(0, 2), Pt2(1, 5), Pt2(2, 1), Pt2(3, 4)}
	c := NewCurve(pts...)

	for _, want := range pts {
		got, err := c.Interpolate(want.X, InterpolationSpline)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestSplineContinuityAtKnot(t *testing.T) {
	c := NewCurve(Pt2(0, 0), Pt2(1, 3), Pt2(2, 1), Pt2(3, 4), Pt2(4, 0))

	eps := decimal.NewFromFloat(1e-6)
	knot := decimal.NewFromInt(2)
	left, err := c.Interpolate(knot.Sub(eps), InterpolationSpline)
	require.NoError(t, err)
	right, err := c.Interpolate(knot.Add(eps), InterpolationSpline)
	require.NoError(t, err)

	testutil.AssertDecimalInDelta(t, left.Y, right.Y, 1e-4)
}

func TestSplineMinimumCardinality(t *testing.T) {
	c := NewCurve(Pt2(0, 0), Pt2(1, 1))

	_, err := c.Interpolate(decimal.NewFromFloat(0.5), InterpolationSpline)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestSplineOutOfRange(t *testing.T) {
	c := NewCurve(Pt2(0, 0), Pt2(1, 1), Pt2(2, 0))

	_, err := c.Interpolate(decimal.NewFromInt(5), InterpolationSpline)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSurfaceSplineOnGrid(t *testing.T) {
	// z = x on two y levels: the sliced spline stays on the plane.
	var pts []Point3D
	for x := 0; x <= 3; x++ {
		pts = append(pts, Pt3(float64(x), 0, float64(x)), Pt3(float64(x), 2, float64(x)))
	}
	s := NewSurface(pts...)

	p, err := s.Interpolate(Pt2(1.5, 1), InterpolationSpline)
	require.NoError(t, err)
	testutil.AssertDecimalEqual(t, testutil.D(t, "1.5"), p.Z)
}
