package curves

import (
	"testing"

	"github.com/quantfold/go-curves/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantCurve(value float64, from, to float64) *Curve {
	return NewCurve(Pt2(from, value), Pt2((from+to)/2, value), Pt2(to, value))
}

func TestMergeSingleInputIsIdentity(t *testing.T) {
	c := NewCurve(Pt2(0, 1), Pt2(1, 2), Pt2(2, 3))

	for _, op := range []MergeOperation{MergeAdd, MergeSubtract, MergeMultiply, MergeDivide, MergeMax, MergeMin} {
		got, err := MergeCurves([]*Curve{c}, op)
		require.NoError(t, err, "op=%s", op)
		require.Equal(t, c.Len(), got.Len(), "op=%s", op)
		for i, p := range got.Points() {
			assert.Equal(t, c.Points()[i], p, "op=%s index %d", op, i)
		}
	}
}

func TestMergeAdditivity(t *testing.T) {
	a := constantCurve(3, 0, 10)
	b := constantCurve(4, 2, 12)

	sum, err := MergeCurves([]*Curve{a, b}, MergeAdd)
	require.NoError(t, err)

	// Shared domain is [2, 10]; every sample must be 3+4.
	lo, hi := sum.XRange()
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(2), lo)
	testutil.AssertDecimalEqual(t, decimal.NewFromInt(10), hi)
	require.Equal(t, defaultCurveMergeSteps+1, sum.Len())
	for _, p := range sum.Points() {
		testutil.AssertDecimalInDelta(t, decimal.NewFromInt(7), p.Y, testutil.DefaultTolerance)
	}
}

func TestMergeOperations(t *testing.T) {
	a := constantCurve(8, 0, 10)
	b := constantCurve(2, 0, 10)

	tests := []struct {
		op   MergeOperation
		want int64
	}{
		{MergeAdd, 10},
		{MergeSubtract, 6},
		{MergeMultiply, 16},
		{MergeDivide, 4},
		{MergeMax, 8},
		{MergeMin, 2},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got, err := MergeCurves([]*Curve{a, b}, tt.op)
			require.NoError(t, err)
			for _, p := range got.Points() {
				testutil.AssertDecimalInDelta(t, decimal.NewFromInt(tt.want), p.Y, testutil.DefaultTolerance)
			}
		})
	}
}

func TestMergeIncompatibleRanges(t *testing.T) {
	a := constantCurve(1, 0, 5)
	b := constantCurve(2, 6, 10)

	_, err := MergeCurves([]*Curve{a, b}, MergeAdd)
	assert.ErrorIs(t, err, ErrIncompatibleRanges)

	// Touching in a single point is still incompatible: no interval to
	// sample.
	c := constantCurve(2, 5, 10)
	_, err = MergeCurves([]*Curve{a, c}, MergeAdd)
	assert.ErrorIs(t, err, ErrIncompatibleRanges)
}

func TestMergeDivisionByZero(t *testing.T) {
	a := constantCurve(1, 0, 10)
	b := constantCurve(0, 0, 10)

	_, err := MergeCurves([]*Curve{a, b}, MergeDivide)
	assert.ErrorIs(t, err, ErrMergeSample)
}

func TestMergeEmptyInputs(t *testing.T) {
	_, err := MergeCurves(nil, MergeAdd)
	assert.ErrorIs(t, err, ErrEmptyGeometry)

	_, err = MergeCurves([]*Curve{NewCurve()}, MergeAdd)
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}

func TestMergeWithConvenienceForm(t *testing.T) {
	a := constantCurve(5, 0, 10)
	b := constantCurve(3, 0, 10)

	got, err := a.MergeWith(b, MergeSubtract)
	require.NoError(t, err)
	for _, p := range got.Points() {
		testutil.AssertDecimalInDelta(t, decimal.NewFromInt(2), p.Y, testutil.DefaultTolerance)
	}
}

func TestMergeCustomConfig(t *testing.T) {
	a := NewCurve(Pt2(0, 0), Pt2(5, 5), Pt2(10, 10))
	b := constantCurve(1, 0, 10)

	got, err := MergeCurvesWith([]*Curve{a, b}, MergeAdd, &MergeConfig{Steps: 10})
	require.NoError(t, err)
	require.Equal(t, 11, got.Len())

	// Sample at x=5: 5 + 1.
	p, ok := got.PointAt(decimal.NewFromInt(5))
	require.True(t, ok)
	testutil.AssertDecimalInDelta(t, decimal.NewFromInt(6), p.Y, testutil.DefaultTolerance)
}

func TestMergeThreeCurvesFoldOrder(t *testing.T) {
	// (20 - 5) - 3: subtraction folds left to right in input order.
	a := constantCurve(20, 0, 10)
	b := constantCurve(5, 0, 10)
	c := constantCurve(3, 0, 10)

	got, err := MergeCurves([]*Curve{a, b, c}, MergeSubtract)
	require.NoError(t, err)
	for _, p := range got.Points() {
		testutil.AssertDecimalInDelta(t, decimal.NewFromInt(12), p.Y, testutil.DefaultTolerance)
	}
}

func TestMergeSurfacesAdditivity(t *testing.T) {
	plane := func(z float64) *Surface {
		return NewSurface(
			Pt3(0, 0, z), Pt3(10, 0, z), Pt3(0, 10, z), Pt3(10, 10, z),
			Pt3(5, 5, z),
		)
	}

	sum, err := MergeSurfaces([]*Surface{plane(2), plane(3)}, MergeAdd)
	require.NoError(t, err)
	require.Equal(t, (defaultSurfaceMergeSteps+1)*(defaultSurfaceMergeSteps+1), sum.Len())
	for _, p := range sum.Points() {
		testutil.AssertDecimalInDelta(t, decimal.NewFromInt(5), p.Z, testutil.DefaultTolerance)
	}
}

func TestMergeSurfacesIncompatibleRanges(t *testing.T) {
	a := NewSurface(Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(0, 1, 0), Pt3(1, 1, 0))
	b := NewSurface(Pt3(5, 5, 0), Pt3(6, 5, 0), Pt3(5, 6, 0), Pt3(6, 6, 0))

	_, err := MergeSurfaces([]*Surface{a, b}, MergeAdd)
	assert.ErrorIs(t, err, ErrIncompatibleRanges)
}

func TestParseMergeOperation(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want MergeOperation
	}{
		{"add", MergeAdd},
		{"Subtract", MergeSubtract},
		{" multiply ", MergeMultiply},
		{"divide", MergeDivide},
		{"MAX", MergeMax},
		{"min", MergeMin},
	} {
		got, err := ParseMergeOperation(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	_, err := ParseMergeOperation("power")
	assert.ErrorIs(t, err, ErrNotSupported)
}
