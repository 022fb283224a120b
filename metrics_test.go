package curves

import (
	"testing"

	"github.com/quantfold/go-curves/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsConstantCurve(t *testing.T) {
	c := constantCurve(5, 0, 10)

	m, err := c.Metrics()
	require.NoError(t, err)
	testutil.AssertDecimalInDelta(t, decimal.NewFromInt(5), m.Mean, testutil.DefaultTolerance)
	testutil.AssertDecimalInDelta(t, decimal.NewFromInt(5), m.Median, testutil.DefaultTolerance)
	assert.True(t, m.StdDev.IsZero(), "std dev of constant data, got %s", m.StdDev)
	assert.True(t, m.Skewness.IsZero())
	assert.True(t, m.Kurtosis.IsZero())
}

func TestMetricsKnownDistribution(t *testing.T) {
	// y values 1..5: mean 3, sample std sqrt(2.5).
	c := NewCurve(Pt2(0, 1), Pt2(1, 2), Pt2(2, 3), Pt2(3, 4), Pt2(4, 5))

	m, err := c.Metrics()
	require.NoError(t, err)
	testutil.AssertDecimalInDelta(t, decimal.NewFromInt(3), m.Mean, testutil.DefaultTolerance)
	testutil.AssertDecimalInDelta(t, decimal.NewFromInt(3), m.Median, testutil.DefaultTolerance)
	testutil.AssertDecimalInDelta(t, testutil.D(t, "1.5811388300841898"), m.StdDev, 1e-9)
	// Symmetric data: no skew.
	testutil.AssertDecimalInDelta(t, decimal.Zero, m.Skewness, 1e-9)
}

func TestMetricsEmptyCurve(t *testing.T) {
	_, err := NewCurve().Metrics()
	assert.ErrorIs(t, err, ErrEmptyGeometry)
}
