package curves

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// CurveMetrics summarizes the distribution of a curve's ordinates. The
// moments are computed in float64 via gonum and converted back to decimals;
// they are descriptive statistics, not part of the exact interpolation
// arithmetic.
type CurveMetrics struct {
	Mean     decimal.Decimal
	Median   decimal.Decimal
	StdDev   decimal.Decimal
	Skewness decimal.Decimal
	Kurtosis decimal.Decimal // excess kurtosis
}

// Metrics computes summary statistics over the curve's y values. Skewness,
// kurtosis and the standard deviation are zero when fewer points exist than
// the corresponding moment needs.
func (c *Curve) Metrics() (CurveMetrics, error) {
	if len(c.points) == 0 {
		return CurveMetrics{}, fmt.Errorf("%w: metrics query", ErrEmptyGeometry)
	}

	ys := make([]float64, len(c.points))
	for i, p := range c.points {
		ys[i] = p.Y.InexactFloat64()
	}
	sorted := append([]float64(nil), ys...)
	sort.Float64s(sorted)

	m := CurveMetrics{
		Mean:   decimal.NewFromFloat(stat.Mean(ys, nil)),
		Median: decimal.NewFromFloat(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
	}
	var std float64
	if len(ys) >= 2 {
		std = stat.StdDev(ys, nil)
		m.StdDev = decimal.NewFromFloat(std)
	}
	// The higher moments divide by the standard deviation; constant data
	// would turn them into NaN, so they stay zero in that case.
	if std > 0 && len(ys) >= 3 {
		m.Skewness = decimal.NewFromFloat(stat.Skew(ys, nil))
	}
	if std > 0 && len(ys) >= 4 {
		m.Kurtosis = decimal.NewFromFloat(stat.ExKurtosis(ys, nil))
	}
	return m, nil
}
