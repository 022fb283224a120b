package curves

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Curve is an ordered, duplicate-free set of [Point2D] together with the
// cached range of x coordinates the points span. Points are kept in
// ascending (X, Y) order; inserting a point that is already present is a
// silent no-op.
//
// A Curve is never mutated in place. Every transformation (Translate, Scale,
// merge operations) returns a new Curve, so values can be shared freely
// between goroutines.
type Curve struct {
	points     []Point2D // ascending (X, Y), no duplicates
	minX, maxX decimal.Decimal
}

// NewCurve builds a curve from the given points, deduplicating exact
// coordinate matches and computing the x range. The input order is
// irrelevant. An empty argument list yields an empty curve; queries against
// it fail with the usual precondition errors.
func NewCurve(points ...Point2D) *Curve {
	c := &Curve{points: make([]Point2D, 0, len(points))}
	for _, p := range points {
		c.insert(p)
	}
	c.refreshRange()
	return c
}

// insert adds p keeping the set sorted, dropping exact duplicates.
func (c *Curve) insert(p Point2D) {
	idx, found := slices.BinarySearchFunc(c.points, p, Point2D.Cmp)
	if found {
		return
	}
	c.points = slices.Insert(c.points, idx, p)
}

func (c *Curve) refreshRange() {
	if len(c.points) == 0 {
		c.minX, c.maxX = decimal.Zero, decimal.Zero
		return
	}
	c.minX = c.points[0].X
	c.maxX = c.points[len(c.points)-1].X
}

// Points returns the stored points in ascending (X, Y) order. The returned
// slice is a copy; modifying it does not affect the curve.
func (c *Curve) Points() []Point2D {
	return slices.Clone(c.points)
}

// Len returns the number of stored points.
func (c *Curve) Len() int {
	return len(c.points)
}

// Empty reports whether the curve holds no points.
func (c *Curve) Empty() bool {
	return len(c.points) == 0
}

// XRange returns the smallest and largest stored x coordinate. Both are
// zero for an empty curve.
func (c *Curve) XRange() (minX, maxX decimal.Decimal) {
	return c.minX, c.maxX
}

// clone returns a deep copy of the curve.
func (c *Curve) clone() *Curve {
	return &Curve{
		points: slices.Clone(c.points),
		minX:   c.minX,
		maxX:   c.maxX,
	}
}

// CurveFunc is a parametric generator evaluated at grid parameter t.
// Returning an error aborts construction.
type CurveFunc func(t decimal.Decimal) (Point2D, error)

// CurveConstructionMethod selects how ConstructCurve builds its result:
// either directly from data ([CurveData]) or by sampling a parametric
// generator over a regular grid ([CurveParametric]).
type CurveConstructionMethod interface {
	buildCurve() (*Curve, error)
}

// CurveData constructs a curve from raw points.
type CurveData struct {
	Points []Point2D
}

// CurveParametric constructs a curve by evaluating F at Steps+1 equally
// spaced parameters across [TStart, TEnd].
type CurveParametric struct {
	F      CurveFunc
	TStart decimal.Decimal
	TEnd   decimal.Decimal
	Steps  int
}

// ConstructCurve builds a curve with the given method. An empty result set
// fails with ErrEmptyGeometry; invalid parameters or a failing generator
// fail with ErrConstruction.
func ConstructCurve(m CurveConstructionMethod) (*Curve, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil construction method", ErrConstruction)
	}
	return m.buildCurve()
}

func (m CurveData) buildCurve() (*Curve, error) {
	if len(m.Points) == 0 {
		return nil, fmt.Errorf("%w: no points supplied", ErrEmptyGeometry)
	}
	return NewCurve(m.Points...), nil
}

func (m CurveParametric) buildCurve() (*Curve, error) {
	if m.F == nil {
		return nil, fmt.Errorf("%w: nil generator function", ErrConstruction)
	}
	if m.Steps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", ErrConstruction, m.Steps)
	}
	if !m.TStart.LessThan(m.TEnd) {
		return nil, fmt.Errorf("%w: parameter range [%s, %s] is empty", ErrConstruction, m.TStart, m.TEnd)
	}

	step := m.TEnd.Sub(m.TStart).Div(decimal.NewFromInt(int64(m.Steps)))
	pts := make([]Point2D, 0, m.Steps+1)
	for i := 0; i <= m.Steps; i++ {
		t := m.TStart.Add(step.Mul(decimal.NewFromInt(int64(i))))
		if i == m.Steps {
			// Land exactly on the endpoint regardless of division rounding.
			t = m.TEnd
		}
		p, err := m.F(t)
		if err != nil {
			return nil, fmt.Errorf("%w: generator failed at t=%s: %v", ErrConstruction, t, err)
		}
		pts = append(pts, p)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: generator produced no points", ErrEmptyGeometry)
	}
	return NewCurve(pts...), nil
}
