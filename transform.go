package curves

import (
	"fmt"

	"github.com/quantfold/go-curves/internal/decmath"
	"github.com/shopspring/decimal"
)

// Translate returns a new curve with every point shifted by (dx, dy).
func (c *Curve) Translate(dx, dy decimal.Decimal) *Curve {
	pts := make([]Point2D, len(c.points))
	for i, p := range c.points {
		pts[i] = p.Translate(dx, dy)
	}
	return NewCurve(pts...)
}

// Scale returns a new curve with every coordinate multiplied by (fx, fy).
// A zero factor collapses the corresponding axis; coinciding points are
// deduplicated as usual.
func (c *Curve) Scale(fx, fy decimal.Decimal) *Curve {
	pts := make([]Point2D, len(c.points))
	for i, p := range c.points {
		pts[i] = p.Scale(fx, fy)
	}
	return NewCurve(pts...)
}

// Translate returns a new surface with every point shifted by (dx, dy, dz).
func (s *Surface) Translate(dx, dy, dz decimal.Decimal) *Surface {
	pts := make([]Point3D, len(s.points))
	for i, p := range s.points {
		pts[i] = p.Translate(dx, dy, dz)
	}
	return NewSurface(pts...)
}

// Scale returns a new surface with every coordinate multiplied by
// (fx, fy, fz).
func (s *Surface) Scale(fx, fy, fz decimal.Decimal) *Surface {
	pts := make([]Point3D, len(s.points))
	for i, p := range s.points {
		pts[i] = p.Scale(fx, fy, fz)
	}
	return NewSurface(pts...)
}

// IntersectWith returns the points where the two piecewise-linear curves
// cross, in ascending x order. Both curves are aligned on the union of
// their index values restricted to the overlap of their x ranges; a sign
// change of the ordinate difference between adjacent grid points pins the
// crossing on that segment. Curves whose ranges do not overlap intersect
// nowhere and yield an empty result.
func (c *Curve) IntersectWith(other *Curve) ([]Point2D, error) {
	if c.Len() < 2 || other.Len() < 2 {
		return nil, fmt.Errorf("%w: intersection needs at least 2 points per curve", ErrInsufficientPoints)
	}

	lo, hi := c.XRange()
	oLo, oHi := other.XRange()
	if oLo.GreaterThan(lo) {
		lo = oLo
	}
	if oHi.LessThan(hi) {
		hi = oHi
	}
	if lo.GreaterThan(hi) {
		return nil, nil
	}

	// Union grid clipped to the overlap, with the overlap endpoints added
	// so boundary crossings are not missed.
	grid := c.MergeIndexes(other.IndexValues())
	grid = c.MergeIndexes(append(grid, lo, hi))
	clipped := grid[:0:0]
	for _, x := range grid {
		if x.LessThan(lo) || x.GreaterThan(hi) {
			continue
		}
		clipped = append(clipped, x)
	}

	type sample struct {
		x, diff decimal.Decimal
		y       decimal.Decimal
	}
	samples := make([]sample, 0, len(clipped))
	for _, x := range clipped {
		a, err := c.Interpolate(x, InterpolationLinear)
		if err != nil {
			return nil, fmt.Errorf("intersection sample at x=%s: %w", x, err)
		}
		b, err := other.Interpolate(x, InterpolationLinear)
		if err != nil {
			return nil, fmt.Errorf("intersection sample at x=%s: %w", x, err)
		}
		samples = append(samples, sample{x: x, diff: a.Y.Sub(b.Y), y: a.Y})
	}

	var out []Point2D
	appendHit := func(p Point2D) {
		if len(out) > 0 && out[len(out)-1].Equal(p) {
			return
		}
		out = append(out, p)
	}

	for i, sm := range samples {
		if sm.diff.IsZero() {
			appendHit(Point2D{X: sm.x, Y: sm.y})
			continue
		}
		if i+1 >= len(samples) {
			continue
		}
		next := samples[i+1]
		if next.diff.IsZero() || sm.diff.Sign() == next.diff.Sign() {
			continue
		}
		// Linear crossing of the difference between the two grid points.
		t := sm.diff.Div(sm.diff.Sub(next.diff))
		x := decmath.Lerp(sm.x, next.x, t)
		p, err := c.Interpolate(x, InterpolationLinear)
		if err != nil {
			return nil, fmt.Errorf("intersection at x=%s: %w", x, err)
		}
		appendHit(p)
	}
	return out, nil
}

// DerivativeAt returns dy/dx of the piecewise-linear curve at q: the slope
// of the segment containing q. At a stored interior point the segment to
// the right is used; at the last point, the segment to the left.
func (c *Curve) DerivativeAt(q decimal.Decimal) (decimal.Decimal, error) {
	br, err := c.bracket(q)
	if err != nil {
		return decimal.Zero, err
	}

	i, j := br.I, br.J
	if br.Exact {
		if br.ExactIdx < len(c.points)-1 {
			i, j = br.ExactIdx, br.ExactIdx+1
		} else {
			i, j = br.ExactIdx-1, br.ExactIdx
		}
	}
	p1, p2 := c.points[i], c.points[j]
	dx := p2.X.Sub(p1.X)
	if dx.IsZero() {
		return decimal.Zero, fmt.Errorf("%w: vertical segment at x=%s", ErrDegenerateGeometry, q)
	}
	return p2.Y.Sub(p1.Y).Div(dx), nil
}

// Extrema returns the stored points with the smallest and largest ordinate.
// Ties resolve to the point earliest in ascending set order. An empty curve
// fails with ErrEmptyGeometry.
func (c *Curve) Extrema() (minPt, maxPt Point2D, err error) {
	if len(c.points) == 0 {
		return Point2D{}, Point2D{}, fmt.Errorf("%w: extrema query", ErrEmptyGeometry)
	}
	minPt, maxPt = c.points[0], c.points[0]
	for _, p := range c.points[1:] {
		if p.Y.LessThan(minPt.Y) {
			minPt = p
		}
		if p.Y.GreaterThan(maxPt.Y) {
			maxPt = p
		}
	}
	return minPt, maxPt, nil
}

// MeasureUnder returns the absolute area enclosed between the curve and the
// horizontal line y = base, computed with the trapezoid rule over the
// stored points.
func (c *Curve) MeasureUnder(base decimal.Decimal) (decimal.Decimal, error) {
	if len(c.points) < 2 {
		return decimal.Zero, fmt.Errorf("%w: area needs at least 2 points, have %d",
			ErrInsufficientPoints, len(c.points))
	}

	area := decimal.Zero
	for i := 1; i < len(c.points); i++ {
		p1, p2 := c.points[i-1], c.points[i]
		dx := p2.X.Sub(p1.X)
		avg := p1.Y.Sub(base).Add(p2.Y.Sub(base)).Mul(decmath.Half)
		area = area.Add(avg.Mul(dx).Abs())
	}
	return area, nil
}
