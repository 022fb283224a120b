package curves

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// ContainsPoint reports whether any stored point has x as its primary-axis
// coordinate.
func (c *Curve) ContainsPoint(x decimal.Decimal) bool {
	for _, p := range c.points {
		if p.X.Equal(x) {
			return true
		}
	}
	return false
}

// IndexValues returns the distinct primary-axis (x) coordinates in
// ascending order.
func (c *Curve) IndexValues() []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(c.points))
	for _, p := range c.points {
		if len(out) > 0 && out[len(out)-1].Equal(p.X) {
			continue
		}
		out = append(out, p.X)
	}
	return out
}

// ValuesAt returns every y value recorded at x, in ascending order. The
// result is empty if x is not a stored coordinate. Multiple values occur
// when upstream data records several observations at the same coordinate.
func (c *Curve) ValuesAt(x decimal.Decimal) []decimal.Decimal {
	var out []decimal.Decimal
	for _, p := range c.points {
		if p.X.Equal(x) {
			out = append(out, p.Y)
		}
	}
	return out
}

// PointAt returns the stored point at exactly x, or false if none exists.
// With several points at the same x, the one with the smallest y wins.
func (c *Curve) PointAt(x decimal.Decimal) (Point2D, bool) {
	for _, p := range c.points {
		if p.X.Equal(x) {
			return p, true
		}
	}
	return Point2D{}, false
}

// ClosestPoint returns the stored point nearest to x by absolute distance
// on the primary axis. Ties resolve deterministically to the point earliest
// in ascending set order (the smaller coordinate). An empty curve fails
// with ErrEmptyGeometry.
func (c *Curve) ClosestPoint(x decimal.Decimal) (Point2D, error) {
	if len(c.points) == 0 {
		return Point2D{}, fmt.Errorf("%w: closest point query", ErrEmptyGeometry)
	}
	best := c.points[0]
	bestDist := best.X.Sub(x).Abs()
	for _, p := range c.points[1:] {
		if d := p.X.Sub(x).Abs(); d.LessThan(bestDist) {
			best, bestDist = p, d
		}
	}
	return best, nil
}

// MergeIndexes unions the curve's index values with the supplied list,
// removing duplicates. The result is sorted ascending and is the coordinate
// set a subsequent resample evaluates on.
func (c *Curve) MergeIndexes(other []decimal.Decimal) []decimal.Decimal {
	return mergeIndexLists(c.IndexValues(), other, decimal.Decimal.Cmp)
}

func mergeIndexLists[I any](a, b []I, cmp func(I, I) int) []I {
	out := make([]I, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.SortFunc(out, cmp)
	return slices.CompactFunc(out, func(x, y I) bool { return cmp(x, y) == 0 })
}

// MergeAxisInterpolate resamples both curves onto the union of their index
// values with the chosen algorithm and returns the two aligned results,
// each defined over the identical index set. Alignment is all-or-nothing:
// if either curve cannot be evaluated at some union coordinate (for
// example, the coordinate lies outside its range), the whole call fails
// with that interpolation error.
func MergeAxisInterpolate(a, b *Curve, typ InterpolationType) (*Curve, *Curve, error) {
	union := a.MergeIndexes(b.IndexValues())

	resample := func(c *Curve, label string) (*Curve, error) {
		pts := make([]Point2D, 0, len(union))
		for _, x := range union {
			p, err := c.Interpolate(x, typ)
			if err != nil {
				return nil, fmt.Errorf("aligning %s curve at x=%s: %w", label, x, err)
			}
			pts = append(pts, p)
		}
		return NewCurve(pts...), nil
	}

	ra, err := resample(a, "first")
	if err != nil {
		return nil, nil, err
	}
	rb, err := resample(b, "second")
	if err != nil {
		return nil, nil, err
	}
	return ra, rb, nil
}

// ContainsPoint reports whether any stored point has q as its planar
// coordinate.
func (s *Surface) ContainsPoint(q Point2D) bool {
	_, ok := s.PointAt(q)
	return ok
}

// IndexValues returns the distinct planar (x, y) coordinates in ascending
// set order.
func (s *Surface) IndexValues() []Point2D {
	out := make([]Point2D, 0, len(s.points))
	for _, p := range s.points {
		xy := p.XY()
		if len(out) > 0 && out[len(out)-1].Equal(xy) {
			continue
		}
		out = append(out, xy)
	}
	return out
}

// ValuesAt returns every z value recorded at the planar coordinate q, in
// ascending order.
func (s *Surface) ValuesAt(q Point2D) []decimal.Decimal {
	var out []decimal.Decimal
	for _, p := range s.points {
		if p.XY().Equal(q) {
			out = append(out, p.Z)
		}
	}
	return out
}

// PointAt returns the stored point at exactly the planar coordinate q, or
// false if none exists. With several points at the same coordinate, the one
// with the smallest z wins.
func (s *Surface) PointAt(q Point2D) (Point3D, bool) {
	for _, p := range s.points {
		if p.XY().Equal(q) {
			return p, true
		}
	}
	return Point3D{}, false
}

// ClosestPoint returns the stored point nearest to q by squared planar
// distance. Ties resolve deterministically to the point earliest in
// ascending set order. An empty surface fails with ErrEmptyGeometry.
func (s *Surface) ClosestPoint(q Point2D) (Point3D, error) {
	if len(s.points) == 0 {
		return Point3D{}, fmt.Errorf("%w: closest point query", ErrEmptyGeometry)
	}
	best := s.points[0]
	bestDist := best.DistanceSquaredXY(q)
	for _, p := range s.points[1:] {
		if d := p.DistanceSquaredXY(q); d.LessThan(bestDist) {
			best, bestDist = p, d
		}
	}
	return best, nil
}

// MergeIndexes unions the surface's planar index values with the supplied
// list, removing duplicates.
func (s *Surface) MergeIndexes(other []Point2D) []Point2D {
	return mergeIndexLists(s.IndexValues(), other, Point2D.Cmp)
}

// MergeAxisInterpolateSurfaces resamples both surfaces onto the union of
// their planar index values with the chosen algorithm. Same all-or-nothing
// contract as [MergeAxisInterpolate].
func MergeAxisInterpolateSurfaces(a, b *Surface, typ InterpolationType) (*Surface, *Surface, error) {
	union := a.MergeIndexes(b.IndexValues())

	resample := func(s *Surface, label string) (*Surface, error) {
		pts := make([]Point3D, 0, len(union))
		for _, q := range union {
			p, err := s.Interpolate(q, typ)
			if err != nil {
				return nil, fmt.Errorf("aligning %s surface at %s: %w", label, q, err)
			}
			pts = append(pts, p)
		}
		return NewSurface(pts...), nil
	}

	ra, err := resample(a, "first")
	if err != nil {
		return nil, nil, err
	}
	rb, err := resample(b, "second")
	if err != nil {
		return nil, nil, err
	}
	return ra, rb, nil
}
