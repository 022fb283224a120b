package curves

import (
	"fmt"

	"github.com/quantfold/go-curves/internal/decmath"
	"github.com/shopspring/decimal"
)

// interpolateCubic evaluates a Catmull-Rom cubic through four consecutive
// points p0..p3 bracketing q, with t the normalized position of q between
// p1.x and p2.x:
//
//	y(t) = 0.5 * ( 2*p1.y + (-p0.y+p2.y)*t
//	             + (2*p0.y-5*p1.y+4*p2.y-p3.y)*t^2
//	             + (-p0.y+3*p1.y-3*p2.y+p3.y)*t^3 )
//
// In the boundary windows (first or last four points) t can fall outside
// [0, 1]; the polynomial extends smoothly there. Requires at least 4
// points.
func (c *Curve) interpolateCubic(q decimal.Decimal) (Point2D, error) {
	if len(c.points) < 4 {
		return Point2D{}, fmt.Errorf("%w: cubic needs at least 4 points, have %d",
			ErrInsufficientPoints, len(c.points))
	}
	br, err := c.bracket(q)
	if err != nil {
		return Point2D{}, err
	}
	if br.Exact {
		return c.points[br.ExactIdx], nil
	}

	w := c.window4(br)
	p0, p1, p2, p3 := w[0], w[1], w[2], w[3]

	t := decmath.Frac(q, p1.X, p2.X)
	t2 := t.Mul(t)
	t3 := t2.Mul(t)

	c1 := p2.Y.Sub(p0.Y)
	c2 := decmath.Two.Mul(p0.Y).Sub(decmath.Five.Mul(p1.Y)).Add(decmath.Four.Mul(p2.Y)).Sub(p3.Y)
	c3 := p3.Y.Sub(p0.Y).Add(decmath.Three.Mul(p1.Y.Sub(p2.Y)))

	y := decmath.Half.Mul(
		decmath.Two.Mul(p1.Y).
			Add(c1.Mul(t)).
			Add(c2.Mul(t2)).
			Add(c3.Mul(t3)))
	return Point2D{X: q, Y: y}, nil
}

// interpolateSliced runs a 1-D algorithm on a surface by slicing it at the
// stored y levels: the slice curves at the two levels bracketing q.Y are
// each interpolated in x (z playing the curve's y role), and the two
// results are blended linearly in y. A query exactly on a level evaluates
// only that slice.
func (s *Surface) interpolateSliced(q Point2D, typ InterpolationType) (Point3D, error) {
	minPts := 4
	if typ == InterpolationSpline {
		minPts = 3
	}
	if len(s.points) < minPts {
		return Point3D{}, fmt.Errorf("%w: %s needs at least %d points, have %d",
			ErrInsufficientPoints, typ, minPts, len(s.points))
	}
	if !s.contains(q) {
		return Point3D{}, fmt.Errorf("%w: %s outside x range [%s, %s] x y range [%s, %s]",
			ErrOutOfRange, q, s.minX, s.maxX, s.minY, s.maxY)
	}
	if p, ok := s.PointAt(q); ok {
		return p, nil
	}

	levels := s.yLevels()
	loIdx := 0
	for i, y := range levels {
		if y.LessThanOrEqual(q.Y) {
			loIdx = i
		}
	}

	if levels[loIdx].Equal(q.Y) {
		z, err := s.sliceAt(levels[loIdx]).Interpolate(q.X, typ)
		if err != nil {
			return Point3D{}, err
		}
		return Point3D{X: q.X, Y: q.Y, Z: z.Y}, nil
	}
	if loIdx+1 >= len(levels) {
		return Point3D{}, fmt.Errorf("%w: no y level above %s", ErrNoBracketFound, q.Y)
	}

	yLo, yHi := levels[loIdx], levels[loIdx+1]
	lo, err := s.sliceAt(yLo).Interpolate(q.X, typ)
	if err != nil {
		return Point3D{}, err
	}
	hi, err := s.sliceAt(yHi).Interpolate(q.X, typ)
	if err != nil {
		return Point3D{}, err
	}

	t := decmath.Frac(q.Y, yLo, yHi)
	z := decmath.Lerp(lo.Y, hi.Y, t)
	return Point3D{X: q.X, Y: q.Y, Z: z}, nil
}

// yLevels returns the distinct stored y coordinates in ascending order.
func (s *Surface) yLevels() []decimal.Decimal {
	levels := make([]decimal.Decimal, 0)
	for _, p := range s.points {
		dup := false
		for _, y := range levels {
			if y.Equal(p.Y) {
				dup = true
				break
			}
		}
		if !dup {
			levels = append(levels, p.Y)
		}
	}
	// Points sort by x first, so the levels need their own ordering pass.
	for i := 1; i < len(levels); i++ {
		for j := i; j > 0 && levels[j].LessThan(levels[j-1]); j-- {
			levels[j], levels[j-1] = levels[j-1], levels[j]
		}
	}
	return levels
}

// sliceAt projects the points at y level onto a curve of (x, z) pairs.
func (s *Surface) sliceAt(y decimal.Decimal) *Curve {
	pts := make([]Point2D, 0)
	for _, p := range s.points {
		if p.Y.Equal(y) {
			pts = append(pts, Point2D{X: p.X, Y: p.Z})
		}
	}
	return NewCurve(pts...)
}
