package curves

import (
	"fmt"
	"slices"

	"github.com/quantfold/go-curves/internal/decmath"
	"github.com/shopspring/decimal"
)

// interpolateBilinear blends two adjacent linear segments around the
// bracket. The four-point window forms two "rows" (w0,w1) and (w2,w3); the
// query's normalized position dx between the bracket x coordinates drives a
// linear interpolation along each row and a final blend between the row
// results. Requires at least 4 points.
func (c *Curve) interpolateBilinear(q decimal.Decimal) (Point2D, error) {
	if len(c.points) < 4 {
		return Point2D{}, fmt.Errorf("%w: bilinear needs at least 4 points, have %d",
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
	// dx is normalized against the bracket pair itself, so it stays in
	// [0, 1] even in the boundary windows.
	dx := decmath.Frac(q, c.points[br.I].X, c.points[br.J].X)

	top := decmath.Lerp(w[0].Y, w[1].Y, dx)
	bottom := decmath.Lerp(w[2].Y, w[3].Y, dx)
	y := decmath.Lerp(top, bottom, dx)
	return Point2D{X: q, Y: y}, nil
}

// window4 selects four consecutive points around the bracket: the first
// four near the start, the last four near the end, otherwise one point on
// each side of the bracket pair.
func (c *Curve) window4(br bracketResult) [4]Point2D {
	n := len(c.points)
	switch {
	case br.I == 0:
		return [4]Point2D(c.points[:4])
	case br.J == n-1:
		return [4]Point2D(c.points[n-4:])
	default:
		return [4]Point2D(c.points[br.I-1 : br.J+2])
	}
}

// interpolateBarycentric performs triangle-based interpolation for the
// surface, serving both the linear and bilinear selectors: the three stored
// points nearest to q (at distinct planar coordinates) form a triangle, and
// z is the barycentric-weighted sum of the corner values. Requires at least
// 3 points; coincident or collinear candidates fail with
// ErrDegenerateGeometry.
func (s *Surface) interpolateBarycentric(q Point2D) (Point3D, error) {
	if len(s.points) < 3 {
		return Point3D{}, fmt.Errorf("%w: barycentric needs at least 3 points, have %d",
			ErrInsufficientPoints, len(s.points))
	}
	if !s.contains(q) {
		return Point3D{}, fmt.Errorf("%w: %s outside x range [%s, %s] x y range [%s, %s]",
			ErrOutOfRange, q, s.minX, s.maxX, s.minY, s.maxY)
	}
	if p, ok := s.PointAt(q); ok {
		return p, nil
	}

	tri, err := s.nearestDistinctXY(q, 3)
	if err != nil {
		return Point3D{}, err
	}
	a, b, cc := tri[0], tri[1], tri[2]

	// Barycentric weights of q relative to the triangle (a, b, cc). A zero
	// denominator means the corners are collinear (zero-area triangle).
	denom := b.Y.Sub(cc.Y).Mul(a.X.Sub(cc.X)).Add(cc.X.Sub(b.X).Mul(a.Y.Sub(cc.Y)))
	if denom.IsZero() {
		return Point3D{}, fmt.Errorf("%w: nearest triangle around %s has zero area", ErrDegenerateGeometry, q)
	}

	w1 := b.Y.Sub(cc.Y).Mul(q.X.Sub(cc.X)).Add(cc.X.Sub(b.X).Mul(q.Y.Sub(cc.Y))).Div(denom)
	w2 := cc.Y.Sub(a.Y).Mul(q.X.Sub(cc.X)).Add(a.X.Sub(cc.X).Mul(q.Y.Sub(cc.Y))).Div(denom)
	w3 := decimal.NewFromInt(1).Sub(w1).Sub(w2)

	z := w1.Mul(a.Z).Add(w2.Mul(b.Z)).Add(w3.Mul(cc.Z))
	return Point3D{X: q.X, Y: q.Y, Z: z}, nil
}

// nearestDistinctXY returns the k stored points nearest to q by squared
// planar distance, keeping only the first point seen at each planar
// coordinate. Ties resolve in ascending set order. Fails with
// ErrDegenerateGeometry when fewer than k distinct coordinates exist.
func (s *Surface) nearestDistinctXY(q Point2D, k int) ([]Point3D, error) {
	type candidate struct {
		p    Point3D
		dist decimal.Decimal
		rank int
	}

	// Points sort by numeric (X, Y, Z), so planar duplicates are adjacent;
	// comparing with the previous point dedups by value rather than by
	// string form, which would keep 2.5 and 2.50 apart.
	cands := make([]candidate, 0, len(s.points))
	for i, p := range s.points {
		if i > 0 {
			prev := s.points[i-1]
			if p.X.Equal(prev.X) && p.Y.Equal(prev.Y) {
				continue
			}
		}
		cands = append(cands, candidate{p: p, dist: p.DistanceSquaredXY(q), rank: i})
	}
	if len(cands) < k {
		return nil, fmt.Errorf("%w: only %d distinct planar coordinates, need %d",
			ErrDegenerateGeometry, len(cands), k)
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		if c := a.dist.Cmp(b.dist); c != 0 {
			return c
		}
		return a.rank - b.rank
	})

	out := make([]Point3D, k)
	for i := range out {
		out[i] = cands[i].p
	}
	return out, nil
}
