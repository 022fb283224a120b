package curves

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// InterpolationType selects one of the four interpolation algorithms.
type InterpolationType int

const (
	// InterpolationLinear interpolates on the straight segment between the
	// two bracketing points. Fastest, always available with 2+ points. On
	// surfaces it evaluates the triangle scheme of [InterpolationBilinear],
	// which is the linear interpolant in the plane.
	InterpolationLinear InterpolationType = iota

	// InterpolationBilinear blends two adjacent linear segments (curves) or
	// performs barycentric interpolation over the nearest triangle of three
	// points (surfaces). Damps discontinuities between neighboring segments.
	InterpolationBilinear

	// InterpolationCubic evaluates a Catmull-Rom cubic through four
	// consecutive points. Smooth first derivative, O(1) per query.
	InterpolationCubic

	// InterpolationSpline evaluates a natural cubic spline, solving a
	// tridiagonal system for the second derivatives. The most expensive and
	// smoothest of the four: continuous second derivative at every knot.
	InterpolationSpline
)

func (t InterpolationType) String() string {
	switch t {
	case InterpolationLinear:
		return "linear"
	case InterpolationBilinear:
		return "bilinear"
	case InterpolationCubic:
		return "cubic"
	case InterpolationSpline:
		return "spline"
	default:
		return fmt.Sprintf("InterpolationType(%d)", int(t))
	}
}

// ParseInterpolationType converts a name ("linear", "bilinear", "cubic",
// "spline") to its selector. Matching is case-insensitive.
func ParseInterpolationType(s string) (InterpolationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear":
		return InterpolationLinear, nil
	case "bilinear":
		return InterpolationBilinear, nil
	case "cubic":
		return InterpolationCubic, nil
	case "spline":
		return InterpolationSpline, nil
	default:
		return 0, fmt.Errorf("%w: unknown interpolation type %q", ErrNotSupported, s)
	}
}

// Interpolator describes geometric objects that can be queried at an
// arbitrary index coordinate with a selectable algorithm. I is the index
// type (decimal.Decimal for curves, Point2D for surfaces) and P the stored
// point type.
type Interpolator[I, P any] interface {
	Interpolate(q I, typ InterpolationType) (P, error)
}

// GeometricObject combines interpolation with the coordinate-level queries
// every object kind supports.
type GeometricObject[I, P any] interface {
	Interpolator[I, P]

	Points() []P
	Len() int
	Empty() bool
	ContainsPoint(q I) bool
	IndexValues() []I
	ClosestPoint(q I) (P, error)
}

var (
	_ GeometricObject[decimal.Decimal, Point2D] = (*Curve)(nil)
	_ GeometricObject[Point2D, Point3D]         = (*Surface)(nil)
)

// Interpolate queries the curve at x with the selected algorithm. A query
// that coincides with a stored point returns that point bit-for-bit for
// every algorithm.
func (c *Curve) Interpolate(q decimal.Decimal, typ InterpolationType) (Point2D, error) {
	switch typ {
	case InterpolationLinear:
		return c.interpolateLinear(q)
	case InterpolationBilinear:
		return c.interpolateBilinear(q)
	case InterpolationCubic:
		return c.interpolateCubic(q)
	case InterpolationSpline:
		return c.interpolateSpline(q)
	default:
		return Point2D{}, fmt.Errorf("%w: interpolation type %d", ErrNotSupported, int(typ))
	}
}

// Interpolate queries the surface at the planar coordinate q with the
// selected algorithm, interpolating z.
func (s *Surface) Interpolate(q Point2D, typ InterpolationType) (Point3D, error) {
	switch typ {
	case InterpolationLinear, InterpolationBilinear:
		return s.interpolateBarycentric(q)
	case InterpolationCubic:
		return s.interpolateSliced(q, InterpolationCubic)
	case InterpolationSpline:
		return s.interpolateSliced(q, InterpolationSpline)
	default:
		return Point3D{}, fmt.Errorf("%w: interpolation type %d", ErrNotSupported, int(typ))
	}
}
