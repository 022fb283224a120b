package curves

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Point2D is an immutable point with two decimal coordinates. Points are
// totally ordered by X first and Y second, so two points sharing an X
// coordinate remain distinguishable inside an ordered set.
type Point2D struct {
	X decimal.Decimal
	Y decimal.Decimal
}

// NewPoint2D returns the point (x, y).
func NewPoint2D(x, y decimal.Decimal) Point2D {
	return Point2D{X: x, Y: y}
}

// Pt2 returns the point (x, y) from float64 coordinates. It is a convenience
// for examples and tests; production callers should construct decimals
// explicitly to control precision.
func Pt2(x, y float64) Point2D {
	return Point2D{X: decimal.NewFromFloat(x), Y: decimal.NewFromFloat(y)}
}

// Cmp compares two points by X, then Y. It returns -1, 0 or +1.
func (p Point2D) Cmp(o Point2D) int {
	if c := p.X.Cmp(o.X); c != 0 {
		return c
	}
	return p.Y.Cmp(o.Y)
}

// Equal reports whether both coordinates are numerically equal.
func (p Point2D) Equal(o Point2D) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// Lerp linearly interpolates between p and o at parameter t, where t=0
// yields p and t=1 yields o.
func (p Point2D) Lerp(o Point2D, t decimal.Decimal) Point2D {
	return Point2D{
		X: p.X.Add(o.X.Sub(p.X).Mul(t)),
		Y: p.Y.Add(o.Y.Sub(p.Y).Mul(t)),
	}
}

// Translate returns the point shifted by (dx, dy).
func (p Point2D) Translate(dx, dy decimal.Decimal) Point2D {
	return Point2D{X: p.X.Add(dx), Y: p.Y.Add(dy)}
}

// Scale returns the point with coordinates multiplied by (fx, fy).
func (p Point2D) Scale(fx, fy decimal.Decimal) Point2D {
	return Point2D{X: p.X.Mul(fx), Y: p.Y.Mul(fy)}
}

// DistanceSquared returns the squared euclidean distance to o. The square
// root is never taken inside the engine: squared distances order identically
// and stay exact in decimal arithmetic.
func (p Point2D) DistanceSquared(o Point2D) decimal.Decimal {
	dx := p.X.Sub(o.X)
	dy := p.Y.Sub(o.Y)
	return dx.Mul(dx).Add(dy.Mul(dy))
}

func (p Point2D) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Point3D is an immutable point with three decimal coordinates, ordered
// lexicographically by (X, Y, Z). Surfaces use Z the way curves use Y, with
// (X, Y) jointly playing the role of the curve's X axis.
type Point3D struct {
	X decimal.Decimal
	Y decimal.Decimal
	Z decimal.Decimal
}

// NewPoint3D returns the point (x, y, z).
func NewPoint3D(x, y, z decimal.Decimal) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Pt3 returns the point (x, y, z) from float64 coordinates.
func Pt3(x, y, z float64) Point3D {
	return Point3D{
		X: decimal.NewFromFloat(x),
		Y: decimal.NewFromFloat(y),
		Z: decimal.NewFromFloat(z),
	}
}

// Cmp compares two points lexicographically by (X, Y, Z).
func (p Point3D) Cmp(o Point3D) int {
	if c := p.X.Cmp(o.X); c != 0 {
		return c
	}
	if c := p.Y.Cmp(o.Y); c != 0 {
		return c
	}
	return p.Z.Cmp(o.Z)
}

// Equal reports whether all three coordinates are numerically equal.
func (p Point3D) Equal(o Point3D) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y) && p.Z.Equal(o.Z)
}

// XY returns the planar index coordinate of the point.
func (p Point3D) XY() Point2D {
	return Point2D{X: p.X, Y: p.Y}
}

// Translate returns the point shifted by (dx, dy, dz).
func (p Point3D) Translate(dx, dy, dz decimal.Decimal) Point3D {
	return Point3D{X: p.X.Add(dx), Y: p.Y.Add(dy), Z: p.Z.Add(dz)}
}

// Scale returns the point with coordinates multiplied by (fx, fy, fz).
func (p Point3D) Scale(fx, fy, fz decimal.Decimal) Point3D {
	return Point3D{X: p.X.Mul(fx), Y: p.Y.Mul(fy), Z: p.Z.Mul(fz)}
}

// DistanceSquaredXY returns the squared planar distance between the point's
// (X, Y) coordinate and q.
func (p Point3D) DistanceSquaredXY(q Point2D) decimal.Decimal {
	return p.XY().DistanceSquared(q)
}

func (p Point3D) String() string {
	return fmt.Sprintf("(%s, %s, %s)", p.X, p.Y, p.Z)
}
