package curves

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Surface is an ordered, duplicate-free set of [Point3D] with cached x and y
// coordinate ranges. It follows the same construction and immutability
// discipline as [Curve], generalized to two independent index axes: a
// surface is queried at a planar (x, y) coordinate and interpolates z.
type Surface struct {
	points     []Point3D // ascending (X, Y, Z), no duplicates
	minX, maxX decimal.Decimal
	minY, maxY decimal.Decimal
}

// NewSurface builds a surface from the given points, deduplicating exact
// coordinate matches and computing both axis ranges.
func NewSurface(points ...Point3D) *Surface {
	s := &Surface{points: make([]Point3D, 0, len(points))}
	for _, p := range points {
		s.insert(p)
	}
	s.refreshRanges()
	return s
}

func (s *Surface) insert(p Point3D) {
	idx, found := slices.BinarySearchFunc(s.points, p, Point3D.Cmp)
	if found {
		return
	}
	s.points = slices.Insert(s.points, idx, p)
}

func (s *Surface) refreshRanges() {
	if len(s.points) == 0 {
		s.minX, s.maxX = decimal.Zero, decimal.Zero
		s.minY, s.maxY = decimal.Zero, decimal.Zero
		return
	}
	// Points sort by X first, so the x range falls out of the ordering.
	s.minX = s.points[0].X
	s.maxX = s.points[len(s.points)-1].X
	s.minY = s.points[0].Y
	s.maxY = s.points[0].Y
	for _, p := range s.points[1:] {
		if p.Y.LessThan(s.minY) {
			s.minY = p.Y
		}
		if p.Y.GreaterThan(s.maxY) {
			s.maxY = p.Y
		}
	}
}

// Points returns the stored points in ascending (X, Y, Z) order. The
// returned slice is a copy.
func (s *Surface) Points() []Point3D {
	return slices.Clone(s.points)
}

// Len returns the number of stored points.
func (s *Surface) Len() int {
	return len(s.points)
}

// Empty reports whether the surface holds no points.
func (s *Surface) Empty() bool {
	return len(s.points) == 0
}

// XRange returns the smallest and largest stored x coordinate.
func (s *Surface) XRange() (minX, maxX decimal.Decimal) {
	return s.minX, s.maxX
}

// YRange returns the smallest and largest stored y coordinate.
func (s *Surface) YRange() (minY, maxY decimal.Decimal) {
	return s.minY, s.maxY
}

func (s *Surface) clone() *Surface {
	return &Surface{
		points: slices.Clone(s.points),
		minX:   s.minX, maxX: s.maxX,
		minY: s.minY, maxY: s.maxY,
	}
}

// contains reports whether q lies inside the surface's x and y ranges.
func (s *Surface) contains(q Point2D) bool {
	if q.X.LessThan(s.minX) || q.X.GreaterThan(s.maxX) {
		return false
	}
	if q.Y.LessThan(s.minY) || q.Y.GreaterThan(s.maxY) {
		return false
	}
	return true
}

// SurfaceFunc is a parametric generator evaluated at a planar grid node.
// Returning an error aborts construction.
type SurfaceFunc func(p Point2D) (Point3D, error)

// SurfaceConstructionMethod selects how ConstructSurface builds its result.
type SurfaceConstructionMethod interface {
	buildSurface() (*Surface, error)
}

// SurfaceData constructs a surface from raw points.
type SurfaceData struct {
	Points []Point3D
}

// SurfaceParametric constructs a surface by evaluating F at every node of a
// rectangular grid: (XSteps+1) x (YSteps+1) equally spaced coordinates over
// [XStart, XEnd] x [YStart, YEnd].
type SurfaceParametric struct {
	F              SurfaceFunc
	XStart, XEnd   decimal.Decimal
	YStart, YEnd   decimal.Decimal
	XSteps, YSteps int
}

// ConstructSurface builds a surface with the given method. An empty result
// set fails with ErrEmptyGeometry; invalid parameters or a failing generator
// fail with ErrConstruction.
func ConstructSurface(m SurfaceConstructionMethod) (*Surface, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil construction method", ErrConstruction)
	}
	return m.buildSurface()
}

func (m SurfaceData) buildSurface() (*Surface, error) {
	if len(m.Points) == 0 {
		return nil, fmt.Errorf("%w: no points supplied", ErrEmptyGeometry)
	}
	return NewSurface(m.Points...), nil
}

func (m SurfaceParametric) buildSurface() (*Surface, error) {
	if m.F == nil {
		return nil, fmt.Errorf("%w: nil generator function", ErrConstruction)
	}
	if m.XSteps < 1 || m.YSteps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1 per axis, got (%d, %d)",
			ErrConstruction, m.XSteps, m.YSteps)
	}
	if !m.XStart.LessThan(m.XEnd) {
		return nil, fmt.Errorf("%w: x range [%s, %s] is empty", ErrConstruction, m.XStart, m.XEnd)
	}
	if !m.YStart.LessThan(m.YEnd) {
		return nil, fmt.Errorf("%w: y range [%s, %s] is empty", ErrConstruction, m.YStart, m.YEnd)
	}

	xStep := m.XEnd.Sub(m.XStart).Div(decimal.NewFromInt(int64(m.XSteps)))
	yStep := m.YEnd.Sub(m.YStart).Div(decimal.NewFromInt(int64(m.YSteps)))

	pts := make([]Point3D, 0, (m.XSteps+1)*(m.YSteps+1))
	for xi := 0; xi <= m.XSteps; xi++ {
		x := m.XStart.Add(xStep.Mul(decimal.NewFromInt(int64(xi))))
		if xi == m.XSteps {
			x = m.XEnd
		}
		for yi := 0; yi <= m.YSteps; yi++ {
			y := m.YStart.Add(yStep.Mul(decimal.NewFromInt(int64(yi))))
			if yi == m.YSteps {
				y = m.YEnd
			}
			node := Point2D{X: x, Y: y}
			p, err := m.F(node)
			if err != nil {
				return nil, fmt.Errorf("%w: generator failed at %s: %v", ErrConstruction, node, err)
			}
			pts = append(pts, p)
		}
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("%w: generator produced no points", ErrEmptyGeometry)
	}
	return NewSurface(pts...), nil
}
