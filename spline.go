package curves

import (
	"fmt"

	"github.com/quantfold/go-curves/internal/decmath"
	"github.com/shopspring/decimal"
)

// interpolateSpline evaluates a natural cubic spline through all stored
// points. The second derivative m_i at every knot comes from a tridiagonal
// linear system with natural boundary conditions (m_0 = m_{n-1} = 0),
// solved with the Thomas algorithm in O(n). The segment [x_i, x_{i+1}]
// containing q is then evaluated with the standard spline formula
//
//	S(q) = m_i*(x_{i+1}-q)^3/(6h) + m_{i+1}*(q-x_i)^3/(6h)
//	     + (y_i/h - h*m_i/6)*(x_{i+1}-q) + (y_{i+1}/h - h*m_{i+1}/6)*(q-x_i)
//
// with h = x_{i+1} - x_i. Requires at least 3 points.
func (c *Curve) interpolateSpline(q decimal.Decimal) (Point2D, error) {
	if len(c.points) < 3 {
		return Point2D{}, fmt.Errorf("%w: spline needs at least 3 points, have %d",
			ErrInsufficientPoints, len(c.points))
	}
	br, err := c.bracket(q)
	if err != nil {
		return Point2D{}, err
	}
	if br.Exact {
		return c.points[br.ExactIdx], nil
	}

	m, err := c.splineSecondDerivatives()
	if err != nil {
		return Point2D{}, err
	}

	i, j := br.I, br.J
	xi, xj := c.points[i].X, c.points[j].X
	yi, yj := c.points[i].Y, c.points[j].Y
	h := xj.Sub(xi)

	left := xj.Sub(q)  // x_{i+1} - q
	right := q.Sub(xi) // q - x_i
	sixH := decmath.Six.Mul(h)

	y := m[i].Mul(left).Mul(left).Mul(left).Div(sixH).
		Add(m[j].Mul(right).Mul(right).Mul(right).Div(sixH)).
		Add(yi.Div(h).Sub(h.Mul(m[i]).Div(decmath.Six)).Mul(left)).
		Add(yj.Div(h).Sub(h.Mul(m[j]).Div(decmath.Six)).Mul(right))
	return Point2D{X: q, Y: y}, nil
}

// splineSecondDerivatives solves for the second derivative at every stored
// point. For n points the n-2 interior equations are
//
//	h_{i-1}/6 * m_{i-1} + (h_{i-1}+h_i)/3 * m_i + h_i/6 * m_{i+1}
//	  = (y_{i+1}-y_i)/h_i - (y_i-y_{i-1})/h_{i-1}
//
// with the natural boundary m_0 = m_{n-1} = 0.
func (c *Curve) splineSecondDerivatives() ([]decimal.Decimal, error) {
	n := len(c.points)
	m := make([]decimal.Decimal, n)
	m[0], m[n-1] = decimal.Zero, decimal.Zero

	interior := n - 2
	a := make([]decimal.Decimal, interior)
	b := make([]decimal.Decimal, interior)
	cc := make([]decimal.Decimal, interior)
	r := make([]decimal.Decimal, interior)

	for i := 0; i < interior; i++ {
		j := i + 1
		hPrev := c.points[j].X.Sub(c.points[j-1].X)
		hNext := c.points[j+1].X.Sub(c.points[j].X)

		a[i] = hPrev.Div(decmath.Six)
		b[i] = hPrev.Add(hNext).Div(decmath.Three)
		cc[i] = hNext.Div(decmath.Six)
		r[i] = c.points[j+1].Y.Sub(c.points[j].Y).Div(hNext).
			Sub(c.points[j].Y.Sub(c.points[j-1].Y).Div(hPrev))
	}

	sol, err := decmath.SolveTridiagonal(a, b, cc, r)
	if err != nil {
		return nil, fmt.Errorf("%w: spline system: %v", ErrDegenerateGeometry, err)
	}
	copy(m[1:n-1], sol)
	return m, nil
}
