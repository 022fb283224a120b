package curves

import (
	"github.com/shopspring/decimal"
)

// interpolateLinear evaluates the straight segment between the two
// bracketing points:
//
//	y = p1.y + (q - p1.x) * (p2.y - p1.y) / (p2.x - p1.x)
//
// All arithmetic stays in decimals; no float64 rounding is introduced.
func (c *Curve) interpolateLinear(q decimal.Decimal) (Point2D, error) {
	br, err := c.bracket(q)
	if err != nil {
		return Point2D{}, err
	}
	if br.Exact {
		return c.points[br.ExactIdx], nil
	}

	p1, p2 := c.points[br.I], c.points[br.J]
	y := p1.Y.Add(q.Sub(p1.X).Mul(p2.Y.Sub(p1.Y)).Div(p2.X.Sub(p1.X)))
	return Point2D{X: q, Y: y}, nil
}
