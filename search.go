package curves

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// bracketResult reports where a query coordinate sits relative to the
// stored points. When Exact is true the query coincides with the point at
// ExactIdx and callers must return that point verbatim, bypassing all
// interpolation arithmetic. Otherwise points[I].X < q < points[J].X with
// J = I+1.
type bracketResult struct {
	Exact    bool
	ExactIdx int
	I, J     int
}

// bracket locates the pair of stored points straddling q.
//
// Fewer than two points fail with ErrInsufficientPoints; a query outside
// the x range fails with ErrOutOfRange. ErrNoBracketFound guards the
// degenerate case of a zero-width bracket, which self-sorting storage
// should make unreachable.
func (c *Curve) bracket(q decimal.Decimal) (bracketResult, error) {
	n := len(c.points)
	if n < 2 {
		return bracketResult{}, fmt.Errorf("%w: need at least 2 points, have %d", ErrInsufficientPoints, n)
	}
	if q.LessThan(c.minX) || q.GreaterThan(c.maxX) {
		return bracketResult{}, fmt.Errorf("%w: x=%s outside [%s, %s]", ErrOutOfRange, q, c.minX, c.maxX)
	}

	// First index whose x is >= q. The range check above guarantees a hit.
	idx := sort.Search(n, func(i int) bool {
		return c.points[i].X.Cmp(q) >= 0
	})
	if idx < n && c.points[idx].X.Equal(q) {
		return bracketResult{Exact: true, ExactIdx: idx}, nil
	}
	if idx == 0 || idx >= n {
		return bracketResult{}, fmt.Errorf("%w: x=%s", ErrNoBracketFound, q)
	}

	i, j := idx-1, idx
	if c.points[i].X.Equal(c.points[j].X) {
		return bracketResult{}, fmt.Errorf("%w: zero-width bracket at x=%s", ErrNoBracketFound, q)
	}
	return bracketResult{I: i, J: j}, nil
}
