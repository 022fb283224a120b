// Package curves provides two- and three-dimensional geometric
// interpolation and curve arithmetic over high-precision decimals.
//
// The package underlies financial analytics such as volatility smiles,
// Greek-exposure curves and yield curves: any ordered set of points can be
// queried at arbitrary coordinates, combined with other point sets, and
// transformed geometrically. All coordinate arithmetic uses
// github.com/shopspring/decimal, so repeated queries are exact and
// repeatable with no floating-point drift.
//
// # Features
//
//   - Four interpolation algorithms behind one selector: piecewise linear,
//     bilinear/barycentric, Catmull-Rom cubic, and natural cubic spline
//     (tridiagonal Thomas solve)
//   - Self-sorting, duplicate-free point storage with cached coordinate
//     ranges for curves ([Curve]) and surfaces ([Surface])
//   - Construction from raw points or from a parametric generator sampled
//     over a regular grid ([ConstructCurve], [ConstructSurface])
//   - Axis operations: membership, nearest point, index listing and index
//     merging, plus alignment of two objects onto a shared coordinate grid
//     ([MergeAxisInterpolate])
//   - Curve arithmetic: combine N objects with add, subtract, multiply,
//     divide, max or min over the intersection of their ranges
//     ([MergeCurves]), with optional data-parallel sample evaluation
//   - Geometric transforms and analytics: translate, scale, intersection,
//     derivative, extrema, area against a base line, summary statistics
//
// # Quick Start
//
// Build a curve and query it:
//
//	c := curves.NewCurve(
//	    curves.Pt2(2, 4),
//	    curves.Pt2(5, 10),
//	    curves.Pt2(8, 12),
//	    curves.Pt2(11, 9),
//	)
//	p, err := c.Interpolate(decimal.NewFromInt(3), curves.InterpolationSpline)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(p)
//
// Combine two curves pointwise:
//
//	sum, err := a.MergeWith(b, curves.MergeAdd)
//
// # Errors
//
// Every failure is a data or precondition error, reported through the
// package sentinels (ErrInsufficientPoints, ErrOutOfRange,
// ErrDegenerateGeometry, ...); use errors.Is to discriminate. The engine
// never falls back to a cheaper algorithm on its own; callers that want,
// say, linear instead of spline on failure select it themselves.
//
// # Concurrency
//
// All operations are pure functions over immutable point collections.
// Transformations return new objects; nothing is mutated in place, so
// values can be shared between goroutines without synchronization. The
// per-sample loop of the merge arithmetic can optionally run on a worker
// pool (see [MergeConfig]); results are identical to the sequential path.
package curves
