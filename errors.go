package curves

import "errors"

// Common errors returned by the interpolation engine. All of them describe
// data or precondition failures; none are transient, so retrying the same
// call with the same inputs will fail the same way. Callers that want a
// cheaper fallback (e.g. linear instead of spline) must select it themselves.
var (
	// ErrInsufficientPoints indicates the object holds fewer points than the
	// selected algorithm's minimum cardinality.
	ErrInsufficientPoints = errors.New("insufficient points for interpolation")

	// ErrOutOfRange indicates the query coordinate lies outside the range
	// spanned by the stored points.
	ErrOutOfRange = errors.New("query coordinate out of range")

	// ErrNoBracketFound indicates the bracket search could not locate a pair
	// of stored points straddling the query coordinate.
	ErrNoBracketFound = errors.New("no bracketing points found")

	// ErrDegenerateGeometry indicates the candidate points coincide or are
	// collinear, leaving no usable interpolation basis.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrEmptyGeometry indicates a construction or query on an object with
	// no points.
	ErrEmptyGeometry = errors.New("empty geometry")

	// ErrConstruction indicates invalid construction parameters or a failed
	// parametric generator evaluation.
	ErrConstruction = errors.New("construction failed")

	// ErrIncompatibleRanges indicates merge inputs whose coordinate ranges
	// share no common domain.
	ErrIncompatibleRanges = errors.New("incompatible coordinate ranges")

	// ErrMergeSample indicates a single sample of a merge-combine evaluation
	// failed, e.g. a division by zero during the operator fold.
	ErrMergeSample = errors.New("merge sample evaluation failed")

	// ErrNotSupported indicates an unknown algorithm or operation selector.
	ErrNotSupported = errors.New("operation not supported")
)
