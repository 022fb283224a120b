package curves

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// MergeOperation is the pointwise operator folded over the interpolated
// values during a merge-combine.
type MergeOperation int

const (
	// MergeAdd sums the values at each sample coordinate.
	MergeAdd MergeOperation = iota

	// MergeSubtract subtracts each further value from the running result.
	MergeSubtract

	// MergeMultiply multiplies the values at each sample coordinate.
	MergeMultiply

	// MergeDivide divides the running result by each further value. A zero
	// divisor fails the sample with ErrMergeSample.
	MergeDivide

	// MergeMax keeps the largest value at each sample coordinate.
	MergeMax

	// MergeMin keeps the smallest value at each sample coordinate.
	MergeMin
)

func (op MergeOperation) String() string {
	switch op {
	case MergeAdd:
		return "add"
	case MergeSubtract:
		return "subtract"
	case MergeMultiply:
		return "multiply"
	case MergeDivide:
		return "divide"
	case MergeMax:
		return "max"
	case MergeMin:
		return "min"
	default:
		return fmt.Sprintf("MergeOperation(%d)", int(op))
	}
}

// ParseMergeOperation converts a name ("add", "subtract", "multiply",
// "divide", "max", "min") to its operator. Matching is case-insensitive.
func ParseMergeOperation(s string) (MergeOperation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return MergeAdd, nil
	case "subtract":
		return MergeSubtract, nil
	case "multiply":
		return MergeMultiply, nil
	case "divide":
		return MergeDivide, nil
	case "max":
		return MergeMax, nil
	case "min":
		return MergeMin, nil
	default:
		return 0, fmt.Errorf("%w: unknown merge operation %q", ErrNotSupported, s)
	}
}

// apply folds v into acc.
func (op MergeOperation) apply(acc, v decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case MergeAdd:
		return acc.Add(v), nil
	case MergeSubtract:
		return acc.Sub(v), nil
	case MergeMultiply:
		return acc.Mul(v), nil
	case MergeDivide:
		if v.IsZero() {
			return decimal.Zero, fmt.Errorf("%w: division by zero", ErrMergeSample)
		}
		return acc.Div(v), nil
	case MergeMax:
		if v.GreaterThan(acc) {
			return v, nil
		}
		return acc, nil
	case MergeMin:
		if v.LessThan(acc) {
			return v, nil
		}
		return acc, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: merge operation %d", ErrNotSupported, int(op))
	}
}

// Default sampling resolution of merge-combine.
const (
	// defaultCurveMergeSteps divides the shared x range of merged curves.
	defaultCurveMergeSteps = 100

	// defaultSurfaceMergeSteps divides each axis of merged surfaces,
	// keeping the total node count comparable to the curve case.
	defaultSurfaceMergeSteps = 20
)

// MergeConfig tunes a merge-combine evaluation. The zero value selects the
// defaults: 100 steps for curves (20 per axis for surfaces), linear
// interpolation, sequential evaluation.
type MergeConfig struct {
	// Steps is the number of equal steps the shared range is divided into.
	// Surfaces use it per axis.
	Steps int

	// Interpolation selects the algorithm each input is queried with.
	Interpolation InterpolationType

	// Parallel evaluates the samples on a worker pool. Samples are
	// independent, so the result is identical to sequential evaluation.
	Parallel bool
}

func (cfg *MergeConfig) withDefaults(defaultSteps int) MergeConfig {
	out := MergeConfig{Steps: defaultSteps, Interpolation: InterpolationLinear}
	if cfg == nil {
		return out
	}
	out.Interpolation = cfg.Interpolation
	out.Parallel = cfg.Parallel
	if cfg.Steps > 0 {
		out.Steps = cfg.Steps
	}
	return out
}

// MergeCurves combines the input curves into one by sampling the
// intersection of their x ranges and folding the interpolated values with
// op. A single input is cloned without computation.
//
// The intersection range is [max of lower bounds, min of upper bounds];
// an empty intersection fails with ErrIncompatibleRanges.
func MergeCurves(inputs []*Curve, op MergeOperation) (*Curve, error) {
	return MergeCurvesWith(inputs, op, nil)
}

// MergeCurvesWith is MergeCurves with explicit sampling configuration.
func MergeCurvesWith(inputs []*Curve, op MergeOperation, cfg *MergeConfig) (*Curve, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no curves to merge", ErrEmptyGeometry)
	}
	for i, c := range inputs {
		if c == nil || c.Empty() {
			return nil, fmt.Errorf("%w: merge input %d", ErrEmptyGeometry, i)
		}
	}
	if len(inputs) == 1 {
		return inputs[0].clone(), nil
	}

	conf := cfg.withDefaults(defaultCurveMergeSteps)

	lo, hi := inputs[0].XRange()
	for _, c := range inputs[1:] {
		cLo, cHi := c.XRange()
		if cLo.GreaterThan(lo) {
			lo = cLo
		}
		if cHi.LessThan(hi) {
			hi = cHi
		}
	}
	if lo.GreaterThanOrEqual(hi) {
		return nil, fmt.Errorf("%w: x ranges meet at best in a single point (lo=%s, hi=%s)",
			ErrIncompatibleRanges, lo, hi)
	}

	step := hi.Sub(lo).Div(decimal.NewFromInt(int64(conf.Steps)))
	coords := make([]decimal.Decimal, conf.Steps+1)
	for i := range coords {
		x := lo.Add(step.Mul(decimal.NewFromInt(int64(i))))
		if i == conf.Steps {
			x = hi
		}
		coords[i] = x
	}

	eval := func(x decimal.Decimal) (Point2D, error) {
		p, err := inputs[0].Interpolate(x, conf.Interpolation)
		if err != nil {
			return Point2D{}, fmt.Errorf("sample at x=%s: %w", x, err)
		}
		acc := p.Y
		for _, c := range inputs[1:] {
			q, err := c.Interpolate(x, conf.Interpolation)
			if err != nil {
				return Point2D{}, fmt.Errorf("sample at x=%s: %w", x, err)
			}
			acc, err = op.apply(acc, q.Y)
			if err != nil {
				return Point2D{}, fmt.Errorf("sample at x=%s: %w", x, err)
			}
		}
		return Point2D{X: x, Y: acc}, nil
	}

	results := make([]Point2D, len(coords))
	if err := forEachSample(len(coords), conf.Parallel, func(i int) error {
		p, err := eval(coords[i])
		if err != nil {
			return err
		}
		results[i] = p
		return nil
	}); err != nil {
		return nil, err
	}
	return NewCurve(results...), nil
}

// MergeWith combines the curve with another one, the two-argument
// convenience form of [MergeCurves].
func (c *Curve) MergeWith(other *Curve, op MergeOperation) (*Curve, error) {
	return MergeCurves([]*Curve{c, other}, op)
}

// MergeSurfaces combines the input surfaces into one by sampling the
// intersection of both axis ranges on a rectangular grid and folding the
// interpolated z values with op. A single input is cloned without
// computation.
func MergeSurfaces(inputs []*Surface, op MergeOperation) (*Surface, error) {
	return MergeSurfacesWith(inputs, op, nil)
}

// MergeSurfacesWith is MergeSurfaces with explicit sampling configuration.
func MergeSurfacesWith(inputs []*Surface, op MergeOperation, cfg *MergeConfig) (*Surface, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: no surfaces to merge", ErrEmptyGeometry)
	}
	for i, s := range inputs {
		if s == nil || s.Empty() {
			return nil, fmt.Errorf("%w: merge input %d", ErrEmptyGeometry, i)
		}
	}
	if len(inputs) == 1 {
		return inputs[0].clone(), nil
	}

	conf := cfg.withDefaults(defaultSurfaceMergeSteps)

	loX, hiX := inputs[0].XRange()
	loY, hiY := inputs[0].YRange()
	for _, s := range inputs[1:] {
		sLoX, sHiX := s.XRange()
		sLoY, sHiY := s.YRange()
		if sLoX.GreaterThan(loX) {
			loX = sLoX
		}
		if sHiX.LessThan(hiX) {
			hiX = sHiX
		}
		if sLoY.GreaterThan(loY) {
			loY = sLoY
		}
		if sHiY.LessThan(hiY) {
			hiY = sHiY
		}
	}
	if loX.GreaterThanOrEqual(hiX) || loY.GreaterThanOrEqual(hiY) {
		return nil, fmt.Errorf("%w: x overlap [%s, %s], y overlap [%s, %s]",
			ErrIncompatibleRanges, loX, hiX, loY, hiY)
	}

	steps := decimal.NewFromInt(int64(conf.Steps))
	xStep := hiX.Sub(loX).Div(steps)
	yStep := hiY.Sub(loY).Div(steps)

	coords := make([]Point2D, 0, (conf.Steps+1)*(conf.Steps+1))
	for xi := 0; xi <= conf.Steps; xi++ {
		x := loX.Add(xStep.Mul(decimal.NewFromInt(int64(xi))))
		if xi == conf.Steps {
			x = hiX
		}
		for yi := 0; yi <= conf.Steps; yi++ {
			y := loY.Add(yStep.Mul(decimal.NewFromInt(int64(yi))))
			if yi == conf.Steps {
				y = hiY
			}
			coords = append(coords, Point2D{X: x, Y: y})
		}
	}

	eval := func(q Point2D) (Point3D, error) {
		p, err := inputs[0].Interpolate(q, conf.Interpolation)
		if err != nil {
			return Point3D{}, fmt.Errorf("sample at %s: %w", q, err)
		}
		acc := p.Z
		for _, s := range inputs[1:] {
			r, err := s.Interpolate(q, conf.Interpolation)
			if err != nil {
				return Point3D{}, fmt.Errorf("sample at %s: %w", q, err)
			}
			acc, err = op.apply(acc, r.Z)
			if err != nil {
				return Point3D{}, fmt.Errorf("sample at %s: %w", q, err)
			}
		}
		return Point3D{X: q.X, Y: q.Y, Z: acc}, nil
	}

	results := make([]Point3D, len(coords))
	if err := forEachSample(len(coords), conf.Parallel, func(i int) error {
		p, err := eval(coords[i])
		if err != nil {
			return err
		}
		results[i] = p
		return nil
	}); err != nil {
		return nil, err
	}
	return NewSurface(results...), nil
}

// MergeWith combines the surface with another one, the two-argument
// convenience form of [MergeSurfaces].
func (s *Surface) MergeWith(other *Surface, op MergeOperation) (*Surface, error) {
	return MergeSurfaces([]*Surface{s, other}, op)
}

// forEachSample runs fn for every sample index. When parallel is set, the
// indexes are distributed over a bounded worker pool; each sample is
// independent, and the first error wins. Workers write to disjoint result
// slots, so no locking is needed beyond the WaitGroup.
func forEachSample(n int, parallel bool, fn func(i int) error) error {
	if !parallel || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}

	// Pre-filling the buffered index channel lets workers bail out on the
	// first error without blocking a producer.
	indexes := make(chan int, n)
	for i := 0; i < n; i++ {
		indexes <- i
	}
	close(indexes)

	var wg sync.WaitGroup
	errChan := make(chan error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := fn(i); err != nil {
					errChan <- err
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}
	return nil
}
