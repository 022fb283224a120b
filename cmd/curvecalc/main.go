// Command curvecalc evaluates and combines decimal point curves from the
// command line.
//
// Examples:
//
//	curvecalc -points "2:4,5:10,8:12,11:9" -at 3 -algorithm linear
//	curvecalc -points "0:1,5:2,10:3" -merge "0:10,10:20" -op add -steps 10
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/shopspring/decimal"

	curves "github.com/quantfold/go-curves"
)

func main() {
	var (
		pointsArg = flag.String("points", "", "Curve points as x:y pairs separated by commas")
		atArg     = flag.String("at", "", "Coordinate to interpolate at")
		algoArg   = flag.String("algorithm", "linear", "Interpolation algorithm: linear, bilinear, cubic, spline")
		mergeArg  = flag.String("merge", "", "Second curve (x:y pairs) to merge with the first")
		opArg     = flag.String("op", "add", "Merge operation: add, subtract, multiply, divide, max, min")
		stepsArg  = flag.Int("steps", 0, "Merge sample steps (0 uses the default)")
		parallel  = flag.Bool("parallel", false, "Evaluate merge samples in parallel")
	)
	flag.Parse()

	if *pointsArg == "" {
		log.Fatal("-points is required")
	}

	curve, err := parseCurve(*pointsArg)
	if err != nil {
		log.Fatalf("parsing -points: %v", err)
	}

	algo, err := curves.ParseInterpolationType(*algoArg)
	if err != nil {
		log.Fatalf("parsing -algorithm: %v", err)
	}

	switch {
	case *mergeArg != "":
		other, err := parseCurve(*mergeArg)
		if err != nil {
			log.Fatalf("parsing -merge: %v", err)
		}
		op, err := curves.ParseMergeOperation(*opArg)
		if err != nil {
			log.Fatalf("parsing -op: %v", err)
		}

		merged, err := curves.MergeCurvesWith(
			[]*curves.Curve{curve, other},
			op,
			&curves.MergeConfig{Steps: *stepsArg, Interpolation: algo, Parallel: *parallel},
		)
		if err != nil {
			log.Fatalf("merging: %v", err)
		}
		printCurve(merged)

	case *atArg != "":
		q, err := decimal.NewFromString(*atArg)
		if err != nil {
			log.Fatalf("parsing -at: %v", err)
		}
		p, err := curve.Interpolate(q, algo)
		if err != nil {
			log.Fatalf("interpolating: %v", err)
		}
		fmt.Printf("%s -> %s (%s)\n", q, p.Y, algo)

	default:
		log.Fatal("either -at or -merge is required")
	}
}

// parseCurve converts "x:y,x:y,..." into a curve.
func parseCurve(s string) (*curves.Curve, error) {
	var pts []curves.Point2D
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xy := strings.SplitN(pair, ":", 2)
		if len(xy) != 2 {
			return nil, fmt.Errorf("malformed pair %q, want x:y", pair)
		}
		x, err := decimal.NewFromString(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("bad x in %q: %w", pair, err)
		}
		y, err := decimal.NewFromString(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("bad y in %q: %w", pair, err)
		}
		pts = append(pts, curves.NewPoint2D(x, y))
	}
	return curves.ConstructCurve(curves.CurveData{Points: pts})
}

func printCurve(c *curves.Curve) {
	for _, p := range c.Points() {
		fmt.Printf("%s,%s\n", p.X, p.Y)
	}
}
