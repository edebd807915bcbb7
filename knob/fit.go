package knob

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Point is a knob position and the frequency it should produce.
type Point struct {
	X, Hz float64
}

// DefaultPoints are the hand-picked positions the default Segments were
// fitted through, one group per segment.
var DefaultPoints = [][]Point{
	{{0.0, 1.0 / 300}, {0.1, 1.0 / 120}, {0.2, 1.0 / 40}, {0.3, 1.0 / 20}},
	{{0.3, 1.0 / 20}, {0.5, 1.0 / 10}, {0.6, 1.0 / 5}, {0.7, 1.0 / 3}},
	{{0.7, 1.0 / 3}, {0.8, 0.8}, {0.9, 4}, {1, 20}},
}

// ErrTooFewPoints is returned by Fit when it can't pin down all three
// parameters.
var ErrTooFewPoints = errors.New("need at least 3 points to fit a segment")

// Fit finds the Segment minimising the squared error through points. Hi is
// set to the largest X. Points must have non-negative X.
func Fit(points []Point) (Segment, error) {
	if len(points) < 3 {
		return Segment{}, ErrTooFewPoints
	}
	lo, hi := points[0], points[0]
	for _, p := range points {
		if p.X < 0 {
			return Segment{}, fmt.Errorf("negative knob position %v", p.X)
		}
		if p.X < lo.X {
			lo = p
		}
		if p.X > hi.X {
			hi = p
		}
	}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			s := Segment{A: x[0], B: x[1], C: x[2]}
			var sse float64
			for _, p := range points {
				d := s.Eval(p.X) - p.Hz
				sse += d * d
			}
			if math.IsNaN(sse) {
				return math.Inf(1)
			}
			return sse
		},
	}
	// start from a straight line between the two ends.
	init := []float64{lo.Hz, hi.Hz - lo.Hz, 1}
	result, err := optimize.Minimize(problem, init, nil, &optimize.NelderMead{})
	if err != nil {
		return Segment{}, fmt.Errorf("fitting %d points: %w", len(points), err)
	}
	if math.IsInf(result.F, 0) {
		return Segment{}, fmt.Errorf("fitting %d points: no finite solution", len(points))
	}
	return Segment{Hi: hi.X, A: result.X[0], B: result.X[1], C: result.X[2]}, nil
}
