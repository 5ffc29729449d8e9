package curve

import (
	"math"

	"github.com/parafovea/fovea-sub006/internal/track"
)

const (
	// solveIterations bounds the Newton-Raphson refinement.
	solveIterations = 10
	// solveTolerance is both the convergence target and the derivative
	// guard below which iteration stops early.
	solveTolerance = 1e-4
)

// Bezier is a CSS-style cubic-Bezier easing curve. The endpoints are fixed
// at (0,0) and (1,1); P1 and P2 shape the curve. The X axis is time
// progress, the Y axis the interpolation weight.
type Bezier struct {
	P1 track.ControlPoint
	P2 track.ControlPoint
}

func (b Bezier) Evaluate(start, end, t float64) float64 {
	if t <= 0 {
		return start
	}
	if t >= 1 {
		return end
	}
	u := SolveParameter(t, b.P1.X, b.P2.X)
	w := CubicAxis(u, b.P1.Y, b.P2.Y)
	return start + (end-start)*w
}

// CubicAxis evaluates one axis of the cubic at parameter u, with the fixed
// endpoint coefficients 0 and 1: 3(1-u)^2*u*c1 + 3(1-u)*u^2*c2 + u^3.
func CubicAxis(u, c1, c2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*c1 + 3*inv*u*u*c2 + u*u*u
}

// cubicAxisDeriv is the derivative of CubicAxis with respect to u.
func cubicAxisDeriv(u, c1, c2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*c1 + 6*inv*u*(c2-c1) + 3*u*u*(1-c2)
}

// SolveParameter inverts x(u) = t via Newton-Raphson, starting from u = t.
// The parameter is clamped to [0,1] after every step. Near-zero derivatives
// end the iteration early with the current estimate rather than dividing
// through.
func SolveParameter(t, p1x, p2x float64) float64 {
	u := t
	for i := 0; i < solveIterations; i++ {
		x := CubicAxis(u, p1x, p2x)
		if math.Abs(x-t) < solveTolerance {
			break
		}
		d := cubicAxisDeriv(u, p1x, p2x)
		if math.Abs(d) < solveTolerance {
			break
		}
		u = clamp01(u - (x-t)/d)
	}
	return u
}
