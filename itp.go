package numgeom

import (
	"fmt"
	"math"
)

// SolveITP finds a zero crossing of f in the bracket [a, b] using the [ITP
// method] of Oliveira and Takahashi.
//
// ya and yb must be f(a) and f(b) and are expected to satisfy ya < 0 < yb.
// They are passed in because callers usually have them already.
//
// epsilon is the width of the final bracket. n0 trades secant steps against bisection: 0 never does worse
// than bisection, 1 lets the secant step engage more often on smooth
// functions. k1 is commonly 0.2 / (b − a). The k2 parameter of the paper is
// fixed at 2.
//
// For monotonic f the result is within epsilon of the crossing. If epsilon is
// finer than the spacing of floats near the crossing, the bracket stops
// shrinking and SolveITP returns the midpoint of the smallest bracket it
// reached after n0 + ⌈log₂((b − a)/epsilon)⌉ + 1 iterations.
//
// [ITP method]: https://en.wikipedia.org/wiki/ITP_Method
func SolveITP(
	f func(float64) float64,
	a float64,
	b float64,
	epsilon float64,
	n0 int,
	k1 float64,
	ya float64,
	yb float64,
) float64 {
	root, _, _ := solveITP(f, a, b, epsilon, n0, k1, ya, yb)
	return root
}

// solveITP is SolveITP that also reports the half-width of the final
// bracket and the number of function evaluations.
func solveITP(
	f func(float64) float64,
	a, b, epsilon float64,
	n0 int,
	k1 float64,
	ya, yb float64,
) (root, halfWidth float64, iters int) {
	nHalf := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0))
	nMax := n0 + nHalf
	// 2^nMax overflows any integer type for wide brackets.
	r0 := math.Ldexp(epsilon, nMax)
	// In exact arithmetic ITP needs at most nMax iterations. The cap stops
	// the loop once rounding keeps the bracket from shrinking.
	maxIters := nMax + 2
	for b-a > 2*epsilon && iters < maxIters {
		iters++
		mid := 0.5 * (a + b)
		r := r0 - 0.5*(b-a)
		// Regula falsi.
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf
		// Truncation, with k2 = 2.
		delta := k1 * (b - a) * (b - a)
		xt := mid
		if delta <= math.Abs(mid-xf) {
			xt = xf + math.Copysign(delta, sigma)
		}
		// Projection onto the minmax interval.
		x := xt
		if math.Abs(xt-mid) > r {
			x = mid - math.Copysign(max(r, 0), sigma)
		}
		y := f(x)
		switch {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x, 0, iters
		}
		r0 *= 0.5
	}
	return 0.5 * (a + b), 0.5 * (b - a), iters
}

// SolveBracketed finds a root of f in [a, b], shrinking the bracket below the
// parametric tolerance. Unlike [NewtonSolver.Solve1D] it needs no derivative
// and never leaves the bracket, which makes it a useful retry when Newton
// fails with [ErrDerivativeTooSmall].
//
// The number of iterations is bounded by about log₂(|b − a|/tol.Parametric).
// If floats near the root are spaced wider than the tolerance, the bracket
// can't shrink far enough; the Converged field of the returned
// [ConvergenceInfo] is then false.
//
// f(a) and f(b) must have opposite signs, or one of them must be zero;
// otherwise SolveBracketed returns an error wrapping [ErrNoSignChange].
func SolveBracketed(f func(float64) float64, a, b float64, tol Tolerance) (float64, ConvergenceInfo, error) {
	if a > b {
		a, b = b, a
	}
	ya, yb := f(a), f(b)
	switch {
	case ya == 0:
		return a, ConvergenceInfo{Converged: true}, nil
	case yb == 0:
		return b, ConvergenceInfo{Converged: true}, nil
	case math.Signbit(ya) == math.Signbit(yb) || math.IsNaN(ya) || math.IsNaN(yb):
		return 0, ConvergenceInfo{}, fmt.Errorf("%w: f(%g) = %g, f(%g) = %g", ErrNoSignChange, a, ya, b, yb)
	}

	g := f
	if ya > 0 {
		// SolveITP wants an increasing crossing.
		g = func(x float64) float64 { return -f(x) }
		ya, yb = -ya, -yb
	}
	eps := tol.Parametric
	root, halfWidth, iters := solveITP(g, a, b, 0.5*eps, 1, 0.2/(b-a), ya, yb)
	info := ConvergenceInfo{
		Iterations: iters,
		Residual:   math.Abs(f(root)),
		FinalError: halfWidth,
	}
	// A steep f can leave the residual above eps even when the bracket
	// shrank below it.
	info.Converged = info.Residual < eps && info.FinalError < eps
	return root, info, nil
}
