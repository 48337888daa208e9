package numgeom

import (
	"fmt"
	"math"
)

// DefaultMaxIterations is the iteration cap used by [NewtonSolver] when
// MaxIterations is zero.
const DefaultMaxIterations = 100

// ConvergenceInfo records how an iterative solve went.
type ConvergenceInfo struct {
	// Iterations is the number of completed iterations.
	Iterations int
	// Residual is the magnitude of the function value at the last iterate
	// that a step was taken from.
	Residual float64
	// Converged reports whether both Residual and FinalError dropped below
	// the parametric tolerance.
	Converged bool
	// FinalError is the magnitude of the last step.
	FinalError float64
}

// Err returns nil if the solve converged and an error wrapping
// [ErrNonConvergence] otherwise.
func (info ConvergenceInfo) Err() error {
	if info.Converged {
		return nil
	}
	return fmt.Errorf("%w after %d iterations (residual = %g, step = %g)",
		ErrNonConvergence, info.Iterations, info.Residual, info.FinalError)
}

// System2D is a system of two equations in two unknowns. It returns the values
// of both functions at (x, y), as well as their Jacobian.
type System2D func(x, y float64) (f1, f2 float64, j Jacobian)

// NewtonSolver finds roots using the Newton–Raphson method.
//
// The zero value is not useful; use [NewNewtonSolver] or set Tolerance.
type NewtonSolver struct {
	Tolerance Tolerance
	// MaxIterations caps the number of iterations. Zero means
	// [DefaultMaxIterations].
	MaxIterations int
}

// NewNewtonSolver returns a solver using the given tolerances and
// [DefaultMaxIterations].
func NewNewtonSolver(tol Tolerance) NewtonSolver {
	return NewtonSolver{
		Tolerance:     tol,
		MaxIterations: DefaultMaxIterations,
	}
}

func (s NewtonSolver) maxIterations() int {
	if s.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return s.MaxIterations
}

// Solve1D finds a root of f, starting at x0. df must be the derivative of f.
//
// If the magnitude of the derivative drops below the parametric tolerance, no
// step can be taken and Solve1D returns a [*SolveError] wrapping
// [ErrDerivativeTooSmall].
//
// Reaching the iteration cap is not an error. In that case the last iterate is
// returned and the Converged field of the returned [ConvergenceInfo] is false.
// Callers that can't make use of an approximate root should check
// [ConvergenceInfo.Err].
func (s NewtonSolver) Solve1D(f, df func(float64) float64, x0 float64) (float64, ConvergenceInfo, error) {
	eps := s.Tolerance.Parametric
	x := x0
	var info ConvergenceInfo
	for i := range s.maxIterations() {
		fx := f(x)
		dfx := df(x)
		if s.Tolerance.IsZeroParam(dfx) {
			return x, info, &SolveError{
				Kind:      ErrDerivativeTooSmall,
				Iteration: i + 1,
				X:         [2]float64{x},
				Value:     dfx,
			}
		}
		dx := fx / dfx
		x -= dx

		info.Iterations = i + 1
		info.Residual = math.Abs(fx)
		info.FinalError = math.Abs(dx)
		if info.Residual < eps && info.FinalError < eps {
			info.Converged = true
			break
		}
	}
	return x, info, nil
}

// Solve2D finds a root of sys, starting at x0.
//
// Each iteration solves the linearized system with the explicit inverse of
// the 2×2 Jacobian. If the magnitude of its determinant drops below the
// parametric tolerance, Solve2D returns a [*SolveError] wrapping
// [ErrSingularJacobian], with the determinant as its Value.
//
// As with [NewtonSolver.Solve1D], reaching the iteration cap is reported via
// [ConvergenceInfo] and not as an error.
func (s NewtonSolver) Solve2D(sys System2D, x0 [2]float64) ([2]float64, ConvergenceInfo, error) {
	eps := s.Tolerance.Parametric
	x, y := x0[0], x0[1]
	var info ConvergenceInfo
	for i := range s.maxIterations() {
		f1, f2, j := sys(x, y)
		det := j.Det()
		if s.Tolerance.IsZeroParam(det) {
			return [2]float64{x, y}, info, &SolveError{
				Kind:      ErrSingularJacobian,
				Iteration: i + 1,
				X:         [2]float64{x, y},
				Value:     det,
			}
		}
		dx, dy := j.solveWithDet(f1, f2, det)
		x -= dx
		y -= dy

		info.Iterations = i + 1
		info.Residual = math.Hypot(f1, f2)
		info.FinalError = math.Hypot(dx, dy)
		if info.Residual < eps && info.FinalError < eps {
			info.Converged = true
			break
		}
	}
	return [2]float64{x, y}, info, nil
}

// NumericDerivative returns a forward-difference approximation of the
// derivative of f with step h, for use with [NewtonSolver.Solve1D] when no
// analytic derivative is available. A non-positive h selects
// [DefaultDifferenceStep].
func NumericDerivative(f func(float64) float64, h float64) func(float64) float64 {
	if !(h > 0) {
		h = DefaultDifferenceStep
	}
	return func(x float64) float64 {
		return (f(x+h) - f(x)) / h
	}
}
