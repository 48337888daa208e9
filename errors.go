package numgeom

import (
	"errors"
	"fmt"
)

// Sentinel errors. Functions in this package return errors that wrap exactly
// one of these; use [errors.Is] to match them.
var (
	// ErrDerivativeTooSmall is returned when a 1D Newton step would divide by
	// a derivative whose magnitude is below the parametric tolerance.
	ErrDerivativeTooSmall = errors.New("numgeom: derivative too small")

	// ErrSingularJacobian is returned when the determinant of a 2D Newton
	// step's Jacobian is below the parametric tolerance.
	ErrSingularJacobian = errors.New("numgeom: singular Jacobian")

	// ErrDegeneratePointSet is returned when the points given to a fit are
	// collinear or otherwise numerically degenerate.
	ErrDegeneratePointSet = errors.New("numgeom: degenerate point set")

	// ErrInsufficientPoints is returned when a fit is given fewer points than
	// it needs.
	ErrInsufficientPoints = errors.New("numgeom: insufficient points")

	// ErrNegativeRadiusSquared is returned when a circle fit produces a
	// squared radius that is negative by more than the parametric tolerance.
	ErrNegativeRadiusSquared = errors.New("numgeom: negative squared radius")

	// ErrNonConvergence is never returned by the solvers themselves, which
	// report non-convergence through [ConvergenceInfo]. It is returned by
	// [ConvergenceInfo.Err] for callers that want to treat it as fatal.
	ErrNonConvergence = errors.New("numgeom: iteration did not converge")

	// ErrNoSignChange is returned by [SolveBracketed] when the function has
	// the same sign at both ends of the bracket.
	ErrNoSignChange = errors.New("numgeom: no sign change in bracket")

	// ErrInvalidTolerance is returned when a tolerance isn't positive and
	// finite.
	ErrInvalidTolerance = errors.New("numgeom: invalid tolerance")

	// ErrInvalidConfig is returned by [LoadConfig] for malformed or invalid
	// configuration documents.
	ErrInvalidConfig = errors.New("numgeom: invalid configuration")
)

// SolveError describes a hard failure of an iterative solver.
type SolveError struct {
	// Kind is one of the sentinel errors.
	Kind error
	// Iteration is the 1-based iteration at which the solver failed.
	Iteration int
	// X is the iterate at the time of failure. For 1D solves, only X[0] is
	// used.
	X [2]float64
	// Value is the offending quantity, such as the derivative or the
	// determinant of the Jacobian.
	Value float64
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%s at iteration %d (x = %g, value = %g)", e.Kind, e.Iteration, e.X, e.Value)
}

func (e *SolveError) Unwrap() error {
	return e.Kind
}

// FitError describes why a least-squares fit failed.
type FitError struct {
	// Kind is one of the sentinel errors.
	Kind error
	// Points is the number of points that were passed to the fit.
	Points int
	// Value is the offending quantity, such as the determinant of the normal
	// equations or the squared radius. It is zero for ErrInsufficientPoints.
	Value float64
}

func (e *FitError) Error() string {
	if errors.Is(e.Kind, ErrInsufficientPoints) {
		return fmt.Sprintf("%s: got %d", e.Kind, e.Points)
	}
	return fmt.Sprintf("%s (%d points, value = %g)", e.Kind, e.Points, e.Value)
}

func (e *FitError) Unwrap() error {
	return e.Kind
}
