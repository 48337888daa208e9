package numgeom

import (
	"errors"
	"math"
	"testing"
)

func TestSolve1DQuadratic(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	f := func(x float64) float64 { return x*x - 4 }
	df := func(x float64) float64 { return 2 * x }

	root, info, err := s.Solve1D(f, df, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Converged {
		t.Fatalf("didn't converge: %+v", info)
	}
	if d := math.Abs(root - 2); d > 1e-6 {
		t.Errorf("got root %v, want 2", root)
	}
	if d := math.Abs(root - 2); d > s.Tolerance.Parametric*10 {
		t.Errorf("root %v is off by %g, more than 10 times the parametric tolerance", root, d)
	}
	if info.Residual >= s.Tolerance.Parametric || info.FinalError >= s.Tolerance.Parametric {
		t.Errorf("converged with residual %g and error %g", info.Residual, info.FinalError)
	}
	if info.Iterations < 1 || info.Iterations > DefaultMaxIterations {
		t.Errorf("unexpected iteration count %d", info.Iterations)
	}
	if err := info.Err(); err != nil {
		t.Errorf("Err() = %v for a converged solve", err)
	}
}

func TestSolve1DPolynomialRoots(t *testing.T) {
	// (x-1)(x+2)(x-3) = x³ - 2x² - 5x + 6
	f := func(x float64) float64 { return ((x-2)*x-5)*x + 6 }
	df := func(x float64) float64 { return (3*x-4)*x - 5 }
	s := NewNewtonSolver(StandardTolerance())
	for _, tc := range []struct{ x0, want float64 }{
		{0.8, 1},
		{-2.3, -2},
		{3.4, 3},
	} {
		root, info, err := s.Solve1D(f, df, tc.x0)
		if err != nil {
			t.Errorf("x0 = %g: %s", tc.x0, err)
			continue
		}
		if !info.Converged || math.Abs(root-tc.want) > 10*s.Tolerance.Parametric {
			t.Errorf("x0 = %g: got %v (%+v), want %v", tc.x0, root, info, tc.want)
		}
	}
}

func TestSolve1DZeroDerivative(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	calls := 0
	f := func(x float64) float64 { calls++; return x * x }
	df := func(x float64) float64 { return 0 }

	_, _, err := s.Solve1D(f, df, 1.0)
	if !errors.Is(err, ErrDerivativeTooSmall) {
		t.Fatalf("got error %v, want ErrDerivativeTooSmall", err)
	}
	var serr *SolveError
	if !errors.As(err, &serr) {
		t.Fatalf("error %T isn't a *SolveError", err)
	}
	if serr.Iteration != 1 {
		t.Errorf("failed at iteration %d, want 1", serr.Iteration)
	}
	if calls != 1 {
		t.Errorf("f was called %d times, want 1", calls)
	}
	if serr.X[0] != 1.0 || serr.Value != 0 {
		t.Errorf("unexpected error context %+v", serr)
	}
}

func TestSolve1DNaNDerivative(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	f := func(x float64) float64 { return x - 1 }
	df := func(x float64) float64 { return math.NaN() }

	x, _, err := s.Solve1D(f, df, 3)
	if !errors.Is(err, ErrDerivativeTooSmall) {
		t.Fatalf("got error %v, want ErrDerivativeTooSmall", err)
	}
	if x != 3 {
		t.Errorf("got x = %v, want the starting point 3", x)
	}
}

func TestSolve1DIterationCap(t *testing.T) {
	s := NewtonSolver{Tolerance: StandardTolerance(), MaxIterations: 2}
	f := func(x float64) float64 { return x*x - 4 }
	df := func(x float64) float64 { return 2 * x }

	root, info, err := s.Solve1D(f, df, 1.0)
	if err != nil {
		t.Fatalf("reaching the iteration cap must not be an error, got %v", err)
	}
	if info.Converged {
		t.Fatalf("converged within 2 iterations: %+v", info)
	}
	if info.Iterations != 2 {
		t.Errorf("got %d iterations, want 2", info.Iterations)
	}
	// x1 = 2.5, x2 = 2.05
	if math.Abs(root-2.05) > 1e-12 {
		t.Errorf("got last iterate %v, want 2.05", root)
	}
	if !errors.Is(info.Err(), ErrNonConvergence) {
		t.Errorf("Err() = %v, want ErrNonConvergence", info.Err())
	}
}

func TestSolve1DNumericDerivative(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	root, info, err := s.Solve1D(math.Cos, NumericDerivative(math.Cos, 0), 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Converged || math.Abs(root-math.Pi/2) > 1e-9 {
		t.Errorf("got %v (%+v), want π/2", root, info)
	}
}

// circleLineSystem is curve1(t) = (cos t, sin t) against curve2(t) = (1 − t, 0)
// with its analytic Jacobian.
func circleLineSystem(t1, t2 float64) (float64, float64, Jacobian) {
	s, c := math.Sincos(t1)
	return c - (1 - t2), s, Jacobian{
		{-s, 1},
		{c, 0},
	}
}

func TestSolve2DCircleLine(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	got, info, err := s.Solve2D(circleLineSystem, [2]float64{3.0, 1.9})
	if err != nil {
		t.Fatal(err)
	}
	if !info.Converged {
		t.Fatalf("didn't converge: %+v", info)
	}
	if math.Abs(got[0]-math.Pi) > 1e-9 || math.Abs(got[1]-2) > 1e-9 {
		t.Errorf("got %v, want (π, 2)", got)
	}
}

func TestSolve2DSingularJacobian(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	sys := func(x, y float64) (float64, float64, Jacobian) {
		// f1 = x + y - 1, f2 = 2x + 2y - 2: rank one everywhere.
		return x + y - 1, 2*x + 2*y - 2, Jacobian{{1, 1}, {2, 2}}
	}
	_, _, err := s.Solve2D(sys, [2]float64{0, 0})
	if !errors.Is(err, ErrSingularJacobian) {
		t.Fatalf("got error %v, want ErrSingularJacobian", err)
	}
	var serr *SolveError
	if !errors.As(err, &serr) {
		t.Fatalf("error %T isn't a *SolveError", err)
	}
	if serr.Value != 0 || serr.Iteration != 1 {
		t.Errorf("unexpected error context %+v", serr)
	}
}

func TestSolve2DDeterministic(t *testing.T) {
	s := NewNewtonSolver(StandardTolerance())
	a, ia, _ := s.Solve2D(circleLineSystem, [2]float64{2.5, 1.5})
	b, ib, _ := s.Solve2D(circleLineSystem, [2]float64{2.5, 1.5})
	diff(t, a, b)
	diff(t, ia, ib)
}

func TestJacobianSolve(t *testing.T) {
	j := Jacobian{{2, 1}, {1, 3}}
	det := j.Det()
	if det != 5 {
		t.Fatalf("got determinant %v, want 5", det)
	}
	// J·(1, 2) = (4, 7)
	dx, dy := j.solveWithDet(4, 7, det)
	if math.Abs(dx-1) > 1e-15 || math.Abs(dy-2) > 1e-15 {
		t.Errorf("got (%v, %v), want (1, 2)", dx, dy)
	}
}
