package numgeom_test

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"honnef.co/go/numgeom"
)

// quartic evaluates f(x) = (x⁴ + x³ - 13x² - x) / 10
func quartic(x float64) float64 {
	return (x*x*x*x + x*x*x - 13*x*x - x) / 10
}

// quarticDeriv evaluates the derivative of [quartic], f'(x) = (4x³ + 3x² - 26x - 1) / 10
func quarticDeriv(x float64) float64 {
	return (4*x*x*x + 3*x*x - 26*x - 1) / 10
}

func ExampleNewtonSolver_Solve1D() {
	s := numgeom.NewNewtonSolver(numgeom.StandardTolerance())
	for _, x0 := range []float64{-4, 3} {
		x, info, err := s.Solve1D(quartic, quarticDeriv, x0)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("x = %.6f, converged: %t\n", x, info.Converged)
	}

	// The derivative vanishes at the local maximum near x = -0.038.
	_, _, err := s.Solve1D(quartic, quarticDeriv, -0.03830091779966274)
	fmt.Println(errors.Is(err, numgeom.ErrDerivativeTooSmall))

	// Output:
	// x = -4.106450, converged: true
	// x = 3.182957, converged: true
	// true
}

func ExampleSolveBracketed() {
	x, info, err := numgeom.SolveBracketed(quartic, 2, 4, numgeom.StandardTolerance())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("x = %.6f, converged: %t\n", x, info.Converged)

	_, _, err = numgeom.SolveBracketed(quartic, 1, 2, numgeom.StandardTolerance())
	fmt.Println(err)

	// Output:
	// x = 3.182957, converged: true
	// numgeom: no sign change in bracket: f(1) = -1.2, f(2) = -3
}

func ExampleFindIntersections() {
	c1 := numgeom.Circle{Center: numgeom.Pt(0, 0), Radius: 1}
	c2 := numgeom.Circle{Center: numgeom.Pt(1, 0), Radius: 1}
	r := [2]float64{0, 2 * math.Pi}

	// The default lattice has 20 samples per curve, so the unit circles'
	// samples are up to about 0.3 apart. With the standard linear tolerance
	// of 1e-6, a screen factor of 5e5 screens with a distance of 0.5.
	opts := &numgeom.IntersectionOptions{ScreenFactor: 5e5}
	for _, x := range numgeom.FindIntersections(c1, c2, r, r, numgeom.StandardTolerance(), opts) {
		fmt.Printf("(%.4f, %.4f) at t1 = %.4f\n", x.Point.X, x.Point.Y, x.Parameter)
	}

	// Output:
	// (0.5000, 0.8660) at t1 = 1.0472
	// (0.5000, -0.8660) at t1 = 5.2360
}

func ExampleFitCircle() {
	pts := []numgeom.Point{
		numgeom.Pt(4, 2),
		numgeom.Pt(1, 5),
		numgeom.Pt(-2, 2),
		numgeom.Pt(1, -1),
	}
	c, err := numgeom.FitCircle(pts, numgeom.StandardTolerance())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("center (%.3f, %.3f), radius %.3f\n", c.Center.X, c.Center.Y, c.Radius)

	// Output:
	// center (1.000, 2.000), radius 3.000
}

func ExampleFitLine() {
	pts := []numgeom.Point{numgeom.Pt(5, 0), numgeom.Pt(5, 1), numgeom.Pt(5, 2)}
	p, dir, err := numgeom.FitLine(pts, numgeom.StandardTolerance())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p, dir)

	// Output:
	// (5, 1) ⟨0, 1⟩
}

func ExampleLoadConfig() {
	const doc = `
tolerance:
  preset: high_precision
newton:
  max_iterations: 20
`
	cfg, err := numgeom.LoadConfig(strings.NewReader(doc))
	if err != nil {
		log.Fatal(err)
	}
	s, err := cfg.NewtonSolver()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(s.Tolerance.Linear, s.MaxIterations)

	// Output:
	// 1e-09 20
}
