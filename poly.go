package numgeom

import "math"

// SolveQuadratic returns the real roots of c0 + c1·x + c2·x² = 0 in ascending
// order. The second return value is the number of roots.
//
// When c2 is zero, or so small relative to the other coefficients that
// dividing by it overflows, the equation is solved as a linear one. If all
// coefficients are zero, every x is a solution and a single 0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	p := c1 / c2
	q := c0 / c2
	if c2 == 0 || math.IsInf(p, 0) || math.IsInf(q, 0) {
		root := -c0 / c1
		switch {
		case !math.IsInf(root, 0) && !math.IsNaN(root):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}

	disc := p*p - 4*q
	var r1 float64
	if math.IsInf(disc, 0) {
		// p² overflowed; x² + p·x ≈ 0 gives the large root.
		r1 = -p
	} else {
		if disc < 0 {
			return [2]float64{}, 0
		}
		if disc == 0 {
			return [2]float64{-0.5 * p}, 1
		}
		// Pick the sign that avoids cancellation, then get the other root
		// from Vieta's formula.
		r1 = -0.5 * (p + math.Copysign(math.Sqrt(disc), p))
	}
	r2 := q / r1
	if math.IsInf(r2, 0) || math.IsNaN(r2) {
		return [2]float64{r1}, 1
	}
	if r2 < r1 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}

// SolveCubic returns the real roots of c0 + c1·x + c2·x² + c3·x³ = 0. The
// second return value is the number of roots. Roots aren't sorted.
//
// A vanishing c3 degrades to [SolveQuadratic].
//
// This follows Jim Blinn's "How to Solve a Cubic Equation" as presented in
// [How to solve a cubic equation, revisited].
//
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	inv := 1.0 / c3
	b := c2 * (inv / 3)
	c := c1 * (inv / 3)
	d := c0 * inv
	if math.IsInf(b, 0) || math.IsInf(c, 0) || math.IsInf(d, 0) {
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}

	delta0 := math.FMA(-b, b, c)
	delta1 := math.FMA(-c, b, d)
	delta2 := b*d - c*c
	disc := 4*delta0*delta2 - delta1*delta1
	depressed := math.FMA(-2*b, delta0, delta1)

	switch {
	case disc < 0:
		// One real root.
		sq := math.Sqrt(-0.25 * disc)
		r := -0.5 * depressed
		t := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t - b}, 1
	case disc == 0:
		t := math.Copysign(math.Sqrt(-delta0), depressed)
		return [3]float64{t - b, -2*t - b}, 2
	default:
		// Three real roots, via the trigonometric method.
		theta := math.Atan2(math.Sqrt(disc), -depressed) / 3
		sin, cos := math.Sincos(theta)
		s3 := sin * math.Sqrt(3)
		scale := 2 * math.Sqrt(-delta0)
		return [3]float64{
			math.FMA(scale, cos, -b),
			math.FMA(scale, 0.5*(-cos+s3), -b),
			math.FMA(scale, 0.5*(-cos-s3), -b),
		}, 3
	}
}
