package numgeom

// CubicBez is a cubic Bézier curve.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval implements Evaluator.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the derivative of the curve at t.
func (cb CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := cb.P1.Sub(cb.P0).Mul(3 * mt * mt)
	d1 := cb.P2.Sub(cb.P1).Mul(6 * mt * t)
	d2 := cb.P3.Sub(cb.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// IntersectLine intersects the curve, for t ∈ [0, 1], with a line segment.
//
// x(t) and y(t) are expanded into cubic polynomials and substituted into the
// implicit equation of the line, and the resulting cubic is solved with
// [SolveCubic]. Parameters within the parametric tolerance outside of [0, 1]
// are accepted.
func (cb CubicBez) IntersectLine(l Line, tol Tolerance) ([3]LineIntersection, int) {
	eps := tol.Parametric
	d := l.Direction()
	px := cubicCoefficients(cb.P0.X, cb.P1.X, cb.P2.X, cb.P3.X)
	py := cubicCoefficients(cb.P0.Y, cb.P1.Y, cb.P2.Y, cb.P3.Y)
	var c [4]float64
	for i := range c {
		c[i] = d.Y*px[i] - d.X*py[i]
	}
	c[0] -= d.Y*l.P0.X - d.X*l.P0.Y
	invLen2 := 1.0 / d.Hypot2()

	ts, n := SolveCubic(c[0], c[1], c[2], c[3])
	var ret [3]LineIntersection
	var retN int
	for _, t := range ts[:n] {
		if t < -eps || t > 1+eps {
			continue
		}
		p := cb.Eval(t)
		u := p.Sub(l.P0).Dot(d) * invLen2
		if u < 0 || u > 1 {
			continue
		}
		ret[retN] = LineIntersection{LineT: u, SegmentT: t}
		retN++
	}
	return ret, retN
}

// cubicCoefficients returns the power basis coefficients, lowest degree
// first, of a one-dimensional cubic Bézier.
func cubicCoefficients(x0, x1, x2, x3 float64) [4]float64 {
	return [4]float64{
		x0,
		3*x1 - 3*x0,
		3*x2 - 6*x1 + 3*x0,
		x3 - 3*x2 + 3*x1 - x0,
	}
}
