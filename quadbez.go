package numgeom

// QuadBez is a quadratic Bézier curve.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval implements Evaluator.
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// IntersectLine intersects the curve, for t ∈ [0, 1], with a line segment.
func (q QuadBez) IntersectLine(line Line, tol Tolerance) ([2]LineIntersection, int) {
	eps := tol.Parametric
	d := line.Direction()

	// x and y are quadratic polynomials in t. Plugging them into the
	// implicit equation of the line gives a signed distance, which we solve
	// for t.
	px0, px1, px2 := quadBezCoefficients(q.P0.X, q.P1.X, q.P2.X)
	py0, py1, py2 := quadBezCoefficients(q.P0.Y, q.P1.Y, q.P2.Y)
	c0 := d.Y*(px0-line.P0.X) - d.X*(py0-line.P0.Y)
	c1 := d.Y*px1 - d.X*py1
	c2 := d.Y*px2 - d.X*py2
	invLen2 := 1.0 / d.Hypot2()

	ts, n := SolveQuadratic(c0, c1, c2)
	var ret [2]LineIntersection
	var retN int
	for _, t := range ts[:n] {
		if t < -eps || t > 1+eps {
			continue
		}
		x := px0 + t*px1 + t*t*px2
		y := py0 + t*py1 + t*t*py2
		u := ((x-line.P0.X)*d.X + (y-line.P0.Y)*d.Y) * invLen2
		if u < 0 || u > 1 {
			continue
		}
		ret[retN] = LineIntersection{LineT: u, SegmentT: t}
		retN++
	}
	return ret, retN
}

// quadBezCoefficients returns the power basis coefficients, lowest degree
// first, of a one-dimensional quadratic Bézier.
func quadBezCoefficients(x0, x1, x2 float64) (_, _, _ float64) {
	return x0, 2.0*x1 - 2.0*x0, x2 - 2.0*x1 + x0
}
