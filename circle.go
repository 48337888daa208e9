package numgeom

import "math"

// Circle is a circle in the plane. As an [Evaluator] it is parametrized by
// angle: t = 0 is the point to the right of the center, and t increases
// anticlockwise in a y-up coordinate system.
type Circle struct {
	Center Point
	Radius float64
}

// Eval implements Evaluator.
func (c Circle) Eval(t float64) Point {
	return c.Center.Translate(VecFromAngle(t).Mul(c.Radius))
}

// Angle returns the parameter of the point of the circle closest to pt,
// in [0, 2π).
func (c Circle) Angle(pt Point) float64 {
	th := pt.Sub(c.Center).Angle()
	if th < 0 {
		th += 2 * math.Pi
	}
	return th
}

// IntersectLine intersects the circle with a line segment. SegmentT of the
// results is the angle on the circle, as returned by [Circle.Angle]. A line
// that is tangent to the circle produces a single intersection.
func (c Circle) IntersectLine(l Line) ([2]LineIntersection, int) {
	d := l.Direction()
	w := l.P0.Sub(c.Center)
	roots, n := SolveQuadratic(w.Hypot2()-c.Radius*c.Radius, 2*d.Dot(w), d.Hypot2())
	var ret [2]LineIntersection
	var retN int
	for _, s := range roots[:n] {
		if s < 0 || s > 1 {
			continue
		}
		ret[retN] = LineIntersection{LineT: s, SegmentT: c.Angle(l.Eval(s))}
		retN++
	}
	return ret, retN
}
