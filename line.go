package numgeom

import "math"

// Line represents a line segment from P0 (t = 0) to P1 (t = 1). As an
// [Evaluator] it extends to infinity in both directions.
type Line struct {
	P0 Point
	P1 Point
}

// Eval implements Evaluator.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Direction returns the vector from P0 to P1.
func (l Line) Direction() Vec2 {
	return l.P1.Sub(l.P0)
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It returns false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.Direction()
	cd := o.Direction()
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// LineIntersection is an intersection of a curve with a line segment.
type LineIntersection struct {
	// LineT is the parameter on the line segment, in [0, 1].
	LineT float64
	// SegmentT is the parameter on the other curve.
	SegmentT float64
}

// IntersectLine intersects two line segments. Segments closer to parallel
// than the parametric tolerance, measured as the cross product of their
// directions, don't intersect.
func (l Line) IntersectLine(o Line, tol Tolerance) ([1]LineIntersection, int) {
	eps := tol.Parametric
	d := o.Direction()
	det := d.Cross(l.Direction())
	if math.Abs(det) < eps {
		return [1]LineIntersection{}, 0
	}
	// t is the position on l, u the position on o.
	t := d.Cross(o.P0.Sub(l.P0)) / det
	if t < -eps || t > 1+eps {
		return [1]LineIntersection{}, 0
	}
	u := l.P0.Sub(o.P0).Cross(l.Direction()) / det
	if u < 0 || u > 1 {
		return [1]LineIntersection{}, 0
	}
	return [1]LineIntersection{{LineT: u, SegmentT: t}}, 1
}
