package numgeom

import (
	"log/slog"
	"math"
)

// FitCircle fits a circle to at least three points, minimizing the algebraic
// distance (Kåsa's method).
//
// The circle is expressed as x² + y² + D·x + E·y + F = 0, and the normal
// equations of the least-squares problem for D, E and F are solved with
// Cramer's rule. For points that lie exactly on a circle, the fit is exact up
// to rounding.
//
// FitCircle returns a [*FitError] wrapping
//   - [ErrInsufficientPoints] for fewer than three points,
//   - [ErrDegeneratePointSet] if the determinant of the normal equations is
//     below the parametric tolerance, as is the case for collinear points,
//   - [ErrNegativeRadiusSquared] if the squared radius is negative by more
//     than the parametric tolerance.
//
// Slightly negative squared radii are treated as zero.
func FitCircle(points []Point, tol Tolerance) (Circle, error) {
	n := len(points)
	if n < 3 {
		return Circle{}, &FitError{Kind: ErrInsufficientPoints, Points: n}
	}

	var sx, sy, sxx, syy, sxy, sxxx, syyy, sxyy, sxxy float64
	for _, p := range points {
		x, y := p.X, p.Y
		xx, yy := x*x, y*y
		sx += x
		sy += y
		sxx += xx
		syy += yy
		sxy += x * y
		sxxx += xx * x
		syyy += yy * y
		sxyy += x * yy
		sxxy += xx * y
	}

	m := mat3{
		{sxx, sxy, sx},
		{sxy, syy, sy},
		{sx, sy, float64(n)},
	}
	rhs := [3]float64{
		-(sxxx + sxyy),
		-(sxxy + syyy),
		-(sxx + syy),
	}
	det := m.det()
	if tol.IsZeroParam(det) {
		return Circle{}, &FitError{Kind: ErrDegeneratePointSet, Points: n, Value: det}
	}
	def := m.cramer(rhs, det)

	center := Pt(-def[0]/2, -def[1]/2)
	r, err := circleRadius(center.X*center.X+center.Y*center.Y-def[2], n, tol)
	if err != nil {
		return Circle{}, err
	}
	return Circle{Center: center, Radius: r}, nil
}

// circleRadius returns the square root of r2, treating values that are
// negative by no more than the parametric tolerance as zero. n is the number
// of fitted points, for the error.
func circleRadius(r2 float64, n int, tol Tolerance) (float64, error) {
	if r2 < -tol.Parametric {
		return 0, &FitError{Kind: ErrNegativeRadiusSquared, Points: n, Value: r2}
	}
	return math.Sqrt(max(r2, 0)), nil
}

// FitLine fits a line to at least two points using ordinary least squares of
// y on x. It returns a point on the line and the line's unit direction.
//
// Normally, the point is the line's intercept with the y axis and the
// direction has a positive x component. When the x values barely vary, so
// that the slope can't be determined, FitLine instead returns the centroid of
// the points and the direction ⟨0, 1⟩. This is not treated as an error.
//
// FitLine returns a [*FitError] wrapping [ErrInsufficientPoints] for fewer
// than two points.
func FitLine(points []Point, tol Tolerance) (Point, Vec2, error) {
	n := len(points)
	if n < 2 {
		return Point{}, Vec2{}, &FitError{Kind: ErrInsufficientPoints, Points: n}
	}

	var sx, sy, sxy, sxx float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
		sxy += p.X * p.Y
		sxx += p.X * p.X
	}
	nf := float64(n)
	den := nf*sxx - sx*sx
	if !(den >= tol.Parametric) {
		c := Centroid(points)
		Logger().Debug("line fit is vertical, using centroid",
			slog.Int("points", n), slog.Float64("denominator", den), slog.Any("centroid", c))
		return c, Vec(0, 1), nil
	}
	slope := (nf*sxy - sx*sy) / den
	intercept := (sy - slope*sx) / nf
	dir, ok := Vec(1, slope).Normalize()
	if !ok {
		c := Centroid(points)
		Logger().Debug("line fit slope overflowed, using centroid",
			slog.Int("points", n), slog.Float64("slope", slope), slog.Any("centroid", c))
		return c, Vec(0, 1), nil
	}
	return Pt(0, intercept), dir, nil
}

// CircleResidual returns the root mean square of the distances of points
// from the circumference of c. It returns 0 for no points.
func CircleResidual(c Circle, points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		d := p.Distance(c.Center) - math.Abs(c.Radius)
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(points)))
}

// LineResidual returns the root mean square of the perpendicular distances
// of points from the line through p with direction dir. It returns 0 for no
// points and NaN for a zero direction.
func LineResidual(p Point, dir Vec2, points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	u, ok := dir.Normalize()
	if !ok {
		return math.NaN()
	}
	var sum float64
	for _, q := range points {
		d := u.Cross(q.Sub(p))
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(points)))
}
