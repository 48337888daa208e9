package numgeom

import (
	"fmt"
	"math"
)

// Tolerance bundles the scalars that every numerical decision in this package
// is made against: convergence of iterative solvers, detection of degenerate
// input, and deduplication of near-identical results.
//
// All fields must be positive; see [Tolerance.Validate]. A Tolerance is a plain
// value. Functions taking one never modify it.
type Tolerance struct {
	// Linear is the distance below which two points are considered equal.
	Linear float64
	// Angular is the angle, in radians, below which two directions are
	// considered equal. It is independent of the unit of length.
	Angular float64
	// Parametric is the threshold for parameter-space quantities: Newton
	// residuals and steps, derivatives, and determinants.
	Parametric float64
	// Curvature is the curvature below which a curve is considered straight.
	Curvature float64
	// Area is the area below which a region is considered empty.
	Area float64
	// Volume is the volume below which a solid is considered empty.
	Volume float64
}

// StandardTolerance returns the tolerances suitable for general-purpose
// geometry in double precision.
func StandardTolerance() Tolerance {
	return Tolerance{
		Linear:     1e-6,
		Angular:    1e-8,
		Parametric: 1e-10,
		Curvature:  1e-8,
		Area:       1e-12,
		Volume:     1e-18,
	}
}

// HighPrecisionTolerance returns tolerances that are strictly tighter than
// those of [StandardTolerance].
func HighPrecisionTolerance() Tolerance {
	return Tolerance{
		Linear:     1e-9,
		Angular:    1e-11,
		Parametric: 1e-12,
		Curvature:  1e-11,
		Area:       1e-18,
		Volume:     1e-27,
	}
}

// LowPrecisionTolerance returns tolerances that are strictly looser than those
// of [StandardTolerance], for noisy input such as scanned or digitized data.
func LowPrecisionTolerance() Tolerance {
	return Tolerance{
		Linear:     1e-3,
		Angular:    1e-5,
		Parametric: 1e-8,
		Curvature:  1e-5,
		Area:       1e-6,
		Volume:     1e-9,
	}
}

// NewTolerance returns a custom Tolerance. It returns an error wrapping
// [ErrInvalidTolerance] if any of the values isn't a positive, finite number.
func NewTolerance(linear, angular, parametric, curvature, area, volume float64) (Tolerance, error) {
	tol := Tolerance{
		Linear:     linear,
		Angular:    angular,
		Parametric: parametric,
		Curvature:  curvature,
		Area:       area,
		Volume:     volume,
	}
	if err := tol.Validate(); err != nil {
		return Tolerance{}, err
	}
	return tol, nil
}

// Validate checks that all tolerances are positive and finite. The returned
// error wraps [ErrInvalidTolerance] and names the first offending field.
func (tol Tolerance) Validate() error {
	fields := [...]struct {
		name string
		v    float64
	}{
		{"linear", tol.Linear},
		{"angular", tol.Angular},
		{"parametric", tol.Parametric},
		{"curvature", tol.Curvature},
		{"area", tol.Area},
		{"volume", tol.Volume},
	}
	for _, f := range fields {
		if !(f.v > 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s tolerance is %g", ErrInvalidTolerance, f.name, f.v)
		}
	}
	return nil
}

// Scaled returns the tolerances adjusted for a model whose unit of length has
// been multiplied by factor. Lengths scale linearly, areas quadratically and
// volumes cubically; curvature, being an inverse length, is divided by factor.
// Angular and parametric tolerances are unit-independent and stay the same.
//
// Scaling by a factor that isn't positive and finite returns tol unchanged.
func (tol Tolerance) Scaled(factor float64) Tolerance {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return tol
	}
	return Tolerance{
		Linear:     tol.Linear * factor,
		Angular:    tol.Angular,
		Parametric: tol.Parametric,
		Curvature:  tol.Curvature / factor,
		Area:       tol.Area * factor * factor,
		Volume:     tol.Volume * factor * factor * factor,
	}
}

// PointsCoincide reports whether p and q are within the linear tolerance of
// each other.
func (tol Tolerance) PointsCoincide(p, q Point) bool {
	return p.DistanceSquared(q) <= tol.Linear*tol.Linear
}

// IsZeroParam reports whether v is indistinguishable from zero at the
// parametric tolerance. NaN counts as zero, so that callers refuse to divide
// by it.
func (tol Tolerance) IsZeroParam(v float64) bool {
	return !(math.Abs(v) >= tol.Parametric)
}
