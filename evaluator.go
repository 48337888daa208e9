package numgeom

// Evaluator describes a curve parametrized by a scalar.
//
// Implementations must be deterministic and free of side effects: the
// intersection search evaluates curves at many parameters, some of them more
// than once, and at slightly perturbed parameters for finite differencing.
// Parameters outside the nominal range of the curve may be requested and
// should be extrapolated rather than clamped where that makes sense.
type Evaluator interface {
	// Eval returns the point of the curve at parameter t.
	Eval(t float64) Point
}

// EvaluatorFunc adapts an ordinary function to the [Evaluator] interface.
type EvaluatorFunc func(t float64) Point

// Eval implements Evaluator.
func (f EvaluatorFunc) Eval(t float64) Point { return f(t) }

var (
	_ Evaluator = EvaluatorFunc(nil)
	_ Evaluator = Line{}
	_ Evaluator = Circle{}
	_ Evaluator = QuadBez{}
	_ Evaluator = CubicBez{}
)
