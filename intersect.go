package numgeom

import (
	"cmp"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultGridSize is the number of lattice nodes per parameter range
	// used to seed [FindIntersections].
	DefaultGridSize = 20
	// DefaultScreenFactor is the multiple of the linear tolerance within
	// which two lattice points are considered close enough to refine.
	DefaultScreenFactor = 10.0
	// DefaultDifferenceStep is the step used for forward differences.
	DefaultDifferenceStep = 1e-8
)

// IntersectionOptions tunes [FindIntersections]. Zero values select the
// defaults.
type IntersectionOptions struct {
	// GridSize is the number of seeds per parameter range; the lattice has
	// GridSize² nodes. The default is [DefaultGridSize].
	GridSize int `yaml:"grid_size"`
	// ScreenFactor scales the linear tolerance to obtain the distance below
	// which a lattice pair is refined. The default is [DefaultScreenFactor].
	//
	// The lattice is coarse, so with a tight linear tolerance few or no
	// lattice pairs may pass screening. Callers that know the scale of their
	// curves may want to raise it. For two crossing unit circles and the
	// standard tolerance, the default finds nothing, while 5e5 finds both
	// intersections.
	ScreenFactor float64 `yaml:"screen_factor"`
	// Step is the step of the forward differences that approximate the
	// Jacobian. The default is [DefaultDifferenceStep].
	Step float64 `yaml:"step"`
	// MaxIterations caps each Newton refinement. The default is
	// [DefaultMaxIterations].
	MaxIterations int `yaml:"max_iterations"`
	// Workers is the number of goroutines that screen and refine lattice
	// rows. The default, 1, does all work on the calling goroutine. A
	// negative value uses GOMAXPROCS. With more than one worker, both
	// evaluators must be safe for concurrent use. The result doesn't depend
	// on the number of workers.
	Workers int `yaml:"workers"`
	// RestrictToRange drops intersections whose refined parameters lie
	// outside of the searched ranges by more than the parametric tolerance.
	RestrictToRange bool `yaml:"restrict_to_range"`
}

func (opts *IntersectionOptions) resolved() IntersectionOptions {
	var o IntersectionOptions
	if opts != nil {
		o = *opts
	}
	if o.GridSize <= 0 {
		o.GridSize = DefaultGridSize
	}
	if !(o.ScreenFactor > 0) {
		o.ScreenFactor = DefaultScreenFactor
	}
	if !(o.Step > 0) {
		o.Step = DefaultDifferenceStep
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Workers == 0 {
		o.Workers = 1
	} else if o.Workers < 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// IntersectionCandidate is an intersection found by [FindIntersections].
type IntersectionCandidate struct {
	// Point is the intersection, evaluated on the first curve.
	Point Point
	// Parameter is the parameter of Point on the first curve.
	Parameter float64
	// Distance is the remaining distance between the two curves at the
	// refined parameters.
	Distance float64
	// Confidence is 1/(1+e), where e is the size of the final Newton step.
	// It is in (0, 1], higher meaning tighter convergence.
	Confidence float64
	// OtherParameter is the parameter of the intersection on the second
	// curve.
	OtherParameter float64
}

// FiniteDifferenceJacobian approximates the Jacobian of
//
//	f(t1, t2) = c1(t1) − c2(t2)
//
// using forward differences with step h. Row 0 holds the partials of the x
// component, row 1 those of the y component. Because c2 enters f negated, the
// column of t2 partials is the negated derivative of c2.
func FiniteDifferenceJacobian(c1, c2 Evaluator, t1, t2, h float64) Jacobian {
	return finiteDifferenceJacobian(c1, c2, t1, t2, c1.Eval(t1), c2.Eval(t2), h)
}

func finiteDifferenceJacobian(c1, c2 Evaluator, t1, t2 float64, p1, p2 Point, h float64) Jacobian {
	d1 := c1.Eval(t1 + h).Sub(p1).Div(h)
	d2 := c2.Eval(t2 + h).Sub(p2).Div(h)
	return Jacobian{
		{d1.X, -d2.X},
		{d1.Y, -d2.Y},
	}
}

// FindIntersections finds the intersections of c1, for t1 in r1, and c2, for
// t2 in r2, without needing an initial guess.
//
// Both ranges are sampled on a uniform lattice of GridSize × GridSize
// parameter pairs. Pairs whose points are within ScreenFactor times the
// linear tolerance of each other are refined with Newton's method
// ([NewtonSolver.Solve2D]) on c1(t1) − c2(t2), using a Jacobian estimated by
// [FiniteDifferenceJacobian]. Seeds that fail to refine, be it because the
// Jacobian became singular or because Newton didn't converge, are dropped.
//
// The refined intersections are sorted by their parameter on c1, and an
// intersection is only kept if it is farther than the linear tolerance from
// all intersections kept before it.
//
// FindIntersections doesn't fail; finding no intersections results in an
// empty slice. The output is deterministic.
//
// Samples that evaluate to NaN or infinite points never pass screening.
//
// The lattice spacing is not tied to the tolerance. With the default
// ScreenFactor and a tight linear tolerance, lattice points of crossing
// curves are rarely close enough to pass screening, and no intersections are
// found; see [IntersectionOptions.ScreenFactor].
func FindIntersections(c1, c2 Evaluator, r1, r2 [2]float64, tol Tolerance, opts *IntersectionOptions) []IntersectionCandidate {
	if c1 == nil || c2 == nil {
		panic("numgeom: FindIntersections called with nil Evaluator")
	}
	o := opts.resolved()
	n := o.GridSize
	ts1 := lattice(r1, n)
	ts2 := lattice(r2, n)
	ps1 := evalAll(c1, ts1)
	ps2 := evalAll(c2, ts2)

	x := intersector{
		c1:     c1,
		c2:     c2,
		r1:     r1,
		r2:     r2,
		tol:    tol,
		opts:   o,
		solver: NewtonSolver{Tolerance: tol, MaxIterations: o.MaxIterations},
		screen: o.ScreenFactor * tol.Linear,
	}

	// No lattice pair can pass screening if the samples' bounding boxes are
	// farther apart than the screening distance.
	b1, ok1 := BoundingBox(ps1)
	b2, ok2 := BoundingBox(ps2)
	if !ok1 || !ok2 || !b1.Inflate(x.screen, x.screen).Overlaps(b2) {
		Logger().Debug("intersection search skipped, curves are apart",
			slog.Int("grid", n), slog.Float64("screen", x.screen))
		return nil
	}

	rows := make([]latticeRow, n)
	if o.Workers == 1 {
		for i, p1 := range ps1 {
			rows[i] = x.row(ts1[i], p1, ts2, ps2)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for i, p1 := range ps1 {
			g.Go(func() error {
				rows[i] = x.row(ts1[i], p1, ts2, ps2)
				return nil
			})
		}
		_ = g.Wait()
	}

	var seeds, dropped int
	var cands []IntersectionCandidate
	for _, row := range rows {
		seeds += row.seeds
		dropped += row.dropped
		cands = append(cands, row.cands...)
	}
	out := dedupeCandidates(cands, tol)

	Logger().Debug("intersection search finished",
		slog.Int("grid", n),
		slog.Int("seeds", seeds),
		slog.Int("dropped", dropped),
		slog.Int("refined", len(cands)),
		slog.Int("kept", len(out)))
	return out
}

// lattice returns n uniformly spaced values spanning r, including both ends.
func lattice(r [2]float64, n int) []float64 {
	ts := make([]float64, n)
	if n == 1 {
		ts[0] = r[0]
		return ts
	}
	span := r[1] - r[0]
	for i := range ts {
		ts[i] = r[0] + span*float64(i)/float64(n-1)
	}
	// Don't let rounding move the last node off the end of the range.
	ts[n-1] = r[1]
	return ts
}

func evalAll(c Evaluator, ts []float64) []Point {
	ps := make([]Point, len(ts))
	for i, t := range ts {
		ps[i] = c.Eval(t)
	}
	return ps
}

type intersector struct {
	c1, c2 Evaluator
	r1, r2 [2]float64
	tol    Tolerance
	opts   IntersectionOptions
	solver NewtonSolver
	screen float64
}

// latticeRow holds the results of all lattice pairs sharing one t1.
type latticeRow struct {
	cands   []IntersectionCandidate
	seeds   int
	dropped int
}

func (x *intersector) row(t1 float64, p1 Point, ts2 []float64, ps2 []Point) latticeRow {
	var row latticeRow
	for j, t2 := range ts2 {
		if !(p1.Distance(ps2[j]) <= x.screen) {
			continue
		}
		row.seeds++
		cand, ok := x.refine(t1, t2)
		if !ok {
			row.dropped++
			continue
		}
		row.cands = append(row.cands, cand)
	}
	return row
}

func (x *intersector) system(t1, t2 float64) (float64, float64, Jacobian) {
	p1 := x.c1.Eval(t1)
	p2 := x.c2.Eval(t2)
	j := finiteDifferenceJacobian(x.c1, x.c2, t1, t2, p1, p2, x.opts.Step)
	return p1.X - p2.X, p1.Y - p2.Y, j
}

func (x *intersector) refine(t1, t2 float64) (IntersectionCandidate, bool) {
	ts, info, err := x.solver.Solve2D(x.system, [2]float64{t1, t2})
	if err != nil {
		Logger().Debug("dropping intersection seed",
			slog.Float64("t1", t1), slog.Float64("t2", t2), slog.Any("err", err))
		return IntersectionCandidate{}, false
	}
	if !info.Converged {
		if debugEnabled() {
			Logger().Debug("dropping intersection seed",
				slog.Float64("t1", t1), slog.Float64("t2", t2), slog.Any("err", info.Err()))
		}
		return IntersectionCandidate{}, false
	}
	if x.opts.RestrictToRange && (!x.inRange(ts[0], x.r1) || !x.inRange(ts[1], x.r2)) {
		Logger().Debug("dropping intersection outside of range",
			slog.Float64("t1", ts[0]), slog.Float64("t2", ts[1]))
		return IntersectionCandidate{}, false
	}
	p1 := x.c1.Eval(ts[0])
	p2 := x.c2.Eval(ts[1])
	return IntersectionCandidate{
		Point:          p1,
		Parameter:      ts[0],
		Distance:       p1.Distance(p2),
		Confidence:     1 / (1 + info.FinalError),
		OtherParameter: ts[1],
	}, true
}

func (x *intersector) inRange(t float64, r [2]float64) bool {
	lo, hi := min(r[0], r[1]), max(r[0], r[1])
	eps := x.tol.Parametric
	return t >= lo-eps && t <= hi+eps
}

// dedupeCandidates sorts cands by parameter and drops every candidate that
// lies within the linear tolerance of a previously kept one. It sorts cands in
// place.
func dedupeCandidates(cands []IntersectionCandidate, tol Tolerance) []IntersectionCandidate {
	slices.SortStableFunc(cands, func(a, b IntersectionCandidate) int {
		return cmp.Compare(a.Parameter, b.Parameter)
	})
	var kept []IntersectionCandidate
	for _, c := range cands {
		dup := slices.ContainsFunc(kept, func(k IntersectionCandidate) bool {
			return tol.PointsCoincide(c.Point, k.Point)
		})
		if !dup {
			kept = append(kept, c)
		}
	}
	return kept
}
