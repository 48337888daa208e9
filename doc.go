// Package numgeom provides tolerant numerical routines for 2D geometry:
// Newton–Raphson root finding in one and two dimensions, intersection of
// parametric curves, and least-squares fitting of circles and lines.
//
// Every routine has to cope with floating-point noise. Decisions such as "has
// the iteration converged", "is this Jacobian singular" or "are these two
// intersections the same" are made against a [Tolerance], which bundles the
// thresholds for lengths, angles, parameters, curvature, areas and volumes.
// Use one of the presets ([StandardTolerance], [HighPrecisionTolerance],
// [LowPrecisionTolerance]), build a custom one with [NewTolerance], or adapt
// a preset to the unit of your model with [Tolerance.Scaled].
//
// # Root finding
//
// [NewtonSolver.Solve1D] and [NewtonSolver.Solve2D] need explicit derivatives
// or Jacobians; [NumericDerivative] can supply the former. Degenerate steps
// (a vanishing derivative, a singular Jacobian) are hard errors. Running out
// of iterations is not: the last iterate is returned together with a
// [ConvergenceInfo] whose Converged field is false, and callers decide
// whether the approximation is good enough. [SolveBracketed] is a derivative
// free alternative for when a sign change is known.
//
// For polynomials of low degree, [SolveQuadratic] and [SolveCubic] find all
// real roots in closed form.
//
// # Curve intersection
//
// [FindIntersections] works with any curve that implements [Evaluator]. It
// needs no initial guess: it samples both parameter ranges on a lattice,
// refines the pairs of samples that are close with Newton's method, and
// removes duplicates. [Line], [Circle], [QuadBez] and [CubicBez] implement
// Evaluator, and [EvaluatorFunc] adapts plain functions. The same types also
// offer analytic intersections with lines, such as [CubicBez.IntersectLine].
//
// # Fitting
//
// [FitCircle] and [FitLine] fit primitives to unordered points by solving the
// normal equations of the least-squares problem in closed form.
// [CircleResidual] and [LineResidual] measure the quality of a fit.
//
// # Errors, logging and configuration
//
// Errors wrap one of the sentinel errors such as [ErrSingularJacobian] and
// carry the offending values in a [*SolveError] or [*FitError]. The package
// doesn't log by default; see [SetLogger]. Solver settings can be loaded from
// YAML with [LoadConfig].
//
// # Literature
//
//   - [A few methods for fitting circles to data] by Dale Umbach and Kerry N. Jones
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A few methods for fitting circles to data]: https://doi.org/10.1109/TIM.2003.820472
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package numgeom
