package numgeom

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineEval(t *testing.T) {
	l := Line{Pt(1, 2), Pt(3, 6)}
	diff(t, Pt(2, 4), l.Eval(0.5))
	// Lines extend beyond their end points.
	diff(t, Pt(-1, -2), l.Eval(-1))
	diff(t, Pt(5, 10), l.Eval(2))
	diff(t, Vec(2, 4), l.Direction())
}

func TestIntersectLine(t *testing.T) {
	tol := StandardTolerance()
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	xs, n := hLine.IntersectLine(vLine, tol)
	want := []LineIntersection{{0.5, 0.1}}
	diff(t, want, xs[:n], cmpopts.EquateApprox(0, 1e-7))

	vLine = Line{Pt(-10.0, -10.0), Pt(-10.0, 10.0)}
	if xs, n := hLine.IntersectLine(vLine, tol); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}

	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	if xs, n := hLine.IntersectLine(vLine, tol); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}

	parallel := Line{Pt(0, 1), Pt(100, 1)}
	if xs, n := hLine.IntersectLine(parallel, tol); n != 0 {
		t.Errorf("expected no intersections, got %v", xs[:n])
	}
}

func TestLineCrossingPoint(t *testing.T) {
	l1 := Line{Pt(0, 0), Pt(1, 1)}
	l2 := Line{Pt(4, 0), Pt(3, 1)}
	p, ok := l1.CrossingPoint(l2)
	if !ok {
		t.Fatal("lines don't cross")
	}
	diff(t, Pt(2, 2), p, cmpopts.EquateApprox(0, 1e-12))

	if _, ok := l1.CrossingPoint(Line{Pt(0, 1), Pt(1, 2)}); ok {
		t.Error("parallel lines cross")
	}
}
