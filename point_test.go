package numgeom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, -2).Sub(Pt(1, 2)))
	diff(t, Pt(2, 3), Pt(0, 2).Lerp(Pt(4, 4), 0.5))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
}

func TestPointIsFinite(t *testing.T) {
	if !Pt(1, 2).IsFinite() {
		t.Error("(1, 2) isn't finite")
	}
	if Pt(math.Inf(-1), 2).IsFinite() {
		t.Error("(-Inf, 2) is finite")
	}
	if Pt(1, math.NaN()).IsFinite() {
		t.Error("(1, NaN) is finite")
	}
}

func TestCentroid(t *testing.T) {
	diff(t, Pt(1, 1), Centroid([]Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}))
	diff(t, Pt(0, 0), Centroid(nil))
}

func TestVecNormalize(t *testing.T) {
	v, ok := Vec(3, 4).Normalize()
	if !ok {
		t.Fatal("couldn't normalize ⟨3, 4⟩")
	}
	diff(t, Vec(0.6, 0.8), v, cmpopts.EquateApprox(0, 1e-15))

	for _, v := range []Vec2{Vec(0, 0), Vec(math.Inf(1), 0), Vec(math.NaN(), 1)} {
		if n, ok := v.Normalize(); ok {
			t.Errorf("normalized %v to %v", v, n)
		}
	}
}

func TestVecCross(t *testing.T) {
	if c := Vec(1, 0).Cross(Vec(0, 1)); c != 1 {
		t.Errorf("got %v, want 1", c)
	}
	if d := Vec(1, 2).Dot(Vec(3, 4)); d != 11 {
		t.Errorf("got %v, want 11", d)
	}
}
