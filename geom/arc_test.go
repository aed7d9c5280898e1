package geom

import (
	"math"
	"testing"
)

func TestNewArcHandedness(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 2}
	from := Pt(2, 0)
	to := Pt(0, 2)

	ccw := NewArc(c, from, to, CounterClockwise)
	if l := ccw.Length(); math.Abs(l-math.Pi) > 1e-12 {
		t.Errorf("counter-clockwise quarter arc has length %v, want %v", l, math.Pi)
	}
	cw := NewArc(c, from, to, Clockwise)
	if l := cw.Length(); math.Abs(l-3*math.Pi) > 1e-12 {
		t.Errorf("clockwise three-quarter arc has length %v, want %v", l, 3*math.Pi)
	}

	for _, a := range []Arc{ccw, cw} {
		diff(t, from, a.Start(), approx)
		diff(t, to, a.End(), approx)
	}

	// Halfway along the clockwise arc is the bottom-left of the circle.
	want := Pt(-math.Sqrt2, -math.Sqrt2)
	diff(t, want, cw.Eval(0.5), approx)
}

func TestNewArcProjectsPoints(t *testing.T) {
	c := Circle{Center: Pt(1, 1), Radius: 1}
	// Points off the circle only contribute their angle.
	a := NewArc(c, Pt(5, 1), Pt(1, -3), Clockwise)
	diff(t, Pt(2, 1), a.Start(), approx)
	diff(t, Pt(1, 0), a.End(), approx)
	if l := a.Length(); math.Abs(l-math.Pi/2) > 1e-12 {
		t.Errorf("got length %v, want %v", l, math.Pi/2)
	}
}

func TestArcTangents(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 1}
	ccw := NewArc(c, Pt(1, 0), Pt(-1, 0), CounterClockwise)
	diff(t, Vec(0, 1), ccw.StartTangent(), approx)
	diff(t, Vec(0, -1), ccw.EndTangent(), approx)

	cw := NewArc(c, Pt(1, 0), Pt(-1, 0), Clockwise)
	diff(t, Vec(0, -1), cw.StartTangent(), approx)
	diff(t, Vec(0, 1), cw.EndTangent(), approx)

	// An empty arc keeps its direction of travel.
	empty := NewArc(c, Pt(0, 1), Pt(0, 1), Clockwise)
	if empty.Length() != 0 {
		t.Errorf("got length %v, want 0", empty.Length())
	}
	diff(t, Vec(1, 0), empty.StartTangent(), approx)
	diff(t, Vec(1, 0), empty.EndTangent(), approx)
}

func TestArcPathElements(t *testing.T) {
	c := Circle{Center: Pt(3, -2), Radius: 4}
	for _, dir := range []Direction{CounterClockwise, Clockwise} {
		a := NewArc(c, Pt(7, -2), Pt(3, 2), dir)
		var els []PathElement
		for el := range a.PathElements(0.1) {
			els = append(els, el)
		}
		if len(els) < 2 {
			t.Fatalf("%v: got %d elements", dir, len(els))
		}
		if els[0].Kind != MoveToKind {
			t.Errorf("%v: first element is %v", dir, els[0])
		}
		diff(t, a.Start(), els[0].P0, approx)
		diff(t, a.End(), els[len(els)-1].EndPoint(), approx)
		for _, el := range els[1:] {
			if el.Kind != CubicToKind {
				t.Errorf("%v: unexpected element %v", dir, el)
			}
			// Every on-curve point lies on the circle.
			if d := el.EndPoint().Distance(c.Center); math.Abs(d-c.Radius) > 1e-9 {
				t.Errorf("%v: %v is %v from the center", dir, el.EndPoint(), d)
			}
		}
	}
}

func TestCircleProject(t *testing.T) {
	c := Circle{Center: Pt(1, 1), Radius: 2}
	diff(t, Pt(1, 3), c.Project(Pt(1, 10)), approx)
	diff(t, Pt(3, 1), c.Project(c.Center), approx)
	diff(t, Pt(-1, 1), c.PointAt(math.Pi), approx)
	if a := c.AngleOf(Pt(1, -5)); math.Abs(a-3*math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v", a)
	}
}
