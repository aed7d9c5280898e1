package geom

import (
	"testing"
)

func TestSVG(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10.5, -2)}
	if got, want := SVG(l.PathElements(0.1), SVGOptions{}), "M0,0 L10.5,-2"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	els := []PathElement{CubicTo(Pt(1.26, 1), Pt(2, 2.5), Pt(3, 3))}
	seq := func(yield func(PathElement) bool) {
		for _, el := range els {
			if !yield(el) {
				return
			}
		}
	}
	if got, want := SVG(seq, SVGOptions{MaxPrecision: 1}), "C1.3,1 2,2.5 3,3"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJoin(t *testing.T) {
	c := Circle{Center: Pt(0, 1), Radius: 1}
	arc := NewArc(c, Pt(0, 0), Pt(1, 1), CounterClockwise)
	line := Line{Pt(1, 1), Pt(1, 5)}

	var moves int
	var last PathElement
	for el := range Join(0.01, arc, line) {
		if el.Kind == MoveToKind {
			moves++
		}
		last = el
	}
	if moves != 1 {
		t.Errorf("got %d MoveTo elements, want 1", moves)
	}
	diff(t, LineTo(Pt(1, 5)), last)
}
