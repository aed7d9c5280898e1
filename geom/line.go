package geom

import (
	"iter"
	"math"
)

// Line represents a line segment traversed from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Segment = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) &&
			yield(LineTo(l.P1))
	}
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// StartTangent returns the unit direction of the line. A degenerate line has
// no direction and returns the zero vector.
func (l Line) StartTangent() Vec2 {
	d := l.P1.Sub(l.P0)
	if h := d.Hypot(); h > 0 && !math.IsInf(h, 0) {
		return d.Div(h)
	}
	return Vec2{}
}

// EndTangent is the same as [Line.StartTangent].
func (l Line) EndTangent() Vec2 {
	return l.StartTangent()
}
