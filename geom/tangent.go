package geom

import (
	"fmt"
	"math"
)

// Tangent is a directed common tangent line. A vehicle travelling around the
// first circle in From leaves it at Line.P0, drives along the line, and joins
// the second circle at Line.P1, continuing in To.
type Tangent struct {
	Line Line
	From Direction
	To   Direction
}

func (t Tangent) String() string {
	return fmt.Sprintf("Tangent(%s → %s, %s → %s)", t.Line.P0, t.Line.P1, t.From, t.To)
}

// tangentOrder is the order in which [Tangents] reports lines: the two outer
// tangents, then the two inner ones.
var tangentOrder = [4][2]Direction{
	{Clockwise, Clockwise},
	{CounterClockwise, CounterClockwise},
	{Clockwise, CounterClockwise},
	{CounterClockwise, Clockwise},
}

// TangentLine returns the directed common tangent of c1 and c2 for a vehicle
// that leaves c1 turning in d1 and joins c2 turning in d2. It reports false
// if no such tangent exists, which is the case when the circles are
// concentric, when one circle contains the other for an outer tangent, or
// when the circles overlap for an inner tangent.
//
// When the circles touch, the inner tangent degenerates to a zero-length
// line at the point of contact.
func TangentLine(c1 Circle, d1 Direction, c2 Circle, d2 Direction) (Line, bool) {
	// A vehicle turning counter-clockwise has the center to its left, so the
	// tangent point is c - s·r·n, with n the left normal of the direction of
	// travel u and s the sign of the turn. Both tangent points are joined by
	// a multiple of u, which gives D·n = k below.
	s1, s2 := d1.Sign(), d2.Sign()
	k := s2*c2.Radius - s1*c1.Radius
	dv := c2.Center.Sub(c1.Center)
	d := dv.Hypot()
	if d <= Epsilon || math.Abs(k) > d+Epsilon {
		return Line{}, false
	}
	a := math.Max(-1, math.Min(1, k/d))
	m := math.Sqrt(math.Max(0, 1-a*a))
	dn := dv.Div(d)
	n := dn.Mul(a).Add(dn.Perp().Mul(m))
	return Line{
		P0: c1.Center.Translate(n.Mul(-s1 * c1.Radius)),
		P1: c2.Center.Translate(n.Mul(-s2 * c2.Radius)),
	}, true
}

// Tangents returns all directed common tangents of c1 and c2, 0 to 4 of them.
//
// The order is fixed: Clockwise→Clockwise and CounterClockwise→CounterClockwise
// (the outer tangents, with both circles on the right and on the left of the
// line respectively), followed by Clockwise→CounterClockwise and
// CounterClockwise→Clockwise (the inner tangents). Tangents that do not exist
// are omitted without leaving gaps, so callers should select by the From and
// To fields rather than by index.
func Tangents(c1, c2 Circle) []Tangent {
	var out []Tangent
	for _, dirs := range tangentOrder {
		if l, ok := TangentLine(c1, dirs[0], c2, dirs[1]); ok {
			out = append(out, Tangent{Line: l, From: dirs[0], To: dirs[1]})
		}
	}
	return out
}

// PointTangents returns the lines from pt that touch c, with To set to the
// direction of travel around c after arriving along the line. From is zero
// since a point has no rotation sense.
//
// There are no tangents if pt lies inside c, a single zero-length tangent
// (reported as Clockwise) if pt lies on c, and otherwise two, ordered
// Clockwise then CounterClockwise.
func PointTangents(pt Point, c Circle) []Tangent {
	p := Circle{Center: pt}
	var out []Tangent
	for _, to := range [...]Direction{Clockwise, CounterClockwise} {
		l, ok := TangentLine(p, CounterClockwise, c, to)
		if !ok {
			continue
		}
		if len(out) > 0 && out[0].Line.P1.ApproxEqual(l.P1) {
			break
		}
		out = append(out, Tangent{Line: l, To: to})
	}
	return out
}
