package geom

import (
	"math"
)

type Circle struct {
	Center Point
	Radius float64
}

// PointAt returns the point of the circle at the given angle, measured
// counter-clockwise from the positive x axis.
func (c Circle) PointAt(angle float64) Point {
	return pointOnCircle(c.Center, c.Radius, angle)
}

// AngleOf returns the angle of pt as seen from the circle's center, in
// [0, 2π). pt need not lie on the circle.
func (c Circle) AngleOf(pt Point) float64 {
	return pt.Sub(c.Center).Angle()
}

// Project returns the point of the circle closest to pt. If pt is the
// center, the result is the point at angle 0.
func (c Circle) Project(pt Point) Point {
	v := pt.Sub(c.Center)
	if v.Hypot() == 0 {
		return c.PointAt(0)
	}
	return c.Center.Translate(v.WithMagnitude(c.Radius))
}

// ApproxEqual reports whether c and o have the same center and radius within
// [Epsilon].
func (c Circle) ApproxEqual(o Circle) bool {
	return c.Center.ApproxEqual(o.Center) && approxEqual(c.Radius, o.Radius)
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
