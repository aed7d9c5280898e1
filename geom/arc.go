package geom

import (
	"iter"
	"math"
)

// Arc is a portion of a circle traversed in a fixed rotation sense.
//
// The arc starts at StartAngle and sweeps SweepAngle radians in Direction.
// SweepAngle is never negative; the rotation sense lives in Direction so that
// zero-length arcs keep their handedness.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
	Direction  Direction
}

var _ Segment = Arc{}

// NewArc returns the arc of c that starts at from and travels in dir until it
// reaches to. The points are projected onto the circle's angles; they are not
// required to lie exactly on the circle.
//
// The sweep is in [0, 2π). Antipodal points sweep exactly half a turn in dir.
// Points within [Epsilon] radians of each other produce an empty arc, never a
// full turn.
func NewArc(c Circle, from, to Point, dir Direction) Arc {
	a0 := c.AngleOf(from)
	a1 := c.AngleOf(to)
	return Arc{
		Center:     c.Center,
		Radius:     c.Radius,
		StartAngle: a0,
		SweepAngle: AngleBetween(a0, a1, dir),
		Direction:  dir,
	}
}

// Circle returns the circle the arc lies on.
func (a Arc) Circle() Circle {
	return Circle{Center: a.Center, Radius: a.Radius}
}

// EndAngle returns the angle at which the arc ends, in [0, 2π).
func (a Arc) EndAngle() float64 {
	return NormalizeAngle(a.StartAngle + a.Direction.Sign()*a.SweepAngle)
}

// Length returns the length of the arc, radius × sweep.
func (a Arc) Length() float64 {
	return math.Abs(a.Radius) * a.SweepAngle
}

func (a Arc) Start() Point { return pointOnCircle(a.Center, a.Radius, a.StartAngle) }
func (a Arc) End() Point   { return pointOnCircle(a.Center, a.Radius, a.EndAngle()) }

// Eval returns the point reached after traversing the fraction t of the arc.
func (a Arc) Eval(t float64) Point {
	return pointOnCircle(a.Center, a.Radius, a.StartAngle+a.Direction.Sign()*a.SweepAngle*t)
}

// StartTangent returns the unit direction of travel at the start of the arc.
func (a Arc) StartTangent() Vec2 {
	return a.tangentAt(a.StartAngle)
}

// EndTangent returns the unit direction of travel at the end of the arc.
func (a Arc) EndTangent() Vec2 {
	return a.tangentAt(a.EndAngle())
}

func (a Arc) tangentAt(angle float64) Vec2 {
	return VecFromAngle(angle).Perp().Mul(a.Direction.Sign())
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.SweepAngle)
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// PathElements approximates the arc with cubic Béziers. The first element is
// a MoveTo to the arc's start.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		p0 := a.Start()
		if !yield(MoveTo(p0)) {
			return
		}

		scaledError := math.Abs(a.Radius) / tolerance
		// Number of subdivisions per circle based on error tolerance.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * a.SweepAngle * (1.0 / (2.0 * math.Pi)))
		if n == 0 {
			return
		}
		sweep := a.Direction.Sign() * a.SweepAngle
		angleStep := sweep / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)
		angle0 := a.StartAngle

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Translate(VecFromAngle(angle0 + math.Pi/2).Mul(a.Radius * armLen))
			p3 := pointOnCircle(a.Center, a.Radius, angle1)
			p2 := p3.Translate(VecFromAngle(angle1 + math.Pi/2).Mul(-a.Radius * armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(p1, p2, p3)) {
				return
			}
		}
	}
}
