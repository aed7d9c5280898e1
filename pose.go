package dubins

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/dubins/geom"
)

var (
	// ErrInvalidRadius is returned when the turning radius is not a positive,
	// finite number.
	ErrInvalidRadius = errors.New("dubins: turning radius must be positive and finite")
	// ErrInvalidPose is returned when a pose has a non-finite position or a
	// heading without a direction.
	ErrInvalidPose = errors.New("dubins: invalid pose")
)

// Pose is a position together with a direction of travel. The heading's
// magnitude is irrelevant, but it must not be zero.
type Pose struct {
	Position geom.Point
	Heading  geom.Vec2
}

// NewPose returns the pose at (x, y) facing the angle th, in radians
// counter-clockwise from the positive x axis.
func NewPose(x, y, th float64) Pose {
	return Pose{
		Position: geom.Pt(x, y),
		Heading:  geom.VecFromAngle(th),
	}
}

func (p Pose) String() string {
	return fmt.Sprintf("%s→%s", p.Position, p.Heading)
}

// Validate reports whether the pose can be planned from or to. The returned
// error wraps [ErrInvalidPose].
func (p Pose) Validate() error {
	if p.Position.IsNaN() || p.Position.IsInf() {
		return fmt.Errorf("%w: position %s is not finite", ErrInvalidPose, p.Position)
	}
	if p.Heading.IsNaN() || p.Heading.IsInf() {
		return fmt.Errorf("%w: heading %s is not finite", ErrInvalidPose, p.Heading)
	}
	if p.Heading.Hypot() <= geom.Epsilon {
		return fmt.Errorf("%w: heading %s has no direction", ErrInvalidPose, p.Heading)
	}
	return nil
}

// Reverse returns the pose at the same position facing the opposite way.
func (p Pose) Reverse() Pose {
	return Pose{Position: p.Position, Heading: p.Heading.Negate()}
}

// ApproxEqual reports whether p and o have the same position and point the
// same way, within [geom.Epsilon]. Headings are compared as directions.
func (p Pose) ApproxEqual(o Pose) bool {
	return p.Position.ApproxEqual(o.Position) &&
		p.Heading.Normalize().ApproxEqual(o.Heading.Normalize())
}

func validateRadius(radius float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidRadius, radius)
	}
	return nil
}

// Turn is the side a vehicle turns towards.
type Turn int

const (
	Left Turn = iota + 1
	Right
)

// Direction returns the rotation sense of the turn: left turns are
// counter-clockwise, right turns clockwise.
func (t Turn) Direction() geom.Direction {
	if t == Left {
		return geom.CounterClockwise
	}
	return geom.Clockwise
}

func (t Turn) String() string {
	switch t {
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return "?"
	}
}

// TurningCircles returns the two circles of the given radius that a vehicle
// at position facing heading follows when it turns fully left or fully
// right. Both circles touch position and are tangent to heading there.
//
// The heading must have a direction and the radius must be positive; see
// [Pose.Validate].
func TurningCircles(position geom.Point, heading geom.Vec2, radius float64) (left, right geom.Circle) {
	off := heading.WithMagnitude(radius).Perp()
	left = geom.Circle{Center: position.Translate(off), Radius: radius}
	right = geom.Circle{Center: position.Translate(off.Negate()), Radius: radius}
	return left, right
}

// turningCircle returns the circle for turn t from the pair computed by
// [TurningCircles].
func turningCircle(t Turn, left, right geom.Circle) geom.Circle {
	if t == Left {
		return left
	}
	return right
}
