// Package geom provides the 2D primitives used by the Dubins planner: points,
// vectors, circles, arcs, and line segments, plus the construction of common
// tangent lines between circles.
//
// # Handedness
//
// An arc drawn between two points of a circle is ambiguous: it can sweep
// either way around. Every operation in this package that produces an arc or
// a tangent therefore takes an explicit [Direction]. [CounterClockwise]
// corresponds to a left turn in a y-up coordinate system, [Clockwise] to a
// right turn.
//
// # Tolerance
//
// Floating point comparisons use an absolute tolerance of [Epsilon]. Points
// and vectors compare with [Point.ApproxEqual] and [Vec2.ApproxEqual].
//
// # Tangent ordering
//
// [Tangents] returns the directed common tangents of two circles in a fixed
// order, and every [Tangent] records the directions it connects, so callers
// can select by handedness instead of by slice position. See [TangentLine]
// for selecting a single tangent.
package geom
