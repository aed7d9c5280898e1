package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute tolerance used for comparing coordinates, lengths,
// and angles.
const Epsilon = 1e-9

const twoPi = 2 * math.Pi

func approxEqual(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, Epsilon)
}

// Compare compares a and b with a tolerance of [Epsilon]. It returns -1 if a
// is smaller than b by more than the tolerance, 1 if it is larger by more
// than the tolerance, and 0 otherwise.
func Compare(a, b float64) int {
	switch {
	case approxEqual(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// NormalizeAngle maps th into [0, 2π).
func NormalizeAngle(th float64) float64 {
	th = math.Mod(th, twoPi)
	if th < 0 {
		th += twoPi
	}
	if th >= twoPi {
		// -tiny + 2π rounds to 2π.
		th = 0
	}
	return th
}

// Direction is the rotation sense of a turn.
type Direction int

const (
	// CounterClockwise is a left turn.
	CounterClockwise Direction = 1
	// Clockwise is a right turn.
	Clockwise Direction = -1
)

// Sign returns 1 for [CounterClockwise] and -1 for [Clockwise].
func (d Direction) Sign() float64 {
	return float64(d)
}

// Reverse returns the opposite rotation sense.
func (d Direction) Reverse() Direction {
	return -d
}

func (d Direction) String() string {
	switch d {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return "InvalidDirection"
	}
}

// AngleBetween returns the magnitude of the rotation that takes the heading
// from to the heading to when rotating in dir. The result is in [0, 2π).
//
// A sweep that falls within [Epsilon] of a full turn is reported as 0: both
// angles denote the same point and no rotation is needed.
func AngleBetween(from, to float64, dir Direction) float64 {
	var sweep float64
	if dir == Clockwise {
		sweep = NormalizeAngle(from - to)
	} else {
		sweep = NormalizeAngle(to - from)
	}
	if sweep > twoPi-Epsilon {
		return 0
	}
	return sweep
}
