package geom

import (
	"math"
	"testing"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
		{-1e-17, 0},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if got < 0 || got >= 2*math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v, out of range", tt.in, got)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to float64
		dir      Direction
		want     float64
	}{
		{"quarter ccw", 0, math.Pi / 2, CounterClockwise, math.Pi / 2},
		{"quarter cw goes the long way", 0, math.Pi / 2, Clockwise, 3 * math.Pi / 2},
		{"wrap ccw", 7 * math.Pi / 4, math.Pi / 4, CounterClockwise, math.Pi / 2},
		{"wrap cw", math.Pi / 4, 7 * math.Pi / 4, Clockwise, math.Pi / 2},
		{"antipodal ccw", math.Pi / 2, 3 * math.Pi / 2, CounterClockwise, math.Pi},
		{"antipodal cw", math.Pi / 2, 3 * math.Pi / 2, Clockwise, math.Pi},
		{"same angle", 1, 1, CounterClockwise, 0},
		{"just behind snaps to zero ccw", 1, 1 - Epsilon/10, CounterClockwise, 0},
		{"just ahead snaps to zero cw", 1, 1 + Epsilon/10, Clockwise, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AngleBetween(tt.from, tt.to, tt.dir)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AngleBetween(%v, %v, %v) = %v, want %v", tt.from, tt.to, tt.dir, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if c := Compare(1, 1+Epsilon/2); c != 0 {
		t.Errorf("got %d, want 0", c)
	}
	if c := Compare(1, 2); c != -1 {
		t.Errorf("got %d, want -1", c)
	}
	if c := Compare(2, 1); c != 1 {
		t.Errorf("got %d, want 1", c)
	}
}

func TestDirection(t *testing.T) {
	if CounterClockwise.Reverse() != Clockwise || Clockwise.Reverse() != CounterClockwise {
		t.Error("Reverse does not swap directions")
	}
	if CounterClockwise.Sign() != 1 || Clockwise.Sign() != -1 {
		t.Error("unexpected signs")
	}
	if s := Direction(0).String(); s != "InvalidDirection" {
		t.Errorf("got %q", s)
	}
}
