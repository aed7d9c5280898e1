package dubins

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"honnef.co/go/dubins/geom"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

const tolerance = 1e-6

// checkContinuity verifies that consecutive segments of p join up in position
// and heading, and that p starts at start and ends at end.
func checkContinuity(t *testing.T, p Path, start, end Pose) {
	t.Helper()
	segs := p.Segments()
	if d := segs[0].Start().Distance(start.Position); d > tolerance {
		t.Errorf("%v: starts %v away from the start pose", p.Word, d)
	}
	if d := segs[2].End().Distance(end.Position); d > tolerance {
		t.Errorf("%v: ends %v away from the end pose", p.Word, d)
	}
	checkHeading(t, p.Word, "start", start.Heading.Normalize(), segs[0].StartTangent())
	checkHeading(t, p.Word, "end", end.Heading.Normalize(), segs[2].EndTangent())

	for i := range 2 {
		a, b := segs[i], segs[i+1]
		if d := a.End().Distance(b.Start()); d > tolerance {
			t.Errorf("%v: gap of %v between segments %d and %d", p.Word, d, i, i+1)
		}
		// Zero-length lines have no direction.
		if l, ok := b.(geom.Line); ok && l.Length() < tolerance {
			continue
		}
		if l, ok := a.(geom.Line); ok && l.Length() < tolerance {
			continue
		}
		checkHeading(t, p.Word, "joint", a.EndTangent(), b.StartTangent())
	}
}

func checkHeading(t *testing.T, w Word, where string, want, got geom.Vec2) {
	t.Helper()
	if math.Abs(want.X-got.X) > tolerance || math.Abs(want.Y-got.Y) > tolerance {
		t.Errorf("%v: heading at %s is %v, want %v", w, where, got, want)
	}
}
