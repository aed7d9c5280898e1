package dubins

import (
	"log/slog"
	"math"

	"honnef.co/go/dubins/geom"
)

// cscWords lists the CSC candidates in enumeration order together with the
// turns at either end.
var cscWords = [...]struct {
	word       Word
	start, end Turn
}{
	{RSR, Right, Right},
	{LSL, Left, Left},
	{RSL, Right, Left},
	{LSR, Left, Right},
}

// cccWords lists the CCC candidates. The middle circle is found by rotating
// the center line by the given sign, which picks one of the two circles
// tangent to both outer circles.
var cccWords = [...]struct {
	word  Word
	outer Turn
	sign  float64
}{
	{LRL, Left, 1},
	{RLR, Right, -1},
}

// EnumerateAllCandidates returns every CSC and CCC path from start to end for
// a vehicle with the given minimum turning radius, in the order RSR, LSL,
// RSL, LSR, LRL, RLR. Words whose geometry does not exist are omitted, so
// the result holds between 0 and 6 paths.
//
// Identical poses have no path and produce an empty result. An invalid pose
// or radius is reported as an error wrapping [ErrInvalidPose] or
// [ErrInvalidRadius].
func EnumerateAllCandidates(start, end Pose, radius float64) ([]Path, error) {
	return enumerate(start, end, radius, Logger())
}

func validate(start, end Pose, radius float64) error {
	if err := validateRadius(radius); err != nil {
		return err
	}
	if err := start.Validate(); err != nil {
		return err
	}
	return end.Validate()
}

func enumerate(start, end Pose, radius float64, logger *slog.Logger) ([]Path, error) {
	if err := validate(start, end, radius); err != nil {
		return nil, err
	}
	if start.ApproxEqual(end) {
		logger.Debug("start and end poses are identical", "pose", start)
		return nil, nil
	}

	startLeft, startRight := TurningCircles(start.Position, start.Heading, radius)
	endLeft, endRight := TurningCircles(end.Position, end.Heading, radius)

	paths := make([]Path, 0, len(cscWords)+len(cccWords))
	for _, w := range cscWords {
		c1 := turningCircle(w.start, startLeft, startRight)
		c2 := turningCircle(w.end, endLeft, endRight)
		d1, d2 := w.start.Direction(), w.end.Direction()
		line, ok := geom.TangentLine(c1, d1, c2, d2)
		if !ok {
			logger.Debug("skipping candidate", "word", w.word, "reason", "no tangent line")
			continue
		}
		paths = append(paths, Path{
			Word:  w.word,
			Start: geom.NewArc(c1, start.Position, line.P0, d1),
			Line:  line,
			End:   geom.NewArc(c2, line.P1, end.Position, d2),
		})
	}

	for _, w := range cccWords {
		c1 := turningCircle(w.outer, startLeft, startRight)
		c2 := turningCircle(w.outer, endLeft, endRight)
		if c1.Center.ApproxEqual(c2.Center) {
			logger.Debug("skipping candidate", "word", w.word, "reason", "coincident circles")
			continue
		}
		dist := geom.Distance(c1.Center, c2.Center)
		if geom.Compare(dist, 4*radius) > 0 {
			logger.Debug("skipping candidate", "word", w.word, "reason", "circles too far apart", "distance", dist)
			continue
		}

		// The middle circle's center is 2r away from both outer centers.
		v := c2.Center.Sub(c1.Center).WithMagnitude(2 * radius)
		angle := math.Acos(math.Min(1, (dist/2)/(2*radius)))
		mid := geom.Circle{
			Center: c1.Center.Translate(v.Rotate(w.sign * angle)),
			Radius: radius,
		}
		t1 := c1.Center.Midpoint(mid.Center)
		t2 := mid.Center.Midpoint(c2.Center)

		dir := w.outer.Direction()
		paths = append(paths, Path{
			Word:   w.word,
			Start:  geom.NewArc(c1, start.Position, t1, dir),
			Middle: geom.NewArc(mid, t1, t2, dir.Reverse()),
			End:    geom.NewArc(c2, t2, end.Position, dir),
		})
	}
	return paths, nil
}
