package dubins

import (
	"log/slog"

	"honnef.co/go/dubins/geom"
)

// ShortestPath returns the shortest of the candidates. It reports false if
// there are none.
//
// Lengths that differ by no more than [geom.Epsilon] are considered equal,
// and of equally long candidates the one that comes first wins.
func ShortestPath(candidates []Path) (Path, bool) {
	if len(candidates) == 0 {
		return Path{}, false
	}
	best := 0
	bestLen := candidates[0].Length()
	for i, p := range candidates[1:] {
		if l := p.Length(); geom.Compare(l, bestLen) < 0 {
			best = i + 1
			bestLen = l
		}
	}
	return candidates[best], true
}

// FindShortestPath returns the shortest path from start to end for a vehicle
// with the given minimum turning radius. It reports false if no path exists,
// which is the case for identical poses. Invalid input is reported the same
// way as by [EnumerateAllCandidates].
func FindShortestPath(start, end Pose, radius float64) (Path, bool, error) {
	return findShortestPath(start, end, radius, Logger())
}

func findShortestPath(start, end Pose, radius float64, logger *slog.Logger) (Path, bool, error) {
	candidates, err := enumerate(start, end, radius, logger)
	if err != nil {
		return Path{}, false, err
	}
	p, ok := ShortestPath(candidates)
	if !ok {
		logger.Debug("no path found", "start", start, "end", end)
		return Path{}, false, nil
	}
	logger.Debug("selected path", "word", p.Word, "length", p.Length(), "candidates", len(candidates))
	return p, true, nil
}
