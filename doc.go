// Package dubins computes shortest paths between poses for vehicles that have
// a minimum turning radius and cannot drive backwards.
//
// A pose is a position together with a heading. Between two poses, the
// shortest path of such a vehicle consists of at most three pieces, each of
// which is either a turn at the minimum radius or a straight line. Only two
// families need to be considered: CSC paths (turn, straight, turn) and CCC
// paths (turn, turn in the other direction, turn).
//
// # Turning circles
//
// At every pose, a vehicle turning as hard as it can follows one of two
// circles: one to its left and one to its right. See [TurningCircles]. The
// side of the circle determines the rotation sense with which it is
// traversed, which is not recoverable from the circle itself and is thus
// carried along explicitly as a [Turn].
//
// # Candidates
//
// [EnumerateAllCandidates] constructs every candidate geometrically. For the
// four CSC words RSR, LSL, RSL, and LSR it joins the appropriate turning
// circles with a directed common tangent (see [geom.TangentLine]). For the
// two CCC words LRL and RLR it places a third circle of the same radius
// touching both same-handed circles, which is only possible if their centers
// are at most four radii apart. Words whose geometry does not exist are
// skipped.
//
// [ShortestPath] picks the shortest candidate, and [FindShortestPath]
// combines both steps. [Planner] does the same for a fixed radius and an
// optional logger.
//
// # Paths
//
// A [Path] holds fully realized geometry: arcs with their rotation sense and
// the straight line of CSC paths. It can be rendered with
// [Path.PathElements] or [Path.SVG].
//
// # Errors
//
// Geometric degeneracies are not errors. Identical start and end poses have
// no path, and missing tangents or circles that are too far apart merely
// remove candidates. A non-positive radius or a heading without a direction
// is an error, reported by wrapping [ErrInvalidRadius] or [ErrInvalidPose].
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog] logger
// that receives debug records about skipped candidates and selected paths.
package dubins
