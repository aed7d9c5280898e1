package dubins

import (
	"fmt"
	"iter"

	"honnef.co/go/dubins/geom"
)

// Kind is the structural family of a path.
type Kind int

const (
	// CSC paths turn, drive straight, and turn again.
	CSC Kind = iota + 1
	// CCC paths consist of three turns, the middle one in the opposite
	// direction of the other two.
	CCC
)

func (k Kind) String() string {
	switch k {
	case CSC:
		return "CSC"
	case CCC:
		return "CCC"
	default:
		return "InvalidKind"
	}
}

// Word names the sequence of turns and straights of a path. The order of the
// constants is the order in which candidates are enumerated.
type Word int

const (
	RSR Word = iota
	LSL
	RSL
	LSR
	LRL
	RLR
)

var wordTurns = [...][3]byte{
	RSR: {'R', 'S', 'R'},
	LSL: {'L', 'S', 'L'},
	RSL: {'R', 'S', 'L'},
	LSR: {'L', 'S', 'R'},
	LRL: {'L', 'R', 'L'},
	RLR: {'R', 'L', 'R'},
}

func (w Word) String() string {
	if w < RSR || w > RLR {
		return "InvalidWord"
	}
	return string(wordTurns[w][:])
}

// Kind returns the family the word belongs to.
func (w Word) Kind() Kind {
	if w == LRL || w == RLR {
		return CCC
	}
	return CSC
}

// Path is a candidate or shortest path between two poses. It is a tagged
// union: Line is set for [CSC] paths and Middle for [CCC] paths, as reported
// by [Path.Kind].
type Path struct {
	Word   Word
	Start  geom.Arc
	Line   geom.Line
	Middle geom.Arc
	End    geom.Arc
}

func (p Path) Kind() Kind {
	return p.Word.Kind()
}

// Segments returns the three segments of the path in order of travel.
func (p Path) Segments() [3]geom.Segment {
	if p.Kind() == CCC {
		return [3]geom.Segment{p.Start, p.Middle, p.End}
	}
	return [3]geom.Segment{p.Start, p.Line, p.End}
}

// Length returns the sum of the segment lengths.
func (p Path) Length() float64 {
	var l float64
	for _, seg := range p.Segments() {
		l += seg.Length()
	}
	return l
}

// StartPoint returns the point the path starts at.
func (p Path) StartPoint() geom.Point { return p.Start.Start() }

// EndPoint returns the point the path ends at.
func (p Path) EndPoint() geom.Point { return p.End.End() }

// PathElements expresses the path as a single subpath of line and cubic
// Bézier commands, approximating arcs to within tolerance.
func (p Path) PathElements(tolerance float64) iter.Seq[geom.PathElement] {
	segs := p.Segments()
	return geom.Join(tolerance, segs[:]...)
}

// SVG returns the path as SVG path data.
func (p Path) SVG(tolerance float64) string {
	return geom.SVG(p.PathElements(tolerance), geom.SVGOptions{MaxPrecision: 6})
}

func (p Path) String() string {
	return fmt.Sprintf("%s(%s → %s, length %g)", p.Word, p.StartPoint(), p.EndPoint(), p.Length())
}
