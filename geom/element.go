package geom

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Segment is a piece of a path that is traversed in a fixed direction.
// [Arc] and [Line] implement it.
type Segment interface {
	Start() Point
	End() Point
	Length() float64
	// Eval evaluates the segment at parameter t ∈ [0, 1].
	Eval(t float64) Point
	// StartTangent and EndTangent return the unit direction of travel at the
	// respective ends of the segment.
	StartTangent() Vec2
	EndTangent() Vec2
	// PathElements expresses the segment as "move to", "line to", and "cubic
	// Bézier to" commands. Arcs are approximated to within tolerance.
	PathElements(tolerance float64) iter.Seq[PathElement]
}

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
)

// PathElement is a single drawing command.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// EndPoint returns the point the pen is at after the element.
func (el PathElement) EndPoint() Point {
	if el.Kind == CubicToKind {
		return el.P2
	}
	return el.P0
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// Join concatenates the elements of consecutive segments into a single
// subpath. The leading MoveTo of every segment but the first is dropped.
func Join(tolerance float64, segs ...Segment) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, seg := range segs {
			for el := range seg.PathElements(tolerance) {
				if i > 0 && el.Kind == MoveToKind {
					continue
				}
				if !yield(el) {
					return
				}
			}
		}
	}
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		default:
			panic("unreachable")
		}
	}
	return err
}
