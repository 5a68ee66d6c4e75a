// Package path provides a small typed builder for edge geometry.
//
// A [Path] is a list of segments (move, line, elliptical arc, cubic Bezier)
// in absolute coordinates. Layout produces paths; renderers serialize them
// with [Path.SVG] or walk [Path.Segments] to drive other backends.
package path

import (
	"strconv"
	"strings"
)

// Point is an absolute position in pixels, y growing downward.
type Point struct {
	X, Y float64
}

// Op identifies the kind of a segment.
type Op int

const (
	OpMove Op = iota
	OpLine
	OpArc
	OpCubic
)

// Segment is one drawing command. Only the fields used by Op are set:
// To for every op, Radius and Sweep for arcs, C1 and C2 for cubics.
type Segment struct {
	Op     Op
	To     Point
	Radius float64
	Sweep  bool
	C1, C2 Point
}

// Path is an ordered list of segments.
type Path struct {
	segs []Segment
}

// New starts a path at p.
func New(p Point) *Path {
	return &Path{segs: []Segment{{Op: OpMove, To: p}}}
}

// Move starts a new subpath at p.
func (p *Path) Move(to Point) *Path {
	p.segs = append(p.segs, Segment{Op: OpMove, To: to})
	return p
}

// Line draws a straight line to the given point.
func (p *Path) Line(to Point) *Path {
	p.segs = append(p.segs, Segment{Op: OpLine, To: to})
	return p
}

// Arc draws a circular arc of radius r ending at the given point. A true
// sweep turns clockwise on screen.
func (p *Path) Arc(r float64, sweep bool, to Point) *Path {
	p.segs = append(p.segs, Segment{Op: OpArc, To: to, Radius: r, Sweep: sweep})
	return p
}

// Cubic draws a cubic Bezier curve with control points c1 and c2.
func (p *Path) Cubic(c1, c2, to Point) *Path {
	p.segs = append(p.segs, Segment{Op: OpCubic, To: to, C1: c1, C2: c2})
	return p
}

// Segments returns the segments in drawing order. The slice must not be
// modified.
func (p *Path) Segments() []Segment { return p.segs }

// Len returns the number of segments.
func (p *Path) Len() int { return len(p.segs) }

// Start returns the first point of the path.
func (p *Path) Start() Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	return p.segs[0].To
}

// End returns the current point of the path.
func (p *Path) End() Point {
	if len(p.segs) == 0 {
		return Point{}
	}
	return p.segs[len(p.segs)-1].To
}

// Sweeps returns the sweep flag of every arc in order.
func (p *Path) Sweeps() []bool {
	var out []bool
	for _, s := range p.segs {
		if s.Op == OpArc {
			out = append(out, s.Sweep)
		}
	}
	return out
}

// SVG serializes the path as SVG path data with absolute commands, e.g.
// "M 10 20 L 10 30 A 4 4 0 0 1 14 34". Coordinates are rounded to two
// decimals.
func (p *Path) SVG() string {
	var b strings.Builder
	for i, s := range p.segs {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case OpMove:
			b.WriteString("M ")
			writePoint(&b, s.To, ' ')
		case OpLine:
			b.WriteString("L ")
			writePoint(&b, s.To, ' ')
		case OpArc:
			b.WriteString("A ")
			b.WriteString(num(s.Radius))
			b.WriteByte(' ')
			b.WriteString(num(s.Radius))
			b.WriteString(" 0 0 ")
			if s.Sweep {
				b.WriteString("1 ")
			} else {
				b.WriteString("0 ")
			}
			writePoint(&b, s.To, ' ')
		case OpCubic:
			b.WriteString("C ")
			writePoint(&b, s.C1, ',')
			b.WriteByte(' ')
			writePoint(&b, s.C2, ',')
			b.WriteByte(' ')
			writePoint(&b, s.To, ',')
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p Point, sep byte) {
	b.WriteString(num(p.X))
	b.WriteByte(sep)
	b.WriteString(num(p.Y))
}

func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
