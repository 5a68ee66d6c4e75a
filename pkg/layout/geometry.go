package layout

import (
	"math"

	"github.com/matzehuels/solargraph/pkg/layout/path"
)

// sweeps lists the arc sweep flags of each edge type in drawing order. A true
// flag turns clockwise on screen. ImmediateBelow is resolved per edge from the
// direction it heads; see immediateBelowSweeps.
var sweeps = map[EdgeType][]bool{
	TopLeft:        {true, true, false, false},
	Above:          {false, false, false, false},
	TopRight:       {false, false, true, true},
	BottomLeft:     {true, false, true, false},
	Below:          {false, true, true, false},
	BottomRight:    {false, true, false, true},
	ImmediateLeft:  {true, false},
	ImmediateRight: {false, true},
}

var immediateBelowSweeps = map[bool][]bool{
	true:  {false, true}, // heading right
	false: {true, false}, // heading left
}

// Sweeps returns the arc sweep flags an edge of type t draws, for an
// immediate-below edge heading right or left. It returns nil for an
// immediate-below edge drawn as a single curve.
func Sweeps(t EdgeType, headingRight bool) []bool {
	if t == ImmediateBelow {
		return immediateBelowSweeps[headingRight]
	}
	return sweeps[t]
}

// geometry places nodes and ports in pixels and draws every edge. It runs
// after routing so lane fractions use the final counter totals.
type geometry struct {
	view    View
	m       metrics
	layers  []int
	columns []int
}

func (g geometry) placeNodes(nodes []*Node) {
	v, m := g.view, g.m
	for _, n := range nodes {
		n.X = v.DX + float64(n.Column)*m.w3
		n.Y = v.DY + float64(n.Row)*m.h3
		for _, s := range n.Sources {
			s.Position = path.Point{
				X: n.X + m.r + portOffset(s.Index, len(n.Sources), m.w2),
				Y: n.Y + v.Node.Height + m.r,
			}
		}
		for _, d := range n.Destinations {
			d.Position = path.Point{
				X: n.X + m.r + portOffset(d.Index, len(n.Destinations), m.w2),
				Y: n.Y - m.r,
			}
		}
	}
}

// portOffset spreads n ports evenly over width w.
func portOffset(index, n int, w float64) float64 {
	return float64(index+1) / float64(n+1) * w
}

// laneY is the y coordinate of lane ch in the row gap above row k.
func (g geometry) laneY(k, ch int) float64 {
	return float64(k)*g.m.h3 + 2*g.m.r + float64(ch+1)/float64(g.layers[k]+1)*g.m.cy
}

// laneX is the x coordinate of lane ch in the column gap left of column k.
func (g geometry) laneX(k, ch int) float64 {
	return float64(k)*g.m.w3 + g.m.r + float64(ch+1)/float64(g.columns[k]+1)*g.m.cx
}

func (g geometry) draw(e *Edge) *path.Path {
	src, dst := e.Source.Position, e.Destination.Position
	r := g.m.r
	l1 := g.laneY(e.SrcRow+1, e.Channel1)

	if e.Type.Immediate() {
		if e.Type == ImmediateBelow && math.Abs(dst.X-src.X) < 2*r {
			mid := (src.Y + dst.Y) / 2
			return path.New(src).Cubic(path.Point{X: src.X, Y: mid}, path.Point{X: dst.X, Y: mid}, dst)
		}
		s := Sweeps(e.Type, dst.X > src.X)
		h := sign(dst.X - src.X)
		return path.New(src).
			Line(path.Point{X: src.X, Y: l1 - r}).
			Arc(r, s[0], path.Point{X: src.X + h*r, Y: l1}).
			Line(path.Point{X: dst.X - h*r, Y: l1}).
			Arc(r, s[1], path.Point{X: dst.X, Y: l1 + r}).
			Line(dst)
	}

	gap := e.SrcCol + 1
	if e.Type.LeftColumnGap() {
		gap = e.SrcCol
	}
	x2 := g.laneX(gap, e.Channel2)
	l3 := g.laneY(e.DestRow, e.Channel3)

	s := sweeps[e.Type]
	h1 := sign(x2 - src.X)
	v := sign(l3 - l1)
	h2 := sign(dst.X - x2)
	return path.New(src).
		Line(path.Point{X: src.X, Y: l1 - r}).
		Arc(r, s[0], path.Point{X: src.X + h1*r, Y: l1}).
		Line(path.Point{X: x2 - h1*r, Y: l1}).
		Arc(r, s[1], path.Point{X: x2, Y: l1 + v*r}).
		Line(path.Point{X: x2, Y: l3 - v*r}).
		Arc(r, s[2], path.Point{X: x2 + h2*r, Y: l3}).
		Line(path.Point{X: dst.X - h2*r, Y: l3}).
		Arc(r, s[3], path.Point{X: dst.X, Y: l3 + r}).
		Line(dst)
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
