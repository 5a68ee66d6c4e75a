package layout

import "fmt"

// EdgeType is the position of an edge's destination relative to its source.
type EdgeType int

const (
	TopLeft EdgeType = iota
	Above
	TopRight
	ImmediateLeft
	ImmediateBelow
	ImmediateRight
	BottomLeft
	Below
	BottomRight
)

var edgeTypeNames = [...]string{
	TopLeft:        "top-left",
	Above:          "above",
	TopRight:       "top-right",
	ImmediateLeft:  "immediate-left",
	ImmediateBelow: "immediate-below",
	ImmediateRight: "immediate-right",
	BottomLeft:     "bottom-left",
	Below:          "below",
	BottomRight:    "bottom-right",
}

func (t EdgeType) String() string {
	if t < 0 || int(t) >= len(edgeTypeNames) {
		return fmt.Sprintf("EdgeType(%d)", int(t))
	}
	return edgeTypeNames[t]
}

// ParseEdgeType converts a name such as "top-left" to an EdgeType.
func ParseEdgeType(s string) (EdgeType, error) {
	for t, name := range edgeTypeNames {
		if name == s {
			return EdgeType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown edge type %q", s)
}

func (t EdgeType) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func (t *EdgeType) UnmarshalText(b []byte) error {
	v, err := ParseEdgeType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Immediate reports whether the destination sits exactly one row below the
// source, in which case the edge only crosses the gap between them.
func (t EdgeType) Immediate() bool {
	return t == ImmediateLeft || t == ImmediateBelow || t == ImmediateRight
}

// LeftColumnGap reports whether the edge climbs or descends through the gap
// left of the source column rather than the one to its right.
func (t EdgeType) LeftColumnGap() bool { return t == TopLeft || t == BottomLeft }

// classify picks the edge type from the row and column deltas. Rows are
// checked first: at or above, one below, further below.
func classify(srcRow, srcCol, destRow, destCol int) EdgeType {
	var base EdgeType
	switch {
	case destRow <= srcRow:
		base = TopLeft
	case destRow == srcRow+1:
		base = ImmediateLeft
	default:
		base = BottomLeft
	}
	switch {
	case destCol < srcCol:
		return base
	case destCol == srcCol:
		return base + 1
	default:
		return base + 2
	}
}

// route builds one edge per source, in node order then port order, and
// claims its lanes. Each claim takes the counter's current value and bumps
// it, so edges sharing a gap never share a lane.
func route(nodes []*Node, layers, columns []int) []*Edge {
	var edges []*Edge
	for _, n := range nodes {
		for _, s := range n.Sources {
			d := s.Destination
			e := &Edge{
				Tag:         s.Name() + " --> " + d.Name(),
				Category:    s.Kind,
				Source:      s,
				Destination: d,
				SrcRow:      int(n.Row),
				SrcCol:      int(n.Column),
				SrcIndex:    s.Index,
				SrcPorts:    len(n.Sources),
				DestRow:     int(d.Node.Row),
				DestCol:     int(d.Node.Column),
				DestIndex:   d.Index,
				DestPorts:   len(d.Node.Destinations),
				Channel1:    -1,
				Channel2:    -1,
				Channel3:    -1,
			}
			e.Type = classify(e.SrcRow, e.SrcCol, e.DestRow, e.DestCol)

			e.Channel1 = claim(layers, e.SrcRow+1)
			if !e.Type.Immediate() {
				gap := e.SrcCol + 1
				if e.Type.LeftColumnGap() {
					gap = e.SrcCol
				}
				e.Channel2 = claim(columns, gap)
				e.Channel3 = claim(layers, e.DestRow)
			}
			edges = append(edges, e)
		}
	}
	return edges
}

func claim(counters []int, slot int) int {
	ch := counters[slot]
	counters[slot]++
	return ch
}
