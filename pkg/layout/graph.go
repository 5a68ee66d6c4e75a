package layout

import (
	"fmt"

	"github.com/matzehuels/solargraph/pkg/layout/path"
	"github.com/matzehuels/solargraph/pkg/model"
)

// Kind is the relationship kind that drives placement.
type Kind int

const (
	Context Kind = iota // places rows
	Service             // places columns
)

var kindNames = [...]string{Context: model.TypeContext, Service: model.TypeService}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts "context" or "service" to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown relationship kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Coord is a row or column index on the layout grid.
type Coord int

// Unplaced marks a coordinate that placement has not assigned.
const Unplaced Coord = -1

// Placed reports whether the coordinate has been assigned.
func (c Coord) Placed() bool { return c >= 0 }

// Node is one element of the solution placed on the grid.
type Node struct {
	Name      string
	Component string
	State     string
	Target    string

	Row    Coord
	Column Coord

	// Inbound relationship counts by kind, taken before placement.
	InboundContext int
	InboundService int

	Sources      []*Source      // outbound ports, one per relationship
	Destinations []*Destination // inbound ports, one per cluster

	X, Y float64 // top-left corner in pixels
}

// Source is an outbound port: one relationship of one cluster.
type Source struct {
	Tag     string // relationship name, the sort key
	Index   int    // position among the node's sources after sorting
	Node    *Node
	Version string // version of the owning cluster
	Kind    Kind

	Relationship *model.Relationship
	Destination  *Destination // resolved target port

	Position path.Point // port center
}

// Name returns the qualified name "element / version / relationship".
func (s *Source) Name() string {
	return s.Node.Name + " / " + s.Version + " / " + s.Tag
}

// Destination is an inbound port: one cluster of the node.
type Destination struct {
	Tag    string // cluster version, the sort key
	Index  int    // position among the node's destinations after sorting
	Node   *Node
	State  string
	Target string
	Size   int
	Min    int
	Max    int

	Position path.Point // port center
}

// Name returns the qualified name "element / version".
func (d *Destination) Name() string { return d.Node.Name + " / " + d.Tag }

// Edge is one routed relationship.
type Edge struct {
	Tag      string // "source name --> destination name"
	Type     EdgeType
	Category Kind

	Source      *Source
	Destination *Destination

	SrcRow, SrcCol, SrcIndex, SrcPorts     int
	DestRow, DestCol, DestIndex, DestPorts int

	// Lanes claimed from the gap counters, -1 when the case does not use
	// the slot. Immediate cases only use Channel1.
	Channel1 int // Layers[SrcRow+1]
	Channel2 int // Columns[SrcCol] or Columns[SrcCol+1]
	Channel3 int // Layers[DestRow]

	Path *path.Path
}

// Graph is the result of one layout pass.
type Graph struct {
	Nodes   []*Node // sorted by row, then column
	Edges   []*Edge // in routing order
	Layers  []int   // lanes claimed per row gap, len rows+1
	Columns []int   // lanes claimed per column gap, len columns+1
	Width   float64
	Height  float64
	View    View

	byName map[string]*Node
}

// Node returns the node of the named element.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// RowCount returns the number of rows.
func (g *Graph) RowCount() int { return len(g.Layers) - 1 }

// ColumnCount returns the number of columns of the widest row.
func (g *Graph) ColumnCount() int { return len(g.Columns) - 1 }
