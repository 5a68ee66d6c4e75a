package layout

import (
	"cmp"
	"slices"

	"github.com/matzehuels/solargraph/pkg/dag"
	"github.com/matzehuels/solargraph/pkg/dag/transform"
)

// place assigns rows from context relationships and columns from service
// relationships, then compacts columns within each row. It returns the
// nodes in (row, column) order with the row count and the widest row.
func place(t *topology) (nodes []*Node, rows, maxColumn int, err error) {
	if err := depthPass(t, Context, func(n *Node, d int) { n.Row = Coord(d) }); err != nil {
		return nil, 0, 0, err
	}
	if err := depthPass(t, Service, func(n *Node, d int) { n.Column = Coord(d) }); err != nil {
		return nil, 0, 0, err
	}

	nodes = slices.Clone(t.nodes)
	slices.SortFunc(nodes, func(a, b *Node) int {
		return cmp.Or(
			cmp.Compare(a.Row, b.Row),
			cmp.Compare(a.Column, b.Column),
			cmp.Compare(a.Name, b.Name),
		)
	})

	col := 0
	for i, n := range nodes {
		if i == 0 || n.Row != nodes[i-1].Row {
			col = 0
			rows++
		}
		n.Column = Coord(col)
		col++
		maxColumn = max(maxColumn, col)
	}
	return nodes, rows, maxColumn, nil
}

// depthPass runs Kahn layering over the relationships of one kind and
// stores each node's depth with set.
func depthPass(t *topology, kind Kind, set func(*Node, int)) error {
	g := dag.New()
	for _, n := range t.nodes {
		if err := g.AddNode(dag.Node{ID: n.Name}); err != nil {
			return err
		}
	}
	for _, s := range t.sources {
		if s.Kind != kind {
			continue
		}
		edge := dag.Edge{From: s.Node.Name, To: s.Destination.Node.Name, Label: s.Name()}
		if err := g.AddEdge(edge); err != nil {
			return err
		}
	}

	if unplaced := transform.AssignLayers(g); len(unplaced) > 0 {
		cerr := &CycleError{Kind: kind, Elements: unplaced}
		for _, e := range transform.BackEdges(g) {
			cerr.Edges = append(cerr.Edges, e.Label)
		}
		return cerr
	}

	for _, n := range t.nodes {
		dn, _ := g.Node(n.Name)
		set(n, dn.Row)
	}
	return nil
}
