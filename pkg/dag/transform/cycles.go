package transform

import "github.com/matzehuels/solargraph/pkg/dag"

// BackEdges returns the edges that close a directed cycle, found by a
// white/gray/black depth-first search. The search starts from source nodes
// and then from any node still unvisited, both in ID order, and follows edges
// in insertion order, so the result is deterministic. The graph is not
// modified.
//
// Removing every returned edge leaves the graph acyclic. A nil result means
// the graph has no cycle.
func BackEdges(g *dag.DAG) []dag.Edge {
	const (
		white = iota
		gray
		black
	)

	out := make(map[string][]dag.Edge)
	for _, e := range g.Edges() {
		out[e.From] = append(out[e.From], e)
	}

	color := make(map[string]int, g.NodeCount())
	var back []dag.Edge

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, e := range out[node] {
			switch color[e.To] {
			case white:
				dfs(e.To)
			case gray:
				back = append(back, e)
			}
		}
		color[node] = black
	}

	for _, n := range g.Sources() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	for _, n := range g.Nodes() {
		if color[n.ID] == white {
			dfs(n.ID)
		}
	}

	return back
}
