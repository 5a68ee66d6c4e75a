// Package transform provides the depth and cycle passes run over a
// relationship graph before placement.
//
// # Layer Assignment
//
// [AssignLayers] computes the row of each node from its depth below the
// source nodes (those with no incoming edges), using a longest-path
// topological traversal so that every edge points strictly downward. Nodes it
// cannot reach are returned instead of being left at a misleading row.
//
// # Cycles
//
// [BackEdges] lists the edges that close a cycle without touching the graph.
// Layout uses it to name the offending relationships in its error:
//
//	if unplaced := transform.AssignLayers(g); len(unplaced) > 0 {
//		return &CycleError{Elements: unplaced, Edges: transform.BackEdges(g)}
//	}
package transform
