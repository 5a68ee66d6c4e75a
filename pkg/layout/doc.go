// Package layout computes the placement and edge routing of a solution graph.
//
// # Overview
//
// [Build] turns a catalog, a solution document and a set of view constants
// into a [Graph]: one [Node] per element placed on a grid of rows and
// columns, and one [Edge] per relationship with a precomputed path. The pass
// is a pure function of its inputs. It holds no state across calls and never
// performs I/O, so concurrent calls are safe.
//
// # Stages
//
// A pass runs six stages in order:
//
//  1. Catalog index: components keyed by "name - version" (last wins)
//  2. Topology: nodes, destination ports (one per cluster) and source
//     ports (one per relationship), with every reference resolved
//  3. Port sort: ports ordered by tag and indexed from zero
//  4. Placement: rows from the context relationships and columns from the
//     service relationships, each by longest-path topological sort, then
//     column compaction within each row
//  5. Routing: each edge is classified into one of nine [EdgeType] cases,
//     claims lanes from the shared row-gap and column-gap counters and
//     gets its path
//  6. Dimensions: canvas width and height
//
// # Channels
//
// Graph.Layers holds one counter per row gap: slot k is the gap above row k
// and the last slot is the gap below the bottom row. Graph.Columns holds one
// counter per column gap: slot k is the gap left of column k. Every edge that
// passes through a gap takes the current counter value as its lane and bumps
// the counter, so no two edges share a lane.
//
// # Errors
//
// A relationship that names a missing element, cluster or dependency fails
// the pass with a [*ReferenceError]. A cycle among context or service
// relationships fails it with a [*CycleError]. Both wrap sentinel errors
// ([ErrUnresolvedReference], [ErrCycle]) for use with errors.Is.
package layout
