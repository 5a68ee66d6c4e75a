// Package dag provides the directed graph that backs layered placement.
//
// # Overview
//
// Solargraph places every element of a solution twice: once along the
// context relationships (rows) and once along the service relationships
// (columns). Each pass builds one [DAG] whose nodes are element names and
// whose edges are the relationships of that kind. The transform subpackage
// then assigns every node a depth.
//
// # Basic Usage
//
// Create a new graph with [New], add nodes with [DAG.AddNode], and edges with
// [DAG.AddEdge]:
//
//	g := dag.New()
//	g.AddNode(dag.Node{ID: "web"})
//	g.AddNode(dag.Node{ID: "server"})
//	g.AddEdge(dag.Edge{From: "web", To: "server", Label: "web / V1 / host"})
//
// Query the graph structure with [DAG.Children], [DAG.InDegree] and
// [DAG.Sources]. Iteration helpers return nodes in ID order so that every
// pass over the graph is deterministic.
//
// # Cycles
//
// Relationship documents are user input and may contain cycles. The graph
// accepts them, and the transform package lists the nodes and edges involved.
//
// # Concurrency
//
// DAG instances are not safe for concurrent use. Each layout pass builds its
// own graphs, so separate passes never share one.
//
// [transform]: github.com/matzehuels/solargraph/pkg/dag/transform
package dag
