package dag_test

import (
	"fmt"

	"github.com/matzehuels/solargraph/pkg/dag"
)

func ExampleDAG_basic() {
	// Context relationships: web runs on server, server runs on host
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "web"})
	_ = g.AddNode(dag.Node{ID: "server"})
	_ = g.AddNode(dag.Node{ID: "host"})
	_ = g.AddEdge(dag.Edge{From: "web", To: "server", Label: "web / V1 / host"})
	_ = g.AddEdge(dag.Edge{From: "server", To: "host", Label: "server / V1 / host"})

	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Edges:", len(g.Edges()))
	fmt.Println("In-degree of host:", g.InDegree("host"))
	// Output:
	// Nodes: 3
	// Edges: 2
	// In-degree of host: 1
}

func ExampleDAG_Children() {
	// api calls both auth and cache
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "api"})
	_ = g.AddNode(dag.Node{ID: "auth"})
	_ = g.AddNode(dag.Node{ID: "cache"})
	_ = g.AddEdge(dag.Edge{From: "api", To: "auth"})
	_ = g.AddEdge(dag.Edge{From: "api", To: "cache"})

	fmt.Println("Children of api:", g.Children("api"))
	// Output:
	// Children of api: [auth cache]
}

func ExampleDAG_Sources() {
	g := dag.New()
	_ = g.AddNode(dag.Node{ID: "web"})
	_ = g.AddNode(dag.Node{ID: "cli"})
	_ = g.AddNode(dag.Node{ID: "db"})
	_ = g.AddEdge(dag.Edge{From: "web", To: "db"})
	_ = g.AddEdge(dag.Edge{From: "cli", To: "db"})

	for _, n := range g.Sources() {
		fmt.Println("Source:", n.ID)
	}
	// Output:
	// Source: cli
	// Source: web
}
