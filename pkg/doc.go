// Package pkg provides the libraries behind solargraph, a layout and
// edge-routing engine for solution graphs.
//
// # Overview
//
// A solution is a set of deployed elements whose clusters are connected by
// relationships. The catalog says, per component version, whether a
// relationship is a context relationship (placed vertically) or a service
// relationship (placed horizontally). Solargraph places every element on a
// grid and routes every relationship as an orthogonal path through lanes
// reserved between rows and columns.
//
// # Architecture
//
//	catalog.yaml + solution.yaml
//	         ↓
//	    [io] package (decode and validate documents)
//	         ↓
//	    [layout] package (placement, port sorting, edge routing)
//	         ↓
//	    [graph] package (serializable layout)
//	         ↓
//	    [render] packages (SVG, DOT, PNG, PDF)
//
// [pipeline] ties the stages together with content-addressed caching from
// [cache], and [server] exposes them over HTTP.
//
// # Quick Start
//
//	catalog, _ := io.ImportCatalog("catalog.yaml")
//	solution, _ := io.ImportSolution("solution.yaml")
//
//	g, err := layout.Build(catalog, solution, layout.DefaultView())
//	if err != nil {
//	    return err
//	}
//	svg := svg.Render(graph.FromLayout(g))
//
// # Main Packages
//
//   - [model]: catalog, solution and architecture documents
//   - [dag]: per-kind relationship digraph with layering in [dag/transform]
//   - [layout]: the engine; [layout/path] holds edge geometry
//   - [graph]: JSON exchange format of a layout pass
//   - [io]: document and view decoding
//   - [render/svg], [render/nodelink]: renderers
//   - [cache], [pipeline], [observability], [server]: infrastructure
//   - [errors]: coded errors shared by the CLI and the API
//
// [model]: github.com/matzehuels/solargraph/pkg/model
// [dag]: github.com/matzehuels/solargraph/pkg/dag
// [dag/transform]: github.com/matzehuels/solargraph/pkg/dag/transform
// [layout]: github.com/matzehuels/solargraph/pkg/layout
// [layout/path]: github.com/matzehuels/solargraph/pkg/layout/path
// [graph]: github.com/matzehuels/solargraph/pkg/graph
// [io]: github.com/matzehuels/solargraph/pkg/io
// [render]: github.com/matzehuels/solargraph/pkg/render
// [render/svg]: github.com/matzehuels/solargraph/pkg/render/svg
// [render/nodelink]: github.com/matzehuels/solargraph/pkg/render/nodelink
// [cache]: github.com/matzehuels/solargraph/pkg/cache
// [pipeline]: github.com/matzehuels/solargraph/pkg/pipeline
// [observability]: github.com/matzehuels/solargraph/pkg/observability
// [server]: github.com/matzehuels/solargraph/pkg/server
// [errors]: github.com/matzehuels/solargraph/pkg/errors
package pkg
