package pipeline

import (
	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/layout"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout runs one layout pass over in and serializes the result.
// Engine errors are classified with [Classify].
func GenerateLayout(in *Input, opts Options) (graph.Layout, error) {
	var layoutOpts []layout.Option
	if opts.StrictKinds {
		layoutOpts = append(layoutOpts, layout.WithStrictKinds())
	}
	if opts.MaxEdges > 0 {
		layoutOpts = append(layoutOpts, layout.WithMaxEdges(opts.MaxEdges))
	}

	var (
		g   *layout.Graph
		err error
	)
	if in.Architecture != nil {
		g, err = layout.Architecture(in.Catalog, in.Architecture, in.View, layoutOpts...)
	} else {
		g, err = layout.Build(in.Catalog, in.Solution, in.View, layoutOpts...)
	}
	if err != nil {
		return graph.Layout{}, Classify(err)
	}
	return graph.FromLayout(g), nil
}
