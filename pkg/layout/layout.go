package layout

import (
	"fmt"

	"github.com/matzehuels/solargraph/pkg/model"
)

// Option configures a layout pass.
type Option func(*config)

type config struct {
	strictKinds bool
	maxEdges    int
}

// WithStrictKinds makes the catalog the only source of relationship kinds.
// Without it, a relationship whose dependency is missing from the catalog
// falls back to its own Type field.
func WithStrictKinds() Option { return func(c *config) { c.strictKinds = true } }

// WithMaxEdges lowers the relationship limit of a pass. Values outside
// (0, MaxEdges] are ignored.
func WithMaxEdges(n int) Option {
	return func(c *config) {
		if n > 0 && n <= MaxEdges {
			c.maxEdges = n
		}
	}
}

// Build runs one layout pass. The inputs are only read; the returned graph is
// freshly allocated. A nil solution yields an empty graph.
//
// Build fails with [ErrInvalidView] for unusable view constants, a
// [*ReferenceError] for a dangling relationship, a [*CycleError] when the
// context or service relationships are cyclic, and [ErrTooLarge] past the
// relationship limit. No partial graph is returned on error.
func Build(catalog model.Catalog, solution *model.Solution, view View, opts ...Option) (*Graph, error) {
	cfg := config{maxEdges: MaxEdges}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := view.Validate(); err != nil {
		return nil, err
	}

	t, err := extract(NewIndex(catalog), solution, cfg)
	if err != nil {
		return nil, err
	}

	sortPorts(t.nodes)

	nodes, rows, maxColumn, err := place(t)
	if err != nil {
		return nil, err
	}

	layers := make([]int, rows+1)
	columns := make([]int, maxColumn+1)
	edges := route(nodes, layers, columns)

	geo := geometry{view: view, m: view.metrics(), layers: layers, columns: columns}
	geo.placeNodes(nodes)
	for _, e := range edges {
		e.Path = geo.draw(e)
	}

	width, height := dimensions(view, rows, maxColumn)
	return &Graph{
		Nodes:   nodes,
		Edges:   edges,
		Layers:  layers,
		Columns: columns,
		Width:   width,
		Height:  height,
		View:    view,
		byName:  t.byName,
	}, nil
}

// Architecture runs a layout pass over an architecture document.
func Architecture(catalog model.Catalog, arch *model.Architecture, view View, opts ...Option) (*Graph, error) {
	if arch == nil {
		return Build(catalog, nil, view, opts...)
	}
	g, err := Build(catalog, arch.Solution(), view, opts...)
	if err != nil {
		return nil, fmt.Errorf("architecture %s: %w", arch.Architecture, err)
	}
	return g, nil
}
