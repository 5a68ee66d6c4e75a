package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/layout"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the component, grid position and edge type to labels.
	// When false, only element names are shown.
	Detailed bool
}

// ToDOT converts a layout to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Elements of the same layout row share a rank. Context relationships are
// drawn solid and service relationships dashed.
func ToDOT(l graph.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	if len(l.Nodes) > 0 {
		buf.WriteString("\n")
	}
	for _, row := range slices.Sorted(maps.Keys(l.Rows)) {
		ids := l.Rows[row]
		quoted := make([]string, len(ids))
		for i, id := range ids {
			quoted[i] = strconv.Quote(id)
		}
		fmt.Fprintf(&buf, "  { rank=same; %s; }\n", strings.Join(quoted, "; "))
	}

	if len(l.Edges) > 0 {
		buf.WriteString("\n")
	}
	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.FromNode, e.ToNode, strings.Join(edgeAttrs(e, opts.Detailed), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed {
		return n.ID
	}

	parts := []string{fmt.Sprintf("row: %d, column: %d", n.Row, n.Column)}
	if n.Component != "" {
		parts = append([]string{n.Component}, parts...)
	}
	if n.State != "" {
		parts = append(parts, "state: "+n.State)
	}
	return n.ID + "\n" + strings.Join(parts, "\n")
}

func nodeAttrs(n graph.Node, detailed bool) []string {
	return []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
}

func edgeAttrs(e graph.Edge, detailed bool) []string {
	attrs := []string{fmt.Sprintf("tooltip=%q", e.ID)}
	if e.Category == layout.Service {
		attrs = append(attrs, "style=dashed", "color=\"#d97706\"")
	} else {
		attrs = append(attrs, "style=solid", "color=\"#1f6feb\"")
	}
	if detailed {
		attrs = append(attrs, fmt.Sprintf("label=%q", e.Type.String()), "fontsize=12")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion to PDF or PNG by the render package.
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is [RenderSVG] with a caller-supplied context.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz root tag, which sizes the image in
// points, with a plain pixel-sized one.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
