package svg

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/solargraph/pkg/graph"
)

const baseCSS = `
    .node rect { fill: #ffffff; stroke: #333333; stroke-width: 1.5; }
    .node .name { font: 600 %.1fpx sans-serif; fill: #222222; }
    .node .component { font: 400 %.1fpx sans-serif; fill: #777777; }
    .port { fill: #ffffff; stroke: #333333; }
    .relationship { fill: none; stroke-width: 1.5; }
    .relationship.context { stroke: #1f6feb; }
    .relationship.service { stroke: #d97706; stroke-dasharray: 6 3; }
    .relationship:hover { stroke-width: 3; }`

// stateColors fills destination ports by cluster state when
// [WithStateColors] is set.
var stateColors = map[string]string{
	"initial":  "#e5e7eb",
	"inactive": "#fbbf24",
	"active":   "#22c55e",
}

// Option configures the SVG renderer.
type Option func(*renderer)

type renderer struct {
	tooltips    bool
	stateColors bool
	title       string
}

// WithTooltips adds <title> elements to nodes and ports.
func WithTooltips() Option { return func(r *renderer) { r.tooltips = true } }

// WithStateColors fills destination ports by the state of their cluster.
func WithStateColors() Option { return func(r *renderer) { r.stateColors = true } }

// WithTitle sets the document title.
func WithTitle(s string) Option { return func(r *renderer) { r.title = s } }

// Render draws a serialized layout as a standalone SVG document.
// The canvas is the layout frame widened by one column pitch, so the
// rightmost column and its lanes stay inside the image.
func Render(l graph.Layout, opts ...Option) []byte {
	var r renderer
	for _, opt := range opts {
		opt(&r)
	}

	w, h := FrameSize(l)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(r.title))
	}

	nameSize := fontSize(l.View.Node.Width, l.View.Node.Height, longestID(l.Nodes))
	fmt.Fprintf(&buf, "  <style>"+baseCSS+"\n  </style>\n", nameSize, nameSize*0.8)
	fmt.Fprintf(&buf, `  <rect class="background" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n", w, h)

	buf.WriteString("  <g class=\"edges\">\n")
	for _, e := range l.Edges {
		r.renderEdge(&buf, e)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("  <g class=\"nodes\">\n")
	for _, n := range l.Nodes {
		r.renderNode(&buf, n, l.View.Port.Diameter/2, l.View.Port.Border, nameSize)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// FrameSize returns the canvas size Render uses for l.
func FrameSize(l graph.Layout) (float64, float64) {
	return l.Width + l.View.Node.Width + l.View.DX, l.Height
}

func (r renderer) renderEdge(buf *bytes.Buffer, e graph.Edge) {
	fmt.Fprintf(buf, `    <path id="%s" class="relationship %s" data-type="%s" d="%s">`,
		escapeXML(e.ID), escapeXML(e.Category.String()), escapeXML(e.Type.String()), escapeXML(e.Path))
	fmt.Fprintf(buf, "<title>%s</title></path>\n", escapeXML(e.ID))
}

func (r renderer) renderNode(buf *bytes.Buffer, n graph.Node, radius, border, size float64) {
	fmt.Fprintf(buf, `    <g class="node" id="node-%s">`+"\n", escapeXML(n.ID))
	if r.tooltips {
		fmt.Fprintf(buf, "      <title>%s</title>\n", escapeXML(nodeTooltip(n)))
	}
	fmt.Fprintf(buf, `      <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4"/>`+"\n",
		n.X, n.Y, n.Width, n.Height)

	cx := n.X + n.Width/2
	label := truncate(n.ID, n.Width, size)
	if n.Component == "" {
		fmt.Fprintf(buf, `      <text class="name" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			cx, n.Y+n.Height/2, escapeXML(label))
	} else {
		fmt.Fprintf(buf, `      <text class="name" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			cx, n.Y+n.Height*0.4, escapeXML(label))
		fmt.Fprintf(buf, `      <text class="component" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
			cx, n.Y+n.Height*0.75, escapeXML(truncate(n.Component, n.Width, size*0.8)))
	}

	for _, p := range n.Destinations {
		r.renderPort(buf, p, "destination", radius, border, r.portFill(p.State))
	}
	for _, p := range n.Sources {
		r.renderPort(buf, p, "source "+p.Kind, radius, border, "")
	}
	buf.WriteString("    </g>\n")
}

func (r renderer) renderPort(buf *bytes.Buffer, p graph.Port, class string, radius, border float64, fill string) {
	if radius <= 0 {
		return
	}
	fmt.Fprintf(buf, `      <circle class="port %s" cx="%.1f" cy="%.1f" r="%.1f" stroke-width="%.1f"`,
		escapeXML(class), p.X, p.Y, radius, border)
	if fill != "" {
		fmt.Fprintf(buf, ` style="fill: %s"`, escapeXML(fill))
	}
	if !r.tooltips {
		buf.WriteString("/>\n")
		return
	}
	fmt.Fprintf(buf, "><title>%s</title></circle>\n", escapeXML(portTooltip(p)))
}

func (r renderer) portFill(state string) string {
	if !r.stateColors {
		return ""
	}
	return stateColors[state]
}

func nodeTooltip(n graph.Node) string {
	parts := []string{n.ID}
	if n.Component != "" {
		parts = append(parts, "component: "+n.Component)
	}
	if n.State != "" {
		parts = append(parts, "state: "+n.State)
	}
	if n.Target != "" && n.Target != n.State {
		parts = append(parts, "target: "+n.Target)
	}
	return strings.Join(parts, "\n")
}

func portTooltip(p graph.Port) string {
	if p.Kind != "" {
		return fmt.Sprintf("%s (%s)", p.ID, p.Kind)
	}
	s := p.ID
	if p.State != "" {
		s += "\nstate: " + p.State
	}
	if p.Max > 0 {
		s += fmt.Sprintf("\nsize: %d [%d..%d]", p.Size, p.Min, p.Max)
	}
	return s
}

func longestID(nodes []graph.Node) int {
	n := 0
	for _, node := range nodes {
		n = max(n, len(node.ID))
	}
	return n
}
