// Package svg draws a serialized layout as a standalone SVG document.
//
// Nodes are rounded rectangles labeled with the element and component
// names. Destination ports sit on the top edge of a node, source ports on the
// bottom edge. Every relationship is a <path> with the class
// "relationship context" or "relationship service", so a stylesheet can tell
// the two kinds apart.
//
//	l := graph.FromLayout(g)
//	data := svg.Render(l, svg.WithTooltips(), svg.WithStateColors())
//
// Render never fails: every path was computed by the layout engine, and
// labels are XML-escaped.
package svg
