// Package nodelink renders a layout as a Graphviz node-link diagram.
//
// # Overview
//
// The solution graph drawn by [svg] places every element on a fixed grid and
// routes edges through lanes. A node-link diagram lets Graphviz place the
// same topology freely, which is often easier to read for large solutions.
//
// # Usage
//
// Convert a layout to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	data, err := nodelink.RenderSVG(dot)
//
// PDF and PNG output is converted from that SVG by the parent render
// package.
//
// # DOT Format
//
// [ToDOT] keeps the layout's rows as Graphviz ranks (rank=same), so context
// relationships still point downward. Context edges are solid and service
// edges dashed. With Options.Detailed, node labels add the component and
// grid position and edges are labeled with their routing type.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [svg]: github.com/matzehuels/solargraph/pkg/render/svg
package nodelink
