// Package render turns a computed layout into files a person can look at.
//
// # Overview
//
// The layout engine stops at coordinates and SVG path data. This package and
// its subpackages draw them:
//
//   - [svg]: the solution graph itself, nodes with ports and routed edges
//   - [nodelink]: a Graphviz node-link diagram of the same topology
//   - [ToPDF] and [ToPNG]: format conversion for either SVG
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (librsvg). Use
// [ConverterAvailable] to check for it before offering those formats.
//
//	data := svg.Render(l, svg.WithTooltips())
//	pdf, err := render.ToPDF(data)
//	png, err := render.ToPNG(data, 2.0)  // 2x scale
//
// [svg]: github.com/matzehuels/solargraph/pkg/render/svg
// [nodelink]: github.com/matzehuels/solargraph/pkg/render/nodelink
package render
