package pipeline

import (
	"fmt"

	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/render"
	"github.com/matzehuels/solargraph/pkg/render/nodelink"
	"github.com/matzehuels/solargraph/pkg/render/svg"
)

// Render generates output artifacts in the requested formats.
// PNG and PDF are converted from the SVG of the chosen visualization type.
func Render(l graph.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var image []byte
	drawSVG := func() ([]byte, error) {
		if image != nil {
			return image, nil
		}
		var err error
		image, err = renderSVG(l, opts)
		return image, err
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = drawSVG()
		case FormatPNG:
			if data, err = drawSVG(); err == nil {
				data, err = render.ToPNG(data, opts.Scale)
			}
		case FormatPDF:
			if data, err = drawSVG(); err == nil {
				data, err = render.ToPDF(data)
			}
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		case FormatDOT:
			data = []byte(nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderSVG(l graph.Layout, opts Options) ([]byte, error) {
	if opts.IsNodelink() {
		return nodelink.RenderSVG(nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed}))
	}
	return svg.Render(l, svgOptions(opts)...), nil
}

func svgOptions(opts Options) []svg.Option {
	var svgOpts []svg.Option
	if opts.Tooltips {
		svgOpts = append(svgOpts, svg.WithTooltips())
	}
	if opts.StateColors {
		svgOpts = append(svgOpts, svg.WithStateColors())
	}
	if opts.Title != "" {
		svgOpts = append(svgOpts, svg.WithTitle(opts.Title))
	}
	return svgOpts
}
