package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/solargraph/pkg/pipeline"
	"github.com/matzehuels/solargraph/pkg/render"
)

// renderFlags are shared by render and visualize.
type renderFlags struct {
	formats string
	output  string
}

// registerRenderFlags binds the artifact flags to opts.
func registerRenderFlags(cmd *cobra.Command, f *renderFlags, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.VizType, "viz", pipeline.DefaultVizType, "visualization type: grid, nodelink")
	cmd.Flags().BoolVar(&opts.Tooltips, "tooltips", false, "add hover titles to nodes, ports and edges")
	cmd.Flags().BoolVar(&opts.StateColors, "state-colors", false, "color destination ports by cluster state")
	cmd.Flags().StringVar(&opts.Title, "title", "", "document title")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "show row, column and state in nodelink labels")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
}

// parse fills opts.Formats and validates the render options.
func (f *renderFlags) parse(opts *pipeline.Options) error {
	opts.Formats = parseFormats(f.formats)
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}
	return pipeline.ValidateVizType(opts.VizType)
}

// renderCommand creates the render command, which runs a layout pass and
// writes the requested artifacts in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		flags  inputFlags
		rflags renderFlags
		opts   pipeline.Options
	)

	cmd := &cobra.Command{
		Use:   "render <catalog> <solution>",
		Short: "Lay out a solution and render it",
		Long: `Lay out a solution and render it.

The render command is a shortcut for 'layout' followed by 'visualize'. PNG and
PDF output require rsvg-convert on the PATH.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rflags.parse(&opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args, flags, rflags, opts)
		},
	}

	flags.register(cmd)
	registerRenderFlags(cmd, &rflags, &opts)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, flags inputFlags, rflags renderFlags, opts pipeline.Options) error {
	in, err := flags.load(args)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	flags.apply(&opts)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d elements...", in.Elements()))
	spinner.Start()

	res, err := runner.Execute(ctx, in, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return converterHint(err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: res.Artifacts,
		formats:   opts.Formats,
		base:      basePath(rflags.output, args[1]),
		output:    rflags.output,
		nodes:     res.Stats.NodeCount,
		edges:     res.Stats.EdgeCount,
		width:     res.Layout.Width,
		height:    res.Layout.Height,
		cacheHit:  res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit,
	})
}

// converterHint adds an install hint when PNG or PDF export is unavailable.
func converterHint(err error) error {
	if stderrors.Is(err, render.ErrConverterMissing) {
		return fmt.Errorf("%w (install librsvg, or use -f svg)", err)
	}
	return err
}

// =============================================================================
// Artifact Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // output path without extension
	output    string // explicit output path for a single format
	nodes     int
	edges     int
	width     float64
	height    float64
	cacheHit  bool
}

// artifactPath returns where the artifact of format is written.
func (p artifactWriteParams) artifactPath(format string) string {
	if len(p.formats) == 1 && p.output != "" {
		return p.output
	}
	return p.base + "." + format
}

func writeArtifacts(p artifactWriteParams) error {
	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s artifact produced", format)
		}
		path := p.artifactPath(format)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	printStats(p.nodes, p.edges, p.width, p.height, p.cacheHit)
	return nil
}
