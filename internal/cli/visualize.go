package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering a layout file.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		rflags  renderFlags
		opts    pipeline.Options
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "visualize <layout.json>",
		Short: "Render a computed layout",
		Long: `Render a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it. The layout already carries every position and edge path, so this
step does not run the engine again.

Use 'render' as a shortcut to go directly from documents to output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rflags.parse(&opts); err != nil {
				return err
			}
			return c.runVisualize(cmd.Context(), args[0], rflags, opts, noCache)
		},
	}

	registerRenderFlags(cmd, &rflags, &opts)
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, input string, rflags renderFlags, opts pipeline.Options, noCache bool) error {
	l, err := graph.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", opts.VizType))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return converterHint(err)
	}
	spinner.Stop()

	base := basePath(rflags.output, input)
	if rflags.output == "" {
		base = strings.TrimSuffix(base, ".layout")
	}
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
		output:    rflags.output,
		nodes:     len(l.Nodes),
		edges:     len(l.Edges),
		width:     l.Width,
		height:    l.Height,
		cacheHit:  cacheHit,
	})
}
