package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/pipeline"
)

// layoutCommand creates the layout command, which writes a layout as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		flags  inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout <catalog> <solution>",
		Short: "Compute the layout of a solution",
		Long: `Compute the layout of a solution.

The layout command places every element of the solution on the grid, routes
each relationship and writes the result as layout.json. The file can be
rendered later with 'visualize' or browsed with 'inspect'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args, flags, output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <solution>.layout.json)")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, args []string, flags inputFlags, output string) error {
	in, err := flags.load(args)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Logger: c.Logger}
	flags.apply(&opts)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d elements...", in.Elements()))
	spinner.Start()

	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, in, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", args[1]) + ".layout.json"
	}
	if err := graph.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Nodes), len(l.Edges), l.Width, l.Height, cacheHit)
	printNewline()
	printNextStep("Render", "solargraph visualize "+outputPath)

	return nil
}
