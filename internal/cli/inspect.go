package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/solargraph/pkg/graph"
	"github.com/matzehuels/solargraph/pkg/pipeline"
)

// inspectCommand creates the inspect command, an interactive browser of the
// routed edges of a layout.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		flags inputFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <catalog> <solution> | inspect <layout.json>",
		Short: "Browse the routed edges of a layout",
		Long: `Browse the routed edges of a layout.

With two arguments a layout pass runs first; with one the argument is read as
a layout.json file. The table lists every edge with its routing case, category
and the lanes it claimed. Use --plain to print the table without the
interactive view.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.loadForInspect(cmd.Context(), args, flags)
			if err != nil {
				return err
			}
			m := NewEdgeListModel(l)
			if plain {
				m.Height = max(len(m.Edges), 1)
				fmt.Fprint(cmd.OutOrStdout(), m.View())
				return nil
			}
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print the edge table and exit")

	return cmd
}

func (c *CLI) loadForInspect(ctx context.Context, args []string, flags inputFlags) (graph.Layout, error) {
	if len(args) == 1 {
		l, err := graph.ReadLayoutFile(args[0])
		if err != nil {
			return graph.Layout{}, fmt.Errorf("load layout %s: %w", args[0], err)
		}
		return l, nil
	}

	in, err := flags.load(args)
	if err != nil {
		return graph.Layout{}, err
	}
	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Logger: c.Logger}
	flags.apply(&opts)
	return runner.Layout(ctx, in, opts)
}
