// Package cli implements the solargraph command-line interface.
//
// The commands read catalog and solution documents, run a layout pass
// through [pipeline.Runner] and write the layout or its renderings:
//   - layout: compute a layout and write it as JSON
//   - render: compute a layout and write svg, png, pdf, json or dot
//   - visualize: render a previously written layout
//   - inspect: browse the routed edges of a layout interactively
//   - serve: run the HTTP API
//   - cache: manage the local layout cache
//
// All commands accept --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/solargraph/pkg/buildinfo"
	"github.com/matzehuels/solargraph/pkg/cache"
	"github.com/matzehuels/solargraph/pkg/pipeline"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "solargraph",
		Short:        "Solargraph lays out and routes solution graphs",
		Long:         `Solargraph places the elements of a solution on a grid and routes every relationship between them as an orthogonal path, so large deployments can be drawn without crossing boxes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the local file cache.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	store, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// newCache opens the file cache. A cache directory that cannot be located
// disables caching instead of failing the command.
func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		c.Logger.Warn("Caching disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Input Flags
// =============================================================================

// inputFlags are shared by every command that runs a layout pass.
type inputFlags struct {
	view         string
	architecture bool
	strictKinds  bool
	noCache      bool
	refresh      bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.view, "view", "", "view constants file (.toml, .yaml or .json)")
	cmd.Flags().BoolVar(&f.architecture, "architecture", false, "read the second argument as an architecture document")
	cmd.Flags().BoolVar(&f.strictKinds, "strict-kinds", false, "require relationship kinds to come from the catalog")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&f.refresh, "refresh", false, "recompute even when a cached layout exists")
}

// load reads the catalog and solution named by args.
func (f *inputFlags) load(args []string) (*pipeline.Input, error) {
	return pipeline.Load(pipeline.Sources{
		Catalog:      args[0],
		Solution:     args[1],
		Architecture: f.architecture,
		View:         f.view,
	})
}

// apply copies the layout-relevant flags into opts.
func (f *inputFlags) apply(opts *pipeline.Options) {
	opts.StrictKinds = f.strictKinds
	opts.Refresh = f.refresh
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// basePath derives the base output path. Without an explicit output, the
// input's extension is stripped. A known format extension on output is
// stripped as well so multiple formats can share one base.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
