// Package pipeline runs the load → layout → render chain shared by the CLI
// and the HTTP server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: decode the catalog, the solution (or architecture) and the view
//  2. Layout: place elements and route relationships ([layout.Build])
//  3. Render: draw the layout as SVG, PNG, PDF, DOT or JSON
//
// Each stage can be run on its own. [Runner] adds caching keyed by the
// content hash of the inputs, observability hooks and logging.
//
// # Usage
//
//	in, err := pipeline.Load(pipeline.Sources{Catalog: "catalog.yaml", Solution: "solution.yaml"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, in, pipeline.Options{Formats: []string{"svg"}})
//	svg := result.Artifacts["svg"]
//
// [layout.Build]: github.com/matzehuels/solargraph/pkg/layout.Build
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/solargraph/pkg/cache"
	"github.com/matzehuels/solargraph/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Visualization types.
const (
	VizGrid     = "grid"     // the routed solution graph
	VizNodelink = "nodelink" // a Graphviz diagram of the same topology
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

const (
	// DefaultVizType is the default visualization type.
	DefaultVizType = VizGrid

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizGrid:     true,
	VizNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	StrictKinds bool `json:"strict_kinds,omitempty"`
	MaxEdges    int  `json:"max_edges,omitempty"`

	// Render options
	VizType     string   `json:"viz_type,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Tooltips    bool     `json:"tooltips,omitempty"`
	StateColors bool     `json:"state_colors,omitempty"`
	Title       string   `json:"title,omitempty"`
	Detailed    bool     `json:"detailed,omitempty"` // nodelink labels
	Scale       float64  `json:"scale,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// InputHash is the content hash of catalog, solution and view.
	InputHash string

	// Layout is the serialized layout pass.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether layout result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: %s)", format, strings.Join(sortedKeys(ValidFormats), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return fmt.Errorf("invalid viz_type: %q (must be one of: grid, nodelink)", vizType)
	}
	return nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout validates and sets defaults for a layout pass.
func (o *Options) ValidateForLayout() error {
	if o.MaxEdges < 0 {
		return fmt.Errorf("max_edges must not be negative (got %d)", o.MaxEdges)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if o.Scale < 0 {
		return fmt.Errorf("scale must be positive (got %g)", o.Scale)
	}
	return ValidateFormats(o.Formats)
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizNodelink
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		StrictKinds: o.StrictKinds,
		MaxEdges:    o.MaxEdges,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
// Options that do not affect the given format are left out, so a JSON
// artifact is shared between visualization types.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatJSON:
		return k
	case FormatDOT:
		k.Detailed = o.Detailed
		return k
	}
	k.VizType = o.VizType
	if o.IsNodelink() {
		k.Detailed = o.Detailed
	} else {
		k.Tooltips = o.Tooltips
		k.StateColors = o.StateColors
		k.Title = o.Title
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}
