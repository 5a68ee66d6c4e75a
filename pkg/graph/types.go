package graph

import (
	"github.com/matzehuels/solargraph/pkg/layout"
)

// =============================================================================
// Constants
// =============================================================================

// FormatVersion is written into every serialized layout. Readers reject
// layouts with a newer version.
const FormatVersion = 1

// =============================================================================
// Layout - Serialized Layout Pass
// =============================================================================

// Layout is the canonical serialization format of a layout pass.
// Used for JSON files, API responses and cache entries.
//
// Coordinates are in pixels with the origin at the top-left corner of the
// canvas. Every edge carries its precomputed SVG path, so consumers can draw
// a layout without re-running the engine.
type Layout struct {
	Version int         `json:"version"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	View    layout.View `json:"view"`

	Nodes   []Node           `json:"nodes"`
	Edges   []Edge           `json:"edges"`
	Rows    map[int][]string `json:"rows,omitempty"` // row -> element names, left to right
	Layers  []int            `json:"layers"`         // lanes claimed per row gap
	Columns []int            `json:"columns"`        // lanes claimed per column gap
}

// =============================================================================
// Node - Placed Element
// =============================================================================

// Node is a placed element with its ports.
type Node struct {
	ID        string  `json:"id"` // element name
	Component string  `json:"component,omitempty"`
	State     string  `json:"state,omitempty"`
	Target    string  `json:"target,omitempty"`
	Row       int     `json:"row"`
	Column    int     `json:"column"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`

	Sources      []Port `json:"sources,omitempty"`
	Destinations []Port `json:"destinations,omitempty"`
}

// Port is a source (relationship) or destination (cluster) connection point.
type Port struct {
	ID    string  `json:"id"`  // qualified name
	Tag   string  `json:"tag"` // relationship name or cluster version
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`

	// Source ports
	Kind       string `json:"kind,omitempty"`
	Dependency string `json:"dependency,omitempty"`

	// Destination ports
	State  string `json:"state,omitempty"`
	Target string `json:"target,omitempty"`
	Size   int    `json:"size,omitempty"`
	Min    int    `json:"min,omitempty"`
	Max    int    `json:"max,omitempty"`
}

// =============================================================================
// Edge - Routed Relationship
// =============================================================================

// Edge is a routed relationship. Channels holds the lanes claimed in the
// source row gap, the column gap and the destination row gap, with -1 for
// slots the edge type does not use.
type Edge struct {
	ID       string          `json:"id"`   // "source --> destination"
	From     string          `json:"from"` // source port ID
	To       string          `json:"to"`   // destination port ID
	FromNode string          `json:"from_node"`
	ToNode   string          `json:"to_node"`
	Type     layout.EdgeType `json:"type"`
	Category layout.Kind     `json:"category"`
	Channels [3]int          `json:"channels"`
	Path     string          `json:"path"`
}
