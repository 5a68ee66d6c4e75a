package graph

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/matzehuels/solargraph/pkg/layout"
)

// =============================================================================
// Conversion
// =============================================================================

// FromLayout converts a layout pass into its serialized form.
// Nodes keep their (row, column) order and edges are sorted by ID, so equal
// passes serialize to equal bytes.
func FromLayout(g *layout.Graph) Layout {
	v := g.View
	out := Layout{
		Version: FormatVersion,
		Width:   g.Width,
		Height:  g.Height,
		View:    v,
		Nodes:   make([]Node, 0, len(g.Nodes)),
		Edges:   make([]Edge, 0, len(g.Edges)),
		Rows:    make(map[int][]string),
		Layers:  slices.Clone(g.Layers),
		Columns: slices.Clone(g.Columns),
	}

	for _, n := range g.Nodes {
		node := Node{
			ID:        n.Name,
			Component: n.Component,
			State:     n.State,
			Target:    n.Target,
			Row:       int(n.Row),
			Column:    int(n.Column),
			X:         n.X,
			Y:         n.Y,
			Width:     v.Node.Width,
			Height:    v.Node.Height,
		}
		for _, s := range n.Sources {
			node.Sources = append(node.Sources, Port{
				ID:         s.Name(),
				Tag:        s.Tag,
				Index:      s.Index,
				X:          s.Position.X,
				Y:          s.Position.Y,
				Kind:       s.Kind.String(),
				Dependency: s.Relationship.Dependency,
			})
		}
		for _, d := range n.Destinations {
			node.Destinations = append(node.Destinations, Port{
				ID:     d.Name(),
				Tag:    d.Tag,
				Index:  d.Index,
				X:      d.Position.X,
				Y:      d.Position.Y,
				State:  d.State,
				Target: d.Target,
				Size:   d.Size,
				Min:    d.Min,
				Max:    d.Max,
			})
		}
		out.Nodes = append(out.Nodes, node)
		out.Rows[node.Row] = append(out.Rows[node.Row], node.ID)
	}

	for _, e := range g.Edges {
		out.Edges = append(out.Edges, Edge{
			ID:       e.Tag,
			From:     e.Source.Name(),
			To:       e.Destination.Name(),
			FromNode: e.Source.Node.Name,
			ToNode:   e.Destination.Node.Name,
			Type:     e.Type,
			Category: e.Category,
			Channels: [3]int{e.Channel1, e.Channel2, e.Channel3},
			Path:     e.Path.SVG(),
		})
	}
	slices.SortFunc(out.Edges, func(a, b Edge) int { return cmp.Compare(a.ID, b.ID) })

	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	return ReadLayout(bytes.NewReader(data))
}

// WriteLayout writes a Layout as indented JSON to an io.Writer.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteLayout(l, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadLayout decodes and validates a Layout from an io.Reader.
func ReadLayout(r io.Reader) (Layout, error) {
	var l Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}

// Validate checks the format version and that every edge connects known
// nodes.
func (l Layout) Validate() error {
	if l.Version == 0 || l.Version > FormatVersion {
		return fmt.Errorf("unsupported layout version %d", l.Version)
	}
	nodes := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		if n.ID == "" {
			return fmt.Errorf("layout node without id")
		}
		nodes[n.ID] = true
	}
	for _, e := range l.Edges {
		if !nodes[e.FromNode] || !nodes[e.ToNode] {
			return fmt.Errorf("edge %q references unknown node", e.ID)
		}
		if strings.ContainsFunc(e.Path, invalidPathRune) {
			return fmt.Errorf("edge %q has malformed path data", e.ID)
		}
	}
	return nil
}

// invalidPathRune reports runes outside the SVG path data grammar.
func invalidPathRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("MmLlHhVvCcSsQqTtAaZz", r):
		return false
	case strings.ContainsRune(" \t\n\r,.+-eE", r):
		return false
	}
	return true
}

// Node returns the node with the given ID.
func (l Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}
