package layout

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/solargraph/pkg/model"
)

type topology struct {
	nodes    []*Node // element name order
	byName   map[string]*Node
	elements map[string]*model.Element
	sources  []*Source
}

// extract builds nodes and ports from the solution and resolves every
// relationship to its destination port and kind. Elements, clusters and
// relationships are visited in sorted order.
func extract(idx Index, sol *model.Solution, cfg config) (*topology, error) {
	t := &topology{byName: make(map[string]*Node), elements: make(map[string]*model.Element)}
	if sol == nil {
		return t, nil
	}

	// Relationships name their target by Element, so nodes are keyed by it
	// too. Entries without a name fall back to their map key.
	for _, key := range sol.ListElements() {
		e := sol.Elements[key]
		if e == nil {
			continue
		}
		name := e.Element
		if name == "" {
			name = key
		}
		if _, ok := t.elements[name]; ok {
			return nil, fmt.Errorf("%w: %q (solution entry %q)", ErrDuplicateElement, name, key)
		}
		t.elements[name] = e
	}

	names := slices.Sorted(maps.Keys(t.elements))
	for _, name := range names {
		e := t.elements[name]
		n := &Node{
			Name:      name,
			Component: e.Component,
			State:     e.State,
			Target:    e.Target,
			Row:       Unplaced,
			Column:    Unplaced,
		}
		for _, version := range e.ListClusters() {
			c := e.Clusters[version]
			if c == nil {
				continue
			}
			n.Destinations = append(n.Destinations, &Destination{
				Tag:    version,
				Node:   n,
				State:  c.State,
				Target: c.Target,
				Size:   c.Size,
				Min:    c.Min,
				Max:    c.Max,
			})
		}
		t.nodes = append(t.nodes, n)
		t.byName[name] = n
	}

	for _, n := range t.nodes {
		e := t.elements[n.Name]
		for _, version := range e.ListClusters() {
			c, err := e.GetCluster(version)
			if err != nil || c == nil {
				continue
			}
			for _, rname := range c.ListRelationships() {
				rel, err := c.GetRelationship(rname)
				if err != nil || rel == nil {
					continue
				}
				src := &Source{Tag: rname, Node: n, Version: version, Relationship: rel}
				if err := t.resolve(idx, e, src, cfg); err != nil {
					return nil, err
				}
				n.Sources = append(n.Sources, src)
				t.sources = append(t.sources, src)
				if len(t.sources) > cfg.maxEdges {
					return nil, fmt.Errorf("%w: more than %d relationships", ErrTooLarge, cfg.maxEdges)
				}
			}
		}
	}
	return t, nil
}

// resolve binds src to its destination port and kind, and counts it toward
// the target's inbound totals.
func (t *topology) resolve(idx Index, e *model.Element, src *Source, cfg config) error {
	rel := src.Relationship
	from := src.Name()

	target, ok := t.byName[rel.Element]
	if !ok {
		return &ReferenceError{What: "element", Name: rel.Element, From: from}
	}

	version := rel.Version
	if version == "" && len(target.Destinations) == 1 {
		version = target.Destinations[0].Tag
	}
	if c, err := t.elements[target.Name].GetCluster(version); err != nil || c == nil {
		return &ReferenceError{What: "cluster", Name: rel.Element + " / " + version, From: from}
	}
	for _, d := range target.Destinations {
		if d.Tag == version {
			src.Destination = d
			break
		}
	}

	kind, err := resolveKind(idx, e.Component, src.Version, rel, cfg.strictKinds)
	if err != nil {
		if errors.Is(err, errNoDependency) {
			return &ReferenceError{What: "dependency", Name: rel.Dependency, From: from}
		}
		return fmt.Errorf("relationship %s: %w", from, err)
	}
	src.Kind = kind

	switch kind {
	case Context:
		target.InboundContext++
	case Service:
		target.InboundService++
	}
	return nil
}

var errNoDependency = errors.New("no dependency")

// resolveKind takes the kind from the catalog dependency of the owning
// component version. Unless strict, a relationship that carries its own Type
// falls back to it when the catalog has no entry.
func resolveKind(idx Index, component, version string, rel *model.Relationship, strict bool) (Kind, error) {
	if d, ok := idx.Dependency(component, version, rel.Dependency); ok {
		return ParseKind(d.Type)
	}
	if !strict && rel.Type != "" {
		return ParseKind(rel.Type)
	}
	return 0, errNoDependency
}
