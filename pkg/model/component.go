package model

import (
	"slices"

	"github.com/matzehuels/solargraph/pkg/errors"
)

// Relationship kinds as they appear in documents.
const (
	TypeContext = "context"
	TypeService = "service"
)

// Dependency describes what kind of dependency a component may have.
type Dependency struct {
	Dependency    string `yaml:"Dependency" json:"Dependency"`       // name of the dependency
	Type          string `yaml:"Type" json:"Type"`                   // context or service
	Component     string `yaml:"Component" json:"Component"`         // component the dependency refers to
	Version       string `yaml:"Version" json:"Version"`             // version of that component
	Configuration string `yaml:"Configuration" json:"Configuration"` // base configuration of the dependency
}

// Component describes a base configuration for a component within a domain.
type Component struct {
	Component     string                 `yaml:"Component" json:"Component"`
	Version       string                 `yaml:"Version" json:"Version"`
	Configuration string                 `yaml:"Configuration" json:"Configuration"`
	Dependencies  map[string]*Dependency `yaml:"Dependencies" json:"Dependencies"`
}

// NewComponent creates a component without dependencies.
func NewComponent(name, version, configuration string) *Component {
	return &Component{
		Component:     name,
		Version:       version,
		Configuration: configuration,
		Dependencies:  map[string]*Dependency{},
	}
}

// Key returns the catalog lookup key "name - version".
func (c *Component) Key() string { return ComponentKey(c.Component, c.Version) }

// ComponentKey builds the catalog lookup key for a component name and version.
func ComponentKey(name, version string) string { return name + " - " + version }

// AddDependency registers a dependency slot.
// Returns an INVALID_DOCUMENT error if the slot already exists.
func (c *Component) AddDependency(d *Dependency) error {
	if c.Dependencies == nil {
		c.Dependencies = map[string]*Dependency{}
	}
	if _, ok := c.Dependencies[d.Dependency]; ok {
		return errors.New(errors.ErrCodeInvalidDocument, "dependency %q already defined on %s", d.Dependency, c.Key())
	}
	c.Dependencies[d.Dependency] = d
	return nil
}

// GetDependency retrieves a dependency slot by name.
func (c *Component) GetDependency(name string) (*Dependency, error) {
	d, ok := c.Dependencies[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "dependency %q not found on %s", name, c.Key())
	}
	return d, nil
}

// ListDependencies returns the dependency names in sorted order.
func (c *Component) ListDependencies() []string {
	names := make([]string, 0, len(c.Dependencies))
	for name := range c.Dependencies {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Catalog is the ordered list of components of a domain.
type Catalog []*Component

// Duplicates reports the keys of components that appear more than once.
// The layout pass keeps the last occurrence.
func (c Catalog) Duplicates() []string {
	seen := make(map[string]int, len(c))
	var dups []string
	for _, comp := range c {
		if comp == nil {
			continue
		}
		k := comp.Key()
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	slices.Sort(dups)
	return dups
}

// Validate checks that every component and dependency is well formed.
func (c Catalog) Validate() error {
	for i, comp := range c {
		if comp == nil {
			return errors.New(errors.ErrCodeInvalidDocument, "catalog entry %d is empty", i)
		}
		if err := errors.ValidateName("component", comp.Component); err != nil {
			return err
		}
		if err := errors.ValidateName("version", comp.Version); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "component %s", comp.Component)
		}
		for _, key := range comp.ListDependencies() {
			d := comp.Dependencies[key]
			if d == nil {
				return errors.New(errors.ErrCodeInvalidDocument, "dependency %q of %s is empty", key, comp.Key())
			}
			if d.Dependency != key {
				return errors.New(errors.ErrCodeInvalidDocument, "dependency key %q of %s does not match name %q", key, comp.Key(), d.Dependency)
			}
			if d.Type != TypeContext && d.Type != TypeService {
				return errors.New(errors.ErrCodeInvalidDocument, "dependency %q of %s has invalid type %q", key, comp.Key(), d.Type)
			}
		}
	}
	return nil
}
