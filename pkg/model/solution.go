package model

import (
	"slices"

	"github.com/matzehuels/solargraph/pkg/errors"
)

// Relationship binds a dependency slot of a cluster to a target element.
type Relationship struct {
	Relationship  string `yaml:"Relationship" json:"Relationship"`
	Dependency    string `yaml:"Dependency" json:"Dependency"`
	Type          string `yaml:"Type,omitempty" json:"Type,omitempty"` // optional override when the catalog lacks the dependency
	Element       string `yaml:"Element" json:"Element"`
	Version       string `yaml:"Version" json:"Version"`
	Configuration string `yaml:"Configuration,omitempty" json:"Configuration,omitempty"`
}

// Cluster is a versioned deployment unit of an element.
type Cluster struct {
	Version       string                   `yaml:"Version" json:"Version"`
	Target        string                   `yaml:"Target,omitempty" json:"Target,omitempty"`
	State         string                   `yaml:"State,omitempty" json:"State,omitempty"`
	Min           int                      `yaml:"Min" json:"Min"`
	Max           int                      `yaml:"Max" json:"Max"`
	Size          int                      `yaml:"Size" json:"Size"`
	Configuration string                   `yaml:"Configuration,omitempty" json:"Configuration,omitempty"`
	Relationships map[string]*Relationship `yaml:"Relationships" json:"Relationships"`
}

// GetRelationship retrieves a relationship by name.
func (c *Cluster) GetRelationship(name string) (*Relationship, error) {
	r, ok := c.Relationships[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "relationship %q not found in cluster %s", name, c.Version)
	}
	return r, nil
}

// ListRelationships returns relationship names in sorted order.
func (c *Cluster) ListRelationships() []string { return sortedKeys(c.Relationships) }

// Element is an instance of a component within a solution.
type Element struct {
	Element       string              `yaml:"Element" json:"Element"`
	Component     string              `yaml:"Component" json:"Component"`
	Target        string              `yaml:"Target,omitempty" json:"Target,omitempty"`
	State         string              `yaml:"State,omitempty" json:"State,omitempty"`
	Configuration string              `yaml:"Configuration,omitempty" json:"Configuration,omitempty"`
	Endpoint      string              `yaml:"Endpoint,omitempty" json:"Endpoint,omitempty"`
	Clusters      map[string]*Cluster `yaml:"Clusters" json:"Clusters"`
}

// GetCluster retrieves a cluster by version.
func (e *Element) GetCluster(version string) (*Cluster, error) {
	c, ok := e.Clusters[version]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "cluster %q not found in element %s", version, e.Element)
	}
	return c, nil
}

// ListClusters returns cluster versions in sorted order.
func (e *Element) ListClusters() []string { return sortedKeys(e.Clusters) }

// Solution maps element names to elements.
type Solution struct {
	Solution string              `yaml:"Solution,omitempty" json:"Solution,omitempty"`
	Version  string              `yaml:"Version,omitempty" json:"Version,omitempty"`
	Elements map[string]*Element `yaml:"Elements" json:"Elements"`
}

// GetElement retrieves an element by name.
func (s *Solution) GetElement(name string) (*Element, error) {
	e, ok := s.Elements[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "element %q not found", name)
	}
	return e, nil
}

// ListElements returns element names in sorted order.
func (s *Solution) ListElements() []string { return sortedKeys(s.Elements) }

// Validate checks that map keys match record names, names are well formed and
// cluster sizes are within bounds. References between elements are not resolved.
func (s *Solution) Validate() error {
	if s == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "solution is empty")
	}
	for _, name := range s.ListElements() {
		e := s.Elements[name]
		if e == nil {
			return errors.New(errors.ErrCodeInvalidDocument, "element %q is empty", name)
		}
		if err := errors.ValidateName("element", name); err != nil {
			return err
		}
		if e.Element != name {
			return errors.New(errors.ErrCodeInvalidDocument, "element key %q does not match name %q", name, e.Element)
		}
		for _, version := range e.ListClusters() {
			if err := validateCluster(e, version); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCluster(e *Element, version string) error {
	c := e.Clusters[version]
	if c == nil {
		return errors.New(errors.ErrCodeInvalidDocument, "cluster %q of %s is empty", version, e.Element)
	}
	if err := errors.ValidateName("version", version); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "element %s", e.Element)
	}
	if c.Version != version {
		return errors.New(errors.ErrCodeInvalidDocument, "cluster key %q of %s does not match version %q", version, e.Element, c.Version)
	}
	if c.Max > 0 && (c.Min > c.Size || c.Size > c.Max) {
		return errors.New(errors.ErrCodeInvalidDocument, "cluster %s / %s: size %d outside [%d, %d]", e.Element, version, c.Size, c.Min, c.Max)
	}
	for _, rname := range c.ListRelationships() {
		r := c.Relationships[rname]
		if r == nil {
			return errors.New(errors.ErrCodeInvalidDocument, "relationship %q of %s / %s is empty", rname, e.Element, version)
		}
		if err := errors.ValidateName("relationship", rname); err != nil {
			return err
		}
		if r.Relationship != rname {
			return errors.New(errors.ErrCodeInvalidDocument, "relationship key %q of %s / %s does not match name %q", rname, e.Element, version, r.Relationship)
		}
		if r.Type != "" && r.Type != TypeContext && r.Type != TypeService {
			return errors.New(errors.ErrCodeInvalidDocument, "relationship %q of %s / %s has invalid type %q", rname, e.Element, version, r.Type)
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
