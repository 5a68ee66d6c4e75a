package layout

import "github.com/matzehuels/solargraph/pkg/model"

// Index maps "name - version" to the catalog component.
type Index map[string]*model.Component

// NewIndex builds the lookup map of a catalog. Components that share a name
// and version overwrite each other; the last one wins. Use
// [model.Catalog.Duplicates] to report them.
func NewIndex(catalog model.Catalog) Index {
	idx := make(Index, len(catalog))
	for _, c := range catalog {
		if c == nil {
			continue
		}
		idx[c.Key()] = c
	}
	return idx
}

// Lookup returns the component with the given name and version.
func (idx Index) Lookup(name, version string) (*model.Component, bool) {
	c, ok := idx[model.ComponentKey(name, version)]
	return c, ok
}

// Dependency returns the dependency slot of a component version.
func (idx Index) Dependency(component, version, dependency string) (*model.Dependency, bool) {
	c, ok := idx.Lookup(component, version)
	if !ok {
		return nil, false
	}
	d, err := c.GetDependency(dependency)
	return d, err == nil && d != nil
}
