// Package model defines the documents consumed by the layout engine.
//
// # Documents
//
// A [Catalog] is the ordered list of [Component] definitions of a domain. Each
// component is identified by its name and version and declares named
// [Dependency] slots. A dependency is either a "context" dependency (the
// component runs inside its target) or a "service" dependency (the component
// calls its target).
//
// A [Solution] is a mapping of element name to [Element]. An element is an
// instance of a component. It owns one [Cluster] per deployed component
// version, and every cluster carries the [Relationship] instances that bind a
// dependency slot to a target element and version.
//
// An [Architecture] is the design-time counterpart of a solution. Use
// [Architecture.Solution] to convert it into a solution-shaped document.
//
// # Serialization
//
// All types carry yaml and json tags matching the field names used by the
// solar REST API, so documents can be decoded with gopkg.in/yaml.v3 or
// encoding/json. Loading lives in package io.
//
// # Validation
//
// [Catalog.Validate] and [Solution.Validate] check structural consistency
// (map keys match record names, names are well formed, cluster sizes are in
// range). They do not resolve references between documents; that is the job
// of the layout pass.
package model
