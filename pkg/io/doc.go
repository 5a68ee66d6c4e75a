// Package io loads solargraph documents and view constants from files.
//
// # Documents
//
// Catalogs, solutions and architectures are YAML documents (JSON is accepted
// too, being a subset of YAML). Field names match the solar REST API:
//
//	# catalog.yaml
//	- Component: App
//	  Version: V1.0.0
//	  Dependencies:
//	    db:
//	      Type: service
//	      Component: Postgres
//	      Version: V14
//
//	# solution.yaml
//	app1:
//	  Component: App
//	  Clusters:
//	    V1.0.0:
//	      State: running
//	      Relationships:
//	        db: {Dependency: db, Element: pg, Version: V14}
//
// Names omitted inside a record (Element, Version, Relationship, Dependency)
// are taken from the enclosing map key. A catalog may also be wrapped in a
// "Components" key and a solution in an "Elements" key.
//
// Use [ReadCatalog], [ReadSolution] and [ReadArchitecture] with any
// io.Reader, or [ImportCatalog], [ImportSolution] and [ImportArchitecture]
// with a path. Every document is validated after decoding; failures carry
// the INVALID_DOCUMENT or INVALID_NAME code of package errors.
//
// # View Constants
//
// [ReadView] decodes TOML, [ReadViewYAML] YAML. [ImportView] picks the
// decoder from the file extension. Missing keys keep their default value.
package io
