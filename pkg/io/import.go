package io

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/solargraph/pkg/errors"
	"github.com/matzehuels/solargraph/pkg/model"
)

// catalogDoc is the mapping form of a catalog file.
type catalogDoc struct {
	Components model.Catalog `yaml:"Components"`
}

// ReadCatalog decodes a catalog from r. The document is either a list of
// components or a mapping with a "Components" list.
//
// ReadCatalog returns an INVALID_DOCUMENT error if the input is empty, is
// neither form, or fails [model.Catalog.Validate]. Duplicate components are
// kept; see [model.Catalog.Duplicates].
func ReadCatalog(r io.Reader) (model.Catalog, error) {
	var root yaml.Node
	if err := decode(r, &root, "catalog"); err != nil {
		return nil, err
	}

	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}

	var catalog model.Catalog
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&catalog); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode catalog")
		}
	case yaml.MappingNode:
		var wrapped catalogDoc
		if err := doc.Decode(&wrapped); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode catalog")
		}
		catalog = wrapped.Components
	default:
		return nil, errors.New(errors.ErrCodeInvalidDocument, "catalog must be a list of components")
	}

	for _, c := range catalog {
		if c != nil {
			for name, d := range c.Dependencies {
				if d != nil && d.Dependency == "" {
					d.Dependency = name
				}
			}
		}
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// ReadSolution decodes a solution from r. The document is either a mapping
// of element name to element, or a mapping with an "Elements" key. Names
// omitted inside records are filled from their map keys before
// [model.Solution.Validate] runs.
func ReadSolution(r io.Reader) (*model.Solution, error) {
	var s model.Solution
	if err := decodeElements(r, &s, &s.Elements, "solution"); err != nil {
		return nil, err
	}
	fillNames(&s)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// ReadArchitecture decodes an architecture from r, in either of the forms
// accepted by [ReadSolution], and validates its solution form.
func ReadArchitecture(r io.Reader) (*model.Architecture, error) {
	var a model.Architecture
	if err := decodeElements(r, &a, &a.Elements, "architecture"); err != nil {
		return nil, err
	}
	for name, e := range a.Elements {
		if e == nil {
			continue
		}
		if e.Element == "" {
			e.Element = name
		}
		for version, c := range e.Clusters {
			if c == nil {
				continue
			}
			if c.Version == "" {
				c.Version = version
			}
			for rname, rel := range c.Relationships {
				if rel != nil && rel.Relationship == "" {
					rel.Relationship = rname
				}
			}
		}
	}
	if err := a.Solution().Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// decodeElements decodes doc into wrapper when it has an "Elements" key and
// into elements otherwise.
func decodeElements(r io.Reader, wrapper, elements any, what string) error {
	var root yaml.Node
	if err := decode(r, &root, what); err != nil {
		return err
	}
	doc := &root
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return errors.New(errors.ErrCodeInvalidDocument, "%s must be a mapping of elements", what)
	}

	target := elements
	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value == "Elements" {
			target = wrapper
			break
		}
	}
	if err := doc.Decode(target); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", what)
	}
	return nil
}

// ImportCatalog reads a catalog file. See [ReadCatalog].
func ImportCatalog(path string) (model.Catalog, error) {
	return importFile(path, ReadCatalog)
}

// ImportSolution reads a solution file. See [ReadSolution].
func ImportSolution(path string) (*model.Solution, error) {
	return importFile(path, ReadSolution)
}

// ImportArchitecture reads an architecture file. See [ReadArchitecture].
func ImportArchitecture(path string) (*model.Architecture, error) {
	return importFile(path, ReadArchitecture)
}

func importFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return zero, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func decode(r io.Reader, v any, what string) error {
	if err := yaml.NewDecoder(r).Decode(v); err != nil {
		if stderrors.Is(err, io.EOF) {
			return errors.New(errors.ErrCodeInvalidDocument, "%s is empty", what)
		}
		return errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode %s", what)
	}
	return nil
}

func fillNames(s *model.Solution) {
	for name, e := range s.Elements {
		if e == nil {
			continue
		}
		if e.Element == "" {
			e.Element = name
		}
		for version, c := range e.Clusters {
			if c == nil {
				continue
			}
			if c.Version == "" {
				c.Version = version
			}
			for rname, rel := range c.Relationships {
				if rel != nil && rel.Relationship == "" {
					rel.Relationship = rname
				}
			}
		}
	}
}
