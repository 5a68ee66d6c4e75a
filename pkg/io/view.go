package io

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/solargraph/pkg/errors"
	"github.com/matzehuels/solargraph/pkg/layout"
)

// ReadView decodes view constants from TOML. Keys that are not present keep
// their [layout.DefaultView] value:
//
//	dx = 60
//
//	[node]
//	width = 200
//
//	[port]
//	diameter = 10
func ReadView(r io.Reader) (layout.View, error) {
	v := layout.DefaultView()
	md, err := toml.NewDecoder(r).Decode(&v)
	if err != nil {
		return layout.View{}, errors.Wrap(errors.ErrCodeInvalidView, err, "decode view")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return layout.View{}, errors.New(errors.ErrCodeInvalidView, "unknown view key %q", undecoded[0].String())
	}
	return checkView(v)
}

// ReadViewYAML decodes view constants from YAML with the same keys and
// defaults as [ReadView].
func ReadViewYAML(r io.Reader) (layout.View, error) {
	v := layout.DefaultView()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && err != io.EOF {
		return layout.View{}, errors.Wrap(errors.ErrCodeInvalidView, err, "decode view")
	}
	return checkView(v)
}

// ImportView reads view constants from a file. Files ending in .yaml, .yml
// or .json are decoded as YAML; everything else as TOML. An empty path
// returns the defaults.
func ImportView(path string) (layout.View, error) {
	if path == "" {
		return layout.DefaultView(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return importFile(path, ReadViewYAML)
	default:
		return importFile(path, ReadView)
	}
}

func checkView(v layout.View) (layout.View, error) {
	if err := v.Validate(); err != nil {
		return layout.View{}, errors.Wrap(errors.ErrCodeInvalidView, err, "view")
	}
	return v, nil
}
