package server

import (
	"bytes"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/solargraph/pkg/errors"
	pkgio "github.com/matzehuels/solargraph/pkg/io"
	"github.com/matzehuels/solargraph/pkg/layout"
	"github.com/matzehuels/solargraph/pkg/pipeline"
)

// request is the body of /v1/layout and /v1/render. Documents are kept as
// raw nodes and handed to the same readers the CLI uses.
type request struct {
	Catalog      yaml.Node `yaml:"catalog"`
	Solution     yaml.Node `yaml:"solution"`
	Architecture yaml.Node `yaml:"architecture"`
	View         yaml.Node `yaml:"view"`
	StrictKinds  bool      `yaml:"strict_kinds"`
}

func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (*pipeline.Input, pipeline.Options, error) {
	var opts pipeline.Options

	var req request
	dec := yaml.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case stderrors.Is(err, io.EOF):
			return nil, opts, errors.New(errors.ErrCodeInvalidInput, "request body is empty")
		case stderrors.As(err, &tooLarge):
			return nil, opts, errors.New(errors.ErrCodeInvalidInput, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request")
	}

	if req.Catalog.IsZero() {
		return nil, opts, errors.New(errors.ErrCodeInvalidInput, "catalog is required")
	}
	if req.Solution.IsZero() == req.Architecture.IsZero() {
		return nil, opts, errors.New(errors.ErrCodeInvalidInput, "exactly one of solution and architecture is required")
	}

	in := &pipeline.Input{View: layout.DefaultView()}
	var err error
	if in.Catalog, err = readNode(&req.Catalog, pkgio.ReadCatalog); err != nil {
		return nil, opts, err
	}
	if !req.Solution.IsZero() {
		in.Solution, err = readNode(&req.Solution, pkgio.ReadSolution)
	} else {
		in.Architecture, err = readNode(&req.Architecture, pkgio.ReadArchitecture)
	}
	if err != nil {
		return nil, opts, err
	}
	if !req.View.IsZero() {
		if in.View, err = readNode(&req.View, pkgio.ReadViewYAML); err != nil {
			return nil, opts, err
		}
	}

	opts.StrictKinds = req.StrictKinds
	return in, opts, nil
}

// readNode re-encodes a raw document and decodes it with read.
func readNode[T any](n *yaml.Node, read func(io.Reader) (T, error)) (T, error) {
	data, err := yaml.Marshal(n)
	if err != nil {
		var zero T
		return zero, errors.Wrap(errors.ErrCodeInvalidDocument, err, "re-encode document")
	}
	return read(bytes.NewReader(data))
}

// renderOptions reads render settings from the query string.
func renderOptions(r *http.Request, opts *pipeline.Options) error {
	q := r.URL.Query()

	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts.Formats = []string{format}
	opts.VizType = q.Get("viz")
	opts.Title = q.Get("title")

	for name, dst := range map[string]*bool{
		"tooltips":     &opts.Tooltips,
		"state_colors": &opts.StateColors,
		"detailed":     &opts.Detailed,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "query parameter %s: %q is not a boolean", name, v)
		}
		*dst = b
	}

	if err := opts.ValidateForRender(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "render options")
	}
	return nil
}
