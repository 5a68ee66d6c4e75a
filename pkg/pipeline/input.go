package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/solargraph/pkg/cache"
	"github.com/matzehuels/solargraph/pkg/errors"
	pkgio "github.com/matzehuels/solargraph/pkg/io"
	"github.com/matzehuels/solargraph/pkg/layout"
	"github.com/matzehuels/solargraph/pkg/model"
)

// Input holds the decoded documents of one layout pass. Exactly one of
// Solution and Architecture is used; Architecture wins when both are set.
type Input struct {
	Catalog      model.Catalog
	Solution     *model.Solution
	Architecture *model.Architecture
	View         layout.View
}

// Sources names the files Load reads.
type Sources struct {
	Catalog  string
	Solution string
	// Architecture marks Solution as an architecture document.
	Architecture bool
	// View is a TOML or YAML file of pixel constants. Empty means defaults.
	View string
}

// Load reads and validates the documents named by src.
func Load(src Sources) (*Input, error) {
	if src.Catalog == "" || src.Solution == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "catalog and solution are required")
	}

	catalog, err := pkgio.ImportCatalog(src.Catalog)
	if err != nil {
		return nil, err
	}
	in := &Input{Catalog: catalog}

	if src.Architecture {
		if in.Architecture, err = pkgio.ImportArchitecture(src.Solution); err != nil {
			return nil, err
		}
	} else {
		if in.Solution, err = pkgio.ImportSolution(src.Solution); err != nil {
			return nil, err
		}
	}

	if in.View, err = pkgio.ImportView(src.View); err != nil {
		return nil, err
	}
	return in, nil
}

// Elements returns the number of elements in the input.
func (in *Input) Elements() int {
	switch {
	case in.Architecture != nil:
		return len(in.Architecture.Elements)
	case in.Solution != nil:
		return len(in.Solution.Elements)
	}
	return 0
}

// Hash returns the content hash of the input. Documents are hashed in their
// JSON form, whose map keys are sorted, so equal documents hash equally
// whatever file format they were read from.
func (in *Input) Hash() (string, error) {
	var doc any = in.Solution
	if in.Architecture != nil {
		doc = in.Architecture.Solution()
	}

	parts := make([][]byte, 0, 3)
	for _, v := range []any{in.Catalog, doc, in.View} {
		data, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("hash input: %w", err)
		}
		parts = append(parts, data)
	}
	return cache.HashParts(parts...), nil
}
