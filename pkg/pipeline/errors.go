package pipeline

import (
	stderrors "errors"

	"github.com/matzehuels/solargraph/pkg/errors"
	"github.com/matzehuels/solargraph/pkg/layout"
)

// Classify attaches an error code to a layout error so the CLI and the API
// can report it. Errors that already carry a code are returned unchanged.
func Classify(err error) error {
	if err == nil || errors.GetCode(err) != "" {
		return err
	}

	var code errors.Code
	switch {
	case stderrors.Is(err, layout.ErrUnresolvedReference):
		code = errors.ErrCodeUnresolvedReference
	case stderrors.Is(err, layout.ErrCycle):
		code = errors.ErrCodeLayoutCycle
	case stderrors.Is(err, layout.ErrTooLarge):
		code = errors.ErrCodeLayoutTooLarge
	case stderrors.Is(err, layout.ErrInvalidView):
		code = errors.ErrCodeInvalidView
	case stderrors.Is(err, layout.ErrDuplicateElement):
		code = errors.ErrCodeInvalidDocument
	default:
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "layout")
}
