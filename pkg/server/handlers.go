package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/solargraph/pkg/cache"
	"github.com/matzehuels/solargraph/pkg/errors"
	"github.com/matzehuels/solargraph/pkg/pipeline"
	"github.com/matzehuels/solargraph/pkg/render"
)

// APIKeyHeader selects the cache scope when WithScopedCache is set.
const APIKeyHeader = "X-API-Key"

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatDOT:  "text/vnd.graphviz; charset=utf-8",
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	in, opts, err := s.decodeInput(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger

	l, err := s.runnerFor(r).Layout(r.Context(), in, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.last.Store(&l)
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	in, opts, err := s.decodeInput(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := renderOptions(r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger

	res, err := s.runnerFor(r).Execute(r.Context(), in, opts)
	if stderrors.Is(err, render.ErrConverterMissing) {
		err = errors.Wrap(errors.ErrCodeUnsupported, err, "format %s", opts.Formats[0])
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.last.Store(&res.Layout)

	format := opts.Formats[0]
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) handleLast(w http.ResponseWriter, r *http.Request) {
	l, ok := s.Last()
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no layout computed yet"))
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// runnerFor returns the runner serving r, scoped to its API key when
// WithScopedCache is set.
func (s *Server) runnerFor(r *http.Request) *pipeline.Runner {
	key := r.Header.Get(APIKeyHeader)
	if !s.scoped || key == "" {
		return s.runner
	}
	scoped := *s.runner
	scoped.Keyer = cache.NewScopedKeyer(s.runner.Keyer, "tenant:"+cache.Hash([]byte(key))[:16]+":")
	return &scoped
}

// StatusCode maps an error to the HTTP status reported for it.
func StatusCode(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidView,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidName:
		return http.StatusBadRequest
	case errors.ErrCodeUnresolvedReference, errors.ErrCodeUnresolvedDependency,
		errors.ErrCodeLayoutCycle, errors.ErrCodeLayoutTooLarge:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusCode(err)
	body := errorBody{
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}
	if body.Code == "" {
		body.Code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", body.RequestID, "error", err)
		body.Message = "internal error"
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
