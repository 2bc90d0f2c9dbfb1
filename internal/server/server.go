// Package server exposes the rendering pipeline over HTTP.
//
// The server accepts serialized circuits on POST /v1/render and responds
// with either the rendered PNG or the generated typst source, depending
// on the requested format. It shares the pipeline Runner with the CLI,
// so caching behaves identically in both entry points.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/qcdraw/qcdraw/pkg/buildinfo"
	"github.com/qcdraw/qcdraw/pkg/circuit"
	qerrors "github.com/qcdraw/qcdraw/pkg/errors"
	"github.com/qcdraw/qcdraw/pkg/pipeline"
)

// Server handles render requests using a shared pipeline runner.
type Server struct {
	Runner *pipeline.Runner
	Logger *log.Logger
}

// NewHandler creates the HTTP handler for the render API.
func NewHandler(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{Runner: runner, Logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/render", s.handleRender)
	return r
}

// renderRequest is the POST /v1/render request body.
type renderRequest struct {
	Circuit *circuit.Circuit `json:"circuit"`
	Options pipeline.Options `json:"options"`
}

// errorResponse is the JSON body returned on failures.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Circuit == nil {
		s.writeError(w, http.StatusBadRequest,
			qerrors.New(qerrors.ErrCodeInvalidInput, "missing circuit"))
		return
	}

	result, err := s.Runner.Execute(r.Context(), req.Circuit, req.Options)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	if result.Image == nil {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(result.Markup))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Image)
}

// statusFor maps pipeline error codes to HTTP status codes.
func statusFor(err error) int {
	switch qerrors.GetCode(err) {
	case qerrors.ErrCodeInvalidInput, qerrors.ErrCodeInvalidMode,
		qerrors.ErrCodeInvalidFormat, qerrors.ErrCodeInvalidCircuit:
		return http.StatusBadRequest
	case qerrors.ErrCodeUnsupportedOperation, qerrors.ErrCodeEmptyQubits,
		qerrors.ErrCodeEmptyPage, qerrors.ErrCodeQubitMapping:
		return http.StatusUnprocessableEntity
	case qerrors.ErrCodeNotFound, qerrors.ErrCodeExternal, qerrors.ErrCodeNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= 500 {
		s.Logger.Error("render request failed", "err", err)
	}
	writeJSON(w, status, errorResponse{
		Error: qerrors.UserMessage(err),
		Code:  string(qerrors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
