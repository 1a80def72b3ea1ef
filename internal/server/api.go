package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

type valueRequest struct {
	Value any `json:"value"`
}

type profileRequest struct {
	Active bool `json:"active"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.opts.Store.Get())
}

// handlePutSettings replaces the whole tree. Keys missing from the body keep
// their defaults.
func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	tree := settings.Defaults()
	if err := json.NewDecoder(r.Body).Decode(&tree); err != nil {
		writeError(w, acerrors.NewParseError("body", 0, err))
		return
	}
	if err := settings.Validate(tree); err != nil {
		writeError(w, err)
		return
	}
	s.opts.Store.Replace(tree)
	writeJSON(w, http.StatusOK, s.opts.Store.Get())
}

func (s *Server) handlePatchSetting(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "section") + "." + chi.URLParam(r, "field")

	var req valueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, acerrors.NewParseError("body", 0, err))
		return
	}
	if err := s.opts.Profiles.Update(path, req.Value); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.opts.Store.Get())
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.opts.Store.Reset()
	writeJSON(w, http.StatusOK, s.opts.Store.Get())
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, acerrors.NewParseError("body", 0, err))
		return
	}
	if err := s.opts.Profiles.ActivateProfile(chi.URLParam(r, "name"), req.Active); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.opts.Store.Get())
}

func (s *Server) handleTogglePosition(w http.ResponseWriter, _ *http.Request) {
	s.opts.Chrome.TogglePosition()
	writeJSON(w, http.StatusOK, s.opts.Store.Get())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the typed errors onto status codes.
func writeError(w http.ResponseWriter, err error) {
	var (
		unknown    *acerrors.UnknownFieldError
		validation *acerrors.ValidationError
		parse      *acerrors.ParseError
	)
	switch {
	case errors.As(err, &unknown):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Field: unknown.Path})
	case errors.As(err, &validation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Field: validation.Field})
	case errors.As(err, &parse):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
