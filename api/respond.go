package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/villnoweric/package-delivery-tycoon/core/game"
	"github.com/villnoweric/package-delivery-tycoon/infra/persist"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("encode response: %v", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps engine errors to HTTP statuses: unknown entities are 404,
// rule conflicts are 409, unreachable persistence is 502.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrEntityNotFound), errors.Is(err, persist.ErrNoSave):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrPreconditionUnmet),
		errors.Is(err, game.ErrNoCargo),
		errors.Is(err, game.ErrNoOutstandingLoan):
		status = http.StatusConflict
	case errors.Is(err, persist.ErrUnavailable):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		s.log.Errorf("request failed: %v", err)
	}
	s.writeJSON(w, status, errorBody{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
