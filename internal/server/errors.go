package server

import (
	"errors"
	"net/http"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/store"
)

// errorBody is the error response envelope: a user-facing message plus an
// internal detail string.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// httpStatus maps an analysis pipeline error to its HTTP status code.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrProfileNotFound), errors.Is(err, store.ErrVacancyNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// userMessage picks the user-facing message for an analysis pipeline error.
// Infrastructure details are logged server-side, never exposed.
func userMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrProfileNotFound):
		return "Perfil do usuário não encontrado"
	case errors.Is(err, store.ErrVacancyNotFound):
		return "Vaga não encontrada"
	default:
		return "Não foi possível concluir a análise no momento"
	}
}

// errorResponse writes the error envelope for a pipeline failure.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message, details string) {
	s.jsonResponse(w, status, errorBody{Error: message, Details: details})
}
