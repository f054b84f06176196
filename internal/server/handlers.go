package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/score"
)

// AnalyzeRequest is the request body for POST /gap-analysis.
type AnalyzeRequest struct {
	UserID    string `json:"userId" validate:"required"`
	VacancyID string `json:"vacancyId" validate:"required"`
}

// ATSRequest is the request body for POST /ats-score.
type ATSRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// handleAnalyze runs a gap analysis for the identifiers in the request body.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}
	s.runAnalysis(w, r, req.UserID, req.VacancyID)
}

// handleAnalyzeQuery is the query-parameter variant of the analysis
// endpoint, kept for callers that issue plain GETs.
func (s *Server) handleAnalyzeQuery(w http.ResponseWriter, r *http.Request) {
	req := AnalyzeRequest{
		UserID:    r.URL.Query().Get("userId"),
		VacancyID: r.URL.Query().Get("vacancyId"),
	}
	s.runAnalysis(w, r, req.UserID, req.VacancyID)
}

func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request, userID, vacancyID string) {
	req := AnalyzeRequest{UserID: userID, VacancyID: vacancyID}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Parâmetros obrigatórios ausentes", "userId e vacancyId são obrigatórios")
		return
	}

	profileID, err := uuid.Parse(userID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Identificador de usuário inválido", err.Error())
		return
	}
	vacID, err := uuid.Parse(vacancyID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Identificador de vaga inválido", err.Error())
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), profileID, vacID)
	if err != nil {
		status := httpStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("gap analysis failed",
				zap.String("user_id", userID),
				zap.String("vacancy_id", vacancyID),
				zap.Error(err),
			)
			s.errorResponse(w, status, userMessage(err), "")
			return
		}
		s.errorResponse(w, status, userMessage(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleATSScore computes the profile-only tracking-system readiness score.
func (s *Server) handleATSScore(w http.ResponseWriter, r *http.Request) {
	var req ATSRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Corpo da requisição inválido", err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Parâmetros obrigatórios ausentes", "userId é obrigatório")
		return
	}

	profileID, err := uuid.Parse(req.UserID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Identificador de usuário inválido", err.Error())
		return
	}

	profile, err := s.profiles.GetProfile(r.Context(), profileID)
	if err != nil {
		status := httpStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("profile fetch failed", zap.String("user_id", req.UserID), zap.Error(err))
			s.errorResponse(w, status, userMessage(err), "")
			return
		}
		s.errorResponse(w, status, userMessage(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, score.ATSScore(profile))
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
