package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/sportindex/sportindex/internal/application/service"
	derr "github.com/sportindex/sportindex/internal/domain/errors"
)

// Server exposes the fixture service over JSON. Responses carry the
// normalized fixture list exactly as the service returns it.
type Server struct {
	log      *zap.Logger
	fixtures *service.FixtureService
}

func NewServer(log *zap.Logger, fixtures *service.FixtureService) *Server {
	return &Server{log: log, fixtures: fixtures}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/teams/{id}/fixtures", s.handleTeamFixtures)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleTeamFixtures(w http.ResponseWriter, r *http.Request) {
	teamID := r.PathValue("id")
	if teamID == "" {
		writeError(w, http.StatusBadRequest, "team id is required")
		return
	}

	list, err := s.fixtures.GetTeamFixtures(r.Context(), teamID)
	if err != nil {
		s.log.Warn("get team fixtures failed", zap.String("team_id", teamID), zap.Error(err))
		writeError(w, statusFor(err), "failed to load fixtures")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, derr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, derr.ErrRateLimited):
		return http.StatusServiceUnavailable
	case errors.Is(err, derr.ErrRequestFailed):
		return http.StatusBadGateway
	case errors.Is(err, derr.ErrSchemaMismatch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
