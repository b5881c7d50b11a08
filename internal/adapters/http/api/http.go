// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/ipldash/internal/adapters/loader"
	service "github.com/okian/ipldash/internal/app"
	"github.com/okian/ipldash/internal/domain/stats"
	"github.com/okian/ipldash/internal/domain/types"
	"github.com/okian/ipldash/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	HealthDependencies
	BoardDependencies
	RankDependencies
	TeamDependencies

	Overview(ctx context.Context) (stats.Overview, error)
	Seasons(ctx context.Context) ([]string, error)
}

// Entry mirrors the read shape returned by board queries.
type Entry = types.Entry

// Server wires HTTP routes for the read-only API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	boardHandler  *BoardHandler
	rankHandler   *RankHandler
	teamHandler   *TeamHandler
	deps          Dependencies
	logger        logger.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for unexpected handler failures.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBoardLimits sets the default and maximum ?limit of board queries.
func WithBoardLimits(defaultLimit, maxLimit int) Option {
	return func(s *Server) {
		if defaultLimit >= 0 {
			s.boardHandler.defaultLimit = defaultLimit
		}
		if maxLimit > 0 {
			s.boardHandler.maxLimit = maxLimit
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		healthHandler: NewHealthHandler(deps),
		statsHandler:  NewStatsHandler(statsProvider),
		boardHandler:  NewBoardHandler(deps, defaultBoardLimit, maxBoardLimit),
		rankHandler:   NewRankHandler(deps),
		teamHandler:   NewTeamHandler(deps),
		deps:          deps,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("api")
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("GET /api/v1/overview", MetricsMiddleware(s.handleOverview, "overview"))
	mux.HandleFunc("GET /api/v1/seasons", MetricsMiddleware(s.handleSeasons, "seasons"))
	mux.HandleFunc("GET /api/v1/boards", MetricsMiddleware(s.boardHandler.HandleListBoards, "boards"))
	mux.HandleFunc("GET /api/v1/boards/{board}", MetricsMiddleware(s.boardHandler.HandleGetBoard, "board"))
	mux.HandleFunc("GET /api/v1/boards/{board}/{category}", MetricsMiddleware(s.rankHandler.HandleGetRank, "rank"))
	mux.HandleFunc("GET /api/v1/teams", MetricsMiddleware(s.teamHandler.HandleListTeams, "teams"))
	mux.HandleFunc("GET /api/v1/teams/{team}", MetricsMiddleware(s.teamHandler.HandleGetTeam, "team"))
}

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_overview"
	o, err := s.deps.Overview(r.Context())
	if err != nil {
		s.logFailure(r, op, err)
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (s *Server) handleSeasons(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_seasons"
	seasons, err := s.deps.Seasons(r.Context())
	if err != nil {
		s.logFailure(r, op, err)
		writeServiceError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, seasons)
}

func (s *Server) logFailure(r *http.Request, op string, err error) {
	if statusFor(err) < http.StatusInternalServerError {
		return
	}
	s.logger.Error(r.Context(), "request failed", logger.String("op", op), logger.Error(err))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates service errors to a status and error code.
func writeServiceError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	writeError(w, status, codeFor(status), Wrap(op, err))
}

func statusFor(err error) int {
	var le *loader.LoadError
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUnknownBoard):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidLimit), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotStarted), errors.As(err, &le):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func codeFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "not_found"
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusServiceUnavailable:
		return "data_unavailable"
	default:
		return "internal_error"
	}
}
