// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	service "github.com/okian/ipldash/internal/app"
	"github.com/okian/ipldash/internal/domain/types"
)

// TeamDependencies defines the interface for team operations.
type TeamDependencies interface {
	WinRates(ctx context.Context) ([]types.TeamRecord, error)
	Team(ctx context.Context, name string) (service.TeamReport, error)
}

// TeamHandler handles team requests.
type TeamHandler struct {
	deps TeamDependencies
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(deps TeamDependencies) *TeamHandler {
	return &TeamHandler{deps: deps}
}

// HandleListTeams handles GET /api/v1/teams requests.
func (h *TeamHandler) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	records, err := h.deps.WinRates(r.Context())
	if err != nil {
		writeServiceError(w, "api.list_teams", err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

// HandleGetTeam handles GET /api/v1/teams/{team} requests.
func (h *TeamHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	report, err := h.deps.Team(r.Context(), r.PathValue("team"))
	if err != nil {
		writeServiceError(w, "api.get_team", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
