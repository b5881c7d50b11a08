// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"

	"github.com/okian/ipldash/internal/domain/model"
)

// HealthDependencies exposes the dataset state.
type HealthDependencies interface {
	Dataset() (*model.Dataset, error)
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	deps HealthDependencies
}

type healthResponse struct {
	Status     string `json:"status"`
	DataLoaded bool   `json:"data_loaded"`
	Matches    int    `json:"matches,omitempty"`
	Deliveries int    `json:"deliveries,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(deps HealthDependencies) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// HandleHealth handles GET /healthz requests. It answers 503 while the
// dataset is unavailable.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	ds, err := h.deps.Dataset()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status: "unavailable",
			Error:  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:     "ok",
		DataLoaded: true,
		Matches:    ds.MatchCount(),
		Deliveries: ds.DeliveryCount(),
	})
}
