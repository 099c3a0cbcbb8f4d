package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"UGEM_BACK-END/internal/dto"
	"UGEM_BACK-END/internal/utils"
)

// HealthHandler reports process and database health
type HealthHandler struct {
	db *pgxpool.Pool
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health reports overall service health including the database
// @Summary Health check
// @Description Report service and database health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is healthy"
// @Failure 503 {object} dto.HealthResponse "Database unreachable"
// @Router /healthz [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	details := map[string]any{"database": "ok"}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		details["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}

	utils.WriteJSONResponse(w, status, dto.HealthResponse{Status: state, Details: details})
}

// Livez reports process liveness only
func (h *HealthHandler) Livez(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Readyz reports readiness to serve traffic
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	h.Health(w, r)
}
