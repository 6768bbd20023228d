// Package handler provides HTTP handlers for all API endpoints.
// Handlers run the dashboard page queries directly via the shared pool —
// no service layer. Every data endpoint degrades to an empty table plus
// banners instead of failing.
package handler

import (
	"net/http"
	"time"

	"github.com/amalbasheer/Game-analytics/internal/api/respond"
	"github.com/amalbasheer/Game-analytics/internal/config"
	"github.com/amalbasheer/Game-analytics/internal/dashboard"
	"github.com/amalbasheer/Game-analytics/internal/db"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	q    dashboard.Querier
	pool *db.Pool
	cfg  *config.Config
}

// New creates a Handler with shared dependencies. A nil pool is valid and
// puts every data endpoint into degraded mode.
func New(pool *db.Pool, cfg *config.Config) *Handler {
	h := &Handler{pool: pool, cfg: cfg}
	if pool != nil {
		h.q = pool
	}
	return h
}

// session creates the per-request query session.
func (h *Handler) session() *dashboard.Session {
	return dashboard.NewSession(h.q)
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Tennis Analytics API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"pages":   []string{"competitions", "venues", "rankings"},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckDB verifies database connectivity.
// @Summary Database health check
// @Description Verifies Postgres connectivity via the liveness probe.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/db [get]
func (h *Handler) HealthCheckDB(w http.ResponseWriter, r *http.Request) {
	if h.pool == nil || h.pool.HealthCheck(r.Context()) != nil {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
