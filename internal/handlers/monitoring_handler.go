package handlers

import (
	"encoding/json"
	"net/http"

	"community-backend/internal/health"
	"community-backend/internal/monitoring"
)

type MonitoringHandler struct {
	Health     *health.HealthChecker
	Monitoring *monitoring.MonitoringService
}

func NewMonitoringHandler(healthChecker *health.HealthChecker, monitoringService *monitoring.MonitoringService) *MonitoringHandler {
	return &MonitoringHandler{Health: healthChecker, Monitoring: monitoringService}
}

// HealthCheck serves the public liveness endpoint
func (h *MonitoringHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.Health.Check()

	w.Header().Set("Content-Type", "application/json")
	if status.Status != "healthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(status)
}

// System serves the admin panel's host resource view
func (h *MonitoringHandler) System(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"system": h.Monitoring.Snapshot(),
		"health": h.Health.Check(),
	})
}
