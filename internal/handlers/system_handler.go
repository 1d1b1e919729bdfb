package handlers

import (
	"net/http"

	"langportal/internal/service"
)

// SystemHandler serves maintenance and system statistics endpoints
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Stats handles GET /api/stats
func (h *SystemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.systemService.Stats()
	if err != nil {
		respondWithServiceError(w, "System stats", err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// Health handles GET /api/health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	health, err := h.systemService.Health()
	if err != nil {
		respondWithServiceError(w, "Health check", err)
		return
	}

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	respondWithJSON(w, status, health)
}

type messageResponse struct {
	Message string `json:"message"`
}

// Vacuum handles POST /api/vacuum
func (h *SystemHandler) Vacuum(w http.ResponseWriter, r *http.Request) {
	ran, err := h.systemService.Vacuum()
	if err != nil {
		respondWithServiceError(w, "Vacuum", err)
		return
	}

	msg := "Vacuum completed"
	if !ran {
		msg = "Vacuum not supported for this database"
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// ResetHistory handles POST /api/reset_history: it deletes all study
// sessions and reviews but keeps words and groups.
func (h *SystemHandler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.ResetHistory(); err != nil {
		respondWithServiceError(w, "Reset history", err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "Study history has been reset"})
}

// FullReset handles POST /api/full_reset: it empties every table.
func (h *SystemHandler) FullReset(w http.ResponseWriter, r *http.Request) {
	if err := h.systemService.FullReset(); err != nil {
		respondWithServiceError(w, "Full reset", err)
		return
	}
	respondWithJSON(w, http.StatusOK, messageResponse{Message: "All data has been reset"})
}
