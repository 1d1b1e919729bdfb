package handlers

import (
	"net/http"

	"langportal/internal/service"
)

// DashboardHandler serves the aggregated dashboard endpoints
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// LastStudySession handles GET /api/dashboard/last_study_session. Responds
// with null when no sessions exist yet.
func (h *DashboardHandler) LastStudySession(w http.ResponseWriter, r *http.Request) {
	session, err := h.dashboardService.LastSession()
	if err != nil {
		respondWithServiceError(w, "Last session", err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// StudyProgress handles GET /api/dashboard/study_progress
func (h *DashboardHandler) StudyProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.dashboardService.StudyProgress()
	if err != nil {
		respondWithServiceError(w, "Study progress", err)
		return
	}
	respondWithJSON(w, http.StatusOK, progress)
}

// QuickStats handles GET /api/dashboard/quick-stats
func (h *DashboardHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.QuickStats()
	if err != nil {
		respondWithServiceError(w, "Quick stats", err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

// RecentSession handles GET /api/dashboard/recent-session. Responds with
// null when no sessions exist yet.
func (h *DashboardHandler) RecentSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.dashboardService.RecentSession()
	if err != nil {
		respondWithServiceError(w, "Recent session", err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}
