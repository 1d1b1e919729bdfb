package handlers

import "net/http"

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	Words      *WordsHandler
	Groups     *GroupsHandler
	Sessions   *SessionsHandler
	Activities *ActivitiesHandler
	Dashboard  *DashboardHandler
	System     *SystemHandler
}

// NewRouter wires all API routes onto a ServeMux and wraps it with request
// logging.
func NewRouter(h *Handlers) http.Handler {
	mux := http.NewServeMux()

	// Words
	mux.HandleFunc("GET /api/words", h.Words.List)
	mux.HandleFunc("GET /api/words/{id}", h.Words.Get)

	// Groups
	mux.HandleFunc("GET /api/groups", h.Groups.List)
	mux.HandleFunc("GET /api/groups/{id}", h.Groups.Get)
	mux.HandleFunc("GET /api/groups/{id}/words", h.Groups.Words)
	mux.HandleFunc("GET /api/groups/{id}/study_sessions", h.Groups.Sessions)

	// Study activities
	mux.HandleFunc("GET /api/study_activities", h.Activities.List)
	mux.HandleFunc("POST /api/study_activities", h.Activities.Create)
	mux.HandleFunc("GET /api/study_activities/{id}", h.Activities.Get)
	mux.HandleFunc("PUT /api/study_activities/{id}", h.Activities.Update)
	mux.HandleFunc("GET /api/study_activities/{id}/sessions", h.Activities.Sessions)
	mux.HandleFunc("POST /api/study_activities/{id}/launch", h.Activities.Launch)

	// Study sessions
	mux.HandleFunc("GET /api/study_sessions", h.Sessions.List)
	mux.HandleFunc("POST /api/study_sessions", h.Sessions.Create)
	mux.HandleFunc("GET /api/study_sessions/{id}", h.Sessions.Get)
	mux.HandleFunc("POST /api/study_sessions/{id}/words/{wordId}/review", h.Sessions.RecordReview)

	// Dashboard
	mux.HandleFunc("GET /api/dashboard/last_study_session", h.Dashboard.LastStudySession)
	mux.HandleFunc("GET /api/dashboard/study_progress", h.Dashboard.StudyProgress)
	mux.HandleFunc("GET /api/dashboard/quick-stats", h.Dashboard.QuickStats)
	mux.HandleFunc("GET /api/dashboard/recent-session", h.Dashboard.RecentSession)

	// System
	mux.HandleFunc("GET /api/stats", h.System.Stats)
	mux.HandleFunc("GET /api/health", h.System.Health)
	mux.HandleFunc("POST /api/vacuum", h.System.Vacuum)
	mux.HandleFunc("POST /api/reset_history", h.System.ResetHistory)
	mux.HandleFunc("POST /api/full_reset", h.System.FullReset)

	return RequestLogger(mux)
}
