package handlers

import (
	"encoding/json"
	"net/http"

	"langportal/internal/service"
)

// ActivitiesHandler handles study activity HTTP requests
type ActivitiesHandler struct {
	studyService *service.StudyService
}

// NewActivitiesHandler creates a new activities handler
func NewActivitiesHandler(studyService *service.StudyService) *ActivitiesHandler {
	return &ActivitiesHandler{studyService: studyService}
}

// List handles GET /api/study_activities
func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.studyService.ListActivities()
	if err != nil {
		respondWithServiceError(w, "Activities", err)
		return
	}
	respondWithJSON(w, http.StatusOK, activities)
}

// Get handles GET /api/study_activities/{id}
func (h *ActivitiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	activity, err := h.studyService.GetActivity(id)
	if err != nil {
		respondWithServiceError(w, "Study activity", err)
		return
	}
	respondWithJSON(w, http.StatusOK, activity)
}

type activityRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	ThumbnailURL *string `json:"thumbnail_url"`
	LaunchURL    string  `json:"launch_url"`
}

// Create handles POST /api/study_activities
func (h *ActivitiesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if req.Name == "" || req.LaunchURL == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required fields: name, launch_url", "", nil)
		return
	}

	activity, err := h.studyService.CreateActivity(req.Name, req.Description, req.ThumbnailURL, req.LaunchURL)
	if err != nil {
		respondWithServiceError(w, "Study activity", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, activity)
}

// Update handles PUT /api/study_activities/{id}
func (h *ActivitiesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if req.Name == "" || req.LaunchURL == "" {
		respondWithError(w, http.StatusBadRequest, "Missing required fields: name, launch_url", "", nil)
		return
	}

	activity, err := h.studyService.UpdateActivity(id, req.Name, req.Description, req.ThumbnailURL, req.LaunchURL)
	if err != nil {
		respondWithServiceError(w, "Study activity", err)
		return
	}
	respondWithJSON(w, http.StatusOK, activity)
}

// Sessions handles GET /api/study_activities/{id}/sessions
func (h *ActivitiesHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	list, err := h.studyService.ListActivitySessions(id, q.Get("page"), q.Get("per_page"))
	if err != nil {
		respondWithServiceError(w, "Study activity", err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

type launchRequest struct {
	GroupID *int64 `json:"group_id"`
}

// Launch handles POST /api/study_activities/{id}/launch: it starts a study
// session for the activity against the given group.
func (h *ActivitiesHandler) Launch(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req launchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GroupID == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required field: group_id", "", nil)
		return
	}

	session, err := h.studyService.CreateSession(*req.GroupID, id)
	if err != nil {
		respondWithServiceError(w, "Launch target", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}
