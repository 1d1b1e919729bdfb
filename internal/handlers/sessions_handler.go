package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"langportal/internal/service"
)

// SessionsHandler handles study session HTTP requests
type SessionsHandler struct {
	studyService *service.StudyService
}

// NewSessionsHandler creates a new sessions handler
func NewSessionsHandler(studyService *service.StudyService) *SessionsHandler {
	return &SessionsHandler{studyService: studyService}
}

type createSessionRequest struct {
	GroupID         *int64 `json:"group_id"`
	StudyActivityID *int64 `json:"study_activity_id"`
}

// Create handles POST /api/study_sessions
func (h *SessionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", "", nil)
		return
	}
	if req.GroupID == nil || req.StudyActivityID == nil {
		respondWithError(w, http.StatusBadRequest, "Missing required fields: group_id, study_activity_id", "", nil)
		return
	}

	session, err := h.studyService.CreateSession(*req.GroupID, *req.StudyActivityID)
	if err != nil {
		respondWithServiceError(w, "Session parent", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, session)
}

// Get handles GET /api/study_sessions/{id}
func (h *SessionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	session, err := h.studyService.GetSession(id)
	if err != nil {
		respondWithServiceError(w, "Study session", err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// List handles GET /api/study_sessions with an optional group_id filter
func (h *SessionsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var groupID *int64
	if raw := q.Get("group_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid group_id", "", nil)
			return
		}
		groupID = &id
	}

	list, err := h.studyService.ListSessions(q.Get("page"), q.Get("per_page"), groupID)
	if err != nil {
		respondWithServiceError(w, "Sessions", err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

type recordReviewRequest struct {
	Correct *bool `json:"correct"`
}

// RecordReview handles POST /api/study_sessions/{id}/words/{wordId}/review
func (h *SessionsHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid session ID", "", nil)
		return
	}
	wordID, err := strconv.ParseInt(r.PathValue("wordId"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word ID", "", nil)
		return
	}

	var req recordReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Correct == nil {
		respondWithError(w, http.StatusBadRequest, "Correct field must be a boolean", "", nil)
		return
	}

	item, err := h.studyService.RecordReview(sessionID, wordID, *req.Correct)
	if err != nil {
		respondWithServiceError(w, "Review target", err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}
