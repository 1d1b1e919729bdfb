package handlers

import (
	"net/http"
	"strconv"

	"langportal/internal/service"
)

// GroupsHandler handles word group HTTP requests
type GroupsHandler struct {
	groupService *service.GroupService
}

// NewGroupsHandler creates a new groups handler
func NewGroupsHandler(groupService *service.GroupService) *GroupsHandler {
	return &GroupsHandler{groupService: groupService}
}

// List handles GET /api/groups
func (h *GroupsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.groupService.ListGroups(q.Get("page"), q.Get("limit"))
	if err != nil {
		respondWithServiceError(w, "Groups", err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

// Get handles GET /api/groups/{id}
func (h *GroupsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	group, err := h.groupService.GetGroup(id)
	if err != nil {
		respondWithServiceError(w, "Group", err)
		return
	}
	respondWithJSON(w, http.StatusOK, group)
}

// Words handles GET /api/groups/{id}/words
func (h *GroupsHandler) Words(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	list, err := h.groupService.ListGroupWords(id, q.Get("page"), q.Get("limit"), q.Get("sort_by"), q.Get("order"))
	if err != nil {
		respondWithServiceError(w, "Group", err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

// Sessions handles GET /api/groups/{id}/study_sessions. A missing group is
// 404; a group with no sessions is 200 with an empty page.
func (h *GroupsHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	list, err := h.groupService.ListGroupSessions(id, q.Get("page"), q.Get("per_page"))
	if err != nil {
		respondWithServiceError(w, "Group", err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid ID", "", nil)
		return 0, false
	}
	return id, true
}
