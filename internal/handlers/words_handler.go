package handlers

import (
	"net/http"
	"strconv"

	"langportal/internal/service"
)

// WordsHandler handles vocabulary HTTP requests
type WordsHandler struct {
	wordService *service.WordService
}

// NewWordsHandler creates a new words handler
func NewWordsHandler(wordService *service.WordService) *WordsHandler {
	return &WordsHandler{wordService: wordService}
}

// List handles GET /api/words
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.wordService.ListWords(q.Get("page"), q.Get("limit"), q.Get("sort_by"), q.Get("order"))
	if err != nil {
		respondWithServiceError(w, "Words", err)
		return
	}
	respondWithJSON(w, http.StatusOK, list)
}

// Get handles GET /api/words/{id}
func (h *WordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid word ID", "", nil)
		return
	}

	word, err := h.wordService.GetWord(id)
	if err != nil {
		respondWithServiceError(w, "Word", err)
		return
	}
	respondWithJSON(w, http.StatusOK, word)
}
