package handlers

import (
	"encoding/json"
	"net/http"
)

// GET /api/bookmarks
func (h *StoreHandler) GetBookmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Bookmarks.All())
}

// POST /api/bookmarks/toggle
func (h *StoreHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeckID    string `json:"deckId"`
		CardIndex int    `json:"cardIndex"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.DeckID == "" {
		http.Error(w, "deckId is required", http.StatusBadRequest)
		return
	}

	bookmarked := h.Bookmarks.Toggle(req.DeckID, req.CardIndex)
	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}
