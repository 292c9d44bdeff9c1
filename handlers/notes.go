package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// GET /api/notes  (all notes, or one pair via ?deckId=&cardIndex=)
func (h *StoreHandler) GetNotes(w http.ResponseWriter, r *http.Request) {
	deckID := r.URL.Query().Get("deckId")
	if deckID == "" {
		writeJSON(w, http.StatusOK, h.Notes.All())
		return
	}

	cardIndex, err := strconv.Atoi(r.URL.Query().Get("cardIndex"))
	if err != nil {
		http.Error(w, "cardIndex must be a number", http.StatusBadRequest)
		return
	}

	note, ok := h.Notes.Get(deckID, cardIndex)
	if !ok {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// PUT /api/notes
func (h *StoreHandler) SaveNote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DeckID    string `json:"deckId"`
		CardIndex int    `json:"cardIndex"`
		Note      string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.DeckID == "" {
		http.Error(w, "deckId is required", http.StatusBadRequest)
		return
	}

	h.Notes.Save(req.DeckID, req.CardIndex, req.Note)
	note, _ := h.Notes.Get(req.DeckID, req.CardIndex)
	writeJSON(w, http.StatusOK, note)
}
