package handlers

import (
	"log"
	"net/http"
)

// GET /api/progress/{slug}
func (h *StoreHandler) GetDeckProgress(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	deck, ok, err := h.deckBySlug(r, slug)
	if err != nil {
		log.Printf("GetDeckProgress: %v", err)
		http.Error(w, "Failed to load deck", http.StatusBadGateway)
		return
	}
	if !ok {
		http.Error(w, "Deck not found", http.StatusNotFound)
		return
	}

	viewed := h.Progress.Viewed(slug)
	writeJSON(w, http.StatusOK, map[string]any{
		"deckId":  slug,
		"viewed":  viewed,
		"total":   len(deck.Cards),
		"percent": h.Progress.Percent(slug, len(deck.Cards)),
	})
}

// POST /api/progress/{slug}/reset
func (h *StoreHandler) ResetDeckProgress(w http.ResponseWriter, r *http.Request) {
	h.Progress.Reset(r.PathValue("slug"))
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/daily
func (h *StoreHandler) GetDaily(w http.ResponseWriter, r *http.Request) {
	summary := h.Daily.Summarize()
	practice, ok := h.Daily.Today()
	resp := map[string]any{
		"summary": summary,
		"percent": h.Daily.Percent(0),
	}
	if ok {
		resp["practice"] = practice
	}
	writeJSON(w, http.StatusOK, resp)
}

// POST /api/daily/reset
func (h *StoreHandler) ResetDaily(w http.ResponseWriter, r *http.Request) {
	h.Daily.Reset()
	w.WriteHeader(http.StatusNoContent)
}
