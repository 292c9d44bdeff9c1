package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deencards/deencards-api/models"
)

// GET /api/saved
func (h *StoreHandler) GetSaved(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Saved.All())
}

// POST /api/saved/toggle
func (h *StoreHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UID     string           `json:"uid"`
		Payload models.SavedItem `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UID == "" {
		http.Error(w, "uid is required", http.StatusBadRequest)
		return
	}

	saved := h.Saved.Toggle(req.UID, req.Payload)
	writeJSON(w, http.StatusOK, map[string]bool{"saved": saved})
}

// DELETE /api/saved/{uid}
func (h *StoreHandler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")
	if uid == "" {
		http.Error(w, "uid is required", http.StatusBadRequest)
		return
	}
	h.Saved.Remove(uid)
	w.WriteHeader(http.StatusNoContent)
}
