package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deencards/deencards-api/stores"
)

// GET /api/settings
func (h *StoreHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Settings.Get())
}

// PUT /api/settings
func (h *StoreHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch stores.Patch
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, h.Settings.Set(patch))
}
