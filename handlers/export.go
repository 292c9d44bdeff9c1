package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/deencards/deencards-api/auth"
	"github.com/deencards/deencards-api/middleware"
)

// GET /api/export-key
//
// Hands out a signed token naming the caller's anonymous profile. Requires
// JWT_SECRET_KEY; without it the feature simply isn't offered.
func (h *StoreHandler) ExportKey(w http.ResponseWriter, r *http.Request) {
	profileID, ok := middleware.ProfileID(r)
	if !ok {
		http.Error(w, "No profile", http.StatusBadRequest)
		return
	}

	token, err := auth.CreateExportToken(profileID)
	if err != nil {
		http.Error(w, "Export keys are not enabled", http.StatusNotImplemented)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"exportKey": token})
}

// POST /api/import-key
//
// Verifies an export key and adopts the profile it names, so this browser
// picks up the exported state from now on.
func (h *StoreHandler) ImportKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ExportKey string `json:"exportKey"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ExportKey == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	profileID, err := auth.VerifyExportToken(req.ExportKey)
	if err != nil {
		http.Error(w, "Invalid export key", http.StatusUnauthorized)
		return
	}

	middleware.SetProfileCookie(w, profileID)
	writeJSON(w, http.StatusOK, map[string]string{"profile": profileID})
}
