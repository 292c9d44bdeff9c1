package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/session"
	"github.com/deencards/deencards-api/sheets"
	"github.com/deencards/deencards-api/stores"
)

// deckCacheTTL bounds how long deck content is served without re-fetching
// the spreadsheet.
const deckCacheTTL = 5 * time.Minute

// StoreHandler carries the stores, the session manager and the content
// client into every route.
type StoreHandler struct {
	Sheets    *sheets.Client
	Progress  *stores.Progress
	Daily     *stores.Daily
	Saved     *stores.Saved
	Bookmarks *stores.Bookmarks
	Notes     *stores.Notes
	Settings  *stores.Settings
	Sessions  *session.Manager
	Bus       *notify.Bus

	mu        sync.Mutex
	decks     []models.Deck
	fetchedAt time.Time
}

// allDecks returns the deck set, re-fetching the spreadsheet when the cached
// copy is stale.
func (h *StoreHandler) allDecks(r *http.Request) ([]models.Deck, error) {
	h.mu.Lock()
	if h.decks != nil && time.Since(h.fetchedAt) < deckCacheTTL {
		decks := h.decks
		h.mu.Unlock()
		return decks, nil
	}
	h.mu.Unlock()

	decks, err := h.Sheets.FetchAllDecks(r.Context())
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.decks = decks
	h.fetchedAt = time.Now()
	h.mu.Unlock()
	return decks, nil
}

func (h *StoreHandler) deckBySlug(r *http.Request, slug string) (models.Deck, bool, error) {
	decks, err := h.allDecks(r)
	if err != nil {
		return models.Deck{}, false, err
	}
	for _, deck := range decks {
		if deck.ID == slug {
			return deck, true, nil
		}
	}
	return models.Deck{}, false, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
