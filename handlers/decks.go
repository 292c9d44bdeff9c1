package handlers

import (
	"log"
	"net/http"

	"github.com/deencards/deencards-api/models"
)

// GET /api/decks
func (h *StoreHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.allDecks(r)
	if err != nil {
		log.Printf("ListDecks: %v", err)
		http.Error(w, "Failed to load decks", http.StatusBadGateway)
		return
	}

	// Card payloads stay out of the listing; progress comes from the store.
	type DeckSummary struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Icon     string `json:"icon"`
		Cards    int    `json:"cards"`
		Progress int    `json:"progress"`
	}
	summaries := make([]DeckSummary, 0, len(decks))
	for _, deck := range decks {
		summaries = append(summaries, DeckSummary{
			ID:       deck.ID,
			Name:     deck.Name,
			Icon:     deck.Icon,
			Cards:    len(deck.Cards),
			Progress: h.Progress.Percent(deck.ID, len(deck.Cards)),
		})
	}

	writeJSON(w, http.StatusOK, summaries)
}

// GET /api/decks/{slug}/cards
func (h *StoreHandler) GetDeckCards(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	deck, ok, err := h.deckBySlug(r, slug)
	if err != nil {
		log.Printf("GetDeckCards: %v", err)
		http.Error(w, "Failed to load deck", http.StatusBadGateway)
		return
	}
	if !ok {
		http.Error(w, "Deck not found", http.StatusNotFound)
		return
	}

	type CardWithUID struct {
		models.Card
		UID string `json:"uid"`
	}
	cards := make([]CardWithUID, 0, len(deck.Cards))
	for i, card := range deck.Cards {
		cards = append(cards, CardWithUID{Card: card, UID: models.CardUID(slug, card, i)})
	}

	writeJSON(w, http.StatusOK, cards)
}
