package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/session"
)

// POST /api/sessions
func (h *StoreHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Deck       string `json:"deck,omitempty"`
		Daily      bool   `json:"daily,omitempty"`
		StartIndex int    `json:"startIndex,omitempty"`
		Card       string `json:"card,omitempty"` // uid to resume at
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var (
		cards []models.Card
		opts  session.Options
	)
	switch {
	case req.Daily:
		practice, ok := h.Daily.Today()
		decks, err := h.allDecks(r)
		if err != nil {
			log.Printf("StartSession: %v", err)
			http.Error(w, "Failed to load decks", http.StatusBadGateway)
			return
		}
		if !ok {
			practice = h.Daily.Generate(decks)
		}
		byID := make(map[string]models.Deck, len(decks))
		for _, deck := range decks {
			byID[deck.ID] = deck
		}
		for _, pick := range practice.Cards {
			deck, ok := byID[pick.DeckID]
			if !ok || pick.CardIndex < 0 || pick.CardIndex >= len(deck.Cards) {
				continue
			}
			card := deck.Cards[pick.CardIndex]
			if card.Section == "" {
				card.Section = deck.Name
			}
			cards = append(cards, card)
		}
		opts = session.Options{DeckSlug: "daily", Daily: true, StartIndex: req.StartIndex}

	case req.Deck != "":
		deck, ok, err := h.deckBySlug(r, req.Deck)
		if err != nil {
			log.Printf("StartSession: %v", err)
			http.Error(w, "Failed to load deck", http.StatusBadGateway)
			return
		}
		if !ok {
			http.Error(w, "Deck not found", http.StatusNotFound)
			return
		}
		cards = deck.Cards
		uids := make([]string, len(cards))
		for i, card := range cards {
			uids[i] = models.CardUID(req.Deck, card, i)
		}
		start := req.StartIndex
		if req.Card != "" {
			for i, uid := range uids {
				if uid == req.Card {
					start = i
					break
				}
			}
		}
		opts = session.Options{DeckSlug: req.Deck, StartIndex: start, UIDs: uids}

	default:
		http.Error(w, "deck or daily is required", http.StatusBadRequest)
		return
	}

	s := session.New(cards, opts, h.Progress, h.Daily, h.Saved, h.Bus)
	id, err := h.Sessions.Add(s)
	if err != nil {
		http.Error(w, "Failed to generate session ID", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"sessionId": id,
		"state":     s.State(),
	})
}

// GET /api/sessions/{sessionID}
func (h *StoreHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Sessions.Get(r.PathValue("sessionID"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.State())
}

// POST /api/sessions/{sessionID}/answer
func (h *StoreHandler) AnswerSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Sessions.Get(r.PathValue("sessionID"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	var req struct {
		Choice string `json:"choice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.SelectAnswer(session.Answer(req.Choice))
	writeJSON(w, http.StatusOK, s.State())
}

// POST /api/sessions/{sessionID}/{action} for next|prev|random|flip-back|save
func (h *StoreHandler) TransitionSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.Sessions.Get(r.PathValue("sessionID"))
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	switch r.PathValue("action") {
	case "next":
		s.Next()
	case "prev":
		s.Prev()
	case "random":
		s.Random()
	case "flip-back":
		s.FlipBack()
	case "save":
		s.ToggleSave()
	default:
		http.Error(w, "Unknown action", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, s.State())
}

// DELETE /api/sessions/{sessionID}
func (h *StoreHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if !h.Sessions.Close(r.PathValue("sessionID")) {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
