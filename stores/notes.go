package stores

import (
	"time"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

const notesKey = "flashcard_notes"

// Notes holds free-text annotations keyed by (deck, card index).
type Notes struct {
	kv  storage.KV
	bus *notify.Bus
}

func NewNotes(kv storage.KV, bus *notify.Bus) *Notes {
	return &Notes{kv: kv, bus: bus}
}

func (n *Notes) All() []models.UserNote {
	list := []models.UserNote{}
	n.kv.Read(notesKey, &list)
	return list
}

// Save upserts the note for the pair. DateCreated is set once on creation and
// left untouched on update; DateModified always moves.
func (n *Notes) Save(deckID string, cardIndex int, text string) {
	list := n.All()
	now := time.Now()
	for i, note := range list {
		if note.DeckID == deckID && note.CardIndex == cardIndex {
			list[i].Note = text
			list[i].DateModified = now
			n.kv.Write(notesKey, list)
			n.bus.Publish(notify.StorageChanged)
			return
		}
	}
	list = append(list, models.UserNote{
		DeckID:       deckID,
		CardIndex:    cardIndex,
		Note:         text,
		DateCreated:  now,
		DateModified: now,
	})
	n.kv.Write(notesKey, list)
	n.bus.Publish(notify.StorageChanged)
}

func (n *Notes) Get(deckID string, cardIndex int) (models.UserNote, bool) {
	for _, note := range n.All() {
		if note.DeckID == deckID && note.CardIndex == cardIndex {
			return note, true
		}
	}
	return models.UserNote{}, false
}

// HasNote reports whether the pair has a non-empty note. An empty record may
// persist after the user clears the text; it counts as no note for display.
func (n *Notes) HasNote(deckID string, cardIndex int) bool {
	note, ok := n.Get(deckID, cardIndex)
	return ok && note.Note != ""
}
