package stores

import (
	"time"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

const bookmarksKey = "flashcard_bookmarks"

// Bookmarks flags individual (deck, card index) pairs, at most one per pair.
type Bookmarks struct {
	kv  storage.KV
	bus *notify.Bus
}

func NewBookmarks(kv storage.KV, bus *notify.Bus) *Bookmarks {
	return &Bookmarks{kv: kv, bus: bus}
}

func (b *Bookmarks) All() []models.Bookmark {
	list := []models.Bookmark{}
	b.kv.Read(bookmarksKey, &list)
	return list
}

// Toggle flips the bookmark for the pair and returns the resulting state.
func (b *Bookmarks) Toggle(deckID string, cardIndex int) bool {
	list := b.All()
	for i, bm := range list {
		if bm.DeckID == deckID && bm.CardIndex == cardIndex {
			list = append(list[:i], list[i+1:]...)
			b.kv.Write(bookmarksKey, list)
			b.bus.Publish(notify.StorageChanged)
			return false
		}
	}
	list = append(list, models.Bookmark{
		DeckID:    deckID,
		CardIndex: cardIndex,
		DateAdded: time.Now(),
	})
	b.kv.Write(bookmarksKey, list)
	b.bus.Publish(notify.StorageChanged)
	return true
}

func (b *Bookmarks) IsBookmarked(deckID string, cardIndex int) bool {
	for _, bm := range b.All() {
		if bm.DeckID == deckID && bm.CardIndex == cardIndex {
			return true
		}
	}
	return false
}
