// Package stores holds the per-record-type stores over the key-value layer.
// Every mutation publishes on the notification bus so other views re-read
// storage and converge; nothing is shared in memory between components.
package stores

import (
	"math"

	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

// Progress tracks which cards have been viewed per deck.
type Progress struct {
	kv  storage.KV
	bus *notify.Bus
}

func NewProgress(kv storage.KV, bus *notify.Bus) *Progress {
	return &Progress{kv: kv, bus: bus}
}

func deckKey(deckID string) string {
	return "deckProgress:" + deckID
}

// MarkViewed adds cardID to the deck's viewed set and reports whether it was
// newly added. An already-viewed card is never counted twice, even across
// navigating away and back; callers use the return value to decide whether to
// bump the daily counter as well.
func (p *Progress) MarkViewed(deckID, cardID string) bool {
	viewed := p.Viewed(deckID)
	for _, id := range viewed {
		if id == cardID {
			return false
		}
	}
	viewed = append(viewed, cardID)
	p.kv.Write(deckKey(deckID), viewed)
	p.bus.Publish(notify.StorageChanged)
	return true
}

func (p *Progress) Viewed(deckID string) []string {
	viewed := []string{}
	p.kv.Read(deckKey(deckID), &viewed)
	return viewed
}

// Percent computes completion against the supplied deck size.
func (p *Progress) Percent(deckID string, totalCards int) int {
	return percent(len(p.Viewed(deckID)), totalCards)
}

func (p *Progress) Reset(deckID string) {
	p.kv.Remove(deckKey(deckID))
	p.bus.Publish(notify.StorageChanged)
	p.bus.Publish(notify.ProgressUpdated)
}

func percent(seen, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(seen) / float64(total) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
