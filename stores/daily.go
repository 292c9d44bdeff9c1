package stores

import (
	"math/rand"
	"time"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

// DefaultDailyTotal is the size of the daily practice sample.
const DefaultDailyTotal = 10

const practiceKey = "flashcard_daily_practice"

// Daily tracks the viewed set and practice sample for the current calendar
// date. The date is the local device date truncated to YYYY-MM-DD; rolling
// over starts a fresh empty set, with no migration of yesterday's data.
type Daily struct {
	kv  storage.KV
	bus *notify.Bus
	now func() time.Time
}

func NewDaily(kv storage.KV, bus *notify.Bus) *Daily {
	return &Daily{kv: kv, bus: bus, now: time.Now}
}

func (d *Daily) today() string {
	return d.now().Format("2006-01-02")
}

func dailyKey(date string) string {
	return "dailySet:" + date + ":viewed"
}

// MarkViewed adds cardID to today's viewed set and reports whether it was
// newly added.
func (d *Daily) MarkViewed(cardID string) bool {
	key := dailyKey(d.today())
	viewed := []string{}
	d.kv.Read(key, &viewed)
	for _, id := range viewed {
		if id == cardID {
			return false
		}
	}
	viewed = append(viewed, cardID)
	d.kv.Write(key, viewed)
	d.bus.Publish(notify.StorageChanged)
	return true
}

func (d *Daily) ViewedCount() int {
	viewed := []string{}
	d.kv.Read(dailyKey(d.today()), &viewed)
	return len(viewed)
}

// Percent computes today's completion. A non-positive total falls back to
// DefaultDailyTotal.
func (d *Daily) Percent(total int) int {
	if total <= 0 {
		total = DefaultDailyTotal
	}
	return percent(d.ViewedCount(), total)
}

// Today returns the practice sample already generated for the current date.
func (d *Daily) Today() (models.DailyPractice, bool) {
	practices := []models.DailyPractice{}
	d.kv.Read(practiceKey, &practices)
	today := d.today()
	for _, p := range practices {
		if p.Date == today {
			return p, true
		}
	}
	return models.DailyPractice{}, false
}

// Generate draws the daily sample across all decks: DefaultDailyTotal random
// picks, each from a random non-empty deck. It replaces any sample already
// stored for today.
func (d *Daily) Generate(decks []models.Deck) models.DailyPractice {
	practice := models.DailyPractice{Date: d.today()}
	for i := 0; i < DefaultDailyTotal; i++ {
		if len(decks) == 0 {
			break
		}
		deck := decks[rand.Intn(len(decks))]
		if len(deck.Cards) == 0 {
			continue
		}
		practice.Cards = append(practice.Cards, models.DailyPick{
			DeckID:    deck.ID,
			CardIndex: rand.Intn(len(deck.Cards)),
		})
	}

	practices := []models.DailyPractice{}
	d.kv.Read(practiceKey, &practices)
	replaced := false
	for i := range practices {
		if practices[i].Date == practice.Date {
			practices[i] = practice
			replaced = true
		}
	}
	if !replaced {
		practices = append(practices, practice)
	}
	d.kv.Write(practiceKey, practices)
	d.bus.Publish(notify.StorageChanged)
	return practice
}

// Reset clears today's viewed set and sample. Explicit user action only;
// date rollover never deletes older records.
func (d *Daily) Reset() {
	today := d.today()
	d.kv.Remove(dailyKey(today))

	practices := []models.DailyPractice{}
	if d.kv.Read(practiceKey, &practices) {
		kept := practices[:0]
		for _, p := range practices {
			if p.Date != today {
				kept = append(kept, p)
			}
		}
		d.kv.Write(practiceKey, kept)
	}
	d.bus.Publish(notify.StorageChanged)
	d.bus.Publish(notify.ProgressUpdated)
}

// Summary is the daily record as exposed to the UI.
type Summary struct {
	Date        string `json:"date"`
	ViewedCount int    `json:"viewedCount"`
	Total       int    `json:"total"`
	Finished    bool   `json:"finished"`
}

func (d *Daily) Summarize() Summary {
	count := d.ViewedCount()
	return Summary{
		Date:        d.today(),
		ViewedCount: count,
		Total:       DefaultDailyTotal,
		Finished:    count >= DefaultDailyTotal,
	}
}
