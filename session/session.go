// Package session drives a study run over one ordered card sequence: current
// position, answer selection, reveal state, and the first-reveal progress
// writes into the stores.
package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/stores"
)

// Answer is the user's selection on the front of a card.
type Answer string

const (
	AnswerNone Answer = ""
	AnswerA    Answer = "A"
	AnswerB    Answer = "B"
)

const (
	// revealDelay separates tapping an answer from the card flip.
	revealDelay = 140 * time.Millisecond
	// noticeTTL is how long the jump notice stays up.
	noticeTTL = 1200 * time.Millisecond
)

// Options configure a session at initialization.
type Options struct {
	DeckSlug   string
	StartIndex int
	// Daily marks a daily-practice run: reveals also bump the daily counter.
	Daily bool
	// UIDs overrides the derived positional identifiers. Deck runs pass the
	// question-prefix ids here; daily runs keep the positional default.
	UIDs []string
	// Delay overrides revealDelay; zero or negative reveals synchronously.
	Delay *time.Duration
}

// Session is the card study state machine. All transitions are total: with no
// cards, or after Close, every input is a no-op. Safe for concurrent use;
// the reveal and notice timers fire on their own goroutines.
type Session struct {
	mu       sync.Mutex
	cards    []models.Card
	uids     []string
	deckSlug string
	daily    bool
	delay    time.Duration

	index    int
	selected Answer
	revealed bool
	viewed   map[int]bool
	notice   string

	// gen invalidates timer callbacks scheduled before a navigation or Close.
	gen         int
	closed      bool
	revealTimer *time.Timer
	noticeTimer *time.Timer

	progress   *stores.Progress
	dailyStore *stores.Daily
	saved      *stores.Saved
	bus        *notify.Bus

	randInt func(int) int
}

// New initializes a session. startIndex clamps into [0, len(cards)-1].
func New(cards []models.Card, opts Options, progress *stores.Progress, daily *stores.Daily, saved *stores.Saved, bus *notify.Bus) *Session {
	s := &Session{
		cards:      cards,
		deckSlug:   opts.DeckSlug,
		daily:      opts.Daily,
		delay:      revealDelay,
		viewed:     make(map[int]bool),
		progress:   progress,
		dailyStore: daily,
		saved:      saved,
		bus:        bus,
		randInt:    rand.Intn,
	}
	if opts.Delay != nil {
		s.delay = *opts.Delay
	}
	s.uids = opts.UIDs
	if s.uids == nil {
		s.uids = make([]string, len(cards))
		for i := range cards {
			s.uids[i] = models.CardID(opts.DeckSlug, i)
		}
	}
	s.index = clamp(opts.StartIndex, len(cards))
	return s
}

// NoCards reports the terminal empty-sequence condition.
func (s *Session) NoCards() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards) == 0
}

// SelectAnswer picks A or B. Only valid before reveal; after the fixed delay
// the card flips. Selecting while revealed is a no-op.
func (s *Session) SelectAnswer(choice Answer) {
	if choice != AnswerA && choice != AnswerB {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.cards) == 0 || s.revealed {
		return
	}
	s.selected = choice
	if s.delay <= 0 {
		s.reveal()
		return
	}
	gen := s.gen
	if s.revealTimer != nil {
		s.revealTimer.Stop()
	}
	s.revealTimer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.gen {
			return
		}
		s.reveal()
	})
}

// reveal flips the card and, on the first reveal of this index within the
// session, records the view. Callers hold s.mu.
func (s *Session) reveal() {
	s.revealed = true
	if s.viewed[s.index] {
		return
	}
	s.viewed[s.index] = true
	uid := s.uids[s.index]
	if s.deckSlug != "" {
		s.progress.MarkViewed(s.deckSlug, uid)
	}
	if s.daily {
		s.dailyStore.MarkViewed(uid)
	}
	s.bus.Publish(notify.ProgressUpdated)
}

// FlipBack turns a revealed card back to its question side. The selection is
// kept; re-selecting afterwards re-reveals without recording again.
func (s *Session) FlipBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || !s.revealed {
		return
	}
	s.revealed = false
}

// Next advances one card, clamped at the last.
func (s *Session) Next() {
	s.move(+1)
}

// Prev steps back one card, clamped at the first.
func (s *Session) Prev() {
	s.move(-1)
}

func (s *Session) move(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.cards) == 0 {
		return
	}
	s.gen++
	s.index = clamp(s.index+delta, len(s.cards))
	s.selected = AnswerNone
	s.revealed = false
}

// Random jumps to a uniformly chosen index (possibly the current one), resets
// answer state and raises a transient notice naming the new position.
func (s *Session) Random() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || len(s.cards) == 0 {
		return
	}
	s.gen++
	s.index = s.randInt(len(s.cards))
	s.selected = AnswerNone
	s.revealed = false
	s.notice = fmt.Sprintf("Jumped to question %d", s.index+1)

	gen := s.gen
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
	}
	s.noticeTimer = time.AfterFunc(noticeTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || gen != s.gen {
			return
		}
		s.notice = ""
	})
}

// ToggleSave saves or unsaves the current card, independent of reveal state.
// Returns the resulting saved state.
func (s *Session) ToggleSave() bool {
	s.mu.Lock()
	if s.closed || len(s.cards) == 0 {
		s.mu.Unlock()
		return false
	}
	card := s.cards[s.index]
	uid := s.uids[s.index]
	index := s.index
	s.mu.Unlock()

	slug := card.Slug
	if slug == "" {
		slug = s.deckSlug
	}
	section := card.Section
	if section == "" {
		section = slug
	}
	return s.saved.Toggle(uid, models.SavedItem{
		Question: card.Question,
		Section:  section,
		Slug:     slug,
		Index:    index,
	})
}

// Close tears the session down and cancels pending reveal and notice timers.
// A timer that already fired but has not run yet sees the bumped generation
// and leaves the state alone.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.gen++
	if s.revealTimer != nil {
		s.revealTimer.Stop()
		s.revealTimer = nil
	}
	if s.noticeTimer != nil {
		s.noticeTimer.Stop()
		s.noticeTimer = nil
	}
}

// State is a snapshot for rendering.
type State struct {
	Index    int          `json:"index"`
	Total    int          `json:"total"`
	Card     *models.Card `json:"card,omitempty"`
	UID      string       `json:"uid,omitempty"`
	Selected Answer       `json:"selected"`
	Revealed bool         `json:"revealed"`
	Saved    bool         `json:"saved"`
	Notice   string       `json:"notice,omitempty"`
	NoCards  bool         `json:"noCards"`
}

func (s *Session) State() State {
	s.mu.Lock()
	st := State{
		Index:    s.index,
		Total:    len(s.cards),
		Selected: s.selected,
		Revealed: s.revealed,
		Notice:   s.notice,
		NoCards:  len(s.cards) == 0,
	}
	var uid string
	if !st.NoCards {
		card := s.cards[s.index]
		st.Card = &card
		uid = s.uids[s.index]
		st.UID = uid
	}
	s.mu.Unlock()
	if uid != "" {
		st.Saved = s.saved.Contains(uid)
	}
	return st
}

func clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
