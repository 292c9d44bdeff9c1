package models

import "fmt"

// Card represents a single two-choice question loaded from the content source
type Card struct {
	Question     string `json:"question"`
	AnswerA      string `json:"answerA"`
	AnswerB      string `json:"answerB"`
	ExplanationA string `json:"explanationA"`
	ExplanationB string `json:"explanationB"`
	Correct      string `json:"correct"` // "A" or "B"
	Section      string `json:"section,omitempty"`
	Slug         string `json:"slug,omitempty"` // deck the card came from
}

// Deck represents a named collection of cards belonging to one topic
type Deck struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Cards []Card `json:"cards"`
}

// CardID derives the stable identifier joining progress, saved items and
// bookmarks for one card. Two cards with the same ID are the same study item.
func CardID(slug string, index int) string {
	if slug == "" {
		slug = "deck"
	}
	return fmt.Sprintf("%s:%d", slug, index)
}

// CardUID is the question-prefix variant used by deck runs: stable even when
// the sheet gains or loses rows above the card. Falls back to the positional
// form for cards with no question text.
func CardUID(slug string, c Card, index int) string {
	if slug == "" {
		slug = "deck"
	}
	q := []rune(c.Question)
	if len(q) == 0 {
		return CardID(slug, index)
	}
	if len(q) > 64 {
		q = q[:64]
	}
	return slug + ":" + string(q)
}
