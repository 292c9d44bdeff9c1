package models

import "time"

// SavedItem is one entry of the saved-cards list. The payload fields carry
// enough of the card to render a list row and jump back to the original deck.
type SavedItem struct {
	UID      string `json:"uid"`
	Question string `json:"question"`
	Section  string `json:"section,omitempty"`
	Slug     string `json:"slug,omitempty"`
	Index    int    `json:"index"`
}

type Bookmark struct {
	DeckID    string    `json:"deckId"`
	CardIndex int       `json:"cardIndex"`
	DateAdded time.Time `json:"dateAdded"`
}

type UserNote struct {
	DeckID       string    `json:"deckId"`
	CardIndex    int       `json:"cardIndex"`
	Note         string    `json:"note"`
	DateCreated  time.Time `json:"dateCreated"`
	DateModified time.Time `json:"dateModified"`
}

// AppSettings is the singleton user-preference record. Reads merge stored
// partial data over DefaultSettings so fields added later still get a value.
type AppSettings struct {
	DarkMode             bool   `json:"darkMode"`
	Language             string `json:"language"` // "EN" or "TR"
	AutoShowExplanations bool   `json:"autoShowExplanations"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		DarkMode:             false,
		Language:             "EN",
		AutoShowExplanations: false,
	}
}

// DailyPick addresses one card of the daily practice sample.
type DailyPick struct {
	DeckID    string `json:"deckId"`
	CardIndex int    `json:"cardIndex"`
}

// DailyPractice is the fixed-size cross-deck sample regenerated once per
// calendar date. Date is the local device date truncated to YYYY-MM-DD.
type DailyPractice struct {
	Date      string      `json:"date"`
	Cards     []DailyPick `json:"cards"`
	Completed bool        `json:"completed"`
}
