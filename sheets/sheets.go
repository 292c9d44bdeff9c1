// Package sheets loads deck content from the published spreadsheet. Each deck
// is one sheet tab, exported as CSV through the gviz endpoint and turned into
// an ordered card sequence. Rows without a question are dropped here so the
// stores and session never see invalid cards.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deencards/deencards-api/models"
)

const sheetID = "1eE2FmI9ccQ5tu5QNgQHy1hPNdt11rVV1"

// DeckConfig names one sheet tab and the deck it becomes.
type DeckConfig struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SheetName string `json:"-"`
}

var DeckConfigs = []DeckConfig{
	{ID: "aqeedah", Name: "Aqeedah", Icon: "☪️", SheetName: "Aqeedah"},
	{ID: "fiqh", Name: "Fiqh", Icon: "⚖️", SheetName: "Fiqh"},
	{ID: "tazkiyah", Name: "Tazkiyah & Ihsan", Icon: "❤️", SheetName: "Tazkiyah_Ihsan"},
	{ID: "history", Name: "History", Icon: "🕐", SheetName: "History"},
	{ID: "hadith", Name: "Hadith & Sahaba", Icon: "📖", SheetName: "Hadith_Sahaba"},
	{ID: "bidah", Name: "Bidah", Icon: "⚠️", SheetName: "Bidah"},
	{ID: "akhlaq", Name: "Akhlaq & Adab", Icon: "😊", SheetName: "Akhlaq_Adab"},
	{ID: "dunya", Name: "Deen in Modern Dunya", Icon: "🌍", SheetName: "Deen_in_Modern_Dunya"},
	{ID: "quran", Name: "Quran Memorization", Icon: "📕", SheetName: "Quran_Memorization"},
	{ID: "women", Name: "Women in Islam", Icon: "⭐", SheetName: "Women_in_Islam"},
}

// ConfigBySlug looks a deck config up by its id.
func ConfigBySlug(slug string) (DeckConfig, bool) {
	for _, cfg := range DeckConfigs {
		if cfg.ID == slug {
			return cfg, true
		}
	}
	return DeckConfig{}, false
}

// Client fetches and parses deck sheets.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient builds a client against the public spreadsheet endpoint. baseURL
// and httpClient are overridable for tests; zero values get defaults.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = "https://docs.google.com"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{http: httpClient, baseURL: baseURL}
}

// FetchDeckData downloads one sheet tab and parses its rows into cards.
func (c *Client) FetchDeckData(ctx context.Context, sheetName string) ([]models.Card, error) {
	csvURL := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, sheetID, url.QueryEscape(sheetName))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet %s: %w", sheetName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sheet %s: status %d", sheetName, resp.StatusCode)
	}

	return parseCards(resp.Body, sheetName)
}

func parseCards(body io.Reader, sheetName string) ([]models.Card, error) {
	reader := csv.NewReader(body)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse sheet %s: %w", sheetName, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %s: no data", sheetName)
	}

	// First row is the header.
	cards := make([]models.Card, 0, len(records)-1)
	for _, row := range records[1:] {
		card := models.Card{
			Question:     field(row, 0),
			AnswerA:      field(row, 1),
			AnswerB:      field(row, 2),
			ExplanationA: field(row, 3),
			ExplanationB: field(row, 4),
			Correct:      strings.ToUpper(field(row, 5)),
			Section:      field(row, 6),
		}
		if card.Question == "" {
			continue
		}
		if card.Correct != "A" && card.Correct != "B" {
			// Older tabs put the section where the answer key now lives.
			if card.Section == "" {
				card.Section = field(row, 5)
			}
			card.Correct = ""
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func field(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// FetchAllDecks loads every configured deck. A deck whose sheet fails to load
// comes back empty rather than failing the whole set.
func (c *Client) FetchAllDecks(ctx context.Context) ([]models.Deck, error) {
	decks := make([]models.Deck, 0, len(DeckConfigs))
	for _, cfg := range DeckConfigs {
		cards, err := c.FetchDeckData(ctx, cfg.SheetName)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			cards = nil
		}
		for i := range cards {
			cards[i].Slug = cfg.ID
		}
		decks = append(decks, models.Deck{
			ID:    cfg.ID,
			Name:  cfg.Name,
			Icon:  cfg.Icon,
			Cards: cards,
		})
	}
	return decks, nil
}
