package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleCSV = `"Question","Answer A","Answer B","Explanation A","Explanation B","Correct","Section"
"Is fasting obligatory in Ramadan?","Yes","No","It is one of the five pillars.","Incorrect, it is obligatory.","A","Fiqh"
"Q with ""quoted"" text, and a comma","Left","Right","Because","Not because","b","Fiqh"
"","orphan","row","","","",""
"No answer key row","Left","Right","E1","E2","",""
`

func serveCSV(t *testing.T, csv string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "sheet=") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(csv))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client())
}

func TestFetchDeckData(t *testing.T) {
	c := serveCSV(t, sampleCSV)

	cards, err := c.FetchDeckData(context.Background(), "Fiqh")
	if err != nil {
		t.Fatalf("FetchDeckData: %v", err)
	}

	// The header and the question-less row are dropped.
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}

	first := cards[0]
	if first.Question != "Is fasting obligatory in Ramadan?" || first.AnswerA != "Yes" || first.Correct != "A" || first.Section != "Fiqh" {
		t.Errorf("first card = %+v", first)
	}

	second := cards[1]
	if second.Question != `Q with "quoted" text, and a comma` {
		t.Errorf("quoted question = %q", second.Question)
	}
	if second.Correct != "B" {
		t.Errorf("correct = %q, want normalized B", second.Correct)
	}

	if cards[2].Correct != "" {
		t.Errorf("missing answer key should stay empty, got %q", cards[2].Correct)
	}
}

func TestFetchDeckDataHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	if _, err := c.FetchDeckData(context.Background(), "Fiqh"); err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
}

func TestFetchAllDecks(t *testing.T) {
	c := serveCSV(t, sampleCSV)

	decks, err := c.FetchAllDecks(context.Background())
	if err != nil {
		t.Fatalf("FetchAllDecks: %v", err)
	}
	if len(decks) != len(DeckConfigs) {
		t.Fatalf("got %d decks, want %d", len(decks), len(DeckConfigs))
	}
	for _, deck := range decks {
		if len(deck.Cards) != 3 {
			t.Errorf("deck %s has %d cards, want 3", deck.ID, len(deck.Cards))
		}
		for _, card := range deck.Cards {
			if card.Slug != deck.ID {
				t.Errorf("deck %s card slug = %q", deck.ID, card.Slug)
			}
		}
	}
}

func TestFetchAllDecksPartialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.RawQuery, "sheet=Fiqh") {
			http.Error(w, "nope", http.StatusBadGateway)
			return
		}
		w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	decks, err := c.FetchAllDecks(context.Background())
	if err != nil {
		t.Fatalf("FetchAllDecks: %v", err)
	}

	for _, deck := range decks {
		want := 3
		if deck.ID == "fiqh" {
			want = 0 // failed sheet comes back empty, not fatal
		}
		if len(deck.Cards) != want {
			t.Errorf("deck %s has %d cards, want %d", deck.ID, len(deck.Cards), want)
		}
	}
}

func TestConfigBySlug(t *testing.T) {
	cfg, ok := ConfigBySlug("fiqh")
	if !ok || cfg.SheetName != "Fiqh" {
		t.Errorf("ConfigBySlug(fiqh) = %+v, %v", cfg, ok)
	}
	if _, ok := ConfigBySlug("nope"); ok {
		t.Error("unknown slug should not resolve")
	}
}
