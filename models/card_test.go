package models

import (
	"strings"
	"testing"
)

func TestCardID(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		index int
		want  string
	}{
		{name: "simple", slug: "fiqh", index: 0, want: "fiqh:0"},
		{name: "empty slug falls back", slug: "", index: 3, want: "deck:3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CardID(tt.slug, tt.index); got != tt.want {
				t.Errorf("CardID(%q, %d) = %q, want %q", tt.slug, tt.index, got, tt.want)
			}
		})
	}
}

func TestCardUID(t *testing.T) {
	c := Card{Question: "Is fasting obligatory?"}
	if got := CardUID("fiqh", c, 4); got != "fiqh:Is fasting obligatory?" {
		t.Errorf("CardUID = %q", got)
	}

	// Stable across reloads: same deck and question, same identifier.
	if CardUID("fiqh", c, 4) != CardUID("fiqh", c, 9) {
		t.Error("question-prefix uid should not depend on position")
	}

	// No question text falls back to the positional form.
	if got := CardUID("fiqh", Card{}, 2); got != "fiqh:2" {
		t.Errorf("fallback uid = %q", got)
	}
}

func TestCardUIDTruncation(t *testing.T) {
	long := strings.Repeat("x", 200)
	got := CardUID("fiqh", Card{Question: long}, 0)
	want := "fiqh:" + strings.Repeat("x", 64)
	if got != want {
		t.Errorf("uid = %q, want 64-char question prefix", got)
	}
}
