package stores

import (
	"testing"

	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

func newSaved() *Saved {
	return NewSaved(storage.NewMemory(), notify.NewBus())
}

func TestSavedToggleScenario(t *testing.T) {
	s := newSaved()

	if got := s.Toggle("x", models.SavedItem{Question: "Q"}); !got {
		t.Fatal("toggle on empty list should save")
	}
	list := s.All()
	if len(list) != 1 || list[0].UID != "x" || list[0].Question != "Q" {
		t.Fatalf("All = %+v, want single {uid:x question:Q}", list)
	}

	if got := s.Toggle("x", models.SavedItem{}); got {
		t.Fatal("second toggle should unsave")
	}
	if got := s.All(); len(got) != 0 {
		t.Fatalf("All after double toggle = %+v, want empty", got)
	}
}

func TestSavedInsertsAtFront(t *testing.T) {
	s := newSaved()
	s.Toggle("a", models.SavedItem{Question: "first"})
	s.Toggle("b", models.SavedItem{Question: "second"})

	list := s.All()
	if len(list) != 2 || list[0].UID != "b" || list[1].UID != "a" {
		t.Errorf("All = %+v, want most recent first", list)
	}
}

func TestSavedToggleSymmetry(t *testing.T) {
	s := newSaved()
	s.Toggle("a", models.SavedItem{})
	s.Toggle("b", models.SavedItem{})
	s.Toggle("c", models.SavedItem{})

	s.Toggle("b", models.SavedItem{})
	s.Toggle("b", models.SavedItem{})

	list := s.All()
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	// The re-toggled uid moves to the front; the others keep their order.
	if list[0].UID != "b" || list[1].UID != "c" || list[2].UID != "a" {
		t.Errorf("order = %s,%s,%s, want b,c,a", list[0].UID, list[1].UID, list[2].UID)
	}
}

func TestSavedPresenceByUIDOnly(t *testing.T) {
	s := newSaved()
	s.Toggle("x", models.SavedItem{Question: "original"})

	// Same uid with a different payload must remove, not duplicate.
	if got := s.Toggle("x", models.SavedItem{Question: "different"}); got {
		t.Fatal("toggle with same uid should unsave regardless of payload")
	}
	if s.Contains("x") {
		t.Error("Contains should be false after unsave")
	}
}

func TestSavedRemove(t *testing.T) {
	s := newSaved()
	s.Toggle("a", models.SavedItem{})
	s.Toggle("b", models.SavedItem{})

	s.Remove("a")
	if s.Contains("a") {
		t.Error("a should be gone")
	}
	if !s.Contains("b") {
		t.Error("b should remain")
	}

	// Removing an absent uid is a no-op.
	s.Remove("zzz")
	if got := len(s.All()); got != 1 {
		t.Errorf("len = %d, want 1", got)
	}
}
