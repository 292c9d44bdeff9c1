package stores

import (
	"testing"

	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings(storage.NewMemory(), notify.NewBus())

	got := s.Get()
	if got.DarkMode || got.Language != "EN" || got.AutoShowExplanations {
		t.Errorf("Get on empty storage = %+v, want defaults", got)
	}
}

func TestSettingsDefaultMerge(t *testing.T) {
	kv := storage.NewMemory()
	// A record written by an older version that only knew darkMode.
	kv.Write(settingsKey, map[string]any{"darkMode": true})

	s := NewSettings(kv, notify.NewBus())
	got := s.Get()
	if !got.DarkMode {
		t.Error("stored darkMode should survive")
	}
	if got.Language != "EN" {
		t.Errorf("Language = %q, want default EN", got.Language)
	}
	if got.AutoShowExplanations {
		t.Error("AutoShowExplanations should default to false")
	}
}

func TestSettingsPatch(t *testing.T) {
	s := NewSettings(storage.NewMemory(), notify.NewBus())

	lang := "TR"
	s.Set(Patch{Language: &lang})

	dark := true
	got := s.Set(Patch{DarkMode: &dark})
	if !got.DarkMode {
		t.Error("DarkMode should be true")
	}
	if got.Language != "TR" {
		t.Errorf("Language = %q, earlier patch should persist", got.Language)
	}

	// Reads go through storage, not the returned copy.
	if fresh := s.Get(); fresh != got {
		t.Errorf("Get = %+v, want %+v", fresh, got)
	}
}
