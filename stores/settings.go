package stores

import (
	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

const settingsKey = "flashcard_settings"

// Settings is the singleton preference record.
type Settings struct {
	kv  storage.KV
	bus *notify.Bus
}

func NewSettings(kv storage.KV, bus *notify.Bus) *Settings {
	return &Settings{kv: kv, bus: bus}
}

// Get merges whatever subset of fields exists in storage over the defaults,
// so records written by older versions still read cleanly.
func (s *Settings) Get() models.AppSettings {
	settings := models.DefaultSettings()
	s.kv.Read(settingsKey, &settings)
	return settings
}

// Patch carries a partial settings update; nil fields are left unchanged.
type Patch struct {
	DarkMode             *bool   `json:"darkMode,omitempty"`
	Language             *string `json:"language,omitempty"`
	AutoShowExplanations *bool   `json:"autoShowExplanations,omitempty"`
}

// Set merges the patch into the current settings and persists the result.
func (s *Settings) Set(patch Patch) models.AppSettings {
	settings := s.Get()
	if patch.DarkMode != nil {
		settings.DarkMode = *patch.DarkMode
	}
	if patch.Language != nil {
		settings.Language = *patch.Language
	}
	if patch.AutoShowExplanations != nil {
		settings.AutoShowExplanations = *patch.AutoShowExplanations
	}
	s.kv.Write(settingsKey, settings)
	s.bus.Publish(notify.StorageChanged)
	return settings
}
