package stores

import (
	"github.com/deencards/deencards-api/models"
	"github.com/deencards/deencards-api/notify"
	"github.com/deencards/deencards-api/storage"
)

const savedKey = "saved_cards"

// Saved is the toggleable list of saved cards, most recently saved first.
// Presence is decided by uid alone; payload fields are never compared.
type Saved struct {
	kv  storage.KV
	bus *notify.Bus
}

func NewSaved(kv storage.KV, bus *notify.Bus) *Saved {
	return &Saved{kv: kv, bus: bus}
}

// All returns the saved list, newest first.
func (s *Saved) All() []models.SavedItem {
	list := []models.SavedItem{}
	s.kv.Read(savedKey, &list)
	return list
}

// Toggle removes uid when present, otherwise inserts it at the front with the
// given payload snapshot. Returns the resulting saved state.
func (s *Saved) Toggle(uid string, payload models.SavedItem) bool {
	list := s.All()
	for i, item := range list {
		if item.UID == uid {
			list = append(list[:i], list[i+1:]...)
			s.write(list)
			return false
		}
	}
	payload.UID = uid
	list = append([]models.SavedItem{payload}, list...)
	s.write(list)
	return true
}

func (s *Saved) Remove(uid string) {
	list := s.All()
	kept := list[:0]
	for _, item := range list {
		if item.UID != uid {
			kept = append(kept, item)
		}
	}
	s.write(kept)
}

func (s *Saved) Contains(uid string) bool {
	for _, item := range s.All() {
		if item.UID == uid {
			return true
		}
	}
	return false
}

func (s *Saved) write(list []models.SavedItem) {
	s.kv.Write(savedKey, list)
	s.bus.Publish(notify.StorageChanged)
}
