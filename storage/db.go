package storage

import (
	"encoding/json"
	"errors"
	"log"
	"reflect"

	"gorm.io/gorm"
)

// Entry is one persisted key-value row.
type Entry struct {
	Key   string `gorm:"primaryKey;size:200"`
	Value string `gorm:"not null"`
}

// DB persists entries through GORM (sqlite by default, postgres via DB_URL).
type DB struct {
	db *gorm.DB
}

func NewDB(db *gorm.DB) *DB {
	return &DB{db: db}
}

func (s *DB) Read(key string, out any) bool {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("storage: read %q: %v", key, err)
		}
		return false
	}
	return decode([]byte(entry.Value), out)
}

func (s *DB) Write(key string, v any) {
	raw, ok := encode(v)
	if !ok {
		return
	}
	entry := Entry{Key: key, Value: string(raw)}
	if err := s.db.Save(&entry).Error; err != nil {
		log.Printf("storage: write %q: %v", key, err)
	}
}

func (s *DB) Remove(key string) {
	if err := s.db.Delete(&Entry{}, "key = ?", key).Error; err != nil {
		log.Printf("storage: remove %q: %v", key, err)
	}
}

// decode unmarshals into a copy of out first, so a malformed value cannot
// half-overwrite the caller's fallback. Fields absent from the stored JSON
// keep their fallback values.
func decode(raw []byte, out any) bool {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		log.Printf("storage: decode: target must be a non-nil pointer")
		return false
	}
	scratch := reflect.New(rv.Elem().Type())
	scratch.Elem().Set(rv.Elem())
	if err := json.Unmarshal(raw, scratch.Interface()); err != nil {
		log.Printf("storage: decode: %v", err)
		return false
	}
	rv.Elem().Set(scratch.Elem())
	return true
}

func encode(v any) ([]byte, bool) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage: encode: %v", err)
		return nil, false
	}
	return raw, true
}
