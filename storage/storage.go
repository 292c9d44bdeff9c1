// Package storage is the persistent key-value layer behind every store:
// JSON values under string keys, surviving restarts of the process but local
// to one profile. All operations fail silently: reads fall back to the
// caller's value and writes no-op.
package storage

import "sync"

// KV reads and writes JSON-serializable values under string keys.
//
// Read unmarshals the stored value into out and reports whether a value was
// found and decoded. Callers set out to the fallback first; on absence or any
// failure out is left untouched. Write and Remove swallow all errors.
type KV interface {
	Read(key string, out any) bool
	Write(key string, v any)
	Remove(key string)
}

// Unavailable is the degenerate medium for contexts with no storage at all.
// Reads fall back, writes are no-ops.
type Unavailable struct{}

func (Unavailable) Read(string, any) bool { return false }
func (Unavailable) Write(string, any)     {}
func (Unavailable) Remove(string)         {}

// Memory is a map-backed KV, safe for concurrent use. It backs tests and
// running without a database file; contents do not survive the process.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string, out any) bool {
	m.mu.RLock()
	raw, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return false
	}
	return decode(raw, out)
}

func (m *Memory) Write(key string, v any) {
	raw, ok := encode(v)
	if !ok {
		return
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

func (m *Memory) Remove(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}
