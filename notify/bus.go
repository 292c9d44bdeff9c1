// Package notify carries the change-notification signals between stores and
// any number of independent subscribers. It is fire-and-forget: storage stays
// the single source of truth and subscribers re-read it when signalled.
package notify

import "sync"

type Event string

const (
	// StorageChanged fires after any store mutation.
	StorageChanged Event = "storage"
	// ProgressUpdated fires when a card is recorded as viewed.
	ProgressUpdated Event = "progress-updated"
)

// Bus is a process-wide publish/subscribe signal.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[Event]map[int]func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[Event]map[int]func())}
}

// Subscribe registers fn for ev and returns its unsubscribe func.
func (b *Bus) Subscribe(ev Event, fn func()) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[ev] == nil {
		b.subs[ev] = make(map[int]func())
	}
	id := b.next
	b.next++
	b.subs[ev][id] = fn
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[ev], id)
	}
}

// Publish invokes every subscriber of ev. Callbacks run outside the bus lock
// so a subscriber may publish or subscribe without deadlocking.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs[ev]))
	for _, fn := range b.subs[ev] {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
