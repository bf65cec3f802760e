// Package notify holds the process-wide transient notification channel.
// Failures surfaced inline by a handler are independently published here, so
// a global toast can appear regardless of what the triggering call rendered.
package notify

import (
	"sync"
	"time"
)

// DefaultVisibleFor is how long a published message stays current.
const DefaultVisibleFor = 4 * time.Second

// Bus carries at most one current message. Publishing replaces the previous
// message and restarts its expiry; after the visible duration the message
// clears itself.
type Bus struct {
	mu         sync.Mutex
	message    string
	generation uint64
	visibleFor time.Duration
	listeners  []chan string
}

// NewBus constructs a Bus. visibleFor <= 0 selects the default duration.
func NewBus(visibleFor time.Duration) *Bus {
	if visibleFor <= 0 {
		visibleFor = DefaultVisibleFor
	}
	return &Bus{visibleFor: visibleFor}
}

// Publish replaces the current message and schedules its expiry.
func (b *Bus) Publish(message string) {
	b.mu.Lock()
	b.message = message
	b.generation++
	gen := b.generation
	for _, ch := range b.listeners {
		select {
		case ch <- message:
		default:
		}
	}
	b.mu.Unlock()

	time.AfterFunc(b.visibleFor, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		// A later Publish supersedes this expiry.
		if b.generation == gen {
			b.message = ""
		}
	})
}

// Current returns the visible message, ok=false when none is showing.
func (b *Bus) Current() (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.message, b.message != ""
}

// Hide clears the current message immediately.
func (b *Bus) Hide() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.message = ""
	b.generation++
}

// Subscribe returns a channel receiving every published message. Slow
// subscribers miss messages rather than block publishers.
func (b *Bus) Subscribe() <-chan string {
	ch := make(chan string, 8)
	b.mu.Lock()
	b.listeners = append(b.listeners, ch)
	b.mu.Unlock()
	return ch
}
