package owned

import (
	"sync/atomic"
	"time"
)

// Synthetic ids live in a different space from upstream-assigned ids: they
// are wall-clock-milliseconds seeded and strictly increasing, so two creates
// in the same millisecond still receive distinct ids.
var lastSyntheticID atomic.Int64

// NextSyntheticID returns a session-unique local product id.
func NextSyntheticID() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastSyntheticID.Load()
		if now <= last {
			now = last + 1
		}
		if lastSyntheticID.CompareAndSwap(last, now) {
			return now
		}
	}
}
