// Package clock provides the monotonic timestamp the simulation is driven by.
package clock

import (
	"fmt"
	"time"
)

// Instant is a monotonic timestamp in microseconds since an arbitrary origin
// chosen by the host loop.
type Instant uint64

// FromDuration converts an elapsed duration since the host origin into an Instant.
func FromDuration(d time.Duration) Instant {
	if d < 0 {
		return 0
	}
	return Instant(d.Microseconds())
}

// Micros returns the raw microsecond count.
func (i Instant) Micros() uint64 { return uint64(i) }

// CheckedSince returns the duration from earlier to i.
// ok is false when earlier is after i (time moved backward).
func (i Instant) CheckedSince(earlier Instant) (d time.Duration, ok bool) {
	if earlier > i {
		return 0, false
	}
	return time.Duration(i-earlier) * time.Microsecond, true
}

// MustSince is CheckedSince that panics on non-monotonic timestamps.
func (i Instant) MustSince(earlier Instant) time.Duration {
	d, ok := i.CheckedSince(earlier)
	if !ok {
		panic(fmt.Sprintf("clock: non-monotonic timestamps: %d is before %d", i, earlier))
	}
	return d
}
