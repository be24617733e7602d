package health

import (
	"fmt"
	"sync/atomic"
	"time"
)

// NoLatency marks a status without a successful measurement. It is distinct
// from a real 0ms success.
const NoLatency int64 = -1

// Status is the latest observation for one service.
//
// Healthy and LatencyMs are the ribbon's state. CheckedAt and StatusCode only
// feed the tooltip and logs. A Status is a value; the Store never hands out
// anything that can be modified in place.
type Status struct {
	Healthy    bool
	LatencyMs  int64
	StatusCode int       // 0 when no response was received
	CheckedAt  time.Time // zero until the first check completes
}

// initialStatus is what every entry holds before its first check completes.
// Healthy and LatencyMs match a failed check.
var initialStatus = Status{Healthy: false, LatencyMs: NoLatency}

// Checked reports whether any check has completed for this entry.
func (s Status) Checked() bool {
	return !s.CheckedAt.IsZero()
}

// LatencyText renders the latency for display: "N/A" for NoLatency, else "<n>ms".
func (s Status) LatencyText() string {
	if s.LatencyMs < 0 {
		return "N/A"
	}
	return fmt.Sprintf("%dms", s.LatencyMs)
}

// Store holds one Status per service, index-aligned with the Registry.
//
// Each entry is an atomic pointer to an immutable Status, so an update swaps
// the whole record at once: readers see either the old record or the new one,
// never healthy from one and latency from the other. Entries are independent;
// there is no lock across indices.
//
// Concurrent updates to the same index are not ordered. The entry ends up
// with whichever update physically completes last. With overlapping checks
// for one service that means a slower, older check can overwrite a newer
// result until the next tick overwrites it.
type Store struct {
	cells []atomic.Pointer[Status]
}

// NewStore creates a store with n entries, all in the initial unchecked state.
func NewStore(n int) *Store {
	s := &Store{cells: make([]atomic.Pointer[Status], n)}
	for i := range s.cells {
		st := initialStatus
		s.cells[i].Store(&st)
	}
	return s
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.cells)
}

// Update replaces the health tuple at index. Out-of-range indices are ignored.
func (s *Store) Update(index int, healthy bool, latencyMs int64) {
	s.Put(index, Status{Healthy: healthy, LatencyMs: latencyMs, CheckedAt: time.Now()})
}

// Put replaces the whole record at index. Out-of-range indices are ignored.
func (s *Store) Put(index int, st Status) {
	if index < 0 || index >= len(s.cells) {
		return
	}
	s.cells[index].Store(&st)
}

// Read returns the current record at index, or the initial record if index is out of range.
// Never blocks.
func (s *Store) Read(index int) Status {
	st, _ := s.Lookup(index)
	return st
}

// Lookup is Read with a range check.
func (s *Store) Lookup(index int) (Status, bool) {
	if index < 0 || index >= len(s.cells) {
		return initialStatus, false
	}
	return *s.cells[index].Load(), true
}

// Snapshot returns every entry. Each entry is internally consistent; the
// slice as a whole is not a single point in time.
func (s *Store) Snapshot() []Status {
	out := make([]Status, len(s.cells))
	for i := range s.cells {
		out[i] = *s.cells[i].Load()
	}
	return out
}
