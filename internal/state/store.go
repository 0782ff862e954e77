package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/tripdesk/internal/roster"
)

// Snapshot is the outcome of the user load as seen by the UI.
type Snapshot struct {
	Records   []roster.Record
	Loaded    bool // a fetch succeeded
	Attempted bool // a fetch finished, successfully or not
	LastError error
	LoadedAt  time.Time
}

// Failed reports whether the last load attempt ended in an error.
func (s Snapshot) Failed() bool {
	return s.Attempted && s.LastError != nil
}

// Store coordinates the loader goroutine and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a load result. On error the record set is emptied and only
// the error is kept.
func (s *Store) Update(records []roster.Record, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Attempted = true
	s.snapshot.LoadedAt = time.Now()

	if err != nil {
		s.snapshot.Records = nil
		s.snapshot.Loaded = false
		s.snapshot.LastError = err
		return
	}

	s.snapshot.Records = cloneRecords(records)
	s.snapshot.Loaded = true
	s.snapshot.LastError = nil
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []roster.Record) []roster.Record {
	if len(records) == 0 {
		return nil
	}
	dup := make([]roster.Record, len(records))
	copy(dup, records)
	return dup
}
