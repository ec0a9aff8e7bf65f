package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/marquee-tv/marquee/internal/library"
)

// Snapshot represents the latest catalog data available to the UI.
type Snapshot struct {
	Catalog             []library.Video
	HasCatalog          bool   // at least one poll cycle has succeeded
	Generation          uint64 // bumped on every catalog replacement
	LastUpdated         time.Time
	LastError           error
	Failures            uint64 // total failed poll cycles since startup
	ConsecutiveFailures int
}

// IsOffline returns true when the library has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
//
// Poll cycles are not serialized: when cycles overlap, each one calls Update
// as it resolves and the last writer wins. That is the intended catalog
// replacement policy, not an accident of locking.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored catalog. When err is non-nil the previous
// catalog is kept and only the error bookkeeping changes, so a failed cycle
// never disturbs what the viewer sees.
func (s *Store) Update(catalog []library.Video, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.Failures++
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.Catalog = cloneCatalog(catalog)
	s.snapshot.HasCatalog = true
	s.snapshot.Generation++
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Catalog = cloneCatalog(s.snapshot.Catalog)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneCatalog(videos []library.Video) []library.Video {
	if len(videos) == 0 {
		return nil
	}
	dup := make([]library.Video, len(videos))
	copy(dup, videos)
	return dup
}
