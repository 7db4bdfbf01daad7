package overlay

import (
	"sync"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

// Store holds the latest overlay patch set for one screen session. The map is
// replaced wholesale on each successful poll cycle rather than mutated in
// place, so concurrent readers never observe a partially written batch.
type Store struct {
	mu      sync.RWMutex
	patches map[int]matches.OverlayPatch
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{patches: make(map[int]matches.OverlayPatch)}
}

// Replace swaps in a new patch set atomically.
func (s *Store) Replace(patches map[int]matches.OverlayPatch) {
	if patches == nil {
		patches = make(map[int]matches.OverlayPatch)
	}
	s.mu.Lock()
	s.patches = patches
	s.mu.Unlock()
}

// Snapshot returns the current patch map. Callers must treat it as read-only;
// the map is never mutated after Replace, only swapped.
func (s *Store) Snapshot() map[int]matches.OverlayPatch {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patches
}

// Get retrieves the patch for a match id, if any.
func (s *Store) Get(matchID int) (matches.OverlayPatch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.patches[matchID]
	return p, ok
}

// Clear drops all patches. Used on teardown so a revived session never
// renders stale live data.
func (s *Store) Clear() {
	s.Replace(nil)
}

// Len reports the number of patches currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patches)
}
