package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed"
)

// StubFeed is a test double for feed.Provider.
type StubFeed struct {
	Agenda    feed.Agenda
	AgendaErr error

	Details    map[int]matches.OverlayPatch
	DetailErrs map[int]error
	// DetailGate, when non-nil, blocks every detail fetch until the gate is
	// closed or the request context is cancelled. Used to simulate slow
	// in-flight cycles.
	DetailGate chan struct{}

	AgendaCalls atomic.Int32
	DetailCalls atomic.Int32
	Notify      chan struct{}

	mu         sync.Mutex
	fetchedIDs []int
}

// FetchAgenda returns the configured agenda and error while tracking calls.
func (s *StubFeed) FetchAgenda(ctx context.Context, scope matches.Scope) (feed.Agenda, error) {
	_ = ctx
	_ = scope
	s.AgendaCalls.Add(1)
	s.notify()
	if s.AgendaErr != nil {
		return feed.Agenda{}, s.AgendaErr
	}
	return s.Agenda, nil
}

// FetchDetail returns the configured patch for the id, honoring the gate and
// per-id errors.
func (s *StubFeed) FetchDetail(ctx context.Context, scope matches.Scope, matchID int) (matches.OverlayPatch, error) {
	_ = scope
	s.DetailCalls.Add(1)
	s.mu.Lock()
	s.fetchedIDs = append(s.fetchedIDs, matchID)
	s.mu.Unlock()
	s.notify()

	if s.DetailGate != nil {
		select {
		case <-s.DetailGate:
		case <-ctx.Done():
			return matches.OverlayPatch{}, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return matches.OverlayPatch{}, err
	}
	if err, ok := s.DetailErrs[matchID]; ok {
		return matches.OverlayPatch{}, err
	}
	if patch, ok := s.Details[matchID]; ok {
		return patch, nil
	}
	return matches.OverlayPatch{MatchID: matchID}, nil
}

// FetchedIDs returns a copy of every detail id requested so far.
func (s *StubFeed) FetchedIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.fetchedIDs))
	copy(out, s.fetchedIDs)
	return out
}

func (s *StubFeed) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case s.Notify <- struct{}{}:
	default:
	}
}

// StubSink is a test double for poller.PatchSink recording every batch.
type StubSink struct {
	mu      sync.Mutex
	batches []map[int]matches.OverlayPatch
	Applied chan struct{}
}

// Replace records the batch.
func (s *StubSink) Replace(patches map[int]matches.OverlayPatch) {
	s.mu.Lock()
	s.batches = append(s.batches, patches)
	s.mu.Unlock()
	if s.Applied != nil {
		select {
		case s.Applied <- struct{}{}:
		default:
		}
	}
}

// Batches returns a copy of all applied batches in order.
func (s *StubSink) Batches() []map[int]matches.OverlayPatch {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]map[int]matches.OverlayPatch, len(s.batches))
	copy(out, s.batches)
	return out
}

// StubRunner is a test double for lifecycle.Runner counting transitions.
type StubRunner struct {
	mu     sync.Mutex
	starts int
	stops  int
}

// Start counts a start.
func (r *StubRunner) Start(ctx context.Context) {
	_ = ctx
	r.mu.Lock()
	r.starts++
	r.mu.Unlock()
}

// Stop counts a stop.
func (r *StubRunner) Stop() {
	r.mu.Lock()
	r.stops++
	r.mu.Unlock()
}

// Counts returns (starts, stops).
func (r *StubRunner) Counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.starts, r.stops
}
