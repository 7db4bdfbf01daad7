package store

import (
	"sync"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

// Agenda is one scope's bucketed schedule snapshot.
type Agenda struct {
	Rounds       []matches.Round
	DefaultRound string
	FetchedAt    time.Time
}

// AgendaStore keeps per-scope schedule snapshots in memory. Snapshots are
// written only by the agenda load/refresh path and replaced whole; everything
// else reads, so there is no concurrent-writer hazard.
type AgendaStore struct {
	mu      sync.RWMutex
	agendas map[matches.Scope]Agenda
}

// NewAgendaStore constructs an empty AgendaStore.
func NewAgendaStore() *AgendaStore {
	return &AgendaStore{agendas: make(map[matches.Scope]Agenda)}
}

// Set replaces the snapshot for a scope.
func (s *AgendaStore) Set(scope matches.Scope, agenda Agenda) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agendas[scope] = agenda
}

// Get retrieves the snapshot for a scope.
func (s *AgendaStore) Get(scope matches.Scope) (Agenda, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agenda, ok := s.agendas[scope]
	return agenda, ok
}

// Round retrieves one bucket from a scope's snapshot.
func (s *AgendaStore) Round(scope matches.Scope, key string) (matches.Round, bool) {
	agenda, ok := s.Get(scope)
	if !ok {
		return matches.Round{}, false
	}
	for _, round := range agenda.Rounds {
		if round.Key == key {
			return round, true
		}
	}
	return matches.Round{}, false
}
