package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed"
	"github.com/Alejomarqz/liganacionalgt-live/internal/lifecycle"
	"github.com/Alejomarqz/liganacionalgt-live/internal/logging"
	"github.com/Alejomarqz/liganacionalgt-live/internal/metrics"
	"github.com/Alejomarqz/liganacionalgt-live/internal/overlay"
	"github.com/Alejomarqz/liganacionalgt-live/internal/poller"
	"github.com/Alejomarqz/liganacionalgt-live/internal/schedule"
	"github.com/Alejomarqz/liganacionalgt-live/internal/store"
)

// Config wires one screen session.
type Config struct {
	Scope         matches.Scope
	Provider      feed.Provider
	Agendas       *store.AgendaStore
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
	PollInterval  time.Duration
	TargetCap     int
	DisplayOffset float64 // display timezone fixed UTC offset in hours
	Now           func() time.Time
}

// Session is the per-screen owner of schedule state: the base agenda, the
// overlay store, the poller and its lifecycle controller. It replaces the
// module-level singletons of a typical screen implementation with one
// explicit instance constructed per screen and torn down with Close.
type Session struct {
	scope      matches.Scope
	provider   feed.Provider
	agendas    *store.AgendaStore
	overlay    *overlay.Store
	poller     *poller.Poller
	ctrl       *lifecycle.Controller
	bus        *lifecycle.Bus
	logger     *slog.Logger
	now        func() time.Time
	displayLoc *time.Location
	targetCap  int

	mu          sync.RWMutex
	activeRound string
	loaded      bool
}

// New constructs a session. ctx is the parent for all polling; cancelling it
// tears the session down.
func New(ctx context.Context, cfg Config) *Session {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	agendas := cfg.Agendas
	if agendas == nil {
		agendas = store.NewAgendaStore()
	}

	s := &Session{
		scope:      cfg.Scope,
		provider:   cfg.Provider,
		agendas:    agendas,
		overlay:    overlay.NewStore(),
		bus:        lifecycle.NewBus(),
		logger:     cfg.Logger,
		now:        now,
		displayLoc: time.FixedZone("display", int(cfg.DisplayOffset*3600)),
		targetCap:  cfg.TargetCap,
	}

	s.poller = poller.New(cfg.Provider, s.overlay, s.pollTargets, cfg.Scope, cfg.Logger, cfg.Metrics, cfg.PollInterval)
	s.ctrl = lifecycle.NewController(ctx, s.poller, cfg.Logger)
	s.ctrl.Bind(s.bus)

	return s
}

// Load fetches the agenda, buckets it, selects the default round and starts
// live polling for it. Transport and decode errors propagate to the caller so
// it can offer a retry; they are the only errors this core ever surfaces.
func (s *Session) Load(ctx context.Context) error {
	agenda, err := s.provider.FetchAgenda(ctx, s.scope)
	if err != nil {
		return fmt.Errorf("load agenda for %s: %w", s.scope, err)
	}

	rounds := schedule.Build(agenda.Records, agenda.Rounds...)
	def := schedule.SelectDefault(rounds, s.now(), s.displayLoc)

	s.agendas.Set(s.scope, store.Agenda{
		Rounds:       rounds,
		DefaultRound: def,
		FetchedAt:    s.now(),
	})

	s.mu.Lock()
	first := !s.loaded
	s.loaded = true
	s.activeRound = def
	s.mu.Unlock()

	logging.Info(s.logger, "agenda loaded",
		logging.FieldScope, string(s.scope),
		logging.FieldCount, len(agenda.Records),
		logging.FieldRound, def,
	)

	if first {
		// Mount starts the poller; its immediate first cycle hydrates the
		// default bucket's live details.
		s.ctrl.Mount(def)
	} else {
		s.bus.Publish(lifecycle.EventBucketChanged, def)
	}
	return nil
}

// Refresh re-fetches the agenda (the pull-to-refresh path). The overlay map
// is kept; stale patches for vanished ids simply stop matching.
func (s *Session) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Loaded reports whether an agenda load has succeeded at least once.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Scope returns the session's competition namespace.
func (s *Session) Scope() matches.Scope {
	return s.scope
}

// Rounds returns the current bucketed schedule.
func (s *Session) Rounds() []matches.Round {
	agenda, _ := s.agendas.Get(s.scope)
	return agenda.Rounds
}

// DefaultRound returns the bucket consumers should open first.
func (s *Session) DefaultRound() string {
	agenda, _ := s.agendas.Get(s.scope)
	return agenda.DefaultRound
}

// ActiveRound returns the currently active bucket key.
func (s *Session) ActiveRound() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeRound
}

// SetActiveRound records a tab switch and publishes it so the controller
// restarts polling against the new bucket's targets.
func (s *Session) SetActiveRound(key string) {
	s.mu.Lock()
	if key == s.activeRound {
		s.mu.Unlock()
		return
	}
	s.activeRound = key
	s.mu.Unlock()
	s.bus.Publish(lifecycle.EventBucketChanged, key)
}

// Merged returns the render view for one bucket: base records with the
// current overlay patches applied. Neither source structure is mutated.
func (s *Session) Merged(key string) ([]matches.MatchRecord, bool) {
	round, ok := s.agendas.Round(s.scope, key)
	if !ok {
		return nil, false
	}
	return overlay.ApplyAll(round.Items, s.overlay.Snapshot()), true
}

// Bus exposes the session's event bus so hosts can publish app-state signals
// (foreground/background) and observers can watch bucket changes.
func (s *Session) Bus() *lifecycle.Bus {
	return s.bus
}

// PollerStatus reports the live poller's recent health.
func (s *Session) PollerStatus() poller.Status {
	return s.poller.Status()
}

// Close tears the session down: polling stops, in-flight requests are
// cancelled and the overlay is dropped. Idempotent.
func (s *Session) Close() {
	s.ctrl.Close()
	s.overlay.Clear()
}

// pollTargets derives the poll target set from the currently active bucket.
func (s *Session) pollTargets() []int {
	round, ok := s.agendas.Round(s.scope, s.ActiveRound())
	if !ok {
		return nil
	}
	return overlay.SelectTargets(round.Items, s.now(), s.displayLoc, s.targetCap)
}
