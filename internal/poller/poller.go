package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed"
	"github.com/Alejomarqz/liganacionalgt-live/internal/logging"
	"github.com/Alejomarqz/liganacionalgt-live/internal/metrics"
)

const (
	defaultInterval      = 20 * time.Second
	maxConcurrentDetails = 6
)

// PatchSink receives the merged patch batch for one completed cycle.
type PatchSink interface {
	Replace(patches map[int]matches.OverlayPatch)
}

// Poller maintains a near-real-time overlay patch set for whichever match ids
// the target function currently yields. Unlike a boot-once service poller it
// is restartable: the lifecycle controller stops and starts it as the app
// moves between foreground and background or the active bucket changes.
type Poller struct {
	provider feed.DetailProvider
	sink     PatchSink
	targets  func() []int
	scope    matches.Scope
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	mu          sync.Mutex
	running     bool
	stopLoop    context.CancelFunc
	cancelCycle context.CancelFunc
	done        chan struct{}

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poll loop.
type Status struct {
	LastAttempt   time.Time
	LastSuccess   time.Time
	LastPatchSize int
	Cycles        int
}

// IsReady reports whether the poller has completed at least one cycle.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero()
}

// New constructs a Poller with sane defaults. targets is consulted at the
// start of every cycle so bucket switches take effect on restart immediately.
func New(provider feed.DetailProvider, sink PatchSink, targets func() []int, scope matches.Scope, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		targets:  targets,
		scope:    scope,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
	}
}

// Start begins polling until Stop is called or the parent context is
// cancelled. The first cycle runs immediately, with no initial delay.
// Starting an already-running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	loopCtx, cancel := context.WithCancel(ctx)
	p.stopLoop = cancel
	done := make(chan struct{})
	p.done = done
	p.mu.Unlock()

	go func() {
		defer close(done)
		p.run(loopCtx)
	}()
}

// Stop halts the loop, cancels any in-flight cycle and waits for the run
// goroutine to exit. The join guarantees a superseded run can never touch
// cycle state after a restart. Idempotent.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	stop := p.stopLoop
	cancel := p.cancelCycle
	done := p.done
	p.stopLoop = nil
	p.cancelCycle = nil
	p.done = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if stop != nil {
		stop()
	}
	if done != nil {
		<-done
	}
}

// Running reports whether the loop is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

func (p *Poller) run(ctx context.Context) {
	logging.Info(p.logger, "poller started",
		logging.FieldScope, string(p.scope),
		logging.FieldDurationMS, p.interval.Milliseconds(),
	)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "poller stopped", logging.FieldScope, string(p.scope))
			return
		case <-ticker.C:
			p.runCycle(ctx)
		}
	}
}

// runCycle fetches details for the current target set in parallel and applies
// the results as one atomic batch. All transport errors are contained here: a
// failed id contributes no patch and the UI keeps its last known state.
func (p *Poller) runCycle(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)

	ids := p.targets()
	if len(ids) == 0 {
		return
	}

	cycleCtx := p.beginCycle(ctx)

	var mu sync.Mutex
	patches := make(map[int]matches.OverlayPatch, len(ids))

	g, gctx := errgroup.WithContext(cycleCtx)
	g.SetLimit(maxConcurrentDetails)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			patch, err := p.provider.FetchDetail(gctx, p.scope, id)
			if err != nil {
				logging.Warn(p.logger, "detail fetch failed",
					logging.FieldScope, string(p.scope),
					logging.FieldMatchID, id,
					"error", err,
				)
				return nil
			}
			mu.Lock()
			patches[id] = patch
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	// A newer cycle (or a stop) superseded this one while requests were in
	// flight; its batch must never land.
	if cycleCtx.Err() != nil {
		if p.metrics != nil {
			p.metrics.RecordPollCycle(string(p.scope), time.Since(start), 0, true)
		}
		return
	}

	p.sink.Replace(patches)
	p.recordSuccess(p.now(), len(patches))
	if p.metrics != nil {
		p.metrics.RecordPollCycle(string(p.scope), time.Since(start), len(patches), false)
	}
	logging.Info(p.logger, "poller refreshed overlay",
		logging.FieldScope, string(p.scope),
		logging.FieldTargets, len(ids),
		logging.FieldCount, len(patches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// beginCycle cancels any still-in-flight previous cycle before handing out a
// context for the new one, so a slow stale batch can never land after a newer
// one.
func (p *Poller) beginCycle(ctx context.Context) context.Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancelCycle != nil {
		p.cancelCycle()
	}
	cycleCtx, cancel := context.WithCancel(ctx)
	p.cancelCycle = cancel
	return cycleCtx
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
	p.status.Cycles++
}

func (p *Poller) recordSuccess(at time.Time, patches int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastSuccess = at
	p.status.LastPatchSize = patches
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
