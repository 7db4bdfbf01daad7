package lifecycle

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Alejomarqz/liganacionalgt-live/internal/logging"
)

// Runner is the poller surface the controller drives. Start must be safe to
// call on a running runner and Stop on a stopped one.
type Runner interface {
	Start(ctx context.Context)
	Stop()
}

// State is the controller's lifecycle state.
type State int

const (
	Stopped State = iota
	Running
)

// Controller owns the poller's running state relative to two external
// signals: app foreground/background and active-bucket changes. It replaces
// the module-level abort handles the pattern otherwise tends to accumulate:
// one controller per screen session, constructed and torn down explicitly.
type Controller struct {
	ctx    context.Context
	runner Runner
	logger *slog.Logger

	mu           sync.Mutex
	state        State
	foreground   bool
	mounted      bool
	activeBucket string
	unsubs       []func()
	closed       bool
}

// NewController constructs a controller in the Stopped state. ctx is the
// parent for every poller run; cancelling it tears everything down. The app
// is assumed foregrounded at construction.
func NewController(ctx context.Context, runner Runner, logger *slog.Logger) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Controller{
		ctx:        ctx,
		runner:     runner,
		logger:     logger,
		foreground: true,
	}
}

// Bind subscribes the controller to a session's event bus. Close releases
// the subscriptions.
func (c *Controller) Bind(bus *Bus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.unsubs = append(c.unsubs,
		bus.Subscribe(EventAppForeground, func(string) { c.SetForeground(true) }),
		bus.Subscribe(EventAppBackground, func(string) { c.SetForeground(false) }),
		bus.Subscribe(EventBucketChanged, c.SetActiveBucket),
	)
}

// Mount marks the screen as mounted with the given active bucket and starts
// polling when conditions allow.
func (c *Controller) Mount(activeBucket string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = true
	c.activeBucket = activeBucket
	c.evaluateLocked()
}

// Unmount stops polling and forgets the active bucket.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mounted = false
	c.evaluateLocked()
}

// SetForeground records an app-state transition and starts or stops polling
// accordingly.
func (c *Controller) SetForeground(foreground bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.foreground = foreground
	c.evaluateLocked()
}

// SetActiveBucket records a tab switch. If polling is running, it restarts
// immediately so the target set is recomputed for the new bucket rather than
// on the next tick.
func (c *Controller) SetActiveBucket(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if key == c.activeBucket {
		return
	}
	c.activeBucket = key
	if c.state == Running {
		c.stopLocked()
	}
	c.evaluateLocked()
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close stops polling and releases event subscriptions. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopLocked()
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
}

// evaluateLocked reconciles the desired state with the current one. Callers
// hold c.mu.
func (c *Controller) evaluateLocked() {
	shouldRun := !c.closed && c.mounted && c.foreground && c.activeBucket != ""
	switch {
	case shouldRun && c.state == Stopped:
		c.state = Running
		c.runner.Start(c.ctx)
		logging.Info(c.logger, "lifecycle running", logging.FieldRound, c.activeBucket)
	case !shouldRun && c.state == Running:
		c.stopLocked()
	}
}

func (c *Controller) stopLocked() {
	if c.state == Stopped {
		return
	}
	c.state = Stopped
	c.runner.Stop()
	logging.Info(c.logger, "lifecycle stopped")
}
