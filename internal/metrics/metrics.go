package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type pollStats struct {
	cycles        int
	dropped       int
	lastPatchSize int
	lastLatency   time.Duration
}

// Recorder captures lightweight, in-memory metrics about feed calls and poll
// cycles, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	feeds map[string]*feedStats
	polls map[string]*pollStats
	otel  *otelInstruments
}

// NewRecorder constructs a Recorder without telemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds: make(map[string]*feedStats),
		polls: make(map[string]*pollStats),
		otel:  otel,
	}
}

// RecordFeedAttempt increments counters for an upstream feed call.
func (r *Recorder) RecordFeedAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	stats := r.ensureFeed(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordFeedAttempt(provider, duration, err)
	}
}

// RecordPollCycle tracks one completed poll cycle for a scope. dropped marks
// cycles whose batch was superseded before it could be applied.
func (r *Recorder) RecordPollCycle(scope string, duration time.Duration, patches int, dropped bool) {
	if r == nil {
		return
	}
	stats := r.ensurePoll(scope)
	r.mu.Lock()
	stats.cycles++
	stats.lastLatency = duration
	if dropped {
		stats.dropped++
	} else {
		stats.lastPatchSize = patches
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordPollCycle(scope, duration, patches, dropped)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// FeedSnapshot is a copy of the current feed stats for a provider.
type FeedSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// FeedStats returns a copy of the stats recorded for a provider.
func (r *Recorder) FeedStats(provider string) FeedSnapshot {
	if r == nil {
		return FeedSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.feeds[provider]; ok {
		return FeedSnapshot{Calls: stats.calls, Errors: stats.errors, LastCallLatency: stats.lastCallLatency}
	}
	return FeedSnapshot{}
}

// PollSnapshot is a copy of the current poll stats for a scope.
type PollSnapshot struct {
	Cycles        int
	Dropped       int
	LastPatchSize int
	LastLatency   time.Duration
}

// PollStats returns a copy of the stats recorded for a scope.
func (r *Recorder) PollStats(scope string) PollSnapshot {
	if r == nil {
		return PollSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.polls[scope]; ok {
		return PollSnapshot{Cycles: stats.cycles, Dropped: stats.dropped, LastPatchSize: stats.lastPatchSize, LastLatency: stats.lastLatency}
	}
	return PollSnapshot{}
}

func (r *Recorder) ensureFeed(provider string) *feedStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.feeds[provider]
	if !ok {
		stats = &feedStats{}
		r.feeds[provider] = stats
	}
	return stats
}

func (r *Recorder) ensurePoll(scope string) *pollStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.polls[scope]
	if !ok {
		stats = &pollStats{}
		r.polls[scope] = stats
	}
	return stats
}
