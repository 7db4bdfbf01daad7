package feed

import (
	"context"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/metrics"
)

// instrumentedProvider records call counts and latency for every upstream
// fetch. It sits innermost in the decorator chain so each retry attempt is
// counted individually.
type instrumentedProvider struct {
	inner    Provider
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedProvider wraps a provider with feed metrics under the given
// provider name. A nil recorder disables instrumentation.
func NewInstrumentedProvider(inner Provider, recorder *metrics.Recorder, name string) Provider {
	if recorder == nil {
		return inner
	}
	return &instrumentedProvider{inner: inner, recorder: recorder, name: name}
}

func (p *instrumentedProvider) FetchAgenda(ctx context.Context, scope matches.Scope) (Agenda, error) {
	start := time.Now()
	agenda, err := p.inner.FetchAgenda(ctx, scope)
	p.recorder.RecordFeedAttempt(p.name, time.Since(start), err)
	return agenda, err
}

func (p *instrumentedProvider) FetchDetail(ctx context.Context, scope matches.Scope, matchID int) (matches.OverlayPatch, error) {
	start := time.Now()
	patch, err := p.inner.FetchDetail(ctx, scope, matchID)
	p.recorder.RecordFeedAttempt(p.name, time.Since(start), err)
	return patch, err
}
