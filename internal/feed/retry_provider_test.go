package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

type flakyProvider struct {
	failures     int
	agendaCalls  int
	detailCalls  int
	agenda       Agenda
	detailResult matches.OverlayPatch
}

func (f *flakyProvider) FetchAgenda(ctx context.Context, scope matches.Scope) (Agenda, error) {
	f.agendaCalls++
	if f.agendaCalls <= f.failures {
		return Agenda{}, errors.New("transient")
	}
	return f.agenda, nil
}

func (f *flakyProvider) FetchDetail(ctx context.Context, scope matches.Scope, matchID int) (matches.OverlayPatch, error) {
	f.detailCalls++
	return f.detailResult, nil
}

func TestRetryingProviderRecovers(t *testing.T) {
	inner := &flakyProvider{
		failures: 2,
		agenda:   Agenda{Rounds: []string{"Round 1"}},
	}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	agenda, err := p.FetchAgenda(context.Background(), matches.ScopeDomesticLeague)
	if err != nil {
		t.Fatalf("FetchAgenda: %v", err)
	}
	if inner.agendaCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.agendaCalls)
	}
	if len(agenda.Rounds) != 1 {
		t.Fatalf("unexpected agenda %+v", agenda)
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	if _, err := p.FetchAgenda(context.Background(), matches.ScopeDomesticLeague); err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if inner.agendaCalls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.agendaCalls)
	}
}

func TestRetryingProviderStopsOnCancel(t *testing.T) {
	inner := &flakyProvider{failures: 10}
	p := NewRetryingProvider(inner, nil, 5, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchAgenda(ctx, matches.ScopeDomesticLeague)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if inner.agendaCalls != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.agendaCalls)
	}
}

func TestRetryingProviderDetailPassesThrough(t *testing.T) {
	inner := &flakyProvider{detailResult: matches.OverlayPatch{MatchID: 7}}
	p := NewRetryingProvider(inner, nil, 3, time.Millisecond)

	patch, err := p.FetchDetail(context.Background(), matches.ScopeDomesticLeague, 7)
	if err != nil {
		t.Fatalf("FetchDetail: %v", err)
	}
	if patch.MatchID != 7 || inner.detailCalls != 1 {
		t.Fatalf("detail not passed through: %+v calls=%d", patch, inner.detailCalls)
	}
}

func TestStatusError(t *testing.T) {
	err := &StatusError{Provider: "ligadata", StatusCode: 503, Body: "maintenance"}
	statusErr, ok := AsStatusError(err)
	if !ok {
		t.Fatal("AsStatusError should match")
	}
	if statusErr.StatusCode != 503 {
		t.Fatalf("status = %d", statusErr.StatusCode)
	}
	if err.Error() == "" {
		t.Fatal("expected a message")
	}
}
