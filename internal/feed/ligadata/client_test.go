package ligadata

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed"
)

const agendaFixture = `{
  "events": {
    "gt.liga.2024.101": {
      "matchId": 101,
      "homeTeamId": 10, "homeTeamName": "Municipal",
      "awayTeamId": 20, "awayTeamName": "Comunicaciones",
      "date": "20240110", "hour": "19:00", "gmt": -6,
      "statusId": 0, "round": "Round 5"
    },
    "gt.liga.2024.102": {
      "id": 102,
      "homeId": 30, "homeName": "Xelaju",
      "awayId": 40, "awayName": "Antigua",
      "date": "20240110", "kickoff": "21:00", "gmt": -6,
      "status": {"statusId": 1}, "score": "1-0", "round": "Round 5"
    }
  },
  "meta": {"rounds": ["Round 5"]}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()}), srv
}

func TestFetchAgendaMapsEvents(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(agendaFixture))
	})

	agenda, err := client.FetchAgenda(context.Background(), matches.ScopeDomesticLeague)
	if err != nil {
		t.Fatalf("FetchAgenda: %v", err)
	}
	if gotPath != "/domestic-league/schedule.json" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if len(agenda.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(agenda.Records))
	}
	if len(agenda.Rounds) != 1 || agenda.Rounds[0] != "Round 5" {
		t.Fatalf("unexpected rounds %v", agenda.Rounds)
	}

	byID := make(map[int]matches.MatchRecord, len(agenda.Records))
	for _, rec := range agenda.Records {
		byID[rec.MatchID] = rec
	}
	first, ok := byID[101]
	if !ok {
		t.Fatal("record 101 missing")
	}
	if first.HomeTeam.Name != "Municipal" || first.Kickoff != "19:00" || first.StatusID != matches.StatusScheduled {
		t.Fatalf("unexpected record %+v", first)
	}
	second, ok := byID[102]
	if !ok {
		t.Fatal("record 102 missing")
	}
	if second.StatusID != matches.StatusFirstHalf {
		t.Fatalf("status from object form not mapped: %d", second.StatusID)
	}
	if second.Score == nil || second.Score.Home != 1 || second.Score.Away != 0 {
		t.Fatalf("score not mapped: %+v", second.Score)
	}
}

func TestFetchAgendaUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	_, err := client.FetchAgenda(context.Background(), matches.ScopeDomesticLeague)
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *feed.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("status code = %d", statusErr.StatusCode)
	}
	if statusErr.Body != "upstream down" {
		t.Fatalf("body excerpt = %q", statusErr.Body)
	}
}

func TestFetchDetail(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"statusId": 6, "score": "2-2"}`))
	})

	patch, err := client.FetchDetail(context.Background(), matches.ScopeDomesticLeague, 101)
	if err != nil {
		t.Fatalf("FetchDetail: %v", err)
	}
	if gotPath != "/domestic-league/events/101.json" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if patch.MatchID != 101 {
		t.Fatalf("match id = %d", patch.MatchID)
	}
	if patch.StatusID == nil || *patch.StatusID != matches.StatusSecondHalf {
		t.Fatalf("unexpected status %v", patch.StatusID)
	}
	if patch.Score == nil || patch.Score.Home != 2 || patch.Score.Away != 2 {
		t.Fatalf("unexpected score %+v", patch.Score)
	}
}

func TestFetchDetailCancelledContext(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := client.FetchDetail(ctx, matches.ScopeDomesticLeague, 101); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestFetchAgendaMalformedJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": [`))
	})
	if _, err := client.FetchAgenda(context.Background(), matches.ScopeDomesticLeague); err == nil {
		t.Fatal("expected decode error")
	}
}
