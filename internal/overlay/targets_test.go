package overlay

import (
	"testing"
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

var displayLoc = time.FixedZone("display", -6*3600)

func target(id int, status matches.StatusID, kickoff string) matches.MatchRecord {
	return matches.MatchRecord{
		MatchID:      id,
		AdjustedDate: "20240110",
		Kickoff:      kickoff,
		StatusID:     status,
	}
}

func TestSelectTargetsLiveFirstThenNearKickoff(t *testing.T) {
	now := time.Date(2024, 1, 10, 19, 0, 0, 0, displayLoc)
	items := []matches.MatchRecord{
		target(1, matches.StatusScheduled, "23:00"), // far out
		target(2, matches.StatusFirstHalf, "18:00"), // live
		target(3, matches.StatusScheduled, "19:04"), // within pre-kickoff window
		target(4, matches.StatusHalftime, "18:00"),  // live (break counts)
		target(5, matches.StatusScheduled, "18:35"), // within post-kickoff window
	}

	got := SelectTargets(items, now, displayLoc, 0)
	want := []int{2, 4, 3, 5, 1}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestSelectTargetsCapped(t *testing.T) {
	now := time.Date(2024, 1, 10, 19, 0, 0, 0, displayLoc)
	var items []matches.MatchRecord
	for i := 1; i <= 5; i++ {
		items = append(items, target(i, matches.StatusFirstHalf, "18:00"))
	}
	for i := 6; i <= 8; i++ {
		items = append(items, target(i, matches.StatusScheduled, "19:02"))
	}
	for i := 9; i <= 20; i++ {
		items = append(items, target(i, matches.StatusScheduled, "23:00"))
	}

	got := SelectTargets(items, now, displayLoc, 12)
	if len(got) != 12 {
		t.Fatalf("expected 12 targets, got %d", len(got))
	}
	for i := 0; i < 5; i++ {
		if got[i] != i+1 {
			t.Fatalf("live matches must lead: %v", got)
		}
	}
	for i := 5; i < 8; i++ {
		if got[i] != i+1 {
			t.Fatalf("near-kickoff matches must follow live: %v", got)
		}
	}
}

func TestSelectTargetsWindowBoundaries(t *testing.T) {
	now := time.Date(2024, 1, 10, 19, 0, 0, 0, displayLoc)
	cases := []struct {
		kickoff string
		near    bool
	}{
		{"19:05", true},  // exactly 5 minutes ahead
		{"19:06", false}, // just outside
		{"18:30", true},  // exactly 30 minutes ago
		{"18:29", false}, // just past the window
		{"undefined", false},
	}
	for _, tc := range cases {
		got := nearKickoff(target(1, matches.StatusScheduled, tc.kickoff), now, displayLoc)
		if got != tc.near {
			t.Fatalf("kickoff %s: near = %v, want %v", tc.kickoff, got, tc.near)
		}
	}
}

func TestSelectTargetsDefaultCap(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, displayLoc)
	var items []matches.MatchRecord
	for i := 1; i <= 30; i++ {
		items = append(items, target(i, matches.StatusScheduled, "23:00"))
	}
	if got := SelectTargets(items, now, displayLoc, 0); len(got) != DefaultTargetCap {
		t.Fatalf("expected default cap %d, got %d", DefaultTargetCap, len(got))
	}
}

func TestSelectTargetsEmpty(t *testing.T) {
	if got := SelectTargets(nil, time.Now(), displayLoc, 12); len(got) != 0 {
		t.Fatalf("expected no targets, got %v", got)
	}
}
