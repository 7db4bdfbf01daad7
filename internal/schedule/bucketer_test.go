package schedule

import (
	"testing"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

func rec(id int, round, date, kickoff string) matches.MatchRecord {
	return matches.MatchRecord{
		MatchID:      id,
		RoundKey:     round,
		Date:         date,
		AdjustedDate: date,
		Kickoff:      kickoff,
	}
}

func TestBuildSortsItemsWithinBucket(t *testing.T) {
	rounds := Build([]matches.MatchRecord{
		rec(2, "Round 1", "20240110", "19:00"), // B
		rec(1, "Round 1", "20240110", "19:00"), // A, same slot, lower id
		rec(3, "Round 1", "20240109", "20:00"), // C, earlier day
	})
	if len(rounds) != 1 {
		t.Fatalf("expected one bucket, got %d", len(rounds))
	}
	got := rounds[0].Items
	if got[0].MatchID != 3 || got[1].MatchID != 1 || got[2].MatchID != 2 {
		t.Fatalf("unexpected order: %d %d %d", got[0].MatchID, got[1].MatchID, got[2].MatchID)
	}
}

func TestBuildUnscheduledKickoffSinksLast(t *testing.T) {
	rounds := Build([]matches.MatchRecord{
		rec(1, "Round 1", "20240110", "undefined"),
		rec(2, "Round 1", "20240110", "21:00"),
		rec(3, "Round 1", "20240110", "12:00"),
	})
	got := rounds[0].Items
	if got[0].MatchID != 3 || got[1].MatchID != 2 || got[2].MatchID != 1 {
		t.Fatalf("unexpected order: %d %d %d", got[0].MatchID, got[1].MatchID, got[2].MatchID)
	}
}

func TestBuildBucketOrdering(t *testing.T) {
	rounds := Build([]matches.MatchRecord{
		rec(1, "Final", "20240301", "19:00"),
		rec(2, "Round 10", "20240110", "19:00"),
		rec(3, "Round 2", "20240101", "19:00"),
		rec(4, "Semifinal", "20240220", "19:00"),
		rec(5, "Relegation", "20240305", "19:00"),
		rec(6, "Playoff", "20240210", "19:00"),
	})
	want := []string{"Round 2", "Round 10", "Playoff", "Semifinal", "Final", "Relegation"}
	if len(rounds) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(rounds))
	}
	for i, key := range want {
		if rounds[i].Key != key {
			t.Fatalf("bucket %d = %s, want %s", i, rounds[i].Key, key)
		}
	}
}

func TestBuildNumericNotLexicographic(t *testing.T) {
	rounds := Build([]matches.MatchRecord{
		rec(1, "Round 10", "20240110", "19:00"),
		rec(2, "Round 9", "20240109", "19:00"),
	})
	if rounds[0].Key != "Round 9" || rounds[1].Key != "Round 10" {
		t.Fatalf("unexpected order: %s, %s", rounds[0].Key, rounds[1].Key)
	}
}

func TestBuildDateBuckets(t *testing.T) {
	rounds := Build([]matches.MatchRecord{
		rec(1, "20240115", "20240115", "19:00"),
		rec(2, "20240110", "20240110", "19:00"),
	})
	if rounds[0].Key != "20240110" || rounds[1].Key != "20240115" {
		t.Fatalf("unexpected order: %s, %s", rounds[0].Key, rounds[1].Key)
	}
	if rounds[0].Label != "Wed 10 Jan" {
		t.Fatalf("date label = %q", rounds[0].Label)
	}
	if rounds[1].Label != "Mon 15 Jan" {
		t.Fatalf("date label = %q", rounds[1].Label)
	}
}

func TestBuildDeclaredRoundsGetEmptyBuckets(t *testing.T) {
	rounds := Build(
		[]matches.MatchRecord{rec(1, "Round 1", "20240110", "19:00")},
		"Round 1", "Round 2", "Final", " ",
	)
	want := []string{"Round 1", "Round 2", "Final"}
	if len(rounds) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(rounds))
	}
	for i, key := range want {
		if rounds[i].Key != key {
			t.Fatalf("bucket %d = %s, want %s", i, rounds[i].Key, key)
		}
	}
	if len(rounds[0].Items) != 1 {
		t.Fatalf("populated bucket lost its records: %d", len(rounds[0].Items))
	}
	if len(rounds[1].Items) != 0 || len(rounds[2].Items) != 0 {
		t.Fatal("declared-only buckets should be empty")
	}
}

func TestBuildEmpty(t *testing.T) {
	if rounds := Build(nil); len(rounds) != 0 {
		t.Fatalf("expected no buckets, got %d", len(rounds))
	}
}
