package matches

import "testing"

func TestParseScoreString(t *testing.T) {
	cases := []struct {
		raw  string
		want Score
		ok   bool
	}{
		{"2-1", Score{Home: 2, Away: 1}, true},
		{"0-0", Score{}, true},
		{" 3 - 2 ", Score{Home: 3, Away: 2}, true},
		{"10-1", Score{Home: 10, Away: 1}, true},
		{"", Score{}, false},
		{"undefined", Score{}, false},
		{"2:1", Score{}, false},
		{"-1-2", Score{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseScoreString(tc.raw)
		if ok != tc.ok {
			t.Fatalf("ParseScoreString(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseScoreString(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestDeriveScorePrefersRawString(t *testing.T) {
	teamScores := map[int]int{10: 9, 20: 9}
	got := DeriveScore("2-1", teamScores, 10, 20)
	if got == nil || got.Home != 2 || got.Away != 1 {
		t.Fatalf("expected 2-1 from raw string, got %+v", got)
	}
}

func TestDeriveScoreFallsBackToTeamScores(t *testing.T) {
	got := DeriveScore("", map[int]int{10: 3, 20: 1}, 10, 20)
	if got == nil || got.Home != 3 || got.Away != 1 {
		t.Fatalf("expected 3-1 from team scores, got %+v", got)
	}
}

func TestDeriveScoreMissingTeamEntry(t *testing.T) {
	if got := DeriveScore("", map[int]int{10: 3}, 10, 20); got != nil {
		t.Fatalf("expected nil with incomplete team scores, got %+v", got)
	}
}

func TestDeriveScoreNothingAvailable(t *testing.T) {
	if got := DeriveScore("undefined", nil, 10, 20); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
