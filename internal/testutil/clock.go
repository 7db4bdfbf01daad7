package testutil

import "time"

// NowAt freezes a session's injected clock at the given instant so kickoff
// windows and default-round selection are deterministic in tests.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseRFC3339 parses an RFC3339 timestamp, panicking on failure. Test
// fixtures only.
func MustParseRFC3339(v string) time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return t
}
