package matches

import (
	"regexp"
	"strconv"
	"strings"
)

var rawScorePattern = regexp.MustCompile(`^(\d+)\s*-\s*(\d+)$`)

// ParseScoreString derives a structured score from the raw "H-A" feed form.
func ParseScoreString(raw string) (Score, bool) {
	m := rawScorePattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Score{}, false
	}
	home, _ := strconv.Atoi(m[1])
	away, _ := strconv.Atoi(m[2])
	return Score{Home: home, Away: away}, true
}

// DeriveScore recovers a structured score from the raw "H-A" form or a
// per-team score map when the structured form is missing. The same derivation
// runs at initial load and again after overlay merges, so consumers never see
// an unparsed score following a live update. Returns nil when neither source
// yields a score.
func DeriveScore(raw string, teamScores map[int]int, homeID, awayID int) *Score {
	if sc, ok := ParseScoreString(raw); ok {
		return &sc
	}
	if teamScores != nil {
		home, okHome := teamScores[homeID]
		away, okAway := teamScores[awayID]
		if okHome && okAway {
			return &Score{Home: home, Away: away}
		}
	}
	return nil
}
