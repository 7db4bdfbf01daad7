package ligadata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/timeutil"
)

const fallbackRoundLabel = "Matchday"

// mapEvent converts one raw schedule entry into a canonical MatchRecord.
// Pure: every malformed field degrades to a sentinel or zero value, never a
// panic. Each field has exactly one fallback chain so feed-shape drift only
// touches this file.
func mapEvent(key string, ev eventPayload, scope matches.Scope, displayOffset float64) matches.MatchRecord {
	matchID := resolveMatchID(key, ev)

	sourceOffset := displayOffset
	if ev.GMT != nil {
		sourceOffset = *ev.GMT
	}
	adj := timeutil.AdjustKickoff(firstNonEmpty(ev.Hour, ev.Kickoff), sourceOffset, displayOffset)
	adjustedDate := timeutil.AddDays(ev.Date, adj.Shift)

	home := matches.Team{
		ID:   firstNonZero(ev.HomeTeamID, ev.HomeID),
		Name: firstNonEmpty(ev.HomeTeamName, ev.HomeName),
	}
	away := matches.Team{
		ID:   firstNonZero(ev.AwayTeamID, ev.AwayID),
		Name: firstNonEmpty(ev.AwayTeamName, ev.AwayName),
	}

	score, rawScore := resolveEventScore(ev, home.ID, away.ID)

	return matches.MatchRecord{
		MatchID:      matchID,
		Scope:        scope,
		RoundKey:     resolveRound(ev, scope, adjustedDate),
		Date:         ev.Date,
		AdjustedDate: adjustedDate,
		Kickoff:      adj.Kickoff,
		StatusID:     resolveStatus(ev.StatusID, ev.Status),
		HomeTeam:     home,
		AwayTeam:     away,
		Score:        score,
		RawScore:     rawScore,
	}
}

// mapDetail reduces a detail payload to an overlay patch. Only fields the
// feed actually provided are set; the reconciler keeps base values otherwise.
func mapDetail(matchID int, d detailResponse) matches.OverlayPatch {
	patch := matches.OverlayPatch{MatchID: matchID}
	patch.StatusID = resolveOptionalStatus(d.StatusID, d.Status)

	if len(d.Score) > 0 {
		var raw string
		if json.Unmarshal(d.Score, &raw) == nil {
			patch.RawScore = raw
			if sc, ok := matches.ParseScoreString(raw); ok {
				patch.Score = &sc
			}
		} else {
			var obj scorePayload
			if json.Unmarshal(d.Score, &obj) == nil {
				patch.Score = &matches.Score{Home: obj.Home, Away: obj.Away}
			}
		}
	}

	if len(d.ScoreStatus) > 0 {
		patch.TeamScores = make(map[int]int, len(d.ScoreStatus))
		for teamID, v := range d.ScoreStatus {
			if id, err := strconv.Atoi(teamID); err == nil {
				patch.TeamScores[id] = v.Score
			}
		}
	}

	return patch
}

// resolveMatchID prefers the explicit id fields, then falls back to the final
// dot-separated segment of the composite event key.
func resolveMatchID(key string, ev eventPayload) int {
	if ev.MatchID != 0 {
		return ev.MatchID
	}
	if ev.ID != 0 {
		return ev.ID
	}
	if i := strings.LastIndex(key, "."); i >= 0 {
		key = key[i+1:]
	}
	id, _ := strconv.Atoi(key)
	return id
}

// resolveRound picks the grouping key: date for date-bucketed scopes,
// otherwise explicit label, then numeric round, then the literal fallback.
func resolveRound(ev eventPayload, scope matches.Scope, adjustedDate string) string {
	if scope.DateBucketed() {
		return adjustedDate
	}
	if label := strings.TrimSpace(ev.Round); label != "" {
		return label
	}
	if n := resolveRoundNumber(ev); n > 0 {
		return fmt.Sprintf("Round %d", n)
	}
	return fallbackRoundLabel
}

func resolveRoundNumber(ev eventPayload) int {
	if ev.RoundNumber != nil && *ev.RoundNumber > 0 {
		return *ev.RoundNumber
	}
	if ev.Jornada != nil && *ev.Jornada > 0 {
		return *ev.Jornada
	}
	return 0
}

func resolveStatus(direct *int, raw json.RawMessage) matches.StatusID {
	if st := resolveOptionalStatus(direct, raw); st != nil {
		return *st
	}
	return matches.StatusScheduled
}

// resolveOptionalStatus accepts statusId as a top-level field, a bare number,
// or an object carrying statusId/id. Returns nil when nothing parseable is
// present so patches can distinguish "absent" from "scheduled".
func resolveOptionalStatus(direct *int, raw json.RawMessage) *matches.StatusID {
	if direct != nil {
		st := matches.StatusID(*direct)
		return &st
	}
	if len(raw) == 0 {
		return nil
	}
	var n int
	if json.Unmarshal(raw, &n) == nil {
		st := matches.StatusID(n)
		return &st
	}
	var obj struct {
		StatusID *int `json:"statusId"`
		ID       *int `json:"id"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		if obj.StatusID != nil {
			st := matches.StatusID(*obj.StatusID)
			return &st
		}
		if obj.ID != nil {
			st := matches.StatusID(*obj.ID)
			return &st
		}
	}
	return nil
}

// resolveEventScore handles the three observed score shapes: {home,away}
// object, "H-A" string, and a per-team map keyed by team id.
func resolveEventScore(ev eventPayload, homeID, awayID int) (*matches.Score, string) {
	if len(ev.Score) > 0 {
		var raw string
		if json.Unmarshal(ev.Score, &raw) == nil {
			if sc, ok := matches.ParseScoreString(raw); ok {
				return &sc, raw
			}
			return nil, raw
		}
		var obj scorePayload
		if json.Unmarshal(ev.Score, &obj) == nil {
			return &matches.Score{Home: obj.Home, Away: obj.Away}, ""
		}
	}
	if len(ev.ScoreStatus) > 0 {
		teamScores := make(map[int]int, len(ev.ScoreStatus))
		for teamID, v := range ev.ScoreStatus {
			if id, err := strconv.Atoi(teamID); err == nil {
				teamScores[id] = v.Score
			}
		}
		if sc := matches.DeriveScore("", teamScores, homeID, awayID); sc != nil {
			return sc, ""
		}
	}
	return nil, ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstNonZero(values ...int) int {
	for _, v := range values {
		if v != 0 {
			return v
		}
	}
	return 0
}
