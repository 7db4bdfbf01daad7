package overlay

import (
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

// DefaultTargetCap bounds detail-request fan-out per poll cycle.
const DefaultTargetCap = 12

const (
	preKickoffWindow  = 5 * time.Minute
	postKickoffWindow = 30 * time.Minute
)

// SelectTargets picks the match ids worth polling from the active bucket, in
// priority order: currently live first, then matches within the kickoff
// window, then the rest. Each partition keeps the bucket's original order.
// The result is capped at max ids (DefaultTargetCap when max <= 0).
func SelectTargets(items []matches.MatchRecord, now time.Time, loc *time.Location, max int) []int {
	if max <= 0 {
		max = DefaultTargetCap
	}

	var live, near, rest []int
	for _, rec := range items {
		switch {
		case rec.StatusID.IsLive():
			live = append(live, rec.MatchID)
		case nearKickoff(rec, now, loc):
			near = append(near, rec.MatchID)
		default:
			rest = append(rest, rec.MatchID)
		}
	}

	ids := make([]int, 0, len(items))
	ids = append(ids, live...)
	ids = append(ids, near...)
	ids = append(ids, rest...)
	if len(ids) > max {
		ids = ids[:max]
	}
	return ids
}

// nearKickoff reports whether now falls within [-5,+30] minutes of the
// match's kickoff.
func nearKickoff(rec matches.MatchRecord, now time.Time, loc *time.Location) bool {
	kickoff, ok := rec.KickoffAt(loc)
	if !ok {
		return false
	}
	elapsed := now.Sub(kickoff)
	return elapsed >= -preKickoffWindow && elapsed <= postKickoffWindow
}
