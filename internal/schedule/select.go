package schedule

import (
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/timeutil"
)

// SelectDefault picks the bucket a consumer should open first. The tie-break
// order is behaviorally significant and must not be reordered:
//  1. the bucket holding the globally-soonest future kickoff;
//  2. else the earliest bucket whose date range starts today or later;
//  3. else the latest bucket whose date range ended today or earlier;
//  4. else the first bucket in sort order.
//
// Returns "" only when rounds is empty.
func SelectDefault(rounds []matches.Round, now time.Time, loc *time.Location) string {
	if len(rounds) == 0 {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}

	best := ""
	var bestKickoff time.Time
	for _, round := range rounds {
		k, ok := earliestFutureKickoff(round.Items, now, loc)
		if !ok {
			continue
		}
		if best == "" || k.Before(bestKickoff) {
			best = round.Key
			bestKickoff = k
		}
	}
	if best != "" {
		return best
	}

	today := timeutil.FormatDate(now.In(loc))

	for _, round := range rounds {
		if start, _, ok := dateRange(round.Items); ok && start >= today {
			return round.Key
		}
	}

	for i := len(rounds) - 1; i >= 0; i-- {
		if _, end, ok := dateRange(rounds[i].Items); ok && end <= today {
			return rounds[i].Key
		}
	}

	return rounds[0].Key
}

func earliestFutureKickoff(items []matches.MatchRecord, now time.Time, loc *time.Location) (time.Time, bool) {
	var earliest time.Time
	found := false
	for _, rec := range items {
		k, ok := rec.KickoffAt(loc)
		if !ok || !k.After(now) {
			continue
		}
		if !found || k.Before(earliest) {
			earliest = k
			found = true
		}
	}
	return earliest, found
}

func dateRange(items []matches.MatchRecord) (start, end string, ok bool) {
	for _, rec := range items {
		if rec.AdjustedDate == "" {
			continue
		}
		if !ok {
			start, end, ok = rec.AdjustedDate, rec.AdjustedDate, true
			continue
		}
		if rec.AdjustedDate < start {
			start = rec.AdjustedDate
		}
		if rec.AdjustedDate > end {
			end = rec.AdjustedDate
		}
	}
	return start, end, ok
}
