package matches

import (
	"time"

	"github.com/Alejomarqz/liganacionalgt-live/internal/timeutil"
)

const kickoffLayout = "20060102 15:04"

// KickoffAt resolves the absolute kickoff instant in the given location.
// Records with the sentinel kickoff or an unparseable date report false.
func (r MatchRecord) KickoffAt(loc *time.Location) (time.Time, bool) {
	if r.Kickoff == timeutil.KickoffUnscheduled || r.Kickoff == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(kickoffLayout, r.AdjustedDate+" "+r.Kickoff, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
