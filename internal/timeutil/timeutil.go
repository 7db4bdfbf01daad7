package timeutil

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical compact date format (YYYYMMDD) used by the feed.
const DateLayout = "20060102"

// KickoffUnscheduled is the sentinel kickoff for matches without a set time.
// The feed delivers the literal string "undefined" for these, so the sentinel
// keeps the same value end to end.
const KickoffUnscheduled = "undefined"

var kickoffPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseDate parses a YYYYMMDD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYYMMDD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// AddDays shifts a YYYYMMDD date by the given number of calendar days.
// The arithmetic is calendar-correct across month and year boundaries.
// An unparseable date is returned unchanged.
func AddDays(date string, days int) string {
	if days == 0 {
		return date
	}
	t, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(t.AddDate(0, 0, days))
}

// Adjustment is the result of moving a kickoff time between UTC offsets.
// Shift indicates how many calendar days the wrapped time crossed.
type Adjustment struct {
	Kickoff string
	Shift   int
}

// AdjustKickoff converts a raw HH:MM kickoff from the source UTC offset to the
// display UTC offset, wrapping into [0,1440) minutes and tracking the day
// shift. Offsets are fixed hour values; fractional offsets are supported.
// Anything that does not match H{1,2}:MM maps to the sentinel with shift 0.
// Equal offsets are a no-op.
func AdjustKickoff(kickoff string, sourceOffset, displayOffset float64) Adjustment {
	m := kickoffPattern.FindStringSubmatch(strings.TrimSpace(kickoff))
	if m == nil {
		return Adjustment{Kickoff: KickoffUnscheduled}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Adjustment{Kickoff: KickoffUnscheduled}
	}

	delta := int(math.Round((displayOffset - sourceOffset) * 60))
	total := hour*60 + minute + delta

	shift := 0
	for total < 0 {
		total += 24 * 60
		shift--
	}
	for total >= 24*60 {
		total -= 24 * 60
		shift++
	}

	return Adjustment{
		Kickoff: fmt.Sprintf("%02d:%02d", total/60, total%60),
		Shift:   shift,
	}
}
