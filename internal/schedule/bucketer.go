package schedule

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/timeutil"
)

var (
	roundLabelPattern = regexp.MustCompile(`^Round\s+(\d+)$`)
	datePattern       = regexp.MustCompile(`^\d{8}$`)
)

// knockoutOrder fixes the precedence of named knockout stages. They sort
// after every numbered round; unrecognized labels sort last.
var knockoutOrder = map[string]int{
	"playoff":       1,
	"round of 16":   2,
	"quarterfinal":  3,
	"quarterfinals": 3,
	"semifinal":     4,
	"semifinals":    4,
	"third place":   5,
	"final":         6,
}

// Build groups records into ordered Round buckets. Items within a bucket are
// sorted by (adjustedDate, kickoff, matchId) ascending; that ordering is the
// canonical match order anywhere downstream. Declared round labels the feed
// announced up front yield an empty bucket when no record references them
// yet, so upcoming rounds still get a tab.
func Build(records []matches.MatchRecord, declared ...string) []matches.Round {
	byKey := make(map[string][]matches.MatchRecord)
	for _, rec := range records {
		byKey[rec.RoundKey] = append(byKey[rec.RoundKey], rec)
	}
	for _, label := range declared {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := byKey[label]; !ok {
			byKey[label] = nil
		}
	}

	rounds := make([]matches.Round, 0, len(byKey))
	for key, items := range byKey {
		sort.SliceStable(items, func(i, j int) bool {
			return lessRecords(items[i], items[j])
		})
		rounds = append(rounds, matches.Round{
			Key:   key,
			Label: labelFor(key),
			Items: items,
		})
	}

	sort.SliceStable(rounds, func(i, j int) bool {
		return lessBuckets(rounds[i].Key, rounds[j].Key)
	})
	return rounds
}

func lessRecords(a, b matches.MatchRecord) bool {
	if a.AdjustedDate != b.AdjustedDate {
		return a.AdjustedDate < b.AdjustedDate
	}
	if a.Kickoff != b.Kickoff {
		// Unscheduled kickoffs sink to the end of the day.
		if a.Kickoff == timeutil.KickoffUnscheduled {
			return false
		}
		if b.Kickoff == timeutil.KickoffUnscheduled {
			return true
		}
		return a.Kickoff < b.Kickoff
	}
	return a.MatchID < b.MatchID
}

// bucket sort classes: numbered/date rounds first, knockout stages second,
// unrecognized labels last.
const (
	classNumbered = iota
	classKnockout
	classUnknown
)

func lessBuckets(a, b string) bool {
	aClass, aNum := bucketRank(a)
	bClass, bNum := bucketRank(b)
	if aClass != bClass {
		return aClass < bClass
	}
	if aNum != bNum {
		return aNum < bNum
	}
	return a < b
}

func bucketRank(key string) (class, num int) {
	if m := roundLabelPattern.FindStringSubmatch(key); m != nil {
		n, _ := strconv.Atoi(m[1])
		return classNumbered, n
	}
	if datePattern.MatchString(key) {
		n, _ := strconv.Atoi(key)
		return classNumbered, n
	}
	if ord, ok := knockoutOrder[strings.ToLower(strings.TrimSpace(key))]; ok {
		return classKnockout, ord
	}
	return classUnknown, 0
}

// labelFor computes the tab label for a bucket key. Date keys render as a
// short human date; everything else shows the key verbatim.
func labelFor(key string) string {
	if datePattern.MatchString(key) {
		if t, err := timeutil.ParseDate(key); err == nil {
			return t.Format("Mon 02 Jan")
		}
	}
	return key
}
