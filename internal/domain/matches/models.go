package matches

// Scope is a competition namespace partitioning otherwise-identical feed and
// record structures.
type Scope string

const (
	ScopeDomesticLeague          Scope = "domestic-league"
	ScopeConfederationQualifiers Scope = "confederation-qualifiers"
)

// DateBucketed reports whether fixtures in this scope are grouped by calendar
// day instead of by round label.
func (s Scope) DateBucketed() bool {
	return s == ScopeConfederationQualifiers
}

// StatusID mirrors the feed's numeric match status codes.
type StatusID int

const (
	StatusScheduled  StatusID = 0
	StatusFirstHalf  StatusID = 1
	StatusFinished   StatusID = 2
	StatusSuspended  StatusID = 3
	StatusPostponed  StatusID = 4
	StatusHalftime   StatusID = 5
	StatusSecondHalf StatusID = 6
	StatusExtraTime  StatusID = 8
	StatusPenalties  StatusID = 10
	StatusStoppage   StatusID = 12
)

// liveStatuses is the canonical in-play set. Halftime (5) counts as live: a
// match at the break still needs polling priority and a live card.
var liveStatuses = map[StatusID]struct{}{
	StatusFirstHalf:  {},
	StatusHalftime:   {},
	StatusSecondHalf: {},
	StatusExtraTime:  {},
	StatusPenalties:  {},
	StatusStoppage:   {},
}

// IsLive reports whether the status is in the canonical in-play set.
func (s StatusID) IsLive() bool {
	_, ok := liveStatuses[s]
	return ok
}

// Team identifies one side of a fixture.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Score captures home and away goals.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// MatchRecord is the canonical fixture shape used everywhere downstream of
// the feed mapper. MatchID is the sole join key between the base schedule and
// overlay patches and never changes once built.
type MatchRecord struct {
	MatchID      int      `json:"matchId"`
	Scope        Scope    `json:"scope"`
	RoundKey     string   `json:"roundKey"`
	Date         string   `json:"date"`         // YYYYMMDD, venue-local
	AdjustedDate string   `json:"adjustedDate"` // YYYYMMDD, after timezone shift
	Kickoff      string   `json:"kickoff"`      // HH:MM in the display timezone, or the sentinel
	StatusID     StatusID `json:"statusId"`
	HomeTeam     Team     `json:"homeTeam"`
	AwayTeam     Team     `json:"awayTeam"`
	Score        *Score   `json:"score,omitempty"`
	RawScore     string   `json:"-"` // "H-A" form as delivered, kept for renormalization
}

// OverlayPatch is a partial live update for one match. Fields are set only
// when the detail feed provided them; nil/empty means "no change".
type OverlayPatch struct {
	MatchID    int
	StatusID   *StatusID
	Score      *Score
	RawScore   string
	TeamScores map[int]int // per-team score keyed by team id
}

// Round is one schedule bucket shown under a single tab.
type Round struct {
	Key   string        `json:"key"`
	Label string        `json:"label"`
	Items []MatchRecord `json:"items"`
}
