package ligadata

import "encoding/json"

// agendaResponse mirrors GET <base>/<scope>/schedule.json. Events are keyed
// by a composite key whose final dot-separated segment is the match id.
type agendaResponse struct {
	Events map[string]eventPayload `json:"events"`
	Meta   agendaMeta              `json:"meta"`
}

type agendaMeta struct {
	Rounds []string `json:"rounds"`
}

// eventPayload accepts every field-name variant the feed has been observed to
// ship. Normalization into the canonical record happens in the mapper, with
// one fallback chain per field.
type eventPayload struct {
	MatchID int `json:"matchId"`
	ID      int `json:"id"`

	HomeTeamID   int    `json:"homeTeamId"`
	HomeID       int    `json:"homeId"`
	HomeTeamName string `json:"homeTeamName"`
	HomeName     string `json:"homeName"`
	AwayTeamID   int    `json:"awayTeamId"`
	AwayID       int    `json:"awayId"`
	AwayTeamName string `json:"awayTeamName"`
	AwayName     string `json:"awayName"`

	Date    string   `json:"date"` // YYYYMMDD, venue-local
	Hour    string   `json:"hour"`
	Kickoff string   `json:"kickoff"`
	GMT     *float64 `json:"gmt"` // source UTC offset in hours

	StatusID *int            `json:"statusId"`
	Status   json.RawMessage `json:"status"` // number or {statusId|id}

	Score       json.RawMessage             `json:"score"` // "H-A" string or {home,away}
	ScoreStatus map[string]teamScorePayload `json:"scoreStatus"`

	Round       string `json:"round"`
	RoundNumber *int   `json:"roundNumber"`
	Jornada     *int   `json:"jornada"`
}

// detailResponse mirrors GET <base>/<scope>/events/<matchId>.json.
type detailResponse struct {
	StatusID    *int                        `json:"statusId"`
	Status      json.RawMessage             `json:"status"`
	Score       json.RawMessage             `json:"score"`
	ScoreStatus map[string]teamScorePayload `json:"scoreStatus"`
}

type scorePayload struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type teamScorePayload struct {
	Score int `json:"score"`
}
