package overlay

import (
	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

// Apply merges the patch for rec's match id onto the record at render time.
// Pure with respect to its inputs: when no patch exists the original pointer
// is returned untouched (so downstream can skip re-rendering), otherwise a
// new record is returned merging only the fields the patch carries.
//
// After merging, a record without a structured score is renormalized from the
// raw "H-A" form or the per-team score map, the same derivation used at
// initial load.
func Apply(rec *matches.MatchRecord, patches map[int]matches.OverlayPatch) *matches.MatchRecord {
	patch, ok := patches[rec.MatchID]
	if !ok {
		return rec
	}

	merged := *rec
	if patch.StatusID != nil {
		merged.StatusID = *patch.StatusID
	}
	if patch.Score != nil {
		sc := *patch.Score
		merged.Score = &sc
	}
	if patch.RawScore != "" {
		merged.RawScore = patch.RawScore
	}
	if merged.Score == nil {
		merged.Score = matches.DeriveScore(merged.RawScore, patch.TeamScores, merged.HomeTeam.ID, merged.AwayTeam.ID)
	}
	return &merged
}

// ApplyAll produces the merged render view for a whole bucket. The base slice
// is never written to.
func ApplyAll(items []matches.MatchRecord, patches map[int]matches.OverlayPatch) []matches.MatchRecord {
	out := make([]matches.MatchRecord, len(items))
	for i := range items {
		out[i] = *Apply(&items[i], patches)
	}
	return out
}
