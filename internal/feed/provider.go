package feed

import (
	"context"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
)

// Agenda is a full normalized schedule for one scope as returned by the feed,
// along with any round labels the feed declared up front.
type Agenda struct {
	Records []matches.MatchRecord
	Rounds  []string
}

// AgendaProvider fetches the full schedule for a scope and normalizes every
// entry into a canonical MatchRecord.
type AgendaProvider interface {
	FetchAgenda(ctx context.Context, scope matches.Scope) (Agenda, error)
}

// DetailProvider fetches the live detail for a single match and reduces it to
// an overlay patch. Implementations must tolerate partial payloads.
type DetailProvider interface {
	FetchDetail(ctx context.Context, scope matches.Scope, matchID int) (matches.OverlayPatch, error)
}

// Provider combines agenda and detail capabilities.
type Provider interface {
	AgendaProvider
	DetailProvider
}
