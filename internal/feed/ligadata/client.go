package ligadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/Alejomarqz/liganacionalgt-live/internal/domain/matches"
	"github.com/Alejomarqz/liganacionalgt-live/internal/feed"
)

// Config controls how the ligadata client reaches the upstream feed.
type Config struct {
	BaseURL       string
	HTTPClient    *http.Client
	DisplayOffset *float64 // display timezone fixed UTC offset in hours
	DetailRate    float64  // detail requests per second across all poll cycles
	DetailBurst   int
}

// Client fetches schedule and detail feeds and maps them to domain records.
type Client struct {
	baseURL       string
	httpClient    httpDoer
	displayOffset float64
	limiter       *rate.Limiter
}

// NewClient constructs a ligadata client with the provided configuration.
func NewClient(cfg Config) *Client {
	offset := defaultDisplayOffset
	if cfg.DisplayOffset != nil {
		offset = *cfg.DisplayOffset
	}
	return &Client{
		baseURL:       normalizeBaseURL(cfg.BaseURL),
		httpClient:    resolveHTTPClient(cfg.HTTPClient),
		displayOffset: offset,
		limiter:       resolveLimiter(cfg.DetailRate, cfg.DetailBurst),
	}
}

// FetchAgenda retrieves and normalizes the full schedule for a scope.
func (c *Client) FetchAgenda(ctx context.Context, scope matches.Scope) (feed.Agenda, error) {
	url := fmt.Sprintf("%s/%s/schedule.json", c.baseURL, scope)
	var payload agendaResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return feed.Agenda{}, err
	}

	records := make([]matches.MatchRecord, 0, len(payload.Events))
	for key, ev := range payload.Events {
		records = append(records, mapEvent(key, ev, scope, c.displayOffset))
	}

	return feed.Agenda{Records: records, Rounds: payload.Meta.Rounds}, nil
}

// FetchDetail retrieves the live detail for one match and reduces it to an
// overlay patch. Calls wait on the shared rate limiter so parallel poll
// fan-out stays within the upstream quota.
func (c *Client) FetchDetail(ctx context.Context, scope matches.Scope, matchID int) (matches.OverlayPatch, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return matches.OverlayPatch{}, err
	}

	url := fmt.Sprintf("%s/%s/events/%s.json", c.baseURL, scope, strconv.Itoa(matchID))
	var payload detailResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return matches.OverlayPatch{}, err
	}

	return mapDetail(matchID, payload), nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &feed.StatusError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
