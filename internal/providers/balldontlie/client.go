package balldontlie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
)

// Config controls how the balldontlie client reaches the upstream API.
type Config struct {
	BaseURL           string
	APIKey            string
	HTTPClient        *http.Client
	Timeout           time.Duration
	RequestsPerMinute int
	Logger            *slog.Logger
	Metrics           *metrics.Recorder
}

// Client fetches teams, games and standings from the balldontlie API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	limiter    *rate.Limiter
	logger     *slog.Logger
	metrics    *metrics.Recorder
	now        func() time.Time
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		limiter:    resolveLimiter(cfg.RequestsPerMinute),
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		now:        time.Now,
	}
}

// FetchTeams retrieves every team.
func (c *Client) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.get(ctx, endpointTeams, nil, &payload); err != nil {
		return nil, err
	}
	out := make([]teams.Team, 0, len(payload.Data))
	for _, t := range payload.Data {
		out = append(out, mapTeam(t))
	}
	return out, nil
}

// FetchGamesPage retrieves a single page of games. The returned page carries
// the upstream next_cursor, or nil when this is the last page.
func (c *Client) FetchGamesPage(ctx context.Context, q providers.GamesQuery) (games.Page, error) {
	var payload gamesResponse
	if err := c.get(ctx, endpointGames, gamesParams(q), &payload); err != nil {
		return games.Page{}, err
	}
	page := games.Page{
		Games:      make([]games.Game, 0, len(payload.Data)),
		NextCursor: payload.Meta.NextCursor.ptr(),
	}
	for _, g := range payload.Data {
		page.Games = append(page.Games, mapGame(g))
	}
	return page, nil
}

// FetchStandings retrieves standings for the given season.
func (c *Client) FetchStandings(ctx context.Context, season int) ([]standings.Standing, error) {
	params := url.Values{}
	params.Set("season", strconv.Itoa(season))

	var payload standingsResponse
	if err := c.get(ctx, endpointStandings, params, &payload); err != nil {
		return nil, err
	}
	out := make([]standings.Standing, 0, len(payload.Data))
	for _, s := range payload.Data {
		out = append(out, mapStanding(s))
	}
	return out, nil
}

func gamesParams(q providers.GamesQuery) url.Values {
	params := url.Values{}
	for _, season := range q.Seasons {
		params.Add("seasons[]", strconv.Itoa(season))
	}
	if q.Postseason {
		params.Set("postseason", "true")
	}
	if q.PerPage > 0 {
		params.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}
	if q.StartDate != "" {
		params.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		params.Set("end_date", q.EndDate)
	}
	return params
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, dst any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s %s: rate limit wait: %w", providerName, endpoint, err)
		}
	}

	req, err := c.buildRequest(ctx, endpoint, params)
	if err != nil {
		return err
	}

	start := c.now()
	err = c.do(req, endpoint, dst)
	c.metrics.RecordUpstreamCall(metricEndpoint(endpoint), time.Since(start), err)

	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	providers.LogWithProvider(ctx, c.logger, level, providerName, "upstream request",
		slog.String("endpoint", endpoint),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		slog.Any("error", err),
	)
	return err
}

func (c *Client) buildRequest(ctx context.Context, endpoint string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		// balldontlie expects the raw key, not a Bearer token.
		req.Header.Set("Authorization", c.apiKey)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, endpoint string, dst any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", providerName, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		c.metrics.RecordRateLimit(metricEndpoint(endpoint), retryAfter)
		return &providers.RateLimitError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			RetryAfter: retryAfter,
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    providerName + " " + endpoint + ": rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &providers.StatusError{
			Provider:   providerName,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", providerName, endpoint, err)
	}
	return nil
}

func metricEndpoint(endpoint string) string {
	return strings.TrimPrefix(endpoint, "/")
}
