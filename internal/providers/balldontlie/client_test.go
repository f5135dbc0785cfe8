package balldontlie

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
)

func TestFetchGamesPageSendsQueryAndMapsResponse(t *testing.T) {
	var captured *http.Request
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		captured = req
		return jsonResponse(http.StatusOK, `{
			"data": [
				{
					"id": 10,
					"date": "2025-05-01",
					"status": "Final",
					"postseason": true,
					"home_team": { "id": 14, "full_name": "Los Angeles Lakers", "abbreviation": "LAL" },
					"visitor_team": { "id": 2, "full_name": "Boston Celtics", "abbreviation": "BOS" },
					"home_team_score": 110,
					"visitor_team_score": 102,
					"season": 2024
				}
			],
			"meta": { "next_cursor": 77, "per_page": 100 }
		}`), nil
	})

	rec := metrics.NewRecorder()
	client := NewClient(Config{
		BaseURL:    "http://example.com/v1/",
		APIKey:     "secret",
		HTTPClient: &http.Client{Transport: rt},
		Metrics:    rec,
	})

	page, err := client.FetchGamesPage(context.Background(), providers.GamesQuery{
		Seasons:    []int{2024},
		Postseason: true,
		PerPage:    100,
		Cursor:     "55",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if captured.URL.Path != "/v1/games" {
		t.Fatalf("expected /v1/games path, got %s", captured.URL.Path)
	}
	if got := captured.Header.Get("Authorization"); got != "secret" {
		t.Fatalf("expected raw api key in Authorization, got %q", got)
	}
	q, err := url.ParseQuery(captured.URL.RawQuery)
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", captured.URL.RawQuery, err)
	}
	if q.Get("seasons[]") != "2024" || q.Get("postseason") != "true" || q.Get("per_page") != "100" || q.Get("cursor") != "55" {
		t.Fatalf("unexpected query %v", q)
	}
	if q.Has("start_date") || q.Has("end_date") {
		t.Fatalf("expected no date bounds, got %v", q)
	}

	if len(page.Games) != 1 || page.Games[0].ID != 10 || page.Games[0].HomeTeam.ID != 14 {
		t.Fatalf("unexpected page %+v", page)
	}
	if page.NextCursor == nil || *page.NextCursor != "77" {
		t.Fatalf("expected next cursor 77, got %v", page.NextCursor)
	}
	if rec.UpstreamCalls("games") != 1 || rec.UpstreamErrors("games") != 0 {
		t.Fatalf("expected one successful games call recorded, got %+v", rec.Snapshot("games"))
	}
}

func TestFetchGamesPageOmitsEmptyFilters(t *testing.T) {
	var rawQuery string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		rawQuery = req.URL.RawQuery
		return jsonResponse(http.StatusOK, `{"data": [], "meta": {}}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	page, err := client.FetchGamesPage(context.Background(), providers.GamesQuery{StartDate: "2025-05-01", EndDate: "2025-05-31"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if page.NextCursor != nil {
		t.Fatalf("expected final page, got cursor %q", *page.NextCursor)
	}
	q, _ := url.ParseQuery(rawQuery)
	if q.Has("seasons[]") || q.Has("postseason") || q.Has("cursor") || q.Has("per_page") {
		t.Fatalf("expected season/postseason/cursor omitted, got %v", q)
	}
	if q.Get("start_date") != "2025-05-01" || q.Get("end_date") != "2025-05-31" {
		t.Fatalf("expected date bounds, got %v", q)
	}
}

func TestFetchTeamsMapsResponse(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/teams" {
			t.Fatalf("expected /teams path, got %s", req.URL.Path)
		}
		return jsonResponse(http.StatusOK, `{"data": [
			{"id": 2, "full_name": "Boston Celtics", "abbreviation": "BOS", "name": "Celtics"},
			{"id": 14, "full_name": "Los Angeles Lakers", "abbreviation": "LAL", "name": "Lakers"}
		]}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FetchTeams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 2 || got[1].FullName != "Los Angeles Lakers" || got[0].Abbreviation != "BOS" {
		t.Fatalf("unexpected teams %+v", got)
	}
}

func TestFetchStandingsSendsSeason(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/standings" || req.URL.Query().Get("season") != "2024" {
			t.Fatalf("unexpected request %s?%s", req.URL.Path, req.URL.RawQuery)
		}
		return jsonResponse(http.StatusOK, `{"data": [{"team": {"id": 2}, "season": 2024, "wins": 61, "losses": 21}]}`), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	got, err := client.FetchStandings(context.Background(), 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(got) != 1 || got[0].Team.ID != 2 || got[0].Wins != 61 {
		t.Fatalf("unexpected standings %+v", got)
	}
}

func TestFetchHandlesNon200(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusUnauthorized, "  invalid key  "), nil
	})
	rec := metrics.NewRecorder()
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}, Metrics: rec})

	_, err := client.FetchTeams(context.Background())
	st, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if st.StatusCode != http.StatusUnauthorized || st.Body != "invalid key" || st.Endpoint != "/teams" {
		t.Fatalf("unexpected status error %+v", st)
	}
	if rec.UpstreamErrors("teams") != 1 {
		t.Fatalf("expected failed call recorded")
	}
}

func TestFetchHandlesRateLimit(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, `{"error":"slow down"}`)
		resp.Header.Set("Retry-After", "30")
		return resp, nil
	})
	rec := metrics.NewRecorder()
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}, Metrics: rec})

	_, err := client.FetchGamesPage(context.Background(), providers.GamesQuery{})
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter.Seconds() != 30 {
		t.Fatalf("expected 30s retry-after, got %s", rl.RetryAfter)
	}
	if rec.RateLimitHits("games") != 1 {
		t.Fatalf("expected rate limit hit recorded")
	}
}

func TestFetchHandlesDecodeError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "{bad json"), nil
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchGamesPage(context.Background(), providers.GamesQuery{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFetchHandlesTransportError(t *testing.T) {
	boom := errors.New("connection refused")
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})
	client := NewClient(Config{BaseURL: "http://example.com", HTTPClient: &http.Client{Transport: rt}})

	if _, err := client.FetchTeams(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected transport error to be wrapped, got %v", err)
	}
}

func TestFetchRespectsCanceledContextWhilePacing(t *testing.T) {
	calls := 0
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(http.StatusOK, `{"data": []}`), nil
	})
	client := NewClient(Config{
		BaseURL:           "http://example.com",
		HTTPClient:        &http.Client{Transport: rt},
		RequestsPerMinute: 1,
	})

	if _, err := client.FetchTeams(context.Background()); err != nil {
		t.Fatalf("first call should use the burst token, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := client.FetchTeams(ctx); err == nil {
		t.Fatal("expected canceled context to abort the paced wait")
	}
	if calls != 1 {
		t.Fatalf("expected second request never sent, got %d calls", calls)
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout == 0 {
		t.Fatalf("expected timeout to be set on default http client")
	}
	if c.limiter != nil {
		t.Fatalf("expected no limiter when rpm unset")
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
