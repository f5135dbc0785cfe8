package playoffs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/config"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
	"github.com/preston-bernstein/nba-playoffs-service/internal/teststubs"
	"github.com/preston-bernstein/nba-playoffs-service/internal/testutil"
)

func scenarioUpstream() *teststubs.StubUpstream {
	return &teststubs.StubUpstream{
		Teams:    testutil.ScenarioTeams(),
		Games:    testutil.ScenarioGames(reference),
		PageSize: 1,
	}
}

func TestRecentGamesDrainsAndEnriches(t *testing.T) {
	up := scenarioUpstream()
	rec := metrics.NewRecorder()
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(up, Options{PerPage: 1, Now: testutil.NowAt(reference), Metrics: rec, Logger: logger})

	resp, err := svc.RecentGames(context.Background(), 2024)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.Count != 2 || len(resp.Games) != 2 || resp.Season != 2024 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp.Reference != "2025-05-10T12:00:00Z" {
		t.Fatalf("unexpected reference %s", resp.Reference)
	}
	if up.GameCalls.Load() != 4 {
		t.Fatalf("expected 4 page requests, got %d", up.GameCalls.Load())
	}
	q := up.Queries()[0]
	if len(q.Seasons) != 1 || q.Seasons[0] != 2024 || !q.Postseason || q.PerPage != 1 {
		t.Fatalf("unexpected query %+v", q)
	}
	if runs, failed := rec.PipelineRuns(); runs != 1 || failed != 0 {
		t.Fatalf("expected 1 successful run, got %d/%d", runs, failed)
	}
	if buf.Len() == 0 {
		t.Fatal("expected pipeline log line")
	}
}

func TestRecentGamesRefetchesEveryCall(t *testing.T) {
	up := scenarioUpstream()
	svc := NewService(up, Options{Now: testutil.NowAt(reference)})
	for i := 0; i < 2; i++ {
		if _, err := svc.RecentGames(context.Background(), 2024); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if up.TeamCalls.Load() != 2 {
		t.Fatalf("expected teams fetched per run, got %d", up.TeamCalls.Load())
	}
}

func TestRecentGamesUpstreamFailure(t *testing.T) {
	boom := &providers.StatusError{Provider: "stub", Endpoint: "/games", StatusCode: 500}
	up := scenarioUpstream()
	up.GamesErr = boom
	rec := metrics.NewRecorder()
	svc := NewService(up, Options{Now: testutil.NowAt(reference), Metrics: rec})

	resp, err := svc.RecentGames(context.Background(), 2024)
	if !errors.As(err, new(*providers.StatusError)) {
		t.Fatalf("expected status error, got %v", err)
	}
	if resp.Games != nil {
		t.Fatalf("expected no partial games, got %+v", resp.Games)
	}
	if _, failed := rec.PipelineRuns(); failed != 1 {
		t.Fatalf("expected failed run recorded, got %d", failed)
	}
}

func TestConfigErrorShortCircuitsEveryMethod(t *testing.T) {
	up := scenarioUpstream()
	svc := NewService(up, Options{ConfigErr: config.ErrMissingAPIKey})
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["recent"] = svc.RecentGames(ctx, 2024)
	_, checks["teams"] = svc.Teams(ctx)
	_, checks["games"] = svc.Games(ctx, 2024)
	_, checks["month"] = svc.MonthGames(ctx, 2025, time.May)
	_, checks["standings"] = svc.Standings(ctx, 2024)
	for name, err := range checks {
		if !errors.Is(err, config.ErrMissingAPIKey) {
			t.Fatalf("%s: expected ErrMissingAPIKey, got %v", name, err)
		}
	}
	if up.TeamCalls.Load()+up.GameCalls.Load()+up.StandingsCalls.Load() != 0 {
		t.Fatal("expected no upstream calls")
	}
}

func TestNilUpstream(t *testing.T) {
	if _, err := NewService(nil, Options{}).Teams(context.Background()); err == nil {
		t.Fatal("expected error without upstream")
	}
}

func TestPassthroughMethods(t *testing.T) {
	up := scenarioUpstream()
	up.Standings = []standings.Standing{{Season: 2024, Wins: 60, Losses: 22}}
	svc := NewService(up, Options{})
	ctx := context.Background()

	teamList, err := svc.Teams(ctx)
	if err != nil || len(teamList) != 2 {
		t.Fatalf("unexpected teams %v %v", teamList, err)
	}
	all, err := svc.Games(ctx, 2024)
	if err != nil || len(all) != 4 {
		t.Fatalf("unexpected games %v %v", all, err)
	}
	table, err := svc.Standings(ctx, 2024)
	if err != nil || len(table) != 1 || table[0].Wins != 60 {
		t.Fatalf("unexpected standings %v %v", table, err)
	}
}

func TestMonthGames(t *testing.T) {
	up := &teststubs.StubUpstream{Games: []games.Game{
		testutil.FinalGame(1, 1, 7, 100, 90, time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC)),
		testutil.FinalGame(2, 1, 7, 100, 90, time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)),
	}}
	out, err := NewService(up, Options{}).MonthGames(context.Background(), 2025, time.May)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("expected only May game, got %+v", out)
	}
	if q := up.Queries()[0]; q.StartDate != "2025-05-01" || q.EndDate != "2025-05-31" {
		t.Fatalf("unexpected month bounds %+v", q)
	}
}
