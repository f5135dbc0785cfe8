package playoffs

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/series"
	"github.com/preston-bernstein/nba-playoffs-service/internal/testutil"
	"github.com/preston-bernstein/nba-playoffs-service/internal/window"
)

var reference = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func TestRunLakersCelticsScenario(t *testing.T) {
	out, err := Run(Input{
		Games:     testutil.ScenarioGames(reference),
		Teams:     testutil.ScenarioTeams(),
		Reference: reference,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 2 || out[0].ID != 102 || out[1].ID != 103 {
		t.Fatalf("expected games 102 and 103, got %+v", out)
	}

	g := out[0]
	if g.VisitorTeam.FullName != "Los Angeles Lakers" || g.HomeTeam.FullName != "Boston Celtics" {
		t.Fatalf("unexpected teams %+v @ %+v", g.VisitorTeam, g.HomeTeam)
	}
	if g.SeriesRecord != (games.SeriesScore{VisitorWins: 2, HomeWins: 1}) {
		t.Fatalf("expected full tally 2-1, got %+v", g.SeriesRecord)
	}
	if g.SeriesAfterGame == nil || *g.SeriesAfterGame != (games.SeriesScore{VisitorWins: 2, HomeWins: 0}) {
		t.Fatalf("expected running tally 2-0 after game 102, got %+v", g.SeriesAfterGame)
	}
	if g.Date != "2025-05-07" {
		t.Fatalf("expected date 2025-05-07, got %s", g.Date)
	}

	last := out[1]
	if last.SeriesAfterGame == nil || *last.SeriesAfterGame != (games.SeriesScore{VisitorWins: 2, HomeWins: 1}) {
		t.Fatalf("expected running tally 2-1 after game 103, got %+v", last.SeriesAfterGame)
	}
}

func TestRunWithoutTeamsUsesIDs(t *testing.T) {
	out, err := Run(Input{Games: testutil.ScenarioGames(reference), Reference: reference})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 2 || out[0].HomeTeam.ID != testutil.CelticsID || out[0].HomeTeam.FullName != "" {
		t.Fatalf("expected id-only summaries, got %+v", out)
	}
}

func TestRunEmptyInput(t *testing.T) {
	out, err := Run(Input{Reference: reference})
	if err != nil || len(out) != 0 {
		t.Fatalf("expected empty result, got %v %v", out, err)
	}
}

func TestRunErrors(t *testing.T) {
	badDate := testutil.ScenarioGames(reference)
	badDate[0].Date = "not a date"
	if _, err := Run(Input{Games: badDate, Reference: reference}); !errors.As(err, new(*window.DateError)) {
		t.Fatalf("expected DateError, got %v", err)
	}

	tied := append(testutil.ScenarioGames(reference), testutil.FinalGame(200, 1, 7, 100, 100, reference.AddDate(0, 0, -20)))
	if _, err := Run(Input{Games: tied, Reference: reference}); !errors.Is(err, series.ErrTiedGame) {
		t.Fatalf("expected ErrTiedGame, got %v", err)
	}

	onlyLakers := []teams.Team{testutil.ScenarioTeams()[0]}
	if _, err := Run(Input{Games: testutil.ScenarioGames(reference), Teams: onlyLakers, Reference: reference}); !errors.Is(err, teams.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunThreeGameSeriesInsideWindow(t *testing.T) {
	lakers, celtics := testutil.LakersID, testutil.CelticsID
	in := []games.Game{
		testutil.FinalGame(1, lakers, celtics, 100, 90, reference.AddDate(0, 0, -5)),
		testutil.FinalGame(2, celtics, lakers, 95, 92, reference.AddDate(0, 0, -3)),
		testutil.FinalGame(3, lakers, celtics, 110, 108, reference.AddDate(0, 0, -1)),
	}
	out, err := Run(Input{Games: in, Teams: testutil.ScenarioTeams(), Reference: reference})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected all three games, got %d", len(out))
	}

	wantAfter := []games.SeriesScore{
		{VisitorWins: 0, HomeWins: 1}, // Lakers home 1-0
		{VisitorWins: 1, HomeWins: 1}, // Celtics home, 1-1
		{VisitorWins: 1, HomeWins: 2}, // Lakers home 2-1
	}
	wantFull := []games.SeriesScore{
		{VisitorWins: 1, HomeWins: 2},
		{VisitorWins: 2, HomeWins: 1},
		{VisitorWins: 1, HomeWins: 2},
	}
	for i, g := range out {
		if g.SeriesAfterGame == nil || *g.SeriesAfterGame != wantAfter[i] {
			t.Fatalf("game %d: expected running %+v, got %+v", g.ID, wantAfter[i], g.SeriesAfterGame)
		}
		if g.SeriesRecord != wantFull[i] {
			t.Fatalf("game %d: expected full tally %+v, got %+v", g.ID, wantFull[i], g.SeriesRecord)
		}
	}
	if got := series.NewKey(celtics, lakers).String(); got != "1-7" {
		t.Fatalf("expected matchup key 1-7, got %s", got)
	}
}
