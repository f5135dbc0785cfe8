package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
)

// Team ids used by the Lakers/Celtics scenario.
const (
	LakersID  = 1
	CelticsID = 7
)

// ScenarioTeams returns the two teams of the Lakers/Celtics scenario.
func ScenarioTeams() []teams.Team {
	return []teams.Team{
		{ID: LakersID, Name: "Lakers", FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific"},
		{ID: CelticsID, Name: "Celtics", FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic"},
	}
}

// FinalGame returns a completed postseason game played at the given instant.
func FinalGame(id, home, visitor, homeScore, visitorScore int, at time.Time) games.Game {
	return games.Game{
		ID:               id,
		Date:             at.UTC().Format(time.RFC3339),
		Status:           games.StatusFinal,
		Season:           2024,
		Postseason:       true,
		HomeTeam:         games.TeamRef{ID: home},
		VisitorTeam:      games.TeamRef{ID: visitor},
		HomeTeamScore:    homeScore,
		VisitorTeamScore: visitorScore,
	}
}

// ScenarioGames returns four Lakers/Celtics games relative to ref:
// a Lakers home win 10 days back, a Lakers road win 3 days back, a Celtics
// home win 1 day back and an unfinished game 2 hours back.
func ScenarioGames(ref time.Time) []games.Game {
	inProgress := FinalGame(104, LakersID, CelticsID, 50, 48, ref.Add(-2*time.Hour))
	inProgress.Status = "3rd Qtr"
	return []games.Game{
		FinalGame(101, LakersID, CelticsID, 110, 100, ref.AddDate(0, 0, -10)),
		FinalGame(102, CelticsID, LakersID, 99, 101, ref.AddDate(0, 0, -3)),
		FinalGame(103, CelticsID, LakersID, 120, 90, ref.AddDate(0, 0, -1)),
		inProgress,
	}
}
