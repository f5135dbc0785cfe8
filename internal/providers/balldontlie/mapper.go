package balldontlie

import (
	"strings"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
)

func mapGame(g gameResponse) games.Game {
	return games.Game{
		ID:               g.ID,
		Date:             strings.TrimSpace(g.Date),
		Status:           g.Status,
		Season:           g.Season,
		Postseason:       g.Postseason,
		HomeTeam:         mapTeamRef(g.HomeTeam),
		VisitorTeam:      mapTeamRef(g.VisitorTeam),
		HomeTeamScore:    g.HomeTeamScore,
		VisitorTeamScore: g.VisitorTeamScore,
	}
}

func mapTeamRef(t teamResponse) games.TeamRef {
	return games.TeamRef{
		ID:           t.ID,
		Abbreviation: t.Abbreviation,
		FullName:     t.FullName,
	}
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
	}
}

func mapStanding(s standingResponse) standings.Standing {
	return standings.Standing{
		Team:             mapTeam(s.Team),
		Season:           s.Season,
		ConferenceRecord: s.ConferenceRecord,
		ConferenceRank:   s.ConferenceRank,
		DivisionRecord:   s.DivisionRecord,
		DivisionRank:     s.DivisionRank,
		Wins:             s.Wins,
		Losses:           s.Losses,
		HomeRecord:       s.HomeRecord,
		RoadRecord:       s.RoadRecord,
	}
}
