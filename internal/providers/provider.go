package providers

import (
	"context"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
)

// GamesQuery filters one request to the games endpoint.
// Zero values are omitted from the request.
type GamesQuery struct {
	Seasons    []int
	Postseason bool
	PerPage    int
	Cursor     string
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
}

// GamePageFetcher fetches a single page of games.
type GamePageFetcher interface {
	FetchGamesPage(ctx context.Context, q GamesQuery) (games.Page, error)
}

// TeamProvider fetches all teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]teams.Team, error)
}

// StandingsProvider fetches standings for a season.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, season int) ([]standings.Standing, error)
}

// Upstream combines all upstream capabilities.
type Upstream interface {
	GamePageFetcher
	TeamProvider
	StandingsProvider
}
