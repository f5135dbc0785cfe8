package teststubs

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
)

// StubUpstream is a test double for providers.Upstream. Games are served in
// pages of PageSize (all at once when zero) behind an offset cursor.
type StubUpstream struct {
	Teams     []teams.Team
	Games     []games.Game
	PageSize  int
	Standings []standings.Standing

	TeamsErr     error
	GamesErr     error
	StandingsErr error

	TeamCalls      atomic.Int32
	GameCalls      atomic.Int32
	StandingsCalls atomic.Int32

	mu      sync.Mutex
	queries []providers.GamesQuery
}

// FetchTeams returns the configured teams and error while tracking calls.
func (s *StubUpstream) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	s.TeamCalls.Add(1)
	if s.TeamsErr != nil {
		return nil, s.TeamsErr
	}
	return s.Teams, nil
}

// FetchGamesPage serves one slice of Games and records the query.
func (s *StubUpstream) FetchGamesPage(ctx context.Context, q providers.GamesQuery) (games.Page, error) {
	_ = ctx
	s.GameCalls.Add(1)
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()
	if s.GamesErr != nil {
		return games.Page{}, s.GamesErr
	}

	offset := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(q.Cursor)
		if err != nil {
			return games.Page{}, &providers.StatusError{Provider: "stub", Endpoint: "/games", StatusCode: 400, Body: "bad cursor"}
		}
		offset = n
	}
	size := s.PageSize
	if size <= 0 {
		size = len(s.Games)
	}
	end := offset + size
	if end > len(s.Games) {
		end = len(s.Games)
	}
	page := games.Page{Games: s.Games[offset:end]}
	if end < len(s.Games) {
		next := strconv.Itoa(end)
		page.NextCursor = &next
	}
	return page, nil
}

// FetchStandings returns the configured standings and error while tracking calls.
func (s *StubUpstream) FetchStandings(ctx context.Context, season int) ([]standings.Standing, error) {
	_ = ctx
	_ = season
	s.StandingsCalls.Add(1)
	if s.StandingsErr != nil {
		return nil, s.StandingsErr
	}
	return s.Standings, nil
}

// Queries returns a copy of every games query received.
func (s *StubUpstream) Queries() []providers.GamesQuery {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]providers.GamesQuery, len(s.queries))
	copy(out, s.queries)
	return out
}
