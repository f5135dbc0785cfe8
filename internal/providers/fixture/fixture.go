package fixture

import (
	"context"
	"strconv"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
)

const defaultPerPage = 2

// Provider serves a deterministic postseason relative to its clock. Useful for
// local runs without an API key and for exercising pagination end to end.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

var fixtureTeams = []teams.Team{
	{ID: 2, Name: "Celtics", FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic"},
	{ID: 8, Name: "Nuggets", FullName: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Conference: "West", Division: "Northwest"},
	{ID: 14, Name: "Lakers", FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific"},
	{ID: 16, Name: "Heat", FullName: "Miami Heat", Abbreviation: "MIA", City: "Miami", Conference: "East", Division: "Southeast"},
}

// FetchTeams returns a deterministic set of teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	out := make([]teams.Team, len(fixtureTeams))
	copy(out, fixtureTeams)
	return out, nil
}

// FetchGamesPage pages through the fixture schedule using an offset cursor.
// Only the date bounds of q filter; every fixture game is postseason.
func (p *Provider) FetchGamesPage(ctx context.Context, q providers.GamesQuery) (games.Page, error) {
	_ = ctx
	all := filterByDate(p.schedule(), q.StartDate, q.EndDate)

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = defaultPerPage
	}
	offset := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(q.Cursor)
		if err != nil || n < 0 {
			return games.Page{}, &providers.StatusError{Provider: "fixture", Endpoint: "/games", StatusCode: 400, Body: "invalid cursor"}
		}
		offset = n
	}
	if offset > len(all) {
		offset = len(all)
	}
	end := offset + perPage
	if end > len(all) {
		end = len(all)
	}

	page := games.Page{Games: append([]games.Game(nil), all[offset:end]...)}
	if end < len(all) {
		next := strconv.Itoa(end)
		page.NextCursor = &next
	}
	return page, nil
}

// FetchStandings returns a fixed regular-season table for the fixture teams.
func (p *Provider) FetchStandings(ctx context.Context, season int) ([]standings.Standing, error) {
	_ = ctx
	lines := []struct {
		team         teams.Team
		wins, losses int
		confRank     int
	}{
		{fixtureTeams[0], 64, 18, 1},
		{fixtureTeams[1], 57, 25, 2},
		{fixtureTeams[2], 47, 35, 7},
		{fixtureTeams[3], 46, 36, 8},
	}
	out := make([]standings.Standing, 0, len(lines))
	for _, l := range lines {
		out = append(out, standings.Standing{
			Team:           l.team,
			Season:         season,
			ConferenceRank: l.confRank,
			Wins:           l.wins,
			Losses:         l.losses,
		})
	}
	return out, nil
}

func (p *Provider) schedule() []games.Game {
	today := p.now().UTC().Truncate(24 * time.Hour)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format(time.RFC3339)
	}
	lal, bos := ref(fixtureTeams[2]), ref(fixtureTeams[0])
	den, mia := ref(fixtureTeams[1]), ref(fixtureTeams[3])

	return []games.Game{
		{ID: 9001, Date: day(-20), Status: games.StatusFinal, HomeTeam: den, VisitorTeam: mia, HomeTeamScore: 104, VisitorTeamScore: 93},
		{ID: 9002, Date: day(-18), Status: games.StatusFinal, HomeTeam: den, VisitorTeam: mia, HomeTeamScore: 108, VisitorTeamScore: 111},
		{ID: 9003, Date: day(-5), Status: games.StatusFinal, HomeTeam: lal, VisitorTeam: bos, HomeTeamScore: 100, VisitorTeamScore: 90},
		{ID: 9004, Date: day(-3), Status: games.StatusFinal, HomeTeam: bos, VisitorTeam: lal, HomeTeamScore: 95, VisitorTeamScore: 92},
		{ID: 9005, Date: day(-1), Status: games.StatusFinal, HomeTeam: lal, VisitorTeam: bos, HomeTeamScore: 110, VisitorTeamScore: 108},
		{ID: 9006, Date: day(1), Status: day(1), HomeTeam: bos, VisitorTeam: lal},
	}
}

func ref(t teams.Team) games.TeamRef {
	return games.TeamRef{ID: t.ID, Abbreviation: t.Abbreviation, FullName: t.FullName}
}

func filterByDate(all []games.Game, start, end string) []games.Game {
	if start == "" && end == "" {
		return all
	}
	out := make([]games.Game, 0, len(all))
	for _, g := range all {
		d := g.Date
		if len(d) >= 10 {
			d = d[:10]
		}
		if start != "" && d < start {
			continue
		}
		if end != "" && d > end {
			continue
		}
		out = append(out, g)
	}
	return out
}
