// Package enrich joins series tallies and team names onto games.
package enrich

import (
	"fmt"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/series"
	"github.com/preston-bernstein/nba-playoffs-service/internal/timeutil"
)

// Game builds the display record for d. With a nil dir the team summaries
// carry only what the game itself embeds. The input is never modified.
func Game(d games.Dated, records series.Records, dir *teams.Directory) (games.Enriched, error) {
	home, err := summary(d.HomeTeam, dir)
	if err != nil {
		return games.Enriched{}, fmt.Errorf("game %d home team: %w", d.ID, err)
	}
	visitor, err := summary(d.VisitorTeam, dir)
	if err != nil {
		return games.Enriched{}, fmt.Errorf("game %d visitor team: %w", d.ID, err)
	}

	visitorWins, homeWins := records.Between(d.VisitorTeam.ID, d.HomeTeam.ID)
	return games.Enriched{
		ID:               d.ID,
		Date:             timeutil.FormatDate(d.PlayedAt.UTC()),
		Status:           d.Status,
		HomeTeam:         home,
		VisitorTeam:      visitor,
		HomeTeamScore:    d.HomeTeamScore,
		VisitorTeamScore: d.VisitorTeamScore,
		SeriesRecord:     games.SeriesScore{VisitorWins: visitorWins, HomeWins: homeWins},
		PlayedAt:         d.PlayedAt,
	}, nil
}

// All enriches dated in input order. progression, when non-nil, supplies the
// running series score after each game.
func All(dated []games.Dated, records series.Records, progression map[int]series.Record, dir *teams.Directory) ([]games.Enriched, error) {
	out := make([]games.Enriched, 0, len(dated))
	for _, d := range dated {
		e, err := Game(d, records, dir)
		if err != nil {
			return nil, err
		}
		if rec, ok := progression[d.ID]; ok {
			k := series.NewKey(d.HomeTeam.ID, d.VisitorTeam.ID)
			e.SeriesAfterGame = &games.SeriesScore{
				VisitorWins: rec.WinsFor(k, d.VisitorTeam.ID),
				HomeWins:    rec.WinsFor(k, d.HomeTeam.ID),
			}
		}
		out = append(out, e)
	}
	return out, nil
}

func summary(ref games.TeamRef, dir *teams.Directory) (games.TeamSummary, error) {
	if dir == nil {
		return games.TeamSummary{ID: ref.ID, FullName: ref.FullName, Abbreviation: ref.Abbreviation}, nil
	}
	t, err := dir.Lookup(ref.ID)
	if err != nil {
		return games.TeamSummary{}, err
	}
	return games.TeamSummary{ID: t.ID, FullName: t.FullName, Abbreviation: t.Abbreviation}, nil
}
