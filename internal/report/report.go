// Package report renders enriched games as the plain-text console report.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
)

// Header is printed above the game list.
const Header = "Playoff Games with Scores in the Last Week:"

var rule = strings.Repeat("-", 50)

// Write prints games sorted by tip-off ascending. Each team shows its
// wins-losses against the opponent over the whole fetched season.
func Write(w io.Writer, list []games.Enriched) error {
	sorted := make([]games.Enriched, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PlayedAt.Equal(sorted[j].PlayedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].PlayedAt.Before(sorted[j].PlayedAt)
	})

	if _, err := fmt.Fprintf(w, "\n%s\n%s\n", Header, rule); err != nil {
		return err
	}
	for _, g := range sorted {
		if _, err := fmt.Fprintf(w, "%s: %s (%d-%d) @ %s (%d-%d)\nScore: %d-%d\n\n",
			g.Date,
			teamName(g.VisitorTeam), g.SeriesRecord.VisitorWins, g.SeriesRecord.HomeWins,
			teamName(g.HomeTeam), g.SeriesRecord.HomeWins, g.SeriesRecord.VisitorWins,
			g.VisitorTeamScore, g.HomeTeamScore,
		); err != nil {
			return err
		}
	}
	return nil
}

func teamName(t games.TeamSummary) string {
	switch {
	case t.FullName != "":
		return t.FullName
	case t.Abbreviation != "":
		return t.Abbreviation
	default:
		return fmt.Sprintf("Team %d", t.ID)
	}
}
