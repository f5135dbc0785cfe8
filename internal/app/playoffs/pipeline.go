package playoffs

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/enrich"
	"github.com/preston-bernstein/nba-playoffs-service/internal/series"
	"github.com/preston-bernstein/nba-playoffs-service/internal/window"
)

// Input is everything one pipeline run needs. A nil Teams slice produces
// id-only team summaries.
type Input struct {
	Games     []games.Game
	Teams     []teams.Team
	Reference time.Time
	Window    time.Duration
}

// Run turns a fully drained game set into enriched recent games.
// It performs no I/O.
func Run(in Input) ([]games.Enriched, error) {
	dated, err := window.Date(in.Games)
	if err != nil {
		return nil, fmt.Errorf("parse dates: %w", err)
	}
	records, err := series.Aggregate(in.Games)
	if err != nil {
		return nil, fmt.Errorf("aggregate series: %w", err)
	}
	progression, err := series.Progression(dated)
	if err != nil {
		return nil, fmt.Errorf("series progression: %w", err)
	}

	recent := window.Recent(dated, in.Reference, in.Window)

	var dir *teams.Directory
	if in.Teams != nil {
		dir = teams.NewDirectory(in.Teams)
	}
	out, err := enrich.All(recent, records, progression, dir)
	if err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}
	return out, nil
}
