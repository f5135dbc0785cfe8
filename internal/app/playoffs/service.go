// Package playoffs runs the postseason pipeline against an upstream.
package playoffs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/logging"
	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
	"github.com/preston-bernstein/nba-playoffs-service/internal/pagination"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
)

// Options configures a Service. Zero values fall back to package defaults.
type Options struct {
	PerPage   int
	MaxPages  int
	Window    time.Duration
	Now       func() time.Time
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	ConfigErr error
}

// Service fetches fresh upstream data for every call. Nothing is cached.
type Service struct {
	upstream  providers.Upstream
	paginator *pagination.Paginator
	perPage   int
	window    time.Duration
	now       func() time.Time
	logger    *slog.Logger
	metrics   *metrics.Recorder
	configErr error
}

// NewService constructs a Service. When opts.ConfigErr is set every method
// returns it without touching upstream.
func NewService(upstream providers.Upstream, opts Options) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	var pager *pagination.Paginator
	if upstream != nil {
		pager = pagination.New(upstream, opts.MaxPages, opts.Logger)
	}
	return &Service{
		upstream:  upstream,
		paginator: pager,
		perPage:   opts.PerPage,
		window:    opts.Window,
		now:       now,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		configErr: opts.ConfigErr,
	}
}

// RecentGames runs the full pipeline for season against the current time.
func (s *Service) RecentGames(ctx context.Context, season int) (games.RecentResponse, error) {
	if err := s.ready(); err != nil {
		return games.RecentResponse{}, err
	}
	start := time.Now()
	ref := s.now().UTC()

	out, err := s.recent(ctx, season, ref)
	s.metrics.RecordPipelineRun(time.Since(start), len(out), err)
	if err != nil {
		logging.Error(s.logger, "pipeline run failed", err, logging.FieldSeason, season)
		return games.RecentResponse{}, err
	}
	logging.Info(s.logger, "pipeline run completed",
		logging.FieldSeason, season,
		logging.FieldCount, len(out),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return games.RecentResponse{
		Season:    season,
		Reference: ref.Format(time.RFC3339),
		Count:     len(out),
		Games:     out,
	}, nil
}

func (s *Service) recent(ctx context.Context, season int, ref time.Time) ([]games.Enriched, error) {
	teamList, err := s.upstream.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	all, err := s.paginator.Season(ctx, season, s.perPage)
	if err != nil {
		return nil, fmt.Errorf("fetch season %d games: %w", season, err)
	}
	return Run(Input{
		Games:     all,
		Teams:     teamList,
		Reference: ref,
		Window:    s.window,
	})
}

// Teams returns the upstream team list.
func (s *Service) Teams(ctx context.Context) ([]teams.Team, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out, err := s.upstream.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch teams: %w", err)
	}
	return out, nil
}

// Games returns every postseason game of season.
func (s *Service) Games(ctx context.Context, season int) ([]games.Game, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out, err := s.paginator.Season(ctx, season, s.perPage)
	if err != nil {
		return nil, fmt.Errorf("fetch season %d games: %w", season, err)
	}
	return out, nil
}

// MonthGames returns every game played in the given month.
func (s *Service) MonthGames(ctx context.Context, year int, month time.Month) ([]games.Game, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out, err := s.paginator.Month(ctx, year, month, s.perPage)
	if err != nil {
		return nil, fmt.Errorf("fetch games for %d-%02d: %w", year, int(month), err)
	}
	return out, nil
}

// Standings returns the upstream standings for season.
func (s *Service) Standings(ctx context.Context, season int) ([]standings.Standing, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	out, err := s.upstream.FetchStandings(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("fetch standings: %w", err)
	}
	return out, nil
}

func (s *Service) ready() error {
	if s == nil {
		return errNoUpstream
	}
	if s.configErr != nil {
		return s.configErr
	}
	if s.upstream == nil {
		return errNoUpstream
	}
	return nil
}
