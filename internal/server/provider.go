package server

import (
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-playoffs-service/internal/config"
	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers/balldontlie"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.Upstream, error) {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New(), nil
	case config.ProviderBalldontlie, "":
		return balldontlie.NewClient(balldontlie.Config{
			BaseURL:           cfg.Balldontlie.BaseURL,
			APIKey:            cfg.Balldontlie.APIKey,
			Timeout:           cfg.Balldontlie.Timeout,
			RequestsPerMinute: cfg.Balldontlie.RequestsPerMinute,
			Logger:            logger,
			Metrics:           recorder,
		}), nil
	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
