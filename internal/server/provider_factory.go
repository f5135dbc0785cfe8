package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-playoffs-service/internal/app/playoffs"
	"github.com/preston-bernstein/nba-playoffs-service/internal/config"
	"github.com/preston-bernstein/nba-playoffs-service/internal/logging"
	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
)

// providerFactory assembles the upstream and the pipeline service around it.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns a service for cfg. An invalid configuration still yields a
// service; it reports the validation error from every call.
func (f providerFactory) build(cfg config.Config) *playoffs.Service {
	opts := playoffs.Options{
		PerPage:  cfg.Balldontlie.PerPage,
		MaxPages: cfg.Balldontlie.MaxPages,
		Window:   cfg.RecentWindow,
		Logger:   f.logger,
		Metrics:  f.metrics,
	}
	if err := cfg.Validate(); err != nil {
		return f.failing(opts, err)
	}

	upstream, err := selectProvider(cfg, f.logger, f.metrics)
	if err != nil {
		return f.failing(opts, err)
	}
	logging.Info(f.logger, "upstream selected", logging.FieldProvider, cfg.Provider)
	return playoffs.NewService(upstream, opts)
}

func (f providerFactory) failing(opts playoffs.Options, err error) *playoffs.Service {
	logging.Error(f.logger, "configuration invalid, every request will fail", err)
	opts.ConfigErr = err
	return playoffs.NewService(nil, opts)
}

// BuildService wires the configured upstream into a playoffs service. The
// console report uses it so both presentations share one wiring path.
func BuildService(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) *playoffs.Service {
	return newProviderFactory(logger, recorder).build(cfg)
}
