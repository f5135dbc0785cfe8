// Command playoffs prints the last week of completed playoff games with each
// matchup's series record.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/config"
	"github.com/preston-bernstein/nba-playoffs-service/internal/logging"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
	"github.com/preston-bernstein/nba-playoffs-service/internal/report"
	"github.com/preston-bernstein/nba-playoffs-service/internal/server"
)

const appVersion = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	dotenvErr := config.LoadDotenv()
	cfg := config.Load()

	fs := flag.NewFlagSet("playoffs", flag.ContinueOnError)
	fs.SetOutput(stderr)
	season := fs.Int("season", cfg.Season, "postseason year to report")
	days := fs.Int("days", int(cfg.RecentWindow/(24*time.Hour)), "trailing window in days")
	provider := fs.String("provider", cfg.Provider, "upstream provider (balldontlie or fixture)")
	logLevel := fs.String("log-level", "warn", "log level written to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(*provider))
	if *days > 0 {
		cfg.RecentWindow = time.Duration(*days) * 24 * time.Hour
	}

	logger := logging.NewLogger(logging.Config{
		Level:   *logLevel,
		Format:  cfg.Logging.Format,
		Service: "playoffs",
		Version: appVersion,
		Output:  stderr,
	})
	if dotenvErr != nil {
		logger.Warn("failed to read .env", "error", dotenvErr)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(stdout, "Please create a .env file with your API key: BALLDONTLIE_API_KEY=your_api_key_here")
		}
		return 1
	}

	svc := server.BuildService(cfg, logger, nil)
	resp, err := svc.RecentGames(ctx, *season)
	if err != nil {
		if isUpstreamError(err) {
			fmt.Fprintf(stdout, "Error making API request: %v\n", err)
		} else {
			fmt.Fprintf(stdout, "An error occurred: %v\n", err)
		}
		return 1
	}

	if err := report.Write(stdout, resp.Games); err != nil {
		fmt.Fprintf(stderr, "write report: %v\n", err)
		return 1
	}
	return 0
}

func isUpstreamError(err error) bool {
	if _, ok := providers.AsStatusError(err); ok {
		return true
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
