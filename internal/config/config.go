package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey is returned by Validate when the balldontlie provider is
// selected without a credential.
var ErrMissingAPIKey = errors.New("BALLDONTLIE_API_KEY not found in environment variables")

// ErrUnknownProvider is returned by Validate when PROVIDER names no known upstream.
var ErrUnknownProvider = errors.New("unknown provider")

// Config holds runtime configuration for the server and the console report.
type Config struct {
	Port         string
	Provider     string
	Season       int
	RecentWindow Duration
	CORSOrigins  []string
	Balldontlie  BalldontlieConfig
	Metrics      MetricsConfig
	Logging      LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Provider:     strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		Season:       intEnvOrDefault(envSeason, defaultSeason),
		RecentWindow: durationEnvOrDefault(envRecentWindow, defaultRecentWindow),
		CORSOrigins:  listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		Balldontlie:  loadBalldontlie(),
		Metrics:      loadMetrics(),
		Logging:      loadLogging(),
	}
}

// LoadDotenv merges variables from the given .env files (default ".env") into
// the process environment. Existing variables win. A missing file is not an error.
func LoadDotenv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Validate reports configuration that makes the pipeline unusable.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderFixture:
		return nil
	case ProviderBalldontlie, "":
		if c.Balldontlie.APIKey == "" {
			return ErrMissingAPIKey
		}
		return nil
	default:
		return fmt.Errorf("%w %q (want %s or %s)", ErrUnknownProvider, c.Provider, ProviderBalldontlie, ProviderFixture)
	}
}
