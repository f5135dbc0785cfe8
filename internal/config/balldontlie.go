package config

import "time"

const (
	envBdlBaseURL  = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey   = "BALLDONTLIE_API_KEY"
	envBdlPerPage  = "BALLDONTLIE_PER_PAGE"
	envBdlMaxPages = "BALLDONTLIE_MAX_PAGES"
	envBdlRPM      = "BALLDONTLIE_REQUESTS_PER_MINUTE"
	envBdlTimeout  = "BALLDONTLIE_TIMEOUT"

	defaultBdlBaseURL  = "https://api.balldontlie.io/v1"
	defaultBdlPerPage  = 100
	defaultBdlMaxPages = 50
	// Free tier allows 5 req/min; raise it for paid keys. 0 disables pacing.
	defaultBdlRPM     = 5
	defaultBdlTimeout = 10 * time.Second
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL           string
	APIKey            string
	PerPage           int
	MaxPages          int
	RequestsPerMinute int
	Timeout           time.Duration
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL:           envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:            envOrDefault(envBdlAPIKey, ""),
		PerPage:           intEnvOrDefault(envBdlPerPage, defaultBdlPerPage),
		MaxPages:          intEnvOrDefault(envBdlMaxPages, defaultBdlMaxPages),
		RequestsPerMinute: intEnvOrDefault(envBdlRPM, defaultBdlRPM),
		Timeout:           durationEnvOrDefault(envBdlTimeout, defaultBdlTimeout),
	}
}
