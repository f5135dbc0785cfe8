package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-playoffs-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-playoffs-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-playoffs-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-playoffs-service/internal/metrics"
)

// RouterOptions carries the cross-cutting dependencies of the router.
type RouterOptions struct {
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the read-only playoff routes on a chi router.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	origins := opts.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(opts.Logger, opts.Metrics))
	r.Use(h.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Get("/teams", h.Teams)
	r.Get("/games", h.Games)
	r.Get("/recent-games", h.RecentGames)
	r.Get("/standings", h.Standings)
	return r
}
