package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-playoffs-service/internal/logging"
	"github.com/preston-bernstein/nba-playoffs-service/internal/timeutil"
)

// Service is the pipeline surface the handlers depend on.
type Service interface {
	RecentGames(ctx context.Context, season int) (games.RecentResponse, error)
	Teams(ctx context.Context) ([]teams.Team, error)
	Games(ctx context.Context, season int) ([]games.Game, error)
	MonthGames(ctx context.Context, year int, month time.Month) ([]games.Game, error)
	Standings(ctx context.Context, season int) ([]standings.Standing, error)
}

// Info describes the running service for the status route.
type Info struct {
	Service string
	Version string
	Season  int
}

// Handler wires HTTP routes to the playoffs service.
type Handler struct {
	svc    Service
	info   Info
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc Service, info Info, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, info: info, logger: logger}
}

type statusResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Season  int    `json:"season"`
}

// Root reports service identity and the default season.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Service: h.info.Service,
		Version: h.info.Version,
		Season:  h.info.Season,
	}, h.logger)
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Teams passes through the upstream team list.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Teams(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, teams.ListResponse{Count: len(list), Teams: list}, h.logger)
}

// Games returns every postseason game for ?season=, or every game of ?month=YYYY-MM.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	if month := r.URL.Query().Get("month"); month != "" {
		h.monthGames(w, r, month)
		return
	}
	season, err := seasonParam(r, h.info.Season)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.svc.Games(r.Context(), season)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games.GamesResponse{Season: season, Count: len(list), Games: list}, h.logger)
}

func (h *Handler) monthGames(w http.ResponseWriter, r *http.Request, raw string) {
	year, month, err := timeutil.ParseMonth(raw)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.svc.MonthGames(r.Context(), year, month)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games.GamesResponse{Month: raw, Count: len(list), Games: list}, h.logger)
}

// RecentGames returns the enriched trailing-window view.
func (h *Handler) RecentGames(w http.ResponseWriter, r *http.Request) {
	season, err := seasonParam(r, h.info.Season)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	resp, err := h.svc.RecentGames(r.Context(), season)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served recent games",
		logging.FieldSeason, season,
		logging.FieldCount, resp.Count,
	)
	writeJSON(w, http.StatusOK, resp, h.logger)
}

// Standings passes through the upstream standings for ?season=.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	season, err := seasonParam(r, h.info.Season)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.svc.Standings(r.Context(), season)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, standings.Response{Season: season, Count: len(list), Standings: list}, h.logger)
}

// NotFound answers unknown routes in the JSON error shape.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// fail reports any pipeline failure as a 500, whatever stage produced it.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	logging.Error(loggerFromContext(r, h.logger), "request failed", err, logging.FieldPath, r.URL.Path)
	writeError(w, r, http.StatusInternalServerError, err.Error(), h.logger)
}
