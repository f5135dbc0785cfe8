// Package pagination drains the cursor-paginated games endpoint into one slice.
package pagination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/logging"
	"github.com/preston-bernstein/nba-playoffs-service/internal/providers"
	"github.com/preston-bernstein/nba-playoffs-service/internal/timeutil"
	"github.com/preston-bernstein/nba-playoffs-service/internal/window"
)

// DefaultMaxPages bounds a single drain when no limit is configured.
const DefaultMaxPages = 50

var (
	// ErrRepeatedCursor means upstream handed back a cursor it already issued.
	ErrRepeatedCursor = errors.New("pagination: repeated cursor")
	// ErrPageLimit means the drain needed more than MaxPages requests.
	ErrPageLimit = errors.New("pagination: page limit exceeded")
	// ErrDuplicateGame means the same game id arrived on two pages.
	ErrDuplicateGame = errors.New("pagination: duplicate game id")
)

// Paginator fetches every page of a games query sequentially.
type Paginator struct {
	fetcher  providers.GamePageFetcher
	maxPages int
	logger   *slog.Logger
}

// New builds a Paginator. maxPages <= 0 uses DefaultMaxPages.
func New(fetcher providers.GamePageFetcher, maxPages int, logger *slog.Logger) *Paginator {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	return &Paginator{fetcher: fetcher, maxPages: maxPages, logger: logger}
}

// Season returns every postseason game of season in received order.
func (p *Paginator) Season(ctx context.Context, season, perPage int) ([]games.Game, error) {
	return p.drain(ctx, providers.GamesQuery{
		Seasons:    []int{season},
		Postseason: true,
		PerPage:    perPage,
	})
}

// Month returns every game dated inside the given calendar month (UTC).
func (p *Paginator) Month(ctx context.Context, year int, month time.Month, perPage int) ([]games.Game, error) {
	first, last := timeutil.MonthBounds(year, month)
	all, err := p.drain(ctx, providers.GamesQuery{
		PerPage:   perPage,
		StartDate: timeutil.FormatDate(first),
		EndDate:   timeutil.FormatDate(last),
	})
	if err != nil {
		return nil, err
	}

	dated, err := window.Date(all)
	if err != nil {
		return nil, err
	}
	out := make([]games.Game, 0, len(dated))
	for _, d := range dated {
		if d.PlayedAt.Year() == year && d.PlayedAt.Month() == month {
			out = append(out, d.Game)
		}
	}
	return out, nil
}

func (p *Paginator) drain(ctx context.Context, q providers.GamesQuery) ([]games.Game, error) {
	var (
		all    []games.Game
		seenID = make(map[int]struct{})
		seenCu = make(map[string]struct{})
	)
	for page := 1; ; page++ {
		if page > p.maxPages {
			return nil, fmt.Errorf("%w: more than %d pages", ErrPageLimit, p.maxPages)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := p.fetcher.FetchGamesPage(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("fetch games page %d: %w", page, err)
		}
		logging.Debug(p.logger, "fetched games page",
			logging.FieldPage, page,
			logging.FieldCount, len(res.Games),
		)

		for _, g := range res.Games {
			if _, dup := seenID[g.ID]; dup {
				return nil, fmt.Errorf("%w: %d on page %d", ErrDuplicateGame, g.ID, page)
			}
			seenID[g.ID] = struct{}{}
			all = append(all, g)
		}

		if res.NextCursor == nil {
			break
		}
		next := *res.NextCursor
		if _, repeated := seenCu[next]; repeated {
			return nil, fmt.Errorf("%w: %q after page %d", ErrRepeatedCursor, next, page)
		}
		seenCu[next] = struct{}{}
		q.Cursor = next
	}
	if all == nil {
		all = []games.Game{}
	}
	return all, nil
}
