// Package window selects completed games inside a trailing time window.
package window

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
	"github.com/preston-bernstein/nba-playoffs-service/internal/timeutil"
)

// DefaultSpan is the trailing window used when none is configured.
const DefaultSpan = 7 * 24 * time.Hour

// Layouts are tried in order. RFC3339 covers the offset form newer
// balldontlie responses use.
var layouts = []string{
	timeutil.TimestampLayout,
	time.RFC3339,
	timeutil.DateLayout,
}

// DateError reports a game date that matched none of the known layouts.
type DateError struct {
	GameID int
	Value  string
}

func (e *DateError) Error() string {
	return fmt.Sprintf("game %d: unrecognized date %q", e.GameID, e.Value)
}

// Parse converts an upstream game date into a UTC instant.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, &DateError{Value: value}
}

// Date parses every game's date. The first unparseable date aborts.
func Date(all []games.Game) ([]games.Dated, error) {
	out := make([]games.Dated, 0, len(all))
	for _, g := range all {
		at, err := Parse(g.Date)
		if err != nil {
			return nil, &DateError{GameID: g.ID, Value: g.Date}
		}
		out = append(out, games.Dated{Game: g, PlayedAt: at})
	}
	return out, nil
}

// Recent keeps Final games played within [ref-span, ref], both ends inclusive.
// Input order is preserved. A non-positive span uses DefaultSpan.
func Recent(dated []games.Dated, ref time.Time, span time.Duration) []games.Dated {
	if span <= 0 {
		span = DefaultSpan
	}
	ref = ref.UTC()
	from := ref.Add(-span)

	out := make([]games.Dated, 0)
	for _, d := range dated {
		if !d.IsFinal() {
			continue
		}
		if d.PlayedAt.Before(from) || d.PlayedAt.After(ref) {
			continue
		}
		out = append(out, d)
	}
	return out
}
