// Package series derives head-to-head win tallies from completed games.
package series

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
)

// ErrTiedGame is matched by TieError.
var ErrTiedGame = errors.New("final game ended in a tie")

// TieError reports a Final game with equal scores. No winner can be credited.
type TieError struct {
	GameID int
	Score  int
}

func (e *TieError) Error() string {
	return fmt.Sprintf("game %d: final score tied at %d", e.GameID, e.Score)
}

func (e *TieError) Is(target error) bool {
	return target == ErrTiedGame
}

// Key identifies an unordered team pair. Low is always the smaller id.
type Key struct {
	Low  int
	High int
}

// NewKey builds the same key for (a, b) and (b, a).
func NewKey(a, b int) Key {
	if a > b {
		a, b = b, a
	}
	return Key{Low: a, High: b}
}

func (k Key) String() string {
	return strconv.Itoa(k.Low) + "-" + strconv.Itoa(k.High)
}

// Record counts wins for each side of a Key.
type Record struct {
	LowWins  int
	HighWins int
}

// WinsFor returns the wins credited to teamID under key k.
// A team outside the key has no wins.
func (r Record) WinsFor(k Key, teamID int) int {
	switch teamID {
	case k.Low:
		return r.LowWins
	case k.High:
		return r.HighWins
	default:
		return 0
	}
}

func (r Record) credit(k Key, winner int) Record {
	if winner == k.Low {
		r.LowWins++
	} else {
		r.HighWins++
	}
	return r
}

// Records maps each pair to its tally. Pairs that never finished a game are absent.
type Records map[Key]Record

// Between returns (wins of a, wins of b). Unknown pairs report 0-0.
func (rs Records) Between(a, b int) (int, int) {
	k := NewKey(a, b)
	r := rs[k]
	return r.WinsFor(k, a), r.WinsFor(k, b)
}

// Aggregate folds every Final game into per-pair records. Non-final games are
// skipped. A tied Final game aborts with a *TieError.
func Aggregate(all []games.Game) (Records, error) {
	records := make(Records)
	for _, g := range all {
		if !g.IsFinal() {
			continue
		}
		k, winner, err := decide(g)
		if err != nil {
			return nil, err
		}
		records[k] = records[k].credit(k, winner)
	}
	return records, nil
}

// Progression replays Final games in (PlayedAt, ID) order and returns the
// pair's record immediately after each one, keyed by game id.
// The input slice is not reordered.
func Progression(dated []games.Dated) (map[int]Record, error) {
	ordered := make([]games.Dated, len(dated))
	copy(ordered, dated)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].PlayedAt.Equal(ordered[j].PlayedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].PlayedAt.Before(ordered[j].PlayedAt)
	})

	running := make(Records)
	after := make(map[int]Record)
	for _, d := range ordered {
		if !d.IsFinal() {
			continue
		}
		k, winner, err := decide(d.Game)
		if err != nil {
			return nil, err
		}
		running[k] = running[k].credit(k, winner)
		after[d.ID] = running[k]
	}
	return after, nil
}

func decide(g games.Game) (Key, int, error) {
	home, visitor := g.HomeTeam.ID, g.VisitorTeam.ID
	k := NewKey(home, visitor)
	switch {
	case g.HomeTeamScore > g.VisitorTeamScore:
		return k, home, nil
	case g.VisitorTeamScore > g.HomeTeamScore:
		return k, visitor, nil
	default:
		return k, 0, &TieError{GameID: g.ID, Score: g.HomeTeamScore}
	}
}
