package series

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/games"
)

func final(id, home, visitor, homeScore, visitorScore int) games.Game {
	return games.Game{
		ID:               id,
		Status:           games.StatusFinal,
		HomeTeam:         games.TeamRef{ID: home},
		VisitorTeam:      games.TeamRef{ID: visitor},
		HomeTeamScore:    homeScore,
		VisitorTeamScore: visitorScore,
	}
}

func TestNewKeyIsSymmetric(t *testing.T) {
	if NewKey(7, 1) != NewKey(1, 7) {
		t.Fatal("expected symmetric key")
	}
	if got := NewKey(7, 1).String(); got != "1-7" {
		t.Fatalf("expected 1-7, got %s", got)
	}
}

func TestAggregateCountsFinalGamesOnly(t *testing.T) {
	input := []games.Game{
		final(1, 1, 7, 110, 100), // 1 wins
		final(2, 7, 1, 99, 101),  // 1 wins
		final(3, 7, 1, 120, 90),  // 7 wins
		{ID: 4, Status: "2nd Qtr", HomeTeam: games.TeamRef{ID: 1}, VisitorTeam: games.TeamRef{ID: 7}, HomeTeamScore: 50, VisitorTeamScore: 40},
		final(5, 2, 3, 88, 80),
	}

	records, err := Aggregate(input)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(records))
	}
	r := records[NewKey(1, 7)]
	if r.LowWins != 2 || r.HighWins != 1 {
		t.Fatalf("expected 2-1 for 1-7, got %+v", r)
	}
	if r.LowWins+r.HighWins != 3 {
		t.Fatalf("expected wins to sum to the final games, got %+v", r)
	}

	a, b := records.Between(7, 1)
	if a != 1 || b != 2 {
		t.Fatalf("expected oriented 1-2, got %d-%d", a, b)
	}
	if a, b := records.Between(4, 5); a != 0 || b != 0 {
		t.Fatalf("expected unknown pair 0-0, got %d-%d", a, b)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	forward := []games.Game{final(1, 1, 7, 110, 100), final(2, 7, 1, 120, 90), final(3, 1, 7, 80, 90)}
	reversed := []games.Game{forward[2], forward[1], forward[0]}

	a, err := Aggregate(forward)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	b, err := Aggregate(reversed)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if a[NewKey(1, 7)] != b[NewKey(1, 7)] {
		t.Fatalf("expected same record regardless of order, got %+v vs %+v", a, b)
	}
}

func TestAggregateRejectsTiedFinal(t *testing.T) {
	_, err := Aggregate([]games.Game{final(1, 1, 7, 100, 90), final(9, 1, 7, 100, 100)})
	if !errors.Is(err, ErrTiedGame) {
		t.Fatalf("expected ErrTiedGame, got %v", err)
	}
	var te *TieError
	if !errors.As(err, &te) || te.GameID != 9 || te.Score != 100 {
		t.Fatalf("expected TieError for game 9, got %+v", err)
	}
}

func TestAggregateIgnoresTiedNonFinal(t *testing.T) {
	g := final(1, 1, 7, 0, 0)
	g.Status = "1st Qtr"
	records, err := Aggregate([]games.Game{g})
	if err != nil || len(records) != 0 {
		t.Fatalf("expected empty records, got %v %v", records, err)
	}
}

func TestWinsForOutsideTeam(t *testing.T) {
	k := NewKey(1, 7)
	r := Record{LowWins: 3, HighWins: 2}
	if r.WinsFor(k, 1) != 3 || r.WinsFor(k, 7) != 2 || r.WinsFor(k, 9) != 0 {
		t.Fatalf("unexpected wins for %+v", r)
	}
}

func TestProgressionRunsInDateOrder(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 5, d, 0, 0, 0, 0, time.UTC) }
	dated := []games.Dated{
		{Game: final(30, 7, 1, 120, 90), PlayedAt: day(3)},
		{Game: final(10, 1, 7, 110, 100), PlayedAt: day(1)},
		{Game: final(20, 7, 1, 99, 101), PlayedAt: day(2)},
		{Game: games.Game{ID: 40, Status: "Scheduled", HomeTeam: games.TeamRef{ID: 1}, VisitorTeam: games.TeamRef{ID: 7}}, PlayedAt: day(4)},
	}

	after, err := Progression(dated)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	want := map[int]Record{
		10: {LowWins: 1},
		20: {LowWins: 2},
		30: {LowWins: 2, HighWins: 1},
	}
	if len(after) != len(want) {
		t.Fatalf("expected %d snapshots, got %d", len(want), len(after))
	}
	for id, rec := range want {
		if after[id] != rec {
			t.Fatalf("game %d: expected %+v, got %+v", id, rec, after[id])
		}
	}
	if dated[0].ID != 30 {
		t.Fatal("expected input order untouched")
	}
}

func TestProgressionBreaksTimeTiesByID(t *testing.T) {
	at := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	dated := []games.Dated{
		{Game: final(2, 1, 7, 80, 90), PlayedAt: at},
		{Game: final(1, 1, 7, 110, 100), PlayedAt: at},
	}
	after, err := Progression(dated)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if after[1] != (Record{LowWins: 1}) || after[2] != (Record{LowWins: 1, HighWins: 1}) {
		t.Fatalf("unexpected progression %+v", after)
	}
}
