package games

import "time"

// StatusFinal is the exact upstream status of a completed game.
const StatusFinal = "Final"

// TeamRef is the team stub embedded in an upstream game.
type TeamRef struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation,omitempty"`
	FullName     string `json:"full_name,omitempty"`
}

// Game is one upstream game snapshot. Values are never mutated after mapping.
type Game struct {
	ID               int     `json:"id"`
	Date             string  `json:"date"`
	Status           string  `json:"status"`
	Season           int     `json:"season"`
	Postseason       bool    `json:"postseason"`
	HomeTeam         TeamRef `json:"home_team"`
	VisitorTeam      TeamRef `json:"visitor_team"`
	HomeTeamScore    int     `json:"home_team_score"`
	VisitorTeamScore int     `json:"visitor_team_score"`
}

// IsFinal reports whether the game has completed.
func (g Game) IsFinal() bool {
	return g.Status == StatusFinal
}

// Dated pairs a game with its parsed tip-off instant (UTC).
type Dated struct {
	Game
	PlayedAt time.Time
}

// Page is one batch from the cursor-paginated games endpoint.
// NextCursor is nil on the final page.
type Page struct {
	Games      []Game
	NextCursor *string
}

// TeamSummary is the trimmed team shape used for display.
type TeamSummary struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

// SeriesScore is a head-to-head tally oriented to one game's home/visitor sides.
type SeriesScore struct {
	VisitorWins int `json:"visitor_wins"`
	HomeWins    int `json:"home_wins"`
}

// Enriched is a recent game annotated with its series record.
type Enriched struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	HomeTeam         TeamSummary  `json:"home_team"`
	VisitorTeam      TeamSummary  `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
	SeriesRecord     SeriesScore  `json:"series_record"`
	SeriesAfterGame  *SeriesScore `json:"series_after_game,omitempty"`
	PlayedAt         time.Time    `json:"-"`
}

// GamesResponse is the payload returned by /games.
type GamesResponse struct {
	Season int    `json:"season,omitempty"`
	Month  string `json:"month,omitempty"`
	Count  int    `json:"count"`
	Games  []Game `json:"games"`
}

// RecentResponse is the payload returned by /recent-games.
type RecentResponse struct {
	Season    int        `json:"season"`
	Reference string     `json:"reference"`
	Count     int        `json:"count"`
	Games     []Enriched `json:"games"`
}
