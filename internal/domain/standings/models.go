package standings

import "github.com/preston-bernstein/nba-playoffs-service/internal/domain/teams"

// Standing is one team's regular-season line from the upstream /standings endpoint.
type Standing struct {
	Team             teams.Team `json:"team"`
	Season           int        `json:"season"`
	ConferenceRecord string     `json:"conference_record"`
	ConferenceRank   int        `json:"conference_rank"`
	DivisionRecord   string     `json:"division_record"`
	DivisionRank     int        `json:"division_rank"`
	Wins             int        `json:"wins"`
	Losses           int        `json:"losses"`
	HomeRecord       string     `json:"home_record"`
	RoadRecord       string     `json:"road_record"`
}

// Response is the payload returned by /standings.
type Response struct {
	Season    int        `json:"season"`
	Count     int        `json:"count"`
	Standings []Standing `json:"standings"`
}
