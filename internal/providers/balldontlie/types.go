package balldontlie

import (
	"bytes"
	"encoding/json"
	"strings"
)

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameResponse struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	Period           int          `json:"period"`
	Postseason       bool         `json:"postseason"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
	Season           int          `json:"season"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type teamsResponse struct {
	Data []teamResponse `json:"data"`
}

type standingResponse struct {
	Team             teamResponse `json:"team"`
	Season           int          `json:"season"`
	ConferenceRecord string       `json:"conference_record"`
	ConferenceRank   int          `json:"conference_rank"`
	DivisionRecord   string       `json:"division_record"`
	DivisionRank     int          `json:"division_rank"`
	Wins             int          `json:"wins"`
	Losses           int          `json:"losses"`
	HomeRecord       string       `json:"home_record"`
	RoadRecord       string       `json:"road_record"`
}

type standingsResponse struct {
	Data []standingResponse `json:"data"`
}

type metaResponse struct {
	NextCursor cursor `json:"next_cursor"`
	PerPage    int    `json:"per_page"`
}

// cursor accepts the numeric cursor balldontlie sends today as well as a string token.
// null, "", and 0 all mean there is no next page.
type cursor struct {
	value string
	set   bool
}

func (c *cursor) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		*c = cursor{}
		return nil
	}
	var s string
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		s = n.String()
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "0" {
		*c = cursor{}
		return nil
	}
	*c = cursor{value: s, set: true}
	return nil
}

// ptr returns nil when no next page exists.
func (c cursor) ptr() *string {
	if !c.set {
		return nil
	}
	v := c.value
	return &v
}
