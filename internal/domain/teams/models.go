package teams

// Team is a franchise as returned by the upstream /teams endpoint.
type Team struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}

// ListResponse is the payload returned by /teams.
type ListResponse struct {
	Count int    `json:"count"`
	Teams []Team `json:"teams"`
}
