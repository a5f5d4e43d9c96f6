package models

// TeamMatch is an OPEN team scored against the signed-in user's skills.
type TeamMatch struct {
	Team                  Team     `json:"team"`
	Score                 int      `json:"score" example:"175"`
	ExactPrimaryMatches   []string `json:"exactPrimaryMatches"`
	ExactSecondaryMatches []string `json:"exactSecondaryMatches"`
	FuzzyMatches          []string `json:"fuzzyMatches"`
}

// MatchListResponse is the response for the top-matches endpoint.
type MatchListResponse struct {
	Items []TeamMatch `json:"items"`
}

// CandidateMatch is a free agent scored against a recruiting team's needs.
type CandidateMatch struct {
	User  UserSummary `json:"user"`
	Score int         `json:"score" example:"130"`
}

// CandidateListResponse is the response for the candidate-feed endpoint.
type CandidateListResponse struct {
	Items []CandidateMatch `json:"items"`
}
