package model

// FundraisingSnapshot is the raw extraction result from one scrape of the
// fundraising page. The shape mirrors what the frontend already consumes.
type FundraisingSnapshot struct {
	PageLength         int      `json:"pageLength"`
	DollarAmounts      []string `json:"dollarAmountsFound"`
	GrassrootzURLs     []string `json:"grassrootzUrls"`
	DataAttributes     []string `json:"dataAttributes"`
	TeamMentions       []string `json:"wwpdMentions"`
	HasLeaderboard     bool     `json:"hasLeaderboard"`
	LeaderboardSnippet string   `json:"leaderboardSnippet,omitempty"`
}
