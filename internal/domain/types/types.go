// Package types contains common types used across the application
package types

// Entry is one row of an ordered aggregation result.
type Entry struct {
	Rank     int     `json:"rank"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// TeamRecord summarises a team's fixtures.
type TeamRecord struct {
	Team    string  `json:"team"`
	Matches int     `json:"matches"`
	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"` // wins / matches, in [0,1]
}
