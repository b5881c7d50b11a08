// Package model contains the match and delivery records shared between layers.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Fill values applied to missing match fields.
const (
	NoResult = "No Result"
	Unknown  = "Unknown"
)

// ResultType classifies how a match ended.
type ResultType int

// Result types.
const (
	ResultNormal ResultType = iota
	ResultTie
	ResultNoResult
)

// String returns the result type name.
func (r ResultType) String() string {
	switch r {
	case ResultTie:
		return "tie"
	case ResultNoResult:
		return "no result"
	default:
		return "normal"
	}
}

// ClassifyResult maps a raw result label and winner to a ResultType.
func ClassifyResult(label, winner string) ResultType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "tie":
		return ResultTie
	case "no result":
		return ResultNoResult
	}
	if winner == "" || winner == NoResult {
		return ResultNoResult
	}
	return ResultNormal
}

// SeasonSource selects how a match season is derived.
type SeasonSource string

// Season sources.
const (
	// SeasonFromField uses the season column verbatim, e.g. "2007/08".
	SeasonFromField SeasonSource = "field"
	// SeasonFromDate uses the calendar year of the match date.
	SeasonFromDate SeasonSource = "date"
)

// ParseSeasonSource validates s.
func ParseSeasonSource(s string) (SeasonSource, error) {
	switch SeasonSource(strings.ToLower(strings.TrimSpace(s))) {
	case SeasonFromField:
		return SeasonFromField, nil
	case SeasonFromDate:
		return SeasonFromDate, nil
	}
	return "", fmt.Errorf("unknown season source %q", s)
}

// Match is one completed fixture.
type Match struct {
	ID            int
	Season        string
	Date          time.Time
	Venue         string
	City          string
	Team1         string
	Team2         string
	TossWinner    string
	TossDecision  string
	Winner        string
	Result        ResultType
	ResultLabel   string  // raw label: runs, wickets, tie, no result
	Margin        float64 // zero when absent
	PlayerOfMatch string
}

// HasWinner reports whether the match produced a winner.
func (m Match) HasWinner() bool {
	return m.Winner != "" && m.Winner != NoResult
}

// Involves reports whether team played in the match.
func (m Match) Involves(team string) bool {
	return team != "" && (m.Team1 == team || m.Team2 == team)
}

// Delivery is one ball bowled.
type Delivery struct {
	MatchID         int
	Season          string // joined from the match; empty for orphans
	Inning          int
	Over            int
	Ball            int
	BattingTeam     string
	BowlingTeam     string
	Batter          string
	Bowler          string
	BatterRuns      int
	ExtraRuns       int
	TotalRuns       int
	ExtrasType      string
	IsWicket        bool
	DismissalKind   string
	PlayerDismissed string
	Fielder         string
}
