package service

import (
	"fmt"

	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/internal/domain/stats"
	"github.com/okian/ipldash/internal/domain/types"
)

// Board names a ranked aggregation served by Board and Rank.
type Board string

// Boards.
const (
	BoardBatters       Board = "batters"
	BoardBowlers       Board = "bowlers"
	BoardAwards        Board = "awards"
	BoardTeamWins      Board = "team-wins"
	BoardVenues        Board = "venues"
	BoardCities        Board = "cities"
	BoardSeasonMatches Board = "season-matches"
	BoardSeasonRuns    Board = "season-runs"
	BoardResults       Board = "results"
	BoardDismissals    Board = "dismissals"
	BoardToss          Board = "toss"
)

var boardOrder = []Board{
	BoardBatters, BoardBowlers, BoardAwards, BoardTeamWins, BoardVenues, BoardCities,
	BoardSeasonMatches, BoardSeasonRuns, BoardResults, BoardDismissals, BoardToss,
}

type boardDef struct {
	title   string
	compute func(*model.Dataset) []types.Entry
}

var boardDefs = map[Board]boardDef{
	BoardBatters:       {"Top run scorers", stats.RunScorers},
	BoardBowlers:       {"Top wicket takers", stats.WicketTakers},
	BoardAwards:        {"Player of the match awards", stats.PlayerOfMatch},
	BoardTeamWins:      {"Wins by team", stats.TeamWins},
	BoardVenues:        {"Matches by venue", stats.VenueMatches},
	BoardCities:        {"Matches by city", stats.CityMatches},
	BoardSeasonMatches: {"Matches per season", stats.MatchesPerSeason},
	BoardSeasonRuns:    {"Runs per season", stats.RunsPerSeason},
	BoardResults:       {"Result types", stats.ResultTypes},
	BoardDismissals:    {"Dismissal kinds", stats.DismissalKinds},
	BoardToss:          {"Toss winner won the match", stats.TossImpact},
}

// Boards lists every board in display order.
func Boards() []Board {
	out := make([]Board, len(boardOrder))
	copy(out, boardOrder)
	return out
}

// ParseBoard validates a board name.
func ParseBoard(name string) (Board, error) {
	b := Board(name)
	if _, ok := boardDefs[b]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBoard, name)
	}
	return b, nil
}

// Title is the human readable board name.
func (b Board) Title() string {
	return boardDefs[b].title
}
