package loader

import (
	"slices"
	"strings"
)

// Column names after header normalisation.
const (
	colID            = "id"
	colSeason        = "season"
	colCity          = "city"
	colDate          = "date"
	colPlayerOfMatch = "player_of_match"
	colVenue         = "venue"
	colTeam1         = "team1"
	colTeam2         = "team2"
	colTossWinner    = "toss_winner"
	colTossDecision  = "toss_decision"
	colWinner        = "winner"
	colResult        = "result"
	colResultMargin  = "result_margin"

	colMatchID         = "match_id"
	colInning          = "inning"
	colOver            = "over"
	colBall            = "ball"
	colBattingTeam     = "batting_team"
	colBowlingTeam     = "bowling_team"
	colBatter          = "batter"
	colBowler          = "bowler"
	colBatsmanRuns     = "batsman_runs"
	colExtraRuns       = "extra_runs"
	colTotalRuns       = "total_runs"
	colExtrasType      = "extras_type"
	colIsWicket        = "is_wicket"
	colDismissalKind   = "dismissal_kind"
	colPlayerDismissed = "player_dismissed"
	colFielder         = "fielder"
)

var (
	matchColumns = []string{
		colID, colDate, colVenue, colTeam1, colTeam2,
		colTossWinner, colTossDecision, colWinner, colResult,
	}
	deliveryColumns = []string{
		colMatchID, colInning, colOver, colBall, colBattingTeam, colBowlingTeam,
		colBatter, colBowler, colBatsmanRuns, colTotalRuns,
	}

	// older exports of the deliveries table
	deliveryAliases = map[string]string{
		"batsman": colBatter,
		"innings": colInning,
	}

	// cells read as missing values
	naValues = []string{"", "NA", "NaN", "nan", "null", "None"}

	dateLayouts = []string{"2006-01-02", "2006/01/02", "02/01/2006", "02-01-2006"}
)

// indexHeader maps normalised column names to their position. The first
// occurrence wins and an alias only applies when its canonical name is absent.
func indexHeader(header []string, aliases map[string]string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeColumn(h)
		if _, ok := cols[name]; !ok {
			cols[name] = i
		}
	}
	for alias, canonical := range aliases {
		if _, ok := cols[canonical]; ok {
			continue
		}
		if i, ok := cols[alias]; ok {
			cols[canonical] = i
		}
	}
	return cols
}

func normalizeColumn(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func isMissing(v string) bool {
	return slices.Contains(naValues, v)
}
