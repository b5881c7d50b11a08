package sample

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/ipldash/internal/domain/model"
)

// File names written by WriteCSV.
const (
	MatchesFile    = "matches.csv"
	DeliveriesFile = "deliveries.csv"
)

const na = "NA"

// MatchHeader and DeliveryHeader are the column orders written by WriteCSV.
var (
	MatchHeader = []string{
		"id", "season", "city", "date", "player_of_match", "venue", "team1", "team2",
		"toss_winner", "toss_decision", "winner", "result", "result_margin",
	}
	DeliveryHeader = []string{
		"match_id", "inning", "batting_team", "bowling_team", "over", "ball", "batter", "bowler",
		"batsman_runs", "extra_runs", "total_runs", "extras_type", "is_wicket",
		"player_dismissed", "dismissal_kind", "fielder",
	}
)

// WriteCSV writes both tables into dir and returns the two file paths.
// Fill values (Unknown city, No Result winner) are written back as NA.
func WriteCSV(dir string, matches []model.Match, deliveries []model.Delivery) (string, string, error) {
	matchesPath := filepath.Join(dir, MatchesFile)
	deliveriesPath := filepath.Join(dir, DeliveriesFile)

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, matchRow(m))
	}
	if err := writeFile(matchesPath, MatchHeader, rows); err != nil {
		return "", "", err
	}

	rows = make([][]string, 0, len(deliveries))
	for _, d := range deliveries {
		rows = append(rows, deliveryRow(d))
	}
	if err := writeFile(deliveriesPath, DeliveryHeader, rows); err != nil {
		return "", "", err
	}

	return matchesPath, deliveriesPath, nil
}

func writeFile(path string, header []string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func matchRow(m model.Match) []string {
	margin := na
	if m.Margin != 0 {
		margin = strconv.FormatFloat(m.Margin, 'f', -1, 64)
	}
	return []string{
		strconv.Itoa(m.ID),
		m.Season,
		orNA(m.City, model.Unknown),
		m.Date.Format("2006-01-02"),
		orNA(m.PlayerOfMatch, model.Unknown),
		m.Venue,
		m.Team1,
		m.Team2,
		m.TossWinner,
		m.TossDecision,
		orNA(m.Winner, model.NoResult),
		m.ResultLabel,
		margin,
	}
}

func deliveryRow(d model.Delivery) []string {
	wicket := "0"
	if d.IsWicket {
		wicket = "1"
	}
	return []string{
		strconv.Itoa(d.MatchID),
		strconv.Itoa(d.Inning),
		d.BattingTeam,
		d.BowlingTeam,
		strconv.Itoa(d.Over),
		strconv.Itoa(d.Ball),
		d.Batter,
		d.Bowler,
		strconv.Itoa(d.BatterRuns),
		strconv.Itoa(d.ExtraRuns),
		strconv.Itoa(d.TotalRuns),
		orNA(d.ExtrasType, ""),
		wicket,
		orNA(d.PlayerDismissed, ""),
		orNA(d.DismissalKind, ""),
		orNA(d.Fielder, ""),
	}
}

func orNA(v, fill string) string {
	if v == "" || v == fill {
		return na
	}
	return v
}
