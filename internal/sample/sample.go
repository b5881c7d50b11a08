// Package sample provides small and synthetic datasets for tests, demos
// and the report CLI.
package sample

import (
	"time"

	"github.com/okian/ipldash/internal/domain/model"
)

// Team names used by Tiny.
const (
	MumbaiIndians   = "Mumbai Indians"
	ChennaiKings    = "Chennai Super Kings"
	KolkataRiders   = "Kolkata Knight Riders"
	WankhedeStadium = "Wankhede Stadium"
	ChepaukStadium  = "MA Chidambaram Stadium"
)

// Tiny returns three matches across two seasons and ten deliveries whose
// total runs sum to 10 (nine in 2008, one in 2009). The third match has no
// result.
func Tiny() ([]model.Match, []model.Delivery) {
	matches := []model.Match{
		{
			ID: 1, Season: "2008", Date: day(2008, time.April, 20),
			Venue: WankhedeStadium, City: "Mumbai",
			Team1: MumbaiIndians, Team2: ChennaiKings,
			TossWinner: MumbaiIndians, TossDecision: "bat",
			Winner: MumbaiIndians, Result: model.ResultNormal, ResultLabel: "runs", Margin: 1,
			PlayerOfMatch: "SR Tendulkar",
		},
		{
			ID: 2, Season: "2008", Date: day(2008, time.May, 3),
			Venue: ChepaukStadium, City: model.Unknown,
			Team1: ChennaiKings, Team2: KolkataRiders,
			TossWinner: KolkataRiders, TossDecision: "field",
			Winner: ChennaiKings, Result: model.ResultNormal, ResultLabel: "wickets", Margin: 9,
			PlayerOfMatch: "MS Dhoni",
		},
		{
			ID: 3, Season: "2009", Date: day(2009, time.April, 25),
			Venue: WankhedeStadium, City: "Mumbai",
			Team1: MumbaiIndians, Team2: KolkataRiders,
			TossWinner: MumbaiIndians, TossDecision: "bat",
			Winner: model.NoResult, Result: model.ResultNoResult, ResultLabel: "no result",
			PlayerOfMatch: model.Unknown,
		},
	}

	deliveries := []model.Delivery{
		ball(1, 1, 1, 1, MumbaiIndians, ChennaiKings, "RG Sharma", "DL Chahar", 1, 0, ""),
		ball(1, 1, 1, 2, MumbaiIndians, ChennaiKings, "RG Sharma", "DL Chahar", 0, 1, "wides"),
		wicket(ball(1, 1, 1, 3, MumbaiIndians, ChennaiKings, "SR Tendulkar", "DL Chahar", 0, 0, ""),
			"caught", "SR Tendulkar", "MS Dhoni"),
		ball(1, 2, 1, 1, ChennaiKings, MumbaiIndians, "MS Dhoni", "JJ Bumrah", 4, 0, ""),
		ball(2, 1, 1, 1, ChennaiKings, KolkataRiders, "MS Dhoni", "SP Narine", 2, 0, ""),
		wicket(ball(2, 1, 1, 2, ChennaiKings, KolkataRiders, "MS Dhoni", "SP Narine", 0, 0, ""),
			"run out", "MS Dhoni", "AD Russell"),
		ball(2, 2, 1, 1, KolkataRiders, ChennaiKings, "AD Russell", "DL Chahar", 1, 0, ""),
		wicket(ball(3, 1, 1, 1, MumbaiIndians, KolkataRiders, "RG Sharma", "SP Narine", 0, 0, ""),
			"bowled", "RG Sharma", ""),
		ball(3, 1, 1, 2, MumbaiIndians, KolkataRiders, "SR Tendulkar", "SP Narine", 1, 0, ""),
		ball(3, 1, 1, 3, MumbaiIndians, KolkataRiders, "SR Tendulkar", "SP Narine", 0, 0, ""),
	}

	return matches, deliveries
}

// TinyDataset wraps Tiny in a Dataset.
func TinyDataset() *model.Dataset {
	return model.NewDataset(Tiny())
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ball(matchID, inning, over, n int, batting, bowling, batter, bowler string, runs, extras int, extrasType string) model.Delivery {
	return model.Delivery{
		MatchID:     matchID,
		Inning:      inning,
		Over:        over,
		Ball:        n,
		BattingTeam: batting,
		BowlingTeam: bowling,
		Batter:      batter,
		Bowler:      bowler,
		BatterRuns:  runs,
		ExtraRuns:   extras,
		TotalRuns:   runs + extras,
		ExtrasType:  extrasType,
	}
}

func wicket(d model.Delivery, kind, dismissed, fielder string) model.Delivery {
	d.IsWicket = true
	d.DismissalKind = kind
	d.PlayerDismissed = dismissed
	d.Fielder = fielder
	return d
}
