package stats_test

import (
	"slices"
	"testing"

	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/internal/domain/stats"
	"github.com/okian/ipldash/internal/domain/types"
	"github.com/okian/ipldash/internal/sample"
	. "github.com/smartystreets/goconvey/convey"
)

// pairs flattens entries to category/value pairs for compact assertions.
func pairs(entries []types.Entry) []any {
	out := make([]any, 0, len(entries)*2)
	for _, e := range entries {
		out = append(out, e.Category, e.Value)
	}
	return out
}

// batterRuns totals runs off the bat over every delivery.
func batterRuns(ds *model.Dataset) int {
	total := 0
	for d := range ds.Deliveries() {
		total += d.BatterRuns
	}
	return total
}

func TestGrouping(t *testing.T) {
	Convey("Given rows with repeated and empty keys", t, func() {
		rows := []string{"b", "a", "", "c", "a", "b", "d"}
		key := func(s string) string { return s }

		Convey("When counting per key", func() {
			got := stats.GroupCount(slices.Values(rows), key)

			Convey("Then empty keys are skipped and ties keep first appearance", func() {
				So(pairs(got), ShouldResemble, []any{"b", 2.0, "a", 2.0, "c", 1.0, "d", 1.0})
				for i, e := range got {
					So(e.Rank, ShouldEqual, i+1)
				}
			})
		})

		Convey("When summing per key", func() {
			got := stats.GroupSum(slices.Values(rows), key, func(s string) float64 {
				if s == "d" {
					return 10
				}
				return 1
			})

			Convey("Then the largest sum ranks first", func() {
				So(got[0].Category, ShouldEqual, "d")
				So(got[0].Value, ShouldEqual, 10)
			})
		})

		Convey("When keys look like missing-value markers", func() {
			got := stats.GroupCount(slices.Values([]string{"NaN", "NA", "NaN", "2008"}), key)

			Convey("Then they are grouped as ordinary labels", func() {
				So(pairs(got), ShouldResemble, []any{"NaN", 2.0, "NA", 1.0, "2008", 1.0})
			})
		})

		Convey("When grouping nothing", func() {
			got := stats.GroupCount(slices.Values([]string(nil)), key)

			Convey("Then the result is empty but not nil", func() {
				So(got, ShouldNotBeNil)
				So(got, ShouldBeEmpty)
			})
		})
	})
}

func TestTopN(t *testing.T) {
	Convey("Given a sorted result", t, func() {
		entries := stats.GroupCount(slices.Values([]string{"x", "y", "x", "z"}), func(s string) string { return s })

		Convey("Then N = 0 and negative N return an empty sequence", func() {
			So(stats.TopN(entries, 0), ShouldBeEmpty)
			So(stats.TopN(entries, -3), ShouldNotBeNil)
		})

		Convey("Then N >= size returns the full result unchanged", func() {
			So(stats.TopN(entries, 3), ShouldResemble, entries)
			So(stats.TopN(entries, 100), ShouldResemble, entries)
		})

		Convey("Then N < size truncates", func() {
			top := stats.TopN(entries, 2)
			So(len(top), ShouldEqual, 2)
			So(top[0].Category, ShouldEqual, "x")
		})

		Convey("Then the result does not alias the input", func() {
			top := stats.TopN(entries, 1)
			top[0].Category = "changed"
			So(entries[0].Category, ShouldEqual, "x")
		})
	})
}

func TestChronological(t *testing.T) {
	Convey("Given a season result sorted by value", t, func() {
		entries := []types.Entry{
			{Rank: 1, Category: "2009/10", Value: 60},
			{Rank: 2, Category: "2007/08", Value: 58},
			{Rank: 3, Category: "2024", Value: 57},
		}

		got := stats.Chronological(entries)

		Convey("Then it is ordered by season and the input is untouched", func() {
			So(pairs(got), ShouldResemble, []any{"2007/08", 58.0, "2009/10", 60.0, "2024", 57.0})
			So(entries[0].Rank, ShouldEqual, 1)
			So(entries[0].Category, ShouldEqual, "2009/10")
			So(stats.Chronological(nil), ShouldNotBeNil)
		})

		Convey("Then ranks follow the new order", func() {
			for i, e := range got {
				So(e.Rank, ShouldEqual, i+1)
			}
		})
	})
}

func TestAggregations(t *testing.T) {
	Convey("Given the tiny dataset", t, func() {
		ds := sample.TinyDataset()

		Convey("Then the summary counts every table", func() {
			So(stats.Summarize(ds), ShouldResemble, stats.Overview{
				Matches: 3, Seasons: 2, Teams: 3, Venues: 2, Deliveries: 10, Runs: 10, Wickets: 3,
			})
		})

		Convey("Then runs per season returns two seasons summing to 10", func() {
			got := stats.RunsPerSeason(ds)
			So(pairs(got), ShouldResemble, []any{"2008", 9.0, "2009", 1.0})
		})

		Convey("Then matches per season counts fixtures", func() {
			So(pairs(stats.MatchesPerSeason(ds)), ShouldResemble, []any{"2008", 2.0, "2009", 1.0})
		})

		Convey("Then team wins ignore matches without a result", func() {
			So(pairs(stats.TeamWins(ds)), ShouldResemble, []any{sample.MumbaiIndians, 1.0, sample.ChennaiKings, 1.0})
		})

		Convey("Then toss impact splits decided matches", func() {
			So(pairs(stats.TossImpact(ds)), ShouldResemble, []any{stats.TossWonMatch, 1.0, stats.TossLostMatch, 1.0})
		})

		Convey("Then win rates cover every team that played", func() {
			got := stats.WinRates(ds)
			So(got, ShouldResemble, []types.TeamRecord{
				{Team: sample.MumbaiIndians, Matches: 2, Wins: 1, Losses: 1, WinRate: 0.5},
				{Team: sample.ChennaiKings, Matches: 2, Wins: 1, Losses: 1, WinRate: 0.5},
				{Team: sample.KolkataRiders, Matches: 2, Wins: 0, Losses: 2, WinRate: 0},
			})
		})

		Convey("Then a single team record can be looked up", func() {
			rec, found := stats.Team(ds, sample.MumbaiIndians)
			So(found, ShouldBeTrue)
			So(rec.WinRate, ShouldEqual, 0.5)

			rec, found = stats.Team(ds, "Gujarat Titans")
			So(found, ShouldBeFalse)
			So(rec, ShouldResemble, types.TeamRecord{Team: "Gujarat Titans"})
		})

		Convey("Then team breakdowns only count the team's wins", func() {
			So(pairs(stats.TeamSeasonWins(ds, sample.MumbaiIndians)), ShouldResemble, []any{"2008", 1.0})
			So(pairs(stats.TeamVenueWins(ds, sample.MumbaiIndians)), ShouldResemble, []any{sample.WankhedeStadium, 1.0})
			So(stats.TeamSeasonWins(ds, sample.KolkataRiders), ShouldBeEmpty)
			So(stats.TeamSeasonWins(ds, ""), ShouldBeEmpty)
		})

		Convey("Then player boards follow the deliveries", func() {
			So(pairs(stats.RunScorers(ds)), ShouldResemble, []any{
				"MS Dhoni", 6.0, "RG Sharma", 1.0, "SR Tendulkar", 1.0, "AD Russell", 1.0,
			})
			So(pairs(stats.WicketTakers(ds)), ShouldResemble, []any{"SP Narine", 2.0, "DL Chahar", 1.0})
			wickets := 0.0
			for _, e := range stats.WicketTakers(ds) {
				wickets += e.Value
			}
			So(int(wickets), ShouldEqual, stats.Summarize(ds).Wickets)
			So(pairs(stats.PlayerOfMatch(ds)), ShouldResemble, []any{"SR Tendulkar", 1.0, "MS Dhoni", 1.0, model.Unknown, 1.0})
		})

		Convey("Then venue, city, result and dismissal boards count rows", func() {
			So(pairs(stats.VenueMatches(ds)), ShouldResemble, []any{sample.WankhedeStadium, 2.0, sample.ChepaukStadium, 1.0})
			So(pairs(stats.CityMatches(ds)), ShouldResemble, []any{"Mumbai", 2.0, model.Unknown, 1.0})
			So(pairs(stats.ResultTypes(ds)), ShouldResemble, []any{"runs", 1.0, "wickets", 1.0, "no result", 1.0})
			So(pairs(stats.DismissalKinds(ds)), ShouldResemble, []any{"caught", 1.0, "run out", 1.0, "bowled", 1.0})
		})

		Convey("Then selectors list sorted distinct values", func() {
			So(stats.Teams(ds), ShouldResemble, []string{sample.ChennaiKings, sample.KolkataRiders, sample.MumbaiIndians})
			So(stats.Seasons(ds), ShouldResemble, []string{"2008", "2009"})
		})
	})

	Convey("Given an empty dataset", t, func() {
		ds := model.NewDataset(nil, nil)

		Convey("Then every aggregation returns an empty result", func() {
			So(stats.Summarize(ds), ShouldResemble, stats.Overview{})
			So(stats.RunScorers(ds), ShouldBeEmpty)
			So(stats.RunScorers(ds), ShouldNotBeNil)
			So(stats.WinRates(ds), ShouldBeEmpty)
			So(stats.WinRates(ds), ShouldNotBeNil)
			So(stats.Teams(ds), ShouldBeEmpty)
			So(stats.TopN(stats.VenueMatches(ds), 10), ShouldBeEmpty)
		})
	})
}

func TestAggregationProperties(t *testing.T) {
	Convey("Given a generated league", t, func() {
		matches, deliveries := sample.NewGenerator(sample.WithMatchesPerSeason(12), sample.WithOvers(5)).Generate()
		ds := model.NewDataset(matches, deliveries)

		sum := func(entries []types.Entry) int {
			total := 0.0
			for _, e := range entries {
				total += e.Value
			}
			return int(total)
		}

		Convey("Then per-group counts add up to the table size", func() {
			So(sum(stats.MatchesPerSeason(ds)), ShouldEqual, ds.MatchCount())
			So(sum(stats.VenueMatches(ds)), ShouldEqual, ds.MatchCount())
			So(sum(stats.CityMatches(ds)), ShouldEqual, ds.MatchCount())
			So(sum(stats.ResultTypes(ds)), ShouldEqual, ds.MatchCount())
			So(sum(stats.DismissalKinds(ds)), ShouldEqual, stats.Summarize(ds).Wickets)
			So(sum(stats.RunsPerSeason(ds)), ShouldEqual, stats.Summarize(ds).Runs)
		})

		Convey("Then player boards add up to the delivery totals", func() {
			So(sum(stats.WicketTakers(ds)), ShouldEqual, stats.Summarize(ds).Wickets)
			So(sum(stats.RunScorers(ds)), ShouldEqual, batterRuns(ds))
		})

		Convey("Then win rates stay within [0,1] and only list teams that played", func() {
			for _, rec := range stats.WinRates(ds) {
				So(rec.WinRate, ShouldBeBetweenOrEqual, 0.0, 1.0)
				So(rec.Matches, ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then results are sorted descending with contiguous ranks", func() {
			got := stats.RunScorers(ds)
			for i := 1; i < len(got); i++ {
				So(got[i-1].Value, ShouldBeGreaterThanOrEqualTo, got[i].Value)
				So(got[i].Rank, ShouldEqual, i+1)
			}
		})

		Convey("Then repeated runs yield identical output", func() {
			So(stats.RunScorers(ds), ShouldResemble, stats.RunScorers(ds))
			So(stats.WicketTakers(ds), ShouldResemble, stats.WicketTakers(ds))
			So(stats.WinRates(ds), ShouldResemble, stats.WinRates(ds))
			So(stats.TeamWins(ds), ShouldResemble, stats.TeamWins(ds))
		})
	})
}
