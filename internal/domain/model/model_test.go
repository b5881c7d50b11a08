package model_test

import (
	"testing"

	"github.com/okian/ipldash/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestClassifyResult(t *testing.T) {
	convey.Convey("Given raw result labels", t, func() {
		convey.Convey("When the label is tie", func() {
			convey.So(model.ClassifyResult("tie", "Mumbai Indians"), convey.ShouldEqual, model.ResultTie)
			convey.So(model.ClassifyResult(" Tie ", ""), convey.ShouldEqual, model.ResultTie)
		})

		convey.Convey("When the label is no result or the winner is missing", func() {
			convey.So(model.ClassifyResult("no result", ""), convey.ShouldEqual, model.ResultNoResult)
			convey.So(model.ClassifyResult("runs", model.NoResult), convey.ShouldEqual, model.ResultNoResult)
			convey.So(model.ClassifyResult("wickets", ""), convey.ShouldEqual, model.ResultNoResult)
		})

		convey.Convey("When the match has a winner", func() {
			convey.So(model.ClassifyResult("runs", "Chennai Super Kings"), convey.ShouldEqual, model.ResultNormal)
			convey.So(model.ResultNormal.String(), convey.ShouldEqual, "normal")
			convey.So(model.ResultNoResult.String(), convey.ShouldEqual, "no result")
		})
	})
}

func TestParseSeasonSource(t *testing.T) {
	convey.Convey("Given season source names", t, func() {
		src, err := model.ParseSeasonSource("Date")
		convey.So(err, convey.ShouldBeNil)
		convey.So(src, convey.ShouldEqual, model.SeasonFromDate)

		src, err = model.ParseSeasonSource("field")
		convey.So(err, convey.ShouldBeNil)
		convey.So(src, convey.ShouldEqual, model.SeasonFromField)

		_, err = model.ParseSeasonSource("calendar")
		convey.So(err, convey.ShouldNotBeNil)
	})
}

func TestMatch(t *testing.T) {
	convey.Convey("Given a match", t, func() {
		m := model.Match{Team1: "A", Team2: "B", Winner: "A"}

		convey.So(m.HasWinner(), convey.ShouldBeTrue)
		convey.So(m.Involves("B"), convey.ShouldBeTrue)
		convey.So(m.Involves("C"), convey.ShouldBeFalse)
		convey.So(m.Involves(""), convey.ShouldBeFalse)

		m.Winner = model.NoResult
		convey.So(m.HasWinner(), convey.ShouldBeFalse)
	})
}

func TestNewDataset(t *testing.T) {
	convey.Convey("Given matches and deliveries", t, func() {
		matches := []model.Match{
			{ID: 1, Season: "2008"},
			{ID: 2, Season: "2009"},
			{ID: 2, Season: "2010"},
		}
		deliveries := []model.Delivery{
			{MatchID: 1, TotalRuns: 4},
			{MatchID: 2, TotalRuns: 1, Season: "stale"},
			{MatchID: 99, TotalRuns: 6, Season: "stale"},
		}

		ds := model.NewDataset(matches, deliveries)

		convey.Convey("Then deliveries should carry the joined season", func() {
			var seasons []string
			for d := range ds.Deliveries() {
				seasons = append(seasons, d.Season)
			}
			convey.So(seasons, convey.ShouldResemble, []string{"2008", "2009", ""})
			convey.So(ds.Orphans(), convey.ShouldEqual, 1)
			convey.So(ds.MatchCount(), convey.ShouldEqual, 3)
			convey.So(ds.DeliveryCount(), convey.ShouldEqual, 3)
		})

		convey.Convey("Then the first match wins on duplicate ids", func() {
			m, ok := ds.Match(2)
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(m.Season, convey.ShouldEqual, "2009")

			_, ok = ds.Match(42)
			convey.So(ok, convey.ShouldBeFalse)
		})

		convey.Convey("Then mutating the inputs should not affect the dataset", func() {
			matches[0].Season = "changed"
			deliveries[0].TotalRuns = 100

			for m := range ds.Matches() {
				convey.So(m.Season, convey.ShouldNotEqual, "changed")
				break
			}
			for d := range ds.Deliveries() {
				convey.So(d.TotalRuns, convey.ShouldEqual, 4)
				break
			}
		})

		convey.Convey("Then mutating yielded values should not affect the dataset", func() {
			for m := range ds.Matches() {
				m.Season = "changed"
			}
			first, _ := ds.Match(1)
			convey.So(first.Season, convey.ShouldEqual, "2008")
		})
	})

	convey.Convey("Given a nil dataset", t, func() {
		var ds *model.Dataset

		convey.So(ds.MatchCount(), convey.ShouldEqual, 0)
		convey.So(ds.DeliveryCount(), convey.ShouldEqual, 0)
		convey.So(ds.Orphans(), convey.ShouldEqual, 0)
		n := 0
		for range ds.Matches() {
			n++
		}
		convey.So(n, convey.ShouldEqual, 0)
	})
}
