package chart_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/okian/ipldash/internal/domain/chart"
	"github.com/okian/ipldash/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func entries(values ...float64) []types.Entry {
	labels := []string{"2008", "2009", "2010", "2011", "2012"}
	out := make([]types.Entry, len(values))
	for i, v := range values {
		out[i] = types.Entry{Rank: i + 1, Category: labels[i], Value: v}
	}
	return out
}

func TestFormatting(t *testing.T) {
	Convey("Given numbers to display", t, func() {
		Convey("Then counts are grouped by thousands", func() {
			So(chart.Count(1234), ShouldEqual, "1,234")
			So(chart.Count(987654.4), ShouldEqual, "987,654")
			So(chart.Count(7), ShouldEqual, "7")
		})

		Convey("Then percentages are rounded to one decimal", func() {
			So(chart.Percent(0.5342), ShouldEqual, "53.4%")
			So(chart.Percent(0), ShouldEqual, "0.0%")
			So(chart.Percent(1), ShouldEqual, "100.0%")
		})

		Convey("Then long labels are truncated by rune", func() {
			So(chart.Truncate("Rajiv Gandhi International Stadium", 10), ShouldEqual, "Rajiv Gan…")
			So(chart.Truncate("Eden Gardens", 20), ShouldEqual, "Eden Gardens")
			So(chart.Truncate("Punjab", 0), ShouldEqual, "Punjab")
		})
	})
}

func TestSpec(t *testing.T) {
	Convey("Given aggregation entries", t, func() {
		spec := chart.New(chart.KindBar, "season-matches", "Matches Played Per Season", entries(58, 1200),
			chart.WithAxes("Season", "Number of Matches"),
			chart.WithPalette(chart.Blues),
			chart.WithSize(800, 400))

		Convey("Then points follow the entries in order", func() {
			So(spec.Points, ShouldResemble, []chart.Point{
				{Label: "2008", Value: 58, Display: "58"},
				{Label: "2009", Value: 1200, Display: "1,200"},
			})
			So(spec.XLabel, ShouldEqual, "Season")
			So(spec.Palette, ShouldEqual, chart.Blues)
			So(spec.Width, ShouldEqual, 800)
			So(spec.Empty(), ShouldBeFalse)
		})

		Convey("Then a formatter rewrites the display values", func() {
			rates := chart.New(chart.KindBar, "rates", "Win Rate", entries(0.5, 0.25), chart.WithFormatter(chart.Percent))
			So(rates.Points[0].Display, ShouldEqual, "50.0%")
			So(rates.Points[1].Display, ShouldEqual, "25.0%")
		})
	})

	Convey("Given specs with nothing to draw", t, func() {
		So(chart.New(chart.KindBar, "x", "x", nil).Empty(), ShouldBeTrue)
		So(chart.New(chart.KindPie, "x", "x", entries(0, 0)).Empty(), ShouldBeTrue)
		So(chart.New(chart.KindBar, "x", "x", entries(0, 0)).Empty(), ShouldBeFalse)
	})
}

func TestPalette(t *testing.T) {
	Convey("Given colour scales", t, func() {
		Convey("Then sequential scales shade by value", func() {
			So(chart.Blues.Sequential(), ShouldBeTrue)
			So(chart.Blues.Hex(0, 0, 0, 10), ShouldEqual, "#c6dbef")
			So(chart.Blues.Hex(0, 10, 0, 10), ShouldEqual, "#08306b")
		})

		Convey("Then the categorical scale cycles by index", func() {
			So(chart.Categorical.Sequential(), ShouldBeFalse)
			So(chart.Categorical.Hex(0, 5, 0, 10), ShouldEqual, "#636efa")
			So(chart.Categorical.Hex(10, 5, 0, 10), ShouldEqual, "#636efa")
			So(chart.Palette("unknown").Hex(1, 0, 0, 0), ShouldEqual, "#ef553b")
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Given specs of every kind", t, func() {
		cases := []struct {
			name string
			spec chart.Spec
		}{
			{"bar", chart.New(chart.KindBar, "b", "Top Teams", entries(5, 3, 3), chart.WithPalette(chart.Greens))},
			{"all-zero bar", chart.New(chart.KindBar, "z", "Nothing yet", entries(0, 0))},
			{"pie", chart.New(chart.KindPie, "p", "Toss Impact", entries(7, 5))},
			{"line", chart.New(chart.KindLine, "l", "Season Wins", entries(1, 4, 2), chart.WithAxes("Season", "Wins"))},
			{"single-point line", chart.New(chart.KindLine, "l1", "Season Wins", entries(3))},
			{"area", chart.New(chart.KindArea, "a", "Runs Per Season", entries(17000, 18500, 16200))},
		}

		for _, tc := range cases {
			Convey("Then the "+tc.name+" chart renders as SVG", func() {
				var buf bytes.Buffer
				err := chart.Render(&buf, tc.spec)
				So(err, ShouldBeNil)
				So(buf.String(), ShouldContainSubstring, "<svg")
			})
		}
	})

	Convey("Given an empty spec", t, func() {
		var buf bytes.Buffer
		err := chart.Render(&buf, chart.New(chart.KindPie, "e", "Empty", nil))

		Convey("Then it is never handed to the renderer", func() {
			So(errors.Is(err, chart.ErrEmpty), ShouldBeTrue)
			So(buf.Len(), ShouldEqual, 0)
		})
	})
}
