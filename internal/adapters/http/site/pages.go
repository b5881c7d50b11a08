package site

import (
	"fmt"
	"slices"

	"github.com/okian/ipldash/internal/domain/chart"
	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/internal/domain/stats"
)

// Fixed top-N sizes of the non-interactive charts.
const (
	homeTopTeams     = 5
	teamTopVenues    = 5
	venueTopVenues   = 10
	venueTopCities   = 10
	trendsDismissals = 8
)

// Page is everything a view shows, in display order.
type Page struct {
	View     View
	Title    string
	Subtitle string
	Message  string
	Controls []Control
	Cards    []Card
	Charts   []chart.Spec
	Tables   []Table
}

// Card is a headline number.
type Card struct {
	Label string
	Value string
}

// ControlKind selects how a Control is drawn.
type ControlKind int

// Control kinds.
const (
	ControlSlider ControlKind = iota
	ControlSelect
)

// Control is a form widget whose value lives in the query string.
type Control struct {
	Kind    ControlKind
	Name    string
	Label   string
	Value   string
	Min     int
	Max     int
	Options []string
}

// Table is a plain data table.
type Table struct {
	Caption string
	Header  []string
	Rows    [][]string
}

func slider(name, label string, value int, lim Limits) Control {
	return Control{
		Kind:  ControlSlider,
		Name:  name,
		Label: label,
		Value: fmt.Sprint(value),
		Min:   lim.Min,
		Max:   lim.Max,
	}
}

func count(n int) string { return chart.Count(float64(n)) }

func renderHome(ds *model.Dataset, _ Query) Page {
	o := stats.Summarize(ds)
	return Page{
		Title:    "IPL Analytics Dashboard",
		Subtitle: "Comprehensive analysis of the Indian Premier League",
		Cards: []Card{
			{"Total Matches", count(o.Matches)},
			{"Total Seasons", count(o.Seasons)},
			{"Total Teams", count(o.Teams)},
			{"Total Venues", count(o.Venues)},
		},
		Charts: []chart.Spec{
			chart.New(chart.KindBar, "matches-per-season", "Matches Played Per Season",
				stats.Chronological(stats.MatchesPerSeason(ds)),
				chart.WithAxes("Season", "Number of Matches"), chart.WithPalette(chart.Blues)),
			chart.New(chart.KindBar, "team-wins", fmt.Sprintf("Top %d Teams by Wins", homeTopTeams),
				stats.TopN(stats.TeamWins(ds), homeTopTeams),
				chart.WithAxes("Team", "Wins"), chart.WithPalette(chart.Greens)),
			chart.New(chart.KindPie, "toss-impact", "Toss Impact Analysis", stats.TossImpact(ds)),
		},
	}
}

func renderTeams(ds *model.Dataset, q Query) Page {
	teams := stats.Teams(ds)
	p := Page{Title: "Team Performance Analysis"}
	if len(teams) == 0 {
		p.Message = "No teams in the dataset."
		return p
	}

	team := q.Team
	if team == "" {
		team = teams[0]
	}
	p.Controls = []Control{{
		Kind:    ControlSelect,
		Name:    "team",
		Label:   "Select a Team",
		Value:   team,
		Options: teams,
	}}
	if !slices.Contains(teams, team) {
		p.Message = fmt.Sprintf("No matches found for %q.", team)
		return p
	}

	rec, _ := stats.Team(ds, team)
	p.Cards = []Card{
		{"Total Matches", count(rec.Matches)},
		{"Total Wins", count(rec.Wins)},
		{"Win Rate", chart.Percent(rec.WinRate)},
		{"Total Losses", count(rec.Losses)},
	}
	p.Charts = []chart.Spec{
		chart.New(chart.KindLine, "season-wins", team+" - Season Wise Wins",
			stats.Chronological(stats.TeamSeasonWins(ds, team)),
			chart.WithAxes("Season", "Wins")),
		chart.New(chart.KindBar, "team-venues", "Top Venues for "+team,
			stats.TopN(stats.TeamVenueWins(ds, team), teamTopVenues),
			chart.WithAxes("Venue", "Wins"), chart.WithPalette(chart.Oranges)),
	}

	rates := stats.WinRates(ds)
	table := Table{
		Caption: "Win rate by team",
		Header:  []string{"Team", "Matches", "Wins", "Losses", "Win Rate"},
		Rows:    make([][]string, 0, len(rates)),
	}
	for _, r := range rates {
		table.Rows = append(table.Rows, []string{
			r.Team, count(r.Matches), count(r.Wins), count(r.Losses), chart.Percent(r.WinRate),
		})
	}
	p.Tables = []Table{table}
	return p
}

func renderPlayers(ds *model.Dataset, q Query) Page {
	return Page{
		Title: "Player Statistics",
		Controls: []Control{
			slider("batters", "Number of batters to display", q.Batters, q.Limits),
			slider("bowlers", "Number of bowlers to display", q.Bowlers, q.Limits),
			slider("awards", "Number of players to display", q.Awards, q.Limits),
		},
		Charts: []chart.Spec{
			chart.New(chart.KindBar, "run-scorers", "Top Run Scorers in IPL History",
				stats.TopN(stats.RunScorers(ds), q.Batters),
				chart.WithAxes("Batter", "Total Runs"), chart.WithPalette(chart.YlOrRd)),
			chart.New(chart.KindBar, "wicket-takers", "Top Wicket Takers in IPL History",
				stats.TopN(stats.WicketTakers(ds), q.Bowlers),
				chart.WithAxes("Bowler", "Total Wickets"), chart.WithPalette(chart.Purples)),
			chart.New(chart.KindBar, "player-of-match", "Player of the Match Awards",
				stats.TopN(stats.PlayerOfMatch(ds), q.Awards),
				chart.WithAxes("Player", "Awards"), chart.WithPalette(chart.Greens)),
		},
	}
}

func renderVenues(ds *model.Dataset, _ Query) Page {
	return Page{
		Title: "Venue Analysis",
		Charts: []chart.Spec{
			chart.New(chart.KindBar, "venues", "Top Venues by Number of Matches",
				stats.TopN(stats.VenueMatches(ds), venueTopVenues),
				chart.WithAxes("Venue", "Matches"), chart.WithPalette(chart.Blues)),
			chart.New(chart.KindPie, "cities", "City-wise Match Distribution",
				stats.TopN(stats.CityMatches(ds), venueTopCities)),
		},
	}
}

func renderTrends(ds *model.Dataset, _ Query) Page {
	return Page{
		Title: "Trends & Insights",
		Charts: []chart.Spec{
			chart.New(chart.KindArea, "runs-per-season", "Total Runs Scored Per Season",
				stats.Chronological(stats.RunsPerSeason(ds)),
				chart.WithAxes("Season", "Total Runs Scored")),
			chart.New(chart.KindPie, "result-types", "Result Type Distribution", stats.ResultTypes(ds)),
			chart.New(chart.KindBar, "dismissals", "Dismissal Types",
				stats.TopN(stats.DismissalKinds(ds), trendsDismissals),
				chart.WithAxes("Dismissal Type", "Count"), chart.WithPalette(chart.Reds)),
		},
	}
}
