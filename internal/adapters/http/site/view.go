package site

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/ipldash/internal/domain/model"
)

// View identifies one of the dashboard pages.
type View int

// Views in navigation order.
const (
	ViewHome View = iota
	ViewTeams
	ViewPlayers
	ViewVenues
	ViewTrends
)

// noView marks pages outside the navigation, such as the 404 page.
const noView View = -1

type viewDef struct {
	path   string
	label  string
	name   string
	render func(*model.Dataset, Query) Page
}

var viewDefs = [...]viewDef{
	ViewHome:    {"/", "Home", "home", renderHome},
	ViewTeams:   {"/teams", "Team Analysis", "teams", renderTeams},
	ViewPlayers: {"/players", "Player Stats", "players", renderPlayers},
	ViewVenues:  {"/venues", "Venue Analysis", "venues", renderVenues},
	ViewTrends:  {"/trends", "Trends & Insights", "trends", renderTrends},
}

// Views lists every view in navigation order.
func Views() []View {
	return []View{ViewHome, ViewTeams, ViewPlayers, ViewVenues, ViewTrends}
}

// Lookup returns the view served at path.
func Lookup(path string) (View, bool) {
	for i, d := range viewDefs {
		if d.path == path {
			return View(i), true
		}
	}
	return noView, false
}

func (v View) valid() bool { return v >= 0 && int(v) < len(viewDefs) }

// Path is the URL path of the view.
func (v View) Path() string {
	if !v.valid() {
		return ""
	}
	return viewDefs[v].path
}

// Label is the navigation label of the view.
func (v View) Label() string {
	if !v.valid() {
		return ""
	}
	return viewDefs[v].label
}

func (v View) String() string {
	if !v.valid() {
		return "unknown"
	}
	return viewDefs[v].name
}

// Render builds the page of v. It is a pure function of its inputs.
func (v View) Render(ds *model.Dataset, q Query) Page {
	if !v.valid() {
		return Page{View: v}
	}
	p := viewDefs[v].render(ds, q)
	p.View = v
	return p
}

// Limits bounds the top-N sliders.
type Limits struct {
	Default int
	Min     int
	Max     int
}

// DefaultLimits matches the slider range of the player page.
var DefaultLimits = Limits{Default: 10, Min: 5, Max: 20}

func (l Limits) clamp(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = l.Default
	}
	return min(max(n, l.Min), l.Max)
}

// Query holds the widget state carried in the query string.
type Query struct {
	Team    string
	Batters int
	Bowlers int
	Awards  int
	Limits  Limits
}

// ParseQuery reads widget state from values. Slider values outside the
// limits are clamped; missing or malformed ones take the default.
func ParseQuery(values url.Values, lim Limits) Query {
	return Query{
		Team:    strings.TrimSpace(values.Get("team")),
		Batters: lim.clamp(values.Get("batters")),
		Bowlers: lim.clamp(values.Get("bowlers")),
		Awards:  lim.clamp(values.Get("awards")),
		Limits:  lim,
	}
}

// Values encodes q back into query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Team != "" {
		v.Set("team", q.Team)
	}
	v.Set("batters", strconv.Itoa(q.Batters))
	v.Set("bowlers", strconv.Itoa(q.Bowlers))
	v.Set("awards", strconv.Itoa(q.Awards))
	return v
}
