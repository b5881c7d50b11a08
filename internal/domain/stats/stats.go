package stats

import (
	"iter"
	"slices"

	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/internal/domain/types"
)

// Toss impact categories.
const (
	TossWonMatch  = "Won Match"
	TossLostMatch = "Lost Match"
)

// Overview holds the headline numbers of the home page.
type Overview struct {
	Matches    int `json:"matches"`
	Seasons    int `json:"seasons"`
	Teams      int `json:"teams"`
	Venues     int `json:"venues"`
	Deliveries int `json:"deliveries"`
	Runs       int `json:"runs"`
	Wickets    int `json:"wickets"`
}

// Summarize computes the headline numbers.
func Summarize(ds *model.Dataset) Overview {
	o := Overview{
		Matches:    ds.MatchCount(),
		Deliveries: ds.DeliveryCount(),
		Seasons:    len(Seasons(ds)),
		Teams:      len(Teams(ds)),
	}

	venues := make(map[string]struct{})
	for m := range ds.Matches() {
		if m.Venue != "" {
			venues[m.Venue] = struct{}{}
		}
	}
	o.Venues = len(venues)

	for d := range ds.Deliveries() {
		o.Runs += d.TotalRuns
		if d.IsWicket {
			o.Wickets++
		}
	}
	return o
}

// MatchesPerSeason counts matches per season.
func MatchesPerSeason(ds *model.Dataset) []types.Entry {
	return GroupCount(ds.Matches(), func(m model.Match) string { return m.Season })
}

// TeamWins counts wins per team; matches without a result are ignored.
func TeamWins(ds *model.Dataset) []types.Entry {
	return GroupCount(Filter(ds.Matches(), model.Match.HasWinner), func(m model.Match) string { return m.Winner })
}

// TossImpact splits matches with a result by whether the toss winner also
// won the match.
func TossImpact(ds *model.Dataset) []types.Entry {
	return GroupCount(Filter(ds.Matches(), model.Match.HasWinner), func(m model.Match) string {
		if m.TossWinner == m.Winner {
			return TossWonMatch
		}
		return TossLostMatch
	})
}

// WinRates returns one record per team, ordered by win rate descending.
// Matches count every fixture the team played, including those without a
// result, so a team only appears once it has played.
func WinRates(ds *model.Dataset) []types.TeamRecord {
	index := make(map[string]int)
	out := []types.TeamRecord{}
	add := func(team string) *types.TeamRecord {
		i, ok := index[team]
		if !ok {
			i = len(out)
			index[team] = i
			out = append(out, types.TeamRecord{Team: team})
		}
		return &out[i]
	}

	for m := range ds.Matches() {
		for _, team := range []string{m.Team1, m.Team2} {
			if team == "" {
				continue
			}
			rec := add(team)
			rec.Matches++
			if m.Winner == team {
				rec.Wins++
			}
		}
	}

	for i := range out {
		finish(&out[i])
	}
	slices.SortStableFunc(out, func(a, b types.TeamRecord) int {
		switch {
		case a.WinRate > b.WinRate:
			return -1
		case a.WinRate < b.WinRate:
			return 1
		}
		return 0
	})
	return out
}

// Team returns the record of one team. found is false when the team never
// played.
func Team(ds *model.Dataset, name string) (rec types.TeamRecord, found bool) {
	rec.Team = name
	for m := range ds.Matches() {
		if !m.Involves(name) {
			continue
		}
		rec.Matches++
		if m.Winner == name {
			rec.Wins++
		}
	}
	if rec.Matches == 0 {
		return rec, false
	}
	finish(&rec)
	return rec, true
}

func finish(rec *types.TeamRecord) {
	rec.Losses = rec.Matches - rec.Wins
	if rec.Matches > 0 {
		rec.WinRate = float64(rec.Wins) / float64(rec.Matches)
	}
}

// TeamSeasonWins counts the team's wins per season. Seasons without a win
// are omitted.
func TeamSeasonWins(ds *model.Dataset, team string) []types.Entry {
	return GroupCount(wonBy(ds, team), func(m model.Match) string { return m.Season })
}

// TeamVenueWins counts the team's wins per venue.
func TeamVenueWins(ds *model.Dataset, team string) []types.Entry {
	return GroupCount(wonBy(ds, team), func(m model.Match) string { return m.Venue })
}

func wonBy(ds *model.Dataset, team string) iter.Seq[model.Match] {
	return Filter(ds.Matches(), func(m model.Match) bool {
		return team != "" && m.Winner == team
	})
}

// RunScorers sums the runs off the bat per batter.
func RunScorers(ds *model.Dataset) []types.Entry {
	return GroupSum(ds.Deliveries(),
		func(d model.Delivery) string { return d.Batter },
		func(d model.Delivery) float64 { return float64(d.BatterRuns) })
}

// WicketTakers counts every dismissal per bowler on the delivery,
// run outs included.
func WicketTakers(ds *model.Dataset) []types.Entry {
	dismissals := Filter(ds.Deliveries(), func(d model.Delivery) bool { return d.IsWicket })
	return GroupCount(dismissals, func(d model.Delivery) string { return d.Bowler })
}

// PlayerOfMatch counts player of the match awards.
func PlayerOfMatch(ds *model.Dataset) []types.Entry {
	return GroupCount(ds.Matches(), func(m model.Match) string { return m.PlayerOfMatch })
}

// VenueMatches counts matches per venue.
func VenueMatches(ds *model.Dataset) []types.Entry {
	return GroupCount(ds.Matches(), func(m model.Match) string { return m.Venue })
}

// CityMatches counts matches per city.
func CityMatches(ds *model.Dataset) []types.Entry {
	return GroupCount(ds.Matches(), func(m model.Match) string { return m.City })
}

// RunsPerSeason sums total runs per season. Deliveries without a known
// match carry no season and are left out.
func RunsPerSeason(ds *model.Dataset) []types.Entry {
	return GroupSum(ds.Deliveries(),
		func(d model.Delivery) string { return d.Season },
		func(d model.Delivery) float64 { return float64(d.TotalRuns) })
}

// ResultTypes counts matches per raw result label.
func ResultTypes(ds *model.Dataset) []types.Entry {
	return GroupCount(ds.Matches(), func(m model.Match) string { return m.ResultLabel })
}

// DismissalKinds counts dismissals per kind.
func DismissalKinds(ds *model.Dataset) []types.Entry {
	return GroupCount(ds.Deliveries(), func(d model.Delivery) string { return d.DismissalKind })
}

// Teams returns every team name, sorted.
func Teams(ds *model.Dataset) []string {
	return distinct(ds.Matches(), func(m model.Match) []string { return []string{m.Team1, m.Team2} })
}

// Seasons returns every season label, sorted.
func Seasons(ds *model.Dataset) []string {
	return distinct(ds.Matches(), func(m model.Match) []string { return []string{m.Season} })
}

func distinct(rows iter.Seq[model.Match], keys func(model.Match) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for m := range rows {
		for _, k := range keys(m) {
			if _, ok := seen[k]; ok || k == "" {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
