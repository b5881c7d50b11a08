package sample

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/okian/ipldash/internal/domain/model"
)

// Generator defaults.
const (
	defaultFirstSeason      = 2008
	defaultLastSeason       = 2012
	defaultMatchesPerSeason = 20
	defaultOvers            = 20
	defaultSeed             = 42
	ballsPerOver            = 6
	wicketsPerInnings       = 10
	squadSize               = 11
)

// Outcome weights per legal ball, out of outcomeScale.
const (
	outcomeScale = 100
	weightDot    = 35
	weightSingle = 30
	weightDouble = 8
	weightFour   = 10
	weightSix    = 5
	weightWide   = 4
	weightWicket = 8
)

var (
	leagueTeams = []string{
		"Mumbai Indians", "Chennai Super Kings", "Kolkata Knight Riders",
		"Royal Challengers Bangalore", "Rajasthan Royals", "Delhi Daredevils",
		"Kings XI Punjab", "Deccan Chargers",
	}
	leagueVenues = []struct{ venue, city string }{
		{"Wankhede Stadium", "Mumbai"},
		{"MA Chidambaram Stadium", "Chennai"},
		{"Eden Gardens", "Kolkata"},
		{"M Chinnaswamy Stadium", "Bangalore"},
		{"Sawai Mansingh Stadium", "Jaipur"},
		{"Feroz Shah Kotla", "Delhi"},
		{"Punjab Cricket Association Stadium", ""},
		{"Rajiv Gandhi International Stadium", "Hyderabad"},
	}
	dismissalKinds = []string{"caught", "bowled", "lbw", "run out", "stumped", "caught and bowled"}
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithSeasons sets the first and last season, inclusive.
func WithSeasons(first, last int) Option {
	return func(g *Generator) {
		if first > 0 && last >= first {
			g.firstSeason = first
			g.lastSeason = last
		}
	}
}

// WithMatchesPerSeason sets how many fixtures each season has.
func WithMatchesPerSeason(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.matchesPerSeason = n
		}
	}
}

// WithOvers sets the overs per innings.
func WithOvers(n int) Option {
	return func(g *Generator) {
		if n > 0 {
			g.overs = n
		}
	}
}

// WithSeed makes the output reproducible for a given seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// Generator produces a synthetic league with plausible scoring.
type Generator struct {
	firstSeason      int
	lastSeason       int
	matchesPerSeason int
	overs            int
	seed             int64
}

// NewGenerator creates a Generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		firstSeason:      defaultFirstSeason,
		lastSeason:       defaultLastSeason,
		matchesPerSeason: defaultMatchesPerSeason,
		overs:            defaultOvers,
		seed:             defaultSeed,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds the match and delivery tables. The same options always
// produce the same tables.
func (g *Generator) Generate() ([]model.Match, []model.Delivery) {
	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec // reproducible fixtures

	seasons := g.lastSeason - g.firstSeason + 1
	matches := make([]model.Match, 0, seasons*g.matchesPerSeason)
	var deliveries []model.Delivery

	id := 0
	for season := g.firstSeason; season <= g.lastSeason; season++ {
		start := time.Date(season, time.April, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < g.matchesPerSeason; i++ {
			id++
			m, balls := g.match(rng, id, strconv.Itoa(season), start.AddDate(0, 0, i))
			matches = append(matches, m)
			deliveries = append(deliveries, balls...)
		}
	}

	return matches, deliveries
}

func (g *Generator) match(rng *rand.Rand, id int, season string, date time.Time) (model.Match, []model.Delivery) {
	t1 := rng.Intn(len(leagueTeams))
	t2 := (t1 + 1 + rng.Intn(len(leagueTeams)-1)) % len(leagueTeams)
	team1, team2 := leagueTeams[t1], leagueTeams[t2]
	ground := leagueVenues[t1]

	toss := team1
	if rng.Intn(2) == 1 {
		toss = team2
	}
	decision := "bat"
	if rng.Intn(2) == 1 {
		decision = "field"
	}

	first, second := team1, team2
	if (toss == team1) != (decision == "bat") {
		first, second = team2, team1
	}

	var balls []model.Delivery
	firstTotal, firstBalls := g.innings(rng, id, 1, first, second, -1)
	balls = append(balls, firstBalls...)
	secondTotal, secondBalls := g.innings(rng, id, 2, second, first, firstTotal)
	balls = append(balls, secondBalls...)

	m := model.Match{
		ID:            id,
		Season:        season,
		Date:          date,
		Venue:         ground.venue,
		City:          ground.city,
		Team1:         team1,
		Team2:         team2,
		TossWinner:    toss,
		TossDecision:  decision,
		PlayerOfMatch: player(first, rng.Intn(squadSize)),
	}
	if m.City == "" {
		m.City = model.Unknown
	}

	switch {
	case rng.Intn(outcomeScale) == 0:
		m.Winner = model.NoResult
		m.ResultLabel = "no result"
		m.PlayerOfMatch = model.Unknown
	case firstTotal > secondTotal:
		m.Winner = first
		m.ResultLabel = "runs"
		m.Margin = float64(firstTotal - secondTotal)
	case secondTotal > firstTotal:
		m.Winner = second
		m.ResultLabel = "wickets"
		m.Margin = float64(1 + rng.Intn(wicketsPerInnings))
		m.PlayerOfMatch = player(second, rng.Intn(squadSize))
	default:
		m.Winner = first
		m.ResultLabel = "tie"
	}
	m.Result = model.ClassifyResult(m.ResultLabel, m.Winner)

	return m, balls
}

// innings simulates one innings; target < 0 means no chase.
func (g *Generator) innings(rng *rand.Rand, id, inning int, batting, bowling string, target int) (int, []model.Delivery) {
	var (
		balls   []model.Delivery
		total   int
		wickets int
	)
	striker, nonStriker, next := 0, 1, 2

	for over := 1; over <= g.overs && wickets < wicketsPerInnings; over++ {
		bowler := player(bowling, squadSize-1-over%5)
		for n := 1; n <= ballsPerOver && wickets < wicketsPerInnings; {
			d := model.Delivery{
				MatchID:     id,
				Inning:      inning,
				Over:        over,
				Ball:        n,
				BattingTeam: batting,
				BowlingTeam: bowling,
				Batter:      player(batting, striker),
				Bowler:      bowler,
			}

			roll := rng.Intn(outcomeScale)
			switch {
			case roll < weightDot:
			case roll < weightDot+weightSingle:
				d.BatterRuns = 1
			case roll < weightDot+weightSingle+weightDouble:
				d.BatterRuns = 2
			case roll < weightDot+weightSingle+weightDouble+weightFour:
				d.BatterRuns = 4
			case roll < weightDot+weightSingle+weightDouble+weightFour+weightSix:
				d.BatterRuns = 6
			case roll < weightDot+weightSingle+weightDouble+weightFour+weightSix+weightWide:
				d.ExtraRuns = 1
				d.ExtrasType = "wides"
			case roll < weightDot+weightSingle+weightDouble+weightFour+weightSix+weightWide+weightWicket:
				d.IsWicket = true
				d.DismissalKind = dismissalKinds[rng.Intn(len(dismissalKinds))]
				d.PlayerDismissed = d.Batter
				if d.DismissalKind != "bowled" && d.DismissalKind != "lbw" {
					d.Fielder = player(bowling, rng.Intn(squadSize))
				}
				wickets++
				striker = next
				next++
			default:
				d.BatterRuns = 1
			}
			d.TotalRuns = d.BatterRuns + d.ExtraRuns
			total += d.TotalRuns
			balls = append(balls, d)

			if d.ExtrasType == "" {
				n++
			}
			if d.BatterRuns%2 == 1 {
				striker, nonStriker = nonStriker, striker
			}
			if target >= 0 && total > target {
				return total, balls
			}
		}
		striker, nonStriker = nonStriker, striker
	}

	return total, balls
}

func player(team string, n int) string {
	initials := make([]byte, 0, 3)
	for _, w := range []byte(team) {
		if w >= 'A' && w <= 'Z' {
			initials = append(initials, w)
		}
	}
	return fmt.Sprintf("%s Player %d", initials, n+1)
}
