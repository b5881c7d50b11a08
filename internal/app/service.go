// Package service owns the loaded dataset and answers the aggregation
// queries of the HTTP and CLI surfaces.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/ipldash/internal/adapters/loader"
	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/internal/domain/stats"
	"github.com/okian/ipldash/internal/domain/types"
	"github.com/okian/ipldash/pkg/logger"
	"github.com/okian/ipldash/pkg/metrics"
)

// Number of venues in a team report.
const teamTopVenues = 5

// TeamReport is everything the team page shows for one team.
type TeamReport struct {
	Record     types.TeamRecord `json:"record"`
	SeasonWins []types.Entry    `json:"season_wins"`
	TopVenues  []types.Entry    `json:"top_venues"`
}

// Service holds the dataset for the process lifetime. The dataset is
// read-only once Start returns, so queries take no locks beyond the
// read lock guarding the start state.
type Service struct {
	mu sync.RWMutex

	// Configuration
	matchesPath    string
	deliveriesPath string
	seasons        model.SeasonSource

	// State
	started  bool
	ds       *model.Dataset
	loadErr  error
	loadedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDataPaths sets the two CSV files loaded by Start.
func WithDataPaths(matchesPath, deliveriesPath string) Option {
	return func(s *Service) {
		if matchesPath != "" {
			s.matchesPath = matchesPath
		}
		if deliveriesPath != "" {
			s.deliveriesPath = deliveriesPath
		}
	}
}

// WithSeasonSource selects how match seasons are derived.
func WithSeasonSource(src model.SeasonSource) Option {
	return func(s *Service) {
		if src != "" {
			s.seasons = src
		}
	}
}

// WithDataset serves ds instead of loading files on Start.
func WithDataset(ds *model.Dataset) Option {
	return func(s *Service) {
		s.ds = ds
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		matchesPath:    "data/matches.csv",
		deliveriesPath: "data/deliveries.csv",
		seasons:        model.SeasonFromField,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the dataset once. Later calls return the first outcome
// without reading the files again.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return s.loadErr
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}

	if s.ds == nil {
		s.logger.Info(ctx, "loading dataset",
			logger.String("matches", s.matchesPath),
			logger.String("deliveries", s.deliveriesPath),
			logger.String("season_source", string(s.seasons)))

		ds, err := loader.Load(ctx, s.matchesPath, s.deliveriesPath,
			loader.WithSeasonSource(s.seasons),
			loader.WithLogger(s.logger.Named("loader")))
		if err != nil && ctx.Err() != nil {
			// a start cut short by ctx may be retried
			return err
		}
		s.ds, s.loadErr = ds, err
	}

	s.started = true
	s.loadedAt = time.Now()
	if s.loadErr != nil {
		return s.loadErr
	}

	s.logger.Info(ctx, "dashboard service started",
		logger.Int("matches", s.ds.MatchCount()),
		logger.Int("deliveries", s.ds.DeliveryCount()))
	return nil
}

// Stop releases nothing but is kept for symmetric lifecycle handling.
func (s *Service) Stop() {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.started && s.logger != nil {
		s.logger.Info(context.Background(), "dashboard service stopped")
	}
}

// Dataset returns the loaded data context, or the load error.
func (s *Service) Dataset() (*model.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch {
	case !s.started:
		return nil, ErrNotStarted
	case s.loadErr != nil:
		return nil, s.loadErr
	}
	return s.ds, nil
}

// Overview returns the headline numbers.
func (s *Service) Overview(_ context.Context) (stats.Overview, error) {
	ds, err := s.Dataset()
	if err != nil {
		return stats.Overview{}, err
	}
	defer observe("overview", time.Now(), 1)
	return stats.Summarize(ds), nil
}

// Board returns the first n entries of a board. n = 0 yields an empty list.
func (s *Service) Board(ctx context.Context, board Board, n int) ([]types.Entry, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	all, err := s.fullBoard(ctx, board)
	if err != nil {
		return nil, err
	}
	return stats.TopN(all, n), nil
}

// Rank returns the entry of one category on a board.
func (s *Service) Rank(ctx context.Context, board Board, category string) (types.Entry, error) {
	all, err := s.fullBoard(ctx, board)
	if err != nil {
		return types.Entry{}, err
	}
	for _, e := range all {
		if e.Category == category {
			return e, nil
		}
	}
	return types.Entry{}, fmt.Errorf("%w: %q on board %s", ErrNotFound, category, board)
}

func (s *Service) fullBoard(ctx context.Context, board Board) ([]types.Entry, error) {
	def, ok := boardDefs[board]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBoard, board)
	}
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	entries := def.compute(ds)
	observe(string(board), start, len(entries))
	s.log().Debug(ctx, "board computed",
		logger.String("board", string(board)),
		logger.Int("rows", len(entries)),
		logger.Duration("elapsed", time.Since(start)))
	return entries, nil
}

// WinRates returns the win-rate table of every team.
func (s *Service) WinRates(_ context.Context) ([]types.TeamRecord, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	out := stats.WinRates(ds)
	observe("win_rates", start, len(out))
	return out, nil
}

// Team returns the report of one team, or ErrNotFound when it never played.
func (s *Service) Team(_ context.Context, name string) (TeamReport, error) {
	ds, err := s.Dataset()
	if err != nil {
		return TeamReport{}, err
	}

	start := time.Now()
	rec, found := stats.Team(ds, name)
	if !found {
		return TeamReport{}, fmt.Errorf("%w: team %q", ErrNotFound, name)
	}
	report := TeamReport{
		Record:     rec,
		SeasonWins: stats.Chronological(stats.TeamSeasonWins(ds, name)),
		TopVenues:  stats.TopN(stats.TeamVenueWins(ds, name), teamTopVenues),
	}
	observe("team", start, len(report.SeasonWins)+len(report.TopVenues))
	return report, nil
}

// Teams returns every team name, sorted.
func (s *Service) Teams(_ context.Context) ([]string, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	return stats.Teams(ds), nil
}

// Seasons returns every season label, sorted.
func (s *Service) Seasons(_ context.Context) ([]string, error) {
	ds, err := s.Dataset()
	if err != nil {
		return nil, err
	}
	return stats.Seasons(ds), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := map[string]interface{}{
		"started":        s.started,
		"matchesPath":    s.matchesPath,
		"deliveriesPath": s.deliveriesPath,
		"seasonSource":   string(s.seasons),
		"dataLoaded":     s.started && s.loadErr == nil,
	}
	if !s.started {
		return out
	}

	out["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	if s.loadErr != nil {
		out["loadError"] = s.loadErr.Error()
		return out
	}
	out["matches"] = s.ds.MatchCount()
	out["deliveries"] = s.ds.DeliveryCount()
	out["orphanDeliveries"] = s.ds.Orphans()
	return out
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Get()
	}
	return s.logger
}

func observe(op string, start time.Time, rows int) {
	metrics.RecordAggregation(op, float64(time.Since(start).Microseconds())/1000, rows)
}
