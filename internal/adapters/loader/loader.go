// Package loader reads the matches and deliveries CSV files into a Dataset.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/ipldash/internal/domain/model"
	"github.com/okian/ipldash/pkg/logger"
	"github.com/okian/ipldash/pkg/metrics"
)

// ctxCheckInterval is how many rows are read between cancellation checks.
const ctxCheckInterval = 1024

type loader struct {
	seasons model.SeasonSource
	logger  logger.Logger
}

// Load reads both files and builds the Dataset. Failures are reported as
// *LoadError; a cancelled ctx aborts the read with ctx.Err().
func Load(ctx context.Context, matchesPath, deliveriesPath string, opts ...Option) (*model.Dataset, error) {
	l := &loader{seasons: model.SeasonFromField}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logger.Get().Named("loader")
	}

	start := time.Now()
	ds, err := l.load(ctx, matchesPath, deliveriesPath)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			metrics.RecordDatasetLoadError(le.Reason())
		}
		l.logger.Error(ctx, "dataset load failed", logger.Error(err))
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.UpdateDatasetRows("matches", ds.MatchCount())
	metrics.UpdateDatasetRows("deliveries", ds.DeliveryCount())
	metrics.UpdateOrphanDeliveries(ds.Orphans())
	metrics.RecordDatasetLoad(float64(elapsed.Microseconds())/1000, time.Now().Unix())

	l.logger.Info(ctx, "dataset loaded",
		logger.Int("matches", ds.MatchCount()),
		logger.Int("deliveries", ds.DeliveryCount()),
		logger.String("season_source", string(l.seasons)),
		logger.Duration("elapsed", elapsed))
	if n := ds.Orphans(); n > 0 {
		l.logger.Warn(ctx, "deliveries reference unknown matches", logger.Int("orphans", n))
	}

	return ds, nil
}

func (l *loader) load(ctx context.Context, matchesPath, deliveriesPath string) (*model.Dataset, error) {
	required := matchColumns
	if l.seasons == model.SeasonFromField {
		required = append([]string{colSeason}, matchColumns...)
	}

	var matches []model.Match
	err := readTable(ctx, matchesPath, required, nil, func(r *row) {
		matches = append(matches, l.match(r))
	})
	if err != nil {
		return nil, err
	}

	var deliveries []model.Delivery
	err = readTable(ctx, deliveriesPath, deliveryColumns, deliveryAliases, func(r *row) {
		deliveries = append(deliveries, delivery(r))
	})
	if err != nil {
		return nil, err
	}

	return model.NewDataset(matches, deliveries), nil
}

func (l *loader) match(r *row) model.Match {
	m := model.Match{
		ID:            r.integer(colID),
		Date:          r.date(colDate),
		Venue:         r.str(colVenue),
		City:          r.str(colCity),
		Team1:         r.str(colTeam1),
		Team2:         r.str(colTeam2),
		TossWinner:    r.str(colTossWinner),
		TossDecision:  r.str(colTossDecision),
		Winner:        r.str(colWinner),
		ResultLabel:   r.str(colResult),
		Margin:        r.optFloat(colResultMargin),
		PlayerOfMatch: r.str(colPlayerOfMatch),
	}

	if l.seasons == model.SeasonFromField {
		m.Season = r.required(colSeason)
	} else if !m.Date.IsZero() {
		m.Season = strconv.Itoa(m.Date.Year())
	}

	if m.City == "" {
		m.City = model.Unknown
	}
	if m.Winner == "" {
		m.Winner = model.NoResult
	}
	if m.PlayerOfMatch == "" {
		m.PlayerOfMatch = model.Unknown
	}
	m.Result = model.ClassifyResult(m.ResultLabel, m.Winner)
	return m
}

func delivery(r *row) model.Delivery {
	d := model.Delivery{
		MatchID:         r.integer(colMatchID),
		Inning:          r.integer(colInning),
		Over:            r.integer(colOver),
		Ball:            r.integer(colBall),
		BattingTeam:     r.str(colBattingTeam),
		BowlingTeam:     r.str(colBowlingTeam),
		Batter:          r.str(colBatter),
		Bowler:          r.str(colBowler),
		BatterRuns:      r.integer(colBatsmanRuns),
		ExtraRuns:       r.optInt(colExtraRuns),
		TotalRuns:       r.integer(colTotalRuns),
		ExtrasType:      r.str(colExtrasType),
		DismissalKind:   r.str(colDismissalKind),
		PlayerDismissed: r.str(colPlayerDismissed),
		Fielder:         r.str(colFielder),
	}
	if r.has(colIsWicket) {
		d.IsWicket = r.flag(colIsWicket)
	} else {
		d.IsWicket = d.PlayerDismissed != ""
	}
	return d
}

// readTable reads path into a string-typed data frame, checks the header
// for the required columns and hands fn one row at a time. The header is
// kept as row 0 of the frame so that a header-only file is a valid empty
// table; row i of the frame is line i+1 of the file.
func readTable(ctx context.Context, path string, required []string, aliases map[string]string, fn func(r *row)) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	defer f.Close()

	df := dataframe.ReadCSV(&ctxReader{ctx: ctx, r: f},
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naValues),
	)
	if err := df.Error(); err != nil {
		return frameError(ctx, path, err)
	}

	names := df.Names()
	columns := make([]series.Series, len(names))
	header := make([]string, len(names))
	for i, name := range names {
		columns[i] = df.Col(name)
		header[i] = cell(columns[i], 0)
	}

	cols := indexHeader(header, aliases)
	for _, c := range required {
		if _, ok := cols[c]; !ok {
			return &LoadError{Path: path, Line: 1, Column: c, Err: ErrMissingColumn}
		}
	}

	r := &row{path: path, cols: cols, frame: columns}
	for i := 1; i < df.Nrow(); i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
		}
		r.idx = i
		r.line = i + 1
		fn(r)
		if r.err != nil {
			return r.err
		}
	}
	return nil
}

// frameError classifies a failed ReadCSV. Read and parse failures keep
// their cause; the frame reports a file without records as an error too.
func frameError(ctx context.Context, path string, err error) error {
	if cerr := ctx.Err(); cerr != nil {
		return fmt.Errorf("load %s: %w", path, cerr)
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &LoadError{Path: path, Line: pe.Line, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return &LoadError{Path: path, Err: fmt.Errorf("%w: %w", ErrOpen, err)}
	}
	return &LoadError{Path: path, Line: 1, Err: ErrEmpty}
}

// ctxReader fails reads once ctx is done, which aborts ReadCSV mid-file.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// cell returns row i of s, or "" for a missing value.
func cell(s series.Series, i int) string {
	e := s.Elem(i)
	if e.IsNA() {
		return ""
	}
	return e.String()
}

// row reads typed cells from one frame row. The first failure sticks in
// err and later reads return zero values.
type row struct {
	path  string
	cols  map[string]int
	frame []series.Series
	idx   int
	line  int
	err   error
}

func (r *row) has(col string) bool {
	_, ok := r.cols[col]
	return ok
}

// str returns the trimmed cell, or "" when the column is absent or the
// cell holds a missing-value token.
func (r *row) str(col string) string {
	i, ok := r.cols[col]
	if !ok {
		return ""
	}
	v := strings.TrimSpace(cell(r.frame[i], r.idx))
	if isMissing(v) {
		return ""
	}
	return v
}

func (r *row) required(col string) string {
	v := r.str(col)
	if v == "" {
		r.fail(col, errors.New("empty value"))
	}
	return v
}

func (r *row) integer(col string) int {
	v := r.required(col)
	if r.err != nil {
		return 0
	}
	return r.parseInt(col, v)
}

func (r *row) optInt(col string) int {
	v := r.str(col)
	if v == "" || r.err != nil {
		return 0
	}
	return r.parseInt(col, v)
}

func (r *row) parseInt(col, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		// some exports write integral columns as floats
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			r.fail(col, err)
			return 0
		}
		n = int(f)
	}
	return n
}

func (r *row) optFloat(col string) float64 {
	v := r.str(col)
	if v == "" || r.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(col, err)
		return 0
	}
	return f
}

func (r *row) flag(col string) bool {
	v := r.str(col)
	if v == "" || r.err != nil {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.fail(col, err)
		return false
	}
	return b
}

func (r *row) date(col string) time.Time {
	v := r.required(col)
	if r.err != nil {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	r.fail(col, fmt.Errorf("unrecognised date %q", v))
	return time.Time{}
}

func (r *row) fail(col string, err error) {
	if r.err != nil {
		return
	}
	r.err = &LoadError{Path: r.path, Line: r.line, Column: col, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
}
