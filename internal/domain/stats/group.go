// Package stats holds the pure aggregations the dashboard is built from.
//
// Every function reads a *model.Dataset and returns a fresh result; none
// of them error. Ordered results are sorted by value descending, ties keep
// the order in which their key first appeared, and ranks run 1..n.
package stats

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/okian/ipldash/internal/domain/types"
)

// Columns of the frame handed to the group-by. Keys travel as integer
// codes in first-appearance order so labels never go through the frame's
// string and NaN handling.
const (
	keyColumn   = "key"
	valueColumn = "value"
)

// GroupCount counts rows per key. Rows with an empty key are skipped.
func GroupCount[T any](rows iter.Seq[T], key func(T) string) []types.Entry {
	return group(rows, key, func(T) float64 { return 1 }, dataframe.Aggregation_COUNT)
}

// GroupSum sums value per key. Rows with an empty key are skipped.
func GroupSum[T any](rows iter.Seq[T], key func(T) string, value func(T) float64) []types.Entry {
	return group(rows, key, value, dataframe.Aggregation_SUM)
}

func group[T any](rows iter.Seq[T], key func(T) string, value func(T) float64, how dataframe.AggregationType) []types.Entry {
	codes := make(map[string]int)
	var labels []string
	var keys []int
	var values []float64
	for r := range rows {
		k := key(r)
		if k == "" {
			continue
		}
		c, ok := codes[k]
		if !ok {
			c = len(labels)
			codes[k] = c
			labels = append(labels, k)
		}
		keys = append(keys, c)
		values = append(values, value(r))
	}
	if len(keys) == 0 {
		return []types.Entry{}
	}

	out, err := aggregate(labels, keys, values, how)
	if err != nil {
		// only reachable if the frame layout above is wrong
		panic(fmt.Sprintf("stats: %v", err))
	}
	rank(out)
	return out
}

// aggregate groups the (key, value) frame by key and applies how to each
// group. The result is indexed by key code.
func aggregate(labels []string, keys []int, values []float64, how dataframe.AggregationType) ([]types.Entry, error) {
	df := dataframe.New(
		series.New(keys, series.Int, keyColumn),
		series.New(values, series.Float, valueColumn),
	)
	groups := df.GroupBy(keyColumn)
	if groups.Err != nil {
		return nil, fmt.Errorf("group by %s: %w", keyColumn, groups.Err)
	}
	agg := groups.Aggregation([]dataframe.AggregationType{how}, []string{valueColumn})
	if err := agg.Error(); err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", how, err)
	}

	got, err := agg.Col(keyColumn).Int()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", keyColumn, err)
	}
	sums := agg.Col(fmt.Sprintf("%s_%s", valueColumn, how)).Float()
	if len(sums) != len(got) {
		return nil, fmt.Errorf("aggregate %s: %d keys, %d values", how, len(got), len(sums))
	}

	out := make([]types.Entry, len(labels))
	for i, c := range got {
		out[c] = types.Entry{Category: labels[c], Value: sums[i]}
	}
	return out, nil
}

// rank sorts entries by value descending, keeping insertion order for
// ties, and numbers them from 1.
func rank(entries []types.Entry) {
	slices.SortStableFunc(entries, func(a, b types.Entry) int {
		return cmp.Compare(b.Value, a.Value)
	})
	renumber(entries)
}

func renumber(entries []types.Entry) {
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

// TopN returns the first n entries. n <= 0 yields an empty result and n
// past the end yields every entry.
func TopN(entries []types.Entry, n int) []types.Entry {
	if n <= 0 {
		return []types.Entry{}
	}
	return slices.Clone(entries[:min(n, len(entries))])
}

// Chronological returns a copy ordered by category ascending and ranked by
// that position. Season labels sort chronologically this way.
func Chronological(entries []types.Entry) []types.Entry {
	out := slices.Clone(entries)
	if out == nil {
		out = []types.Entry{}
	}
	slices.SortStableFunc(out, func(a, b types.Entry) int {
		return cmp.Compare(a.Category, b.Category)
	})
	renumber(out)
	return out
}

// Filter yields the rows keep accepts.
func Filter[T any](rows iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := range rows {
			if keep(r) && !yield(r) {
				return
			}
		}
	}
}
