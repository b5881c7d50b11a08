package model

import (
	"iter"
	"slices"
)

// Dataset is the immutable data context every aggregation reads from.
// It owns copies of both tables; accessors yield values so callers
// cannot reach the backing slices.
type Dataset struct {
	matches    []Match
	deliveries []Delivery
	byID       map[int]int
	orphans    int
}

// NewDataset copies matches and deliveries and joins each delivery to its
// match on the match id to fill Delivery.Season. When two matches share an
// id the first one wins so runs are never counted twice. Deliveries with an
// unknown match id keep an empty season and are counted as orphans.
func NewDataset(matches []Match, deliveries []Delivery) *Dataset {
	ds := &Dataset{
		matches:    slices.Clone(matches),
		deliveries: slices.Clone(deliveries),
		byID:       make(map[int]int, len(matches)),
	}
	if ds.matches == nil {
		ds.matches = []Match{}
	}
	if ds.deliveries == nil {
		ds.deliveries = []Delivery{}
	}

	for i, m := range ds.matches {
		if _, dup := ds.byID[m.ID]; !dup {
			ds.byID[m.ID] = i
		}
	}

	for i := range ds.deliveries {
		idx, ok := ds.byID[ds.deliveries[i].MatchID]
		if !ok {
			ds.deliveries[i].Season = ""
			ds.orphans++
			continue
		}
		ds.deliveries[i].Season = ds.matches[idx].Season
	}

	return ds
}

// Matches yields every match in file order.
func (d *Dataset) Matches() iter.Seq[Match] {
	if d == nil {
		return slices.Values([]Match(nil))
	}
	return slices.Values(d.matches)
}

// Deliveries yields every delivery in file order.
func (d *Dataset) Deliveries() iter.Seq[Delivery] {
	if d == nil {
		return slices.Values([]Delivery(nil))
	}
	return slices.Values(d.deliveries)
}

// Match looks a match up by id.
func (d *Dataset) Match(id int) (Match, bool) {
	if d == nil {
		return Match{}, false
	}
	idx, ok := d.byID[id]
	if !ok {
		return Match{}, false
	}
	return d.matches[idx], true
}

// MatchCount returns the number of match rows.
func (d *Dataset) MatchCount() int {
	if d == nil {
		return 0
	}
	return len(d.matches)
}

// DeliveryCount returns the number of delivery rows.
func (d *Dataset) DeliveryCount() int {
	if d == nil {
		return 0
	}
	return len(d.deliveries)
}

// Orphans returns the number of deliveries whose match id is unknown.
func (d *Dataset) Orphans() int {
	if d == nil {
		return 0
	}
	return d.orphans
}
