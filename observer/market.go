// Package observer implements the ACTUS observer abstractions: typed
// queries for market/behavioral data (§4.3) and the child-contract
// observer used by composite resolution (§4.7).
package observer

import (
	"sort"
	"time"
)

// Market is total: Get must return some value for any (identifier, time)
// pair, defaulting to 0 when the observer has no opinion.
type Market interface {
	Get(identifier string, t time.Time) float64
}

// Lookup is the non-total counterpart Composite uses to detect "this
// observer actually had data" rather than conflating an absent answer with
// a legitimately-observed zero.
type Lookup interface {
	Lookup(identifier string, t time.Time) (float64, bool)
}

// Constant always returns the same scalar regardless of identifier or time.
type Constant struct {
	Value float64
}

func (c Constant) Get(string, time.Time) float64 { return c.Value }
func (c Constant) Lookup(string, time.Time) (float64, bool) { return c.Value, true }

// Dict is a map keyed by identifier; missing keys return 0.
type Dict map[string]float64

func (d Dict) Get(id string, _ time.Time) float64 { return d[id] }

func (d Dict) Lookup(id string, _ time.Time) (float64, bool) {
	v, ok := d[id]
	return v, ok
}

// Sample is one {time, value} point of a TimeSeries.
type Sample struct {
	Time  time.Time
	Value float64
}

// TimeSeries holds a sorted sample list per identifier with
// piecewise-constant interpolation: the value at a query time is the value
// of the greatest sample whose time <= query time; before the first
// sample, the first sample's value is returned.
type TimeSeries struct {
	series map[string][]Sample
}

// NewTimeSeries builds a TimeSeries, sorting each identifier's samples by
// time.
func NewTimeSeries(series map[string][]Sample) *TimeSeries {
	ts := &TimeSeries{series: make(map[string][]Sample, len(series))}
	for id, samples := range series {
		cp := make([]Sample, len(samples))
		copy(cp, samples)
		sort.Slice(cp, func(i, j int) bool { return cp[i].Time.Before(cp[j].Time) })
		ts.series[id] = cp
	}
	return ts
}

func (ts *TimeSeries) Get(id string, t time.Time) float64 {
	v, _ := ts.Lookup(id, t)
	return v
}

func (ts *TimeSeries) Lookup(id string, t time.Time) (float64, bool) {
	samples, ok := ts.series[id]
	if !ok || len(samples) == 0 {
		return 0, false
	}
	if t.Before(samples[0].Time) {
		return samples[0].Value, true
	}
	// greatest sample with Time <= t
	i := sort.Search(len(samples), func(i int) bool { return samples[i].Time.After(t) })
	return samples[i-1].Value, true
}

// Composite holds an ordered list of observers; Get/Lookup return the
// first non-default (i.e. Lookup-true) answer, falling back to 0 when none
// of the constituents has an opinion.
type Composite struct {
	Observers []Market
}

func (c Composite) Get(id string, t time.Time) float64 {
	v, _ := c.Lookup(id, t)
	return v
}

func (c Composite) Lookup(id string, t time.Time) (float64, bool) {
	for _, o := range c.Observers {
		if l, ok := o.(Lookup); ok {
			if v, found := l.Lookup(id, t); found {
				return v, true
			}
			continue
		}
		// Plain Market without Lookup: treat any non-zero answer as
		// "had an opinion", consistent with Dict's missing-key convention.
		if v := o.Get(id, t); v != 0 {
			return v, true
		}
	}
	return 0, false
}
