package actusjson

import (
	"fmt"
	"math"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
)

// Diff is one mismatch between a simulated event and its reference row.
type Diff struct {
	Index      int
	Field      string
	Expected   float64
	Actual     float64
	ReferenceTime string
}

// toleranceOK implements the §6 comparison tolerance: absolute 1.0,
// relative 1e-4, whichever bound is looser.
func toleranceOK(expected, actual float64) bool {
	diff := math.Abs(expected - actual)
	if diff <= 1.0 {
		return true
	}
	rel := diff / math.Max(math.Abs(expected), 1e-9)
	return rel <= 1e-4
}

// Compare checks tc.Results against a simulated event list, in order,
// field by field. A length mismatch still compares the overlapping
// prefix and adds one more Diff, at the first unmatched index, whose
// Field reads "length: expected N, got M".
func Compare(tc TestCase, events []contract.Event) ([]Diff, error) {
	var diffs []Diff
	n := len(tc.Results)
	if len(events) < n {
		n = len(events)
	}
	for i := 0; i < n; i++ {
		ref := tc.Results[i]
		ev := events[i]

		if contract.Kind(ref.Type) != ev.Kind {
			diffs = append(diffs, Diff{Index: i, Field: "type", ReferenceTime: ref.Time})
			continue
		}

		checks := []struct {
			field    string
			expected string
			actual   float64
		}{
			{"payoff", ref.Payoff, ev.Payoff},
			{"notionalPrincipal", ref.NotionalPrincipal, ev.StatePost.Notional},
			{"nominalInterestRate", ref.NominalInterestRate, ev.StatePost.NominalRate},
			{"accruedInterest", ref.AccruedInterest, ev.StatePost.AccruedInterest},
		}
		for _, c := range checks {
			if c.expected == "" {
				continue
			}
			exp, err := parseDecimal(c.expected)
			if err != nil {
				return nil, fmt.Errorf("actusjson: reference row %d field %s: %w", i, c.field, err)
			}
			if !toleranceOK(exp, c.actual) {
				diffs = append(diffs, Diff{Index: i, Field: c.field, Expected: exp, Actual: c.actual, ReferenceTime: ref.Time})
			}
		}
	}
	if len(tc.Results) != len(events) {
		diffs = append(diffs, Diff{Index: n, Field: fmt.Sprintf("length: expected %d, got %d", len(tc.Results), len(events))})
	}
	return diffs, nil
}

// LoadObservers builds an observer.TimeSeries from tc.DataObserved, ready
// to pass as a Market (and, wrapped in observer.Composite, alongside other
// sources) to engine.Create.
func LoadObservers(tc TestCase) (*observer.TimeSeries, error) {
	series := make(map[string][]observer.Sample, len(tc.DataObserved))
	for code, s := range tc.DataObserved {
		samples := make([]observer.Sample, 0, len(s.Data))
		for _, pt := range s.Data {
			t, err := parseTime(pt.Time)
			if err != nil {
				return nil, fmt.Errorf("actusjson: dataObserved[%s]: %w", code, err)
			}
			v, err := parseDecimal(pt.Value)
			if err != nil {
				return nil, fmt.Errorf("actusjson: dataObserved[%s]: %w", code, err)
			}
			samples = append(samples, observer.Sample{Time: t, Value: v})
		}
		series[code] = samples
	}
	return observer.NewTimeSeries(series), nil
}
