package observer_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/observer"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestConstantAlwaysAnswers(t *testing.T) {
	t.Parallel()
	c := observer.Constant{Value: 42}
	if got := c.Get("anything", date(2024, time.January, 1)); got != 42 {
		t.Fatalf("Get = %v, want 42", got)
	}
	if v, ok := c.Lookup("anything", date(2024, time.January, 1)); !ok || v != 42 {
		t.Fatalf("Lookup = (%v, %v), want (42, true)", v, ok)
	}
}

func TestDictMissingKeyIsZeroButNotFound(t *testing.T) {
	t.Parallel()
	d := observer.Dict{"USD-LIBOR": 0.05}
	if got := d.Get("missing", time.Time{}); got != 0 {
		t.Fatalf("Get(missing) = %v, want 0", got)
	}
	if _, ok := d.Lookup("missing", time.Time{}); ok {
		t.Fatalf("Lookup(missing) reported found, want not-found")
	}
	if v, ok := d.Lookup("USD-LIBOR", time.Time{}); !ok || v != 0.05 {
		t.Fatalf("Lookup(USD-LIBOR) = (%v, %v), want (0.05, true)", v, ok)
	}
}

func TestTimeSeriesPiecewiseConstant(t *testing.T) {
	t.Parallel()
	ts := observer.NewTimeSeries(map[string][]observer.Sample{
		"RATE": {
			{Time: date(2024, time.March, 1), Value: 0.03},
			{Time: date(2024, time.January, 1), Value: 0.01},
			{Time: date(2024, time.June, 1), Value: 0.05},
		},
	})

	// Before the first sample: first sample's value.
	if got := ts.Get("RATE", date(2023, time.December, 1)); got != 0.01 {
		t.Errorf("before first sample: got %v, want 0.01", got)
	}
	// Exactly on a sample.
	if got := ts.Get("RATE", date(2024, time.March, 1)); got != 0.03 {
		t.Errorf("on sample: got %v, want 0.03", got)
	}
	// Between samples: the greatest sample <= t.
	if got := ts.Get("RATE", date(2024, time.April, 15)); got != 0.03 {
		t.Errorf("between samples: got %v, want 0.03", got)
	}
	// After the last sample: last sample's value.
	if got := ts.Get("RATE", date(2025, time.January, 1)); got != 0.05 {
		t.Errorf("after last sample: got %v, want 0.05", got)
	}
}

func TestTimeSeriesUnknownIdentifierNotFound(t *testing.T) {
	t.Parallel()
	ts := observer.NewTimeSeries(map[string][]observer.Sample{})
	if _, ok := ts.Lookup("RATE", date(2024, time.January, 1)); ok {
		t.Fatalf("Lookup on unknown identifier reported found")
	}
}

func TestCompositePrefersFirstLookupHit(t *testing.T) {
	t.Parallel()
	empty := observer.Dict{}
	present := observer.Dict{"RATE": 0.07}
	c := observer.Composite{Observers: []observer.Market{empty, present}}
	if got := c.Get("RATE", time.Time{}); got != 0.07 {
		t.Fatalf("Composite.Get = %v, want 0.07 from the second observer", got)
	}
}

func TestCompositeFallsBackToZeroWithNoOpinion(t *testing.T) {
	t.Parallel()
	c := observer.Composite{Observers: []observer.Market{observer.Dict{}, observer.Dict{}}}
	v, ok := c.Lookup("RATE", time.Time{})
	if ok || v != 0 {
		t.Fatalf("Lookup = (%v, %v), want (0, false) when no constituent has an opinion", v, ok)
	}
}

// plainMarket implements observer.Market only, so Composite must fall back
// to its non-zero-as-opinion heuristic rather than type-asserting Lookup.
type plainMarket float64

func (p plainMarket) Get(string, time.Time) float64 { return float64(p) }

func TestCompositeNonZeroGetTreatedAsOpinionForPlainMarket(t *testing.T) {
	t.Parallel()
	c := observer.Composite{Observers: []observer.Market{plainMarket(9)}}
	if v, ok := c.Lookup("x", time.Time{}); !ok || v != 9 {
		t.Fatalf("Lookup = (%v, %v), want (9, true)", v, ok)
	}
}

func TestCompositePlainMarketZeroIsNotAnOpinion(t *testing.T) {
	t.Parallel()
	c := observer.Composite{Observers: []observer.Market{plainMarket(0)}}
	if _, ok := c.Lookup("x", time.Time{}); ok {
		t.Fatalf("a zero Get from a plain Market must not count as an opinion")
	}
}
