package observer

import "time"

// Callout is a behavioral observer's injected event, declared at
// schedule-generation time and merged into the parent contract's schedule
// before lifecycle evaluation begins (§4.4).
type Callout struct {
	Time       time.Time
	Kind       string // contract.Kind, kept as string to avoid an import cycle
	PayoffHint float64
}

// Behavioral is a market observer that may additionally declare callout
// events. Its Get/Lookup behave like any other Market; Callouts is
// queried once by the schedule generator.
type Behavioral interface {
	Market
	Callouts() []Callout
}

// Scripted is a simple Behavioral backed by an in-memory Dict plus a fixed
// callout list — the common case for deterministic tests that need to
// inject a prepayment spike, a withdrawal, or an exercise at a known date.
type Scripted struct {
	Data      Dict
	CalloutList []Callout
}

func (s Scripted) Get(id string, t time.Time) float64 { return s.Data.Get(id, t) }

func (s Scripted) Lookup(id string, t time.Time) (float64, bool) { return s.Data.Lookup(id, t) }

func (s Scripted) Callouts() []Callout { return s.CalloutList }
