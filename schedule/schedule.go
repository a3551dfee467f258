// Package schedule implements the ACTUS schedule generator (§4.4): given
// an anchor, a cycle, a terminal date, and the active business-day
// convention, it produces a priority-ordered list of zeroed ContractEvents
// for one event family. Variant Schedulers (package variants) call this
// once per event family their contract type declares and splice in any
// single-fire events (IED, MD, PRD, TD, …) themselves.
package schedule

import (
	"time"

	"github.com/meenmo/actuskit/calendar"
	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/cycle"
	"github.com/meenmo/actuskit/observer"
)

// Family describes one event family's recurrence.
type Family struct {
	Kind   contract.Kind
	Anchor time.Time
	Cycle  string // cycle grammar string; empty means "single event at Anchor only"
	End    time.Time
	EOM    bool
}

// Expand resolves f's anchor+cycle+end into a sequence of zeroed events of
// kind f.Kind, business-day adjusted per conv/cal. When f.Cycle is empty
// it yields a single event at f.Anchor, whatever f.End holds (IED/MD/PRD/TD
// style single-fire families are usually constructed directly by callers
// instead, but this keeps Expand uniform).
func Expand(f Family, conv calendar.Convention, cal calendar.CalendarID) ([]contract.Event, error) {
	if f.Cycle == "" {
		shifted, calc := calendar.Adjust(cal, f.Anchor, conv)
		return []contract.Event{{EventTime: shifted, CalculationTime: calc, Kind: f.Kind}}, nil
	}

	c, err := cycle.Parse(f.Cycle)
	if err != nil {
		return nil, contract.NewScheduleError("", err.Error())
	}

	end := f.End
	if end.IsZero() {
		return nil, contract.NewScheduleError("", "schedule family requires a terminal date")
	}

	dates, err := cycle.Expand(f.Anchor, end, c, f.EOM)
	if err != nil {
		return nil, contract.NewScheduleError("", err.Error())
	}
	if len(dates) == 0 {
		return nil, contract.NewScheduleError("", "cycle expanded to an empty schedule")
	}

	events := make([]contract.Event, 0, len(dates))
	for _, d := range dates {
		shifted, calc := calendar.Adjust(cal, d, conv)
		events = append(events, contract.Event{EventTime: shifted, CalculationTime: calc, Kind: f.Kind})
	}
	return events, nil
}

// MergeCallouts appends one event per callout (kind parsed from the
// callout's Kind string) to events, for injection by a Behavioral observer
// before lifecycle evaluation begins.
func MergeCallouts(events []contract.Event, callouts []observer.Callout) []contract.Event {
	for _, c := range callouts {
		events = append(events, contract.Event{
			EventTime:       c.Time,
			CalculationTime: c.Time,
			Kind:            contract.Kind(c.Kind),
			Payoff:          c.PayoffHint,
			FromCallout:     true,
		})
	}
	return events
}

// Finalize sorts events by the universal (event_time, priority, sequence)
// order and assigns sequence numbers so ties are resolved deterministically
// by original insertion order within a timestamp/kind group.
func Finalize(events []contract.Event) []contract.Event {
	for i := range events {
		events[i].Sequence = i
	}
	contract.SortEvents(events)
	return events
}
