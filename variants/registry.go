package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
)

// Scheduler generates a variant's priority-ordered, zeroed event schedule
// from attributes, merging in any callouts the behavioral observer
// declares. beh may be nil.
type Scheduler func(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error)

// Initializer builds the contract's initial state (state at/just after
// IED, or the as-if-IED-occurred state per the pre-existing-contract rule
// of spec.md §3 when InitialExchangeDate precedes StatusDate).
type Initializer func(attrs contract.Attributes) (contract.State, error)

// POF computes a single event's payoff. It must not mutate state.
type POF func(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error)

// STF computes the post-event state. payoff is the value the matching POF
// call already produced for this event — most STFs ignore it, but a few
// (UMP's injected deposits/withdrawals, FUTUR's mark-to-market) fold it
// directly into state rather than recomputing it. STF must return a new
// State.
type STF func(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error)

// Accrual implements the between-event accrual step of spec.md §4.6: given
// the state as of its last event and a target time, return the state with
// interest accrued up to that time.
type Accrual func(state contract.State, attrs contract.Attributes, to time.Time) contract.State

// Entry is one variant's full (Scheduler, Initializer, POF, STF, Accrue)
// bundle, as required by spec.md §4.2/§9: "given (variant, event_kind),
// resolve to a function" — here realized as a static table of function
// values rather than a tagged-union match or virtual dispatch, which the
// design notes call an equivalent representation.
type Entry struct {
	Schedule   Scheduler
	Initialize Initializer
	POF        POF
	STF        STF
	Accrue     Accrual
}

// Table is the static contract_type -> Entry registry, populated by each
// variant file's init().
var Table = map[contract.Type]Entry{}

func register(t contract.Type, e Entry) {
	Table[t] = e
}

// Lookup returns the Entry for t, or an InvalidAttributes error if t names
// no registered contract type.
func Lookup(t contract.Type) (Entry, error) {
	e, ok := Table[t]
	if !ok {
		return Entry{}, contract.NewAttributesError("", "unknown contract_type: "+string(t))
	}
	return e, nil
}
