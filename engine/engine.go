// Package engine implements the ACTUS lifecycle driver (§4.6) and the
// programmatic entrypoint (§6): Create builds a Contract from attributes
// plus observers, and Contract.Simulate runs the priority-ordered
// event loop, accruing between events and invoking each event's POF then
// STF in turn.
package engine

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/variants"
)

// Option configures a Contract at Create time.
type Option func(*Contract)

// WithLogger attaches a zerolog.Logger the engine writes structured,
// per-event trace lines to during Simulate. The zero value (a disabled
// logger) is used when no option is given, so logging is strictly opt-in
// and costs nothing when the caller doesn't want it.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Contract) { c.log = l }
}

// WithRunID overrides the auto-generated correlation id stamped onto every
// event this Contract emits. Absent this option, Create generates one via
// uuid.NewString — RunID has no bearing on event ordering or payoffs; it
// exists purely to let a caller correlate emitted events back to one
// simulation invocation in logs or stored results.
func WithRunID(id string) Option {
	return func(c *Contract) { c.runID = id }
}

// Contract is one ACTUS contract bound to its attributes, market/behavioral
// observer, and (for composites) child observer.
type Contract struct {
	attrs   contract.Attributes
	entry   variants.Entry
	market  observer.Market
	behav   observer.Behavioral
	child   observer.Child
	runID   string
	log     zerolog.Logger
}

// Create validates attrs, resolves the variant's registry Entry, and
// returns a ready-to-schedule Contract. childObserver may be nil for
// non-composite variants.
func Create(attrs contract.Attributes, marketObserver observer.Market, childObserver observer.Child, opts ...Option) (*Contract, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}
	entry, err := variants.Lookup(attrs.ContractType)
	if err != nil {
		return nil, err
	}
	if marketObserver == nil {
		marketObserver = observer.Constant{Value: 0}
	}

	c := &Contract{
		attrs:  attrs,
		entry:  entry,
		market: marketObserver,
		child:  childObserver,
		runID:  uuid.NewString(),
		log:    zerolog.Nop(),
	}
	if beh, ok := marketObserver.(observer.Behavioral); ok {
		c.behav = beh
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Schedule returns the variant's priority-ordered, zeroed event list.
func (c *Contract) Schedule() ([]contract.Event, error) {
	return c.entry.Schedule(c.attrs, c.behav)
}

// InitialState returns the contract's state at (or as-if-at, per §3's
// pre-existing-contract rule) InitialExchangeDate.
func (c *Contract) InitialState() (contract.State, error) {
	return c.entry.Initialize(c.attrs)
}

// SimulationResult is the materialized output of Contract.Simulate: the
// full event list with pre/post state snapshots and payoffs filled in.
type SimulationResult struct {
	ContractID string
	RunID      string
	Events     []contract.Event
}

// Simulate runs the driver loop of §4.6 to completion, or returns a
// simulation-stage *contract.Error wrapping whatever event/state it failed
// on. Per §7's policy, events materialized before a failure are still
// returned alongside the error so a caller can inspect partial progress.
func (c *Contract) Simulate() (SimulationResult, error) {
	schedule, err := c.Schedule()
	if err != nil {
		return SimulationResult{}, err
	}
	state, err := c.InitialState()
	if err != nil {
		return SimulationResult{}, err
	}

	result := SimulationResult{ContractID: c.attrs.ContractID, RunID: c.runID}
	for _, e := range schedule {
		if e.Kind == contract.KindIED && e.EventTime.Before(c.attrs.StatusDate) {
			// Pre-existing contract: InitialState already holds the
			// as-if-IED state, so the IED event itself is not simulated.
			continue
		}
		statePre := c.entry.Accrue(state, c.attrs, e.CalculationTime)

		var payoff float64
		if e.FromCallout {
			payoff = e.Payoff
		} else {
			payoff, err = c.entry.POF(e.Kind, statePre, c.attrs, e.CalculationTime, c.market, c.child)
			if err != nil {
				result.Events = append(result.Events, e)
				return result, wrapSimError(c.attrs.ContractID, e, err)
			}
		}

		newState, err := c.entry.STF(e.Kind, statePre, c.attrs, e.EventTime, payoff, c.market, c.child)
		if err != nil {
			result.Events = append(result.Events, e)
			return result, wrapSimError(c.attrs.ContractID, e, err)
		}

		e.Payoff = payoff
		e.StatePre = statePre
		e.StatePost = newState
		e.Currency = c.attrs.Currency
		e.RunID = c.runID
		result.Events = append(result.Events, e)

		c.log.Debug().
			Str("contract_id", c.attrs.ContractID).
			Str("event_kind", string(e.Kind)).
			Time("event_time", e.EventTime).
			Float64("payoff", payoff).
			Msg("event simulated")

		state = newState
	}
	return result, nil
}

func wrapSimError(contractID string, e contract.Event, err error) error {
	if ae, ok := err.(*contract.Error); ok {
		if ae.EventKind == "" {
			ae.EventKind = e.Kind
			ae.EventTime = e.EventTime
		}
		return ae
	}
	return contract.NewObserverFailureError(contractID, e.EventTime, e.Kind, err)
}
