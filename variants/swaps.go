package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.SWAPS, Entry{
		Schedule:   swapsSchedule,
		Initialize: swapsInitialize,
		POF:        swapsPOF,
		STF:        swapsSTF,
		Accrue:     NoAccrual,
	})
}

// SWAPS holds no cashflow-bearing state of its own: the composite resolver
// (package engine) simulates the FirstLeg/SecondLeg children named in
// attrs.ContractStructure before this parent runs, and the child observer
// passed to swapsPOF exposes their simulated event streams. This Schedule
// only lays down the netting cadence (attrs.CycleInterest, the same family
// every period-paying variant uses); it carries no events of its own when
// that cycle is empty, which is valid for a SWAPS composed entirely of
// non-amortizing legs that settle only through their own contracts.
func swapsSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "SWAPS requires maturity_date or horizon_date")
	}
	var events []contract.Event
	if e := singleEvent(contract.KindIED, attrs.InitialExchangeDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if attrs.CycleInterest.Cycle != "" {
		anchor := attrs.CycleInterest.Anchor
		if anchor.IsZero() {
			anchor = attrs.InitialExchangeDate
		}
		fam, err := expandFamily(contract.KindIP, anchor, attrs.CycleInterest.Cycle, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.InitialExchangeDate, end)
		if err != nil {
			return nil, err
		}
		events = append(events, fam...)
	}
	if e := singleEvent(contract.KindMD, end, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func swapsInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.StatusDate = attrs.StatusDate
	s.MaturityDate = attrs.EffectiveMaturity()
	return s, nil
}

// swapsPOF nets the two legs at each netting date by summing every
// already-signed child payoff the FirstLeg/SecondLeg contracts reported at
// exactly t (one leg's inflow against the other's outflow, since each
// child's own ContractRole already signs its payoffs). A child whose own
// cycle does not fall on t simply contributes 0 for that date.
func swapsPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindIP {
		return 0, nil
	}
	firstID, ok := attrs.ContractStructure["FirstLeg"]
	if !ok {
		return 0, contract.NewMissingChildError(attrs.ContractID, "FirstLeg")
	}
	secondID, ok := attrs.ContractStructure["SecondLeg"]
	if !ok {
		return 0, contract.NewMissingChildError(attrs.ContractID, "SecondLeg")
	}
	first, err := legPayoffAt(co, firstID, t)
	if err != nil {
		return 0, err
	}
	second, err := legPayoffAt(co, secondID, t)
	if err != nil {
		return 0, err
	}
	return first + second, nil
}

// legPayoffAt sums the payoffs of every one of child id's own events whose
// event_time equals t exactly, since a leg's own schedule can coincide two
// distinct event kinds (e.g. IP and RR) on the same netting date.
func legPayoffAt(co observer.Child, id string, t time.Time) (float64, error) {
	events, err := co.Events(id)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range events {
		if e.EventTime.Equal(t) {
			total += e.Payoff
		}
	}
	return total, nil
}

func swapsSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	s.StatusDate = t
	return s, nil
}
