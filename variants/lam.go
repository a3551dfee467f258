package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.LAM, Entry{
		Schedule:   lamSchedule,
		Initialize: lamInitialize,
		POF:        lamPOF,
		STF:        lamSTF,
		Accrue:     AccrueSingleLeg,
	})
}

// lamSchedule extends pamSchedule with a recurring PR family, anchored on
// CyclePrincipalRedemption (falling back to IED like the other families).
func lamSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "LAM requires maturity_date")
	}

	var events []contract.Event
	if e := singleEvent(contract.KindIED, attrs.InitialExchangeDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}

	families := []struct {
		kind contract.Kind
		cyc  contract.Cyc
	}{
		{contract.KindIP, attrs.CycleInterest},
		{contract.KindPR, attrs.CyclePrincipalRedemption},
		{contract.KindRR, attrs.CycleRateReset},
		{contract.KindSC, attrs.CycleScalingIndex},
		{contract.KindFP, attrs.CycleFee},
	}
	for _, f := range families {
		anchor := f.cyc.Anchor
		if anchor.IsZero() {
			anchor = attrs.InitialExchangeDate
		}
		fam, err := expandFamily(f.kind, anchor, f.cyc.Cycle, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.InitialExchangeDate, end)
		if err != nil {
			return nil, err
		}
		events = append(events, fam...)
	}

	if e := singleEvent(contract.KindPRD, attrs.PurchaseDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if e := singleEvent(contract.KindTD, attrs.TerminationDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if e := singleEvent(contract.KindMD, end, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}

	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func lamInitialize(attrs contract.Attributes) (contract.State, error) {
	s, err := pamInitialize(attrs)
	if err != nil {
		return s, err
	}
	s.NextPrincipalPayment = R(attrs) * attrs.NextPrincipalRedemptionPayment
	return s, nil
}

func lamPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind == contract.KindPR {
		return state.NextPrincipalPayment, nil
	}
	return pamPOF(kind, state, attrs, t, mo, co)
}

// lamSTF adds STF_PR to pamSTF's table: Nt decreases by Prnxt, capped so
// the notional never crosses zero; any uncapped remainder is left for MD
// to absorb rather than fed back into Prnxt, since a LAM's schedule fixes
// Prnxt per period rather than recomputing it from the remaining term.
func lamSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	if kind != contract.KindPR {
		return pamSTF(kind, state, attrs, t, payoff, mo, co)
	}
	s := state.Clone()
	newNt, _ := capNonNegativeNotional(s.Notional, s.NextPrincipalPayment)
	s.Notional = newNt
	s.StatusDate = t
	return s, nil
}
