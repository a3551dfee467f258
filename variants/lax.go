package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.LAX, Entry{
		Schedule:   laxSchedule,
		Initialize: laxInitialize,
		POF:        laxPOF,
		STF:        laxSTF,
		Accrue:     AccrueSingleLeg,
	})
}

// laxSchedule is lamSchedule with the PR family replaced by one PR event
// per entry of attrs.PrincipalRedemptionSchedule.
func laxSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "LAX requires maturity_date")
	}
	if len(attrs.PrincipalRedemptionSchedule) == 0 {
		return nil, contract.NewScheduleError(attrs.ContractID, "LAX requires a non-empty principal_redemption_schedule")
	}

	var events []contract.Event
	if e := singleEvent(contract.KindIED, attrs.InitialExchangeDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}

	for _, pt := range attrs.PrincipalRedemptionSchedule {
		if pt.Date.Equal(end) {
			continue
		}
		if e := singleEvent(contract.KindPR, pt.Date, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
			events = append(events, *e)
		}
	}

	families := []struct {
		kind contract.Kind
		cyc  contract.Cyc
	}{
		{contract.KindIP, attrs.CycleInterest},
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

func laxInitialize(attrs contract.Attributes) (contract.State, error) {
	return pamInitialize(attrs)
}

// laxPOF resolves Prnxt for the PR event firing at t from the explicit
// schedule rather than a state cell, since LAX never maintains a running
// Prnxt between events.
func laxPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind == contract.KindPR {
		return laxAmountAt(attrs, t), nil
	}
	return pamPOF(kind, state, attrs, t, mo, co)
}

func laxSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	if kind != contract.KindPR {
		return pamSTF(kind, state, attrs, t, payoff, mo, co)
	}
	s := state.Clone()
	newNt, _ := capNonNegativeNotional(s.Notional, laxAmountAt(attrs, t))
	s.Notional = newNt
	s.StatusDate = t
	return s, nil
}

// laxAmountAt matches t against the schedule by business-day-adjusted
// date, since the PR events built by laxSchedule carry the adjusted
// event_time, not the raw schedule date.
func laxAmountAt(attrs contract.Attributes, t time.Time) float64 {
	for _, pt := range attrs.PrincipalRedemptionSchedule {
		shifted, _ := calendarAdjust(attrs, pt.Date)
		if shifted.Equal(t) {
			return pt.Amount
		}
	}
	return 0
}
