package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.SWPPV, Entry{
		Schedule:   swppvSchedule,
		Initialize: swppvInitialize,
		POF:        swppvPOF,
		STF:        swppvSTF,
		Accrue:     swppvAccrue,
	})
}

func swppvSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "SWPPV requires maturity_date")
	}
	var events []contract.Event
	if e := singleEvent(contract.KindIED, attrs.InitialExchangeDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	ipAnchor := attrs.CycleInterest.Anchor
	if ipAnchor.IsZero() {
		ipAnchor = attrs.InitialExchangeDate
	}
	ipFamily, err := expandFamily(contract.KindIP, ipAnchor, attrs.CycleInterest.Cycle, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.InitialExchangeDate, end)
	if err != nil {
		return nil, err
	}
	events = append(events, ipFamily...)

	rrAnchor := attrs.CycleRateReset.Anchor
	if rrAnchor.IsZero() {
		rrAnchor = attrs.InitialExchangeDate
	}
	rrFamily, err := expandFamily(contract.KindRR, rrAnchor, attrs.CycleRateReset.Cycle, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar, attrs.InitialExchangeDate, end)
	if err != nil {
		return nil, err
	}
	events = append(events, rrFamily...)

	if e := singleEvent(contract.KindMD, end, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func swppvInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.Notional = R(attrs) * attrs.NotionalPrincipal
	s.NominalRate = attrs.NominalInterestRate    // fixed leg rate
	s.InterestCalcBase = attrs.NominalInterestRate2 // floating leg's current rate, stashed here
	s.MaturityDate = attrs.EffectiveMaturity()
	s.StatusDate = attrs.InitialExchangeDate
	return s, nil
}

func swppvPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	switch kind {
	case contract.KindIP:
		if attrs.DeliverySettlement == contract.Net {
			return R(attrs) * (state.AccruedInterest - state.AccruedInterest2), nil
		}
		return R(attrs) * (state.AccruedInterest + state.AccruedInterest2), nil
	case contract.KindMD:
		return 0, nil
	default:
		return 0, nil
	}
}

// swppvSTF's STF_RR accrues the floating leg at the outgoing rate before
// resetting it — the reset itself must never retroactively change the
// interest already earned on the period just ending.
func swppvSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	switch kind {
	case contract.KindIED:
		s.StatusDate = t
	case contract.KindIP:
		s.AccruedInterest = 0
		s.AccruedInterest2 = 0
		s.StatusDate = t
	case contract.KindRR:
		y := Y(attrs, s.StatusDate, t)
		s.AccruedInterest2 += s.Notional * s.InterestCalcBase * y
		if attrs.RateResetMarketObjectCode != "" {
			observed := mo.Get(attrs.RateResetMarketObjectCode, t)
			s.InterestCalcBase = resetRate(observed, attrs)
		}
		s.StatusDate = t
	case contract.KindMD:
		s.Notional = 0
		s.AccruedInterest = 0
		s.AccruedInterest2 = 0
		s.StatusDate = t
	default:
		s.StatusDate = t
	}
	return s, nil
}

// swppvAccrue accrues both legs over the elapsed year fraction: the fixed
// leg at NominalRate, the floating leg at the rate last reset
// (InterestCalcBase, repurposed here as the floating leg's live rate).
func swppvAccrue(state contract.State, attrs contract.Attributes, to time.Time) contract.State {
	if !to.After(state.StatusDate) {
		return state
	}
	y := Y(attrs, state.StatusDate, to)
	s := state.Clone()
	s.AccruedInterest += s.Notional * s.NominalRate * y
	s.AccruedInterest2 += s.Notional * s.InterestCalcBase * y
	s.StatusDate = to
	return s
}
