package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.PAM, Entry{
		Schedule:   pamSchedule,
		Initialize: pamInitialize,
		POF:        pamPOF,
		STF:        pamSTF,
		Accrue:     AccrueSingleLeg,
	})
}

// pamSchedule builds PAM's event set: a single IED and MD, recurring IP,
// RR, SC and FP families anchored per attrs, and the optional PRD/TD
// single-fire purchase/termination events. IP/RR/SC/FP families exclude
// any occurrence landing on the maturity date, since MD already settles
// the contract and closes out accrued interest itself.
func pamSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "PAM requires maturity_date")
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

// pamInitialize implements STF_IED: Nt <- R*NT, Ipnr <- nominal_rate, Ipac
// from the IPAC override or accrued since the interest anchor, Nsc/Isc <-
// 1, status date <- IED. When IED precedes StatusDate (a pre-existing
// contract being booked after origination) the state still initializes as
// if IED had occurred, per §3. The scheduler still emits the IED event
// (singleEvent only guards against a zero date, not a past one); the
// engine's Simulate loop skips an IED event dated before StatusDate.
func pamInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.Notional = R(attrs) * attrs.NotionalPrincipal
	s.NominalRate = attrs.NominalInterestRate
	s.MaturityDate = attrs.EffectiveMaturity()

	switch {
	case attrs.AccruedInterestAtIED != 0:
		s.AccruedInterest = attrs.AccruedInterestAtIED
	case !attrs.CycleInterest.Anchor.IsZero() && attrs.CycleInterest.Anchor.Before(attrs.InitialExchangeDate):
		s.AccruedInterest = Y(attrs, attrs.CycleInterest.Anchor, attrs.InitialExchangeDate) * s.NominalRate * s.Notional
	}
	s.AccruedFees = attrs.FeeAccrued
	s.StatusDate = attrs.InitialExchangeDate
	return s, nil
}

func pamPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	switch kind {
	case contract.KindIED:
		return R(attrs) * -1 * state.NotionalScaling * attrs.NotionalPrincipal, nil
	case contract.KindIP:
		return state.InterestScaling*state.AccruedInterest + state.AccruedFees, nil
	case contract.KindMD:
		return state.NotionalScaling*state.Notional + state.InterestScaling*state.AccruedInterest + state.AccruedFees, nil
	case contract.KindPY:
		return penaltyPayoff(attrs, state, t, mo), nil
	case contract.KindFP:
		return feePayoff(attrs, state, t), nil
	case contract.KindPRD:
		y := Y(attrs, state.StatusDate, t)
		return R(attrs) * -1 * (attrs.PurchasePrice + state.AccruedInterest + y*state.NominalRate*state.Notional), nil
	case contract.KindTD:
		y := Y(attrs, state.StatusDate, t)
		return R(attrs) * (attrs.TerminationPrice + state.AccruedInterest + y*state.NominalRate*state.Notional), nil
	case contract.KindRR, contract.KindRRF, contract.KindSC:
		return 0, nil
	default:
		return 0, nil
	}
}

func pamSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	switch kind {
	case contract.KindIED:
		s.StatusDate = t
	case contract.KindIP:
		s.AccruedInterest = 0
		s.AccruedFees = 0
		s.StatusDate = t
	case contract.KindMD:
		s.Notional = 0
		s.AccruedInterest = 0
		s.AccruedFees = 0
		s.StatusDate = t
	case contract.KindRR:
		if attrs.RateResetMarketObjectCode != "" {
			observed := mo.Get(attrs.RateResetMarketObjectCode, t)
			s.NominalRate = resetRate(observed, attrs)
		}
		s.StatusDate = t
	case contract.KindRRF:
		s.NominalRate = Clamp(attrs.RateResetNextFixing, attrs.LifeFloor, attrs.LifeCap, attrs.LifeFloor != 0, attrs.LifeCap != 0)
		s.StatusDate = t
	case contract.KindSC:
		s = applyScaling(s, attrs, t, mo)
		s.StatusDate = t
	case contract.KindFP:
		s.AccruedFees = 0
		s.StatusDate = t
	case contract.KindPRD, contract.KindTD:
		s.StatusDate = t
	default:
		s.StatusDate = t
	}
	return s, nil
}
