package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.CEC, Entry{
		Schedule:   cecSchedule,
		Initialize: cegInitialize,
		POF:        cecPOF,
		STF:        cecSTF,
		Accrue:     NoAccrual,
	})
}

// cecSchedule periodically compares the covered child's exposure against
// the covering child's collateral value on the cadence of this contract's
// own fee cycle (attrs.CycleFee), falling back to monthly when none is set.
func cecSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "CEC requires maturity_date or horizon_date")
	}
	cyc := attrs.CycleFee.Cycle
	if cyc == "" {
		cyc = "1M"
	}
	anchor := attrs.CycleFee.Anchor
	if anchor.IsZero() {
		anchor = attrs.StatusDate
	}
	events, err := expandFamily(contract.KindSTD, anchor, cyc, end, attrs.EndOfMonthConvention, attrs.BusinessDayConvention, attrs.Calendar)
	if err != nil {
		return nil, err
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

// cecPOF compares the covered child's exposure against the covering
// child's value * coverage; a shortfall emits a margin-call settlement
// for exactly the shortfall amount, otherwise 0.
func cecPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindSTD {
		return 0, nil
	}
	coveredID, ok := attrs.ContractStructure["Covered"]
	if !ok {
		return 0, contract.NewMissingChildError(attrs.ContractID, "Covered")
	}
	coveringID, ok := attrs.ContractStructure["Covering"]
	if !ok {
		return 0, contract.NewMissingChildError(attrs.ContractID, "Covering")
	}
	covered, err := co.StateAt(coveredID, t)
	if err != nil {
		return 0, err
	}
	covering, err := co.StateAt(coveringID, t)
	if err != nil {
		return 0, err
	}
	exposure := covered.Notional + covered.AccruedInterest
	collateral := covering.Notional * attrs.Coverage
	shortfall := exposure - collateral
	if shortfall <= 0 {
		return 0, nil
	}
	return shortfall, nil
}

func cecSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	if kind == contract.KindSTD {
		s.Custom["lastMarginCall"] = payoff
	}
	s.StatusDate = t
	return s, nil
}
