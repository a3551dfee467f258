package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.CEG, Entry{
		Schedule:   cegSchedule,
		Initialize: cegInitialize,
		POF:        cegPOF,
		STF:        cegSTF,
		Accrue:     NoAccrual,
	})
}

// cegSchedule carries no fixed cadence of its own: a credit event is an
// externally observed trigger, surfaced the same way CLM surfaces an
// exercise notice — as a callout on this contract's own behavioral
// observer, one of attrs.CreditEventTypeCovered's kinds (DL/DQ/DF). Once
// one fires, settlement falls settlement_period_days later; absent a
// matching callout, CEG schedules nothing and never settles.
func cegSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	if beh == nil {
		return nil, nil
	}
	var triggered time.Time
	for _, c := range beh.Callouts() {
		if !triggered.IsZero() {
			break
		}
		for _, want := range attrs.CreditEventTypeCovered {
			if c.Kind == string(want) {
				triggered = c.Time
				break
			}
		}
	}
	if triggered.IsZero() {
		return nil, nil
	}
	settlement := triggered.AddDate(0, 0, attrs.SettlementPeriodDays)
	e := singleEvent(contract.KindSTD, settlement, attrs.BusinessDayConvention, attrs.Calendar)
	if e == nil {
		return nil, nil
	}
	return schedule.Finalize([]contract.Event{*e}), nil
}

func cegInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.StatusDate = attrs.StatusDate
	return s, nil
}

// cegPOF pays coverage * extent(child_at_event), where extent selects the
// covered child's notional, notional+accrued, or notional+accrued+market
// value per credit_enhancement_guarantee_extent. The child's state as of
// the credit event is looked up via the child observer, keyed by the
// "Covered" role in attrs.ContractStructure.
func cegPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindSTD {
		return 0, nil
	}
	coveredID, ok := attrs.ContractStructure["Covered"]
	if !ok {
		return 0, contract.NewMissingChildError(attrs.ContractID, "Covered")
	}
	childState, err := co.StateAt(coveredID, t)
	if err != nil {
		return 0, err
	}
	extent := childState.Notional
	switch attrs.CreditEnhancementGuaranteeExtent {
	case contract.ExtentNotionalAccrued:
		extent += childState.AccruedInterest
	case contract.ExtentNotionalAccruedMarket:
		extent += childState.AccruedInterest
		if attrs.MarketObjectCodeUnderlying != "" {
			extent += mo.Get(attrs.MarketObjectCodeUnderlying, t)
		}
	}
	return attrs.Coverage * extent, nil
}

func cegSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	s.StatusDate = t
	return s, nil
}
