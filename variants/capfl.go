package variants

import (
	"math"
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.CAPFL, Entry{
		Schedule:   capflSchedule,
		Initialize: capflInitialize,
		POF:        capflPOF,
		STF:        capflSTF,
		Accrue:     NoAccrual,
	})
}

// capflSchedule generates IP/RR events from the underlier's terms (here,
// the same CycleInterest/CycleRateReset cycles a single-leg interest
// instrument would use) up to maturity. IP and RR are deliberately left
// to the universal priority table to order same-timestamp occurrences:
// IP(4) sorts before RR(6), so a coincident IP/RR pair always settles the
// period's payoff using the rate fixed at the *previous* RR — resetting
// first would make the cap/floor payoff use a rate that was never in
// effect during the period being paid for.
func capflSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	end := attrs.EffectiveMaturity()
	if end.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "CAPFL requires maturity_date")
	}
	var events []contract.Event
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

func capflInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.Notional = R(attrs) * attrs.NotionalPrincipal
	s.NominalRate = attrs.NominalInterestRate
	s.MaturityDate = attrs.EffectiveMaturity()
	s.StatusDate = attrs.InitialExchangeDate
	s.Custom["periodStart"] = float64(attrs.InitialExchangeDate.Unix())
	return s, nil
}

// capflPOF implements the cap and floor payoffs over the period since the
// last IP: cap = max(0, rate_t - RRLC) * Nt * Y; floor = max(0, RRLF -
// rate_t) * Nt * Y. Both legs may be active simultaneously (a collar);
// the net payoff is the cap leg minus the floor leg. Accrue is a no-op for
// CAPFL (there is no running accrued-interest balance to carry), but the
// engine still advances state.StatusDate to t before POF runs on every
// event, so the period length is read from Custom["periodStart"] instead
// — the last IP timestamp (IED before the first IP), set by capflSTF — rather than from
// StatusDate, which by the time POF sees it already equals t.
func capflPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindIP {
		return 0, nil
	}
	periodStart := time.Unix(int64(state.Custom["periodStart"]), 0).UTC()
	y := Y(attrs, periodStart, t)
	rate := state.NominalRate
	cap := math.Max(0, rate-attrs.LifeCap) * state.Notional * y
	floor := math.Max(0, attrs.LifeFloor-rate) * state.Notional * y
	return R(attrs) * (cap - floor), nil
}

func capflSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	switch kind {
	case contract.KindIP:
		s.StatusDate = t
		s.Custom["periodStart"] = float64(t.Unix())
	case contract.KindRR:
		if attrs.RateResetMarketObjectCode != "" {
			observed := mo.Get(attrs.RateResetMarketObjectCode, t)
			s.NominalRate = observed*attrs.RateMultiplier + attrs.RateSpread
		}
		s.StatusDate = t
	case contract.KindMD:
		s.Notional = 0
		s.StatusDate = t
	default:
		s.StatusDate = t
	}
	return s, nil
}
