package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
	"github.com/meenmo/actuskit/schedule"
)

func init() {
	register(contract.FXOUT, Entry{
		Schedule:   fxoutSchedule,
		Initialize: fxoutInitialize,
		POF:        fxoutPOF,
		STF:        fxoutSTF,
		Accrue:     NoAccrual,
	})
}

func fxoutSchedule(attrs contract.Attributes, beh observer.Behavioral) ([]contract.Event, error) {
	if attrs.MaturityDate.IsZero() {
		return nil, contract.NewScheduleError(attrs.ContractID, "FXOUT requires maturity_date")
	}
	var events []contract.Event
	if e := singleEvent(contract.KindSTD, attrs.MaturityDate, attrs.BusinessDayConvention, attrs.Calendar); e != nil {
		events = append(events, *e)
	}
	if beh != nil {
		events = schedule.MergeCallouts(events, beh.Callouts())
	}
	return schedule.Finalize(events), nil
}

func fxoutInitialize(attrs contract.Attributes) (contract.State, error) {
	s := contract.NewState()
	s.StatusDate = attrs.StatusDate
	s.MaturityDate = attrs.MaturityDate
	return s, nil
}

// fxoutPOF settles the forward: physical (D) settlement reports the
// primary leg's own notional (Currency), with the second leg's amount
// recorded on state via STF for bookkeeping rather than summed into the
// same payoff figure, since the two legs are denominated in different
// currencies. Net (S) settlement converts the second leg at the observed
// spot rate and reports a single net figure in the primary currency.
func fxoutPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind != contract.KindSTD {
		return 0, nil
	}
	if attrs.DeliverySettlement == contract.Gross {
		return R(attrs) * -1 * attrs.NotionalPrincipal, nil
	}
	fx := mo.Get(attrs.MarketObjectCodeUnderlying, t)
	return R(attrs) * (attrs.NotionalPrincipal2*fx - attrs.NotionalPrincipal), nil
}

func fxoutSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s := state.Clone()
	if kind == contract.KindSTD {
		if attrs.DeliverySettlement == contract.Gross {
			s.Custom["secondLegSettlement"] = R(attrs) * attrs.NotionalPrincipal2
		}
		s.StatusDate = t
	}
	return s, nil
}
