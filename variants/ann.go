package variants

import (
	"math"
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
)

func init() {
	register(contract.ANN, Entry{
		Schedule:   lamSchedule,
		Initialize: annInitialize,
		POF:        namPOF,
		STF:        annSTF,
		Accrue:     AccrueSingleLeg,
	})
}

func annInitialize(attrs contract.Attributes) (contract.State, error) {
	s, err := namInitialize(attrs)
	if err != nil {
		return s, err
	}
	if s.NextPrincipalPayment == 0 {
		s.NextPrincipalPayment = levelPayment(s.Notional, s.NominalRate, attrs, attrs.InitialExchangeDate, s.MaturityDate)
	}
	return s, nil
}

// annSTF is namSTF's STF_PR plus a Prnxt recomputation on RR/RRF: the
// level annuity payment is re-solved against the freshly reset rate and
// the notional remaining as of this event, over the periods still
// outstanding, so subsequent PR events amortize on the new schedule.
func annSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	s, err := namSTF(kind, state, attrs, t, payoff, mo, co)
	if err != nil {
		return s, err
	}
	if kind == contract.KindRR || kind == contract.KindRRF {
		s.NextPrincipalPayment = levelPayment(s.Notional, s.NominalRate, attrs, t, s.MaturityDate)
	}
	return s, nil
}

// levelPayment solves the fixed per-period payment that fully amortizes
// principal over the remaining cycle periods between from and maturity,
// at the given rate and the contract's principal-redemption cycle length.
// It falls back to a single bullet payment when the cycle is unparseable
// or fewer than one period remains.
func levelPayment(notional, rate float64, attrs contract.Attributes, from, maturity time.Time) float64 {
	c, err := attrs.CyclePrincipalRedemption.Parsed()
	if err != nil || c.N == 0 {
		return notional
	}
	dates, err := cycleExpandSafe(from, maturity, attrs)
	// dates holds from itself plus every later cycle date up to maturity,
	// so the number of periods is one less than the number of dates.
	n := len(dates) - 1
	if err != nil || n <= 0 {
		return notional
	}
	y := Y(attrs, from, maturity) / float64(n)
	if rate == 0 || y == 0 {
		return notional / float64(n)
	}
	r := rate * y
	factor := r / (1 - math.Pow(1+r, -float64(n)))
	return notional * factor
}
