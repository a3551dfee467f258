package variants

import (
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
)

func init() {
	register(contract.NAM, Entry{
		Schedule:   lamSchedule, // NAM's family layout is identical to LAM's
		Initialize: namInitialize,
		POF:        namPOF,
		STF:        namSTF,
		Accrue:     AccrueSingleLeg,
	})
}

func namInitialize(attrs contract.Attributes) (contract.State, error) {
	s, err := lamInitialize(attrs)
	if err != nil {
		return s, err
	}
	s.InterestCalcBase = attrs.InterestCalcBaseAtIED
	if s.InterestCalcBase == 0 {
		s.InterestCalcBase = s.Notional
	}
	return s, nil
}

func namPOF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, mo observer.Market, co observer.Child) (float64, error) {
	if kind == contract.KindPR {
		return state.NextPrincipalPayment, nil
	}
	return pamPOF(kind, state, attrs, t, mo, co)
}

// namSTF implements the fixed-payment, notional-can-grow amortization of a
// negative amortizer. STF_PR is the one formula in the whole registry
// where signs are easy to get backwards: Prnxt already carries R(role), so
// the reduction term is used exactly as computed, with no further sign
// applied. Re-multiplying by R(role) here — tempting, since every other
// variant's STF_PR does exactly that — flips the direction of every
// negative-amortization contract in the book.
func namSTF(kind contract.Kind, state contract.State, attrs contract.Attributes, t time.Time, payoff float64, mo observer.Market, co observer.Child) (contract.State, error) {
	if kind != contract.KindPR {
		return pamSTF(kind, state, attrs, t, payoff, mo, co)
	}
	s := state.Clone()
	y := Y(attrs, s.StatusDate, t)
	reduction := s.NextPrincipalPayment - s.AccruedInterest - y*s.NominalRate*s.InterestCalcBase
	s.Notional = s.Notional - reduction
	s.StatusDate = t
	return s, nil
}
