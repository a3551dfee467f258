package contract

import "time"

// Performance is the contract's current performance status.
type Performance string

const (
	PF Performance = "PF" // Performant
	DL Performance = "DL" // Delayed
	DQ Performance = "DQ" // Delinquent
	DF Performance = "DF" // Default
)

// State is the immutable contract state record. STFs never mutate a State
// in place; they return a new value. Consumers wanting to change a single
// cell should take a copy (State is all value types except the Custom map,
// which Clone below deep-copies) and hand back the result.
type State struct {
	StatusDate  time.Time
	MaturityDate time.Time

	Notional           float64 // Nt
	NominalRate        float64 // Ipnr
	AccruedInterest    float64 // Ipac
	AccruedInterest2   float64 // Ipac2 — floating leg of SWPPV
	AccruedFees        float64 // Feac
	NotionalScaling    float64 // Nsc
	InterestScaling    float64 // Isc
	NextPrincipalPayment float64 // Prnxt
	InterestCalcBase   float64 // Ipcb

	Performance   Performance
	ExerciseDate  time.Time
	ExerciseAmount float64

	// Custom holds variant-specific scratch cells that do not warrant a
	// dedicated field (FUTUR's running mark-to-market, CEC's last-observed
	// coverage ratio, …). It is always non-nil so callers can read it
	// without a nil check; Clone deep-copies it.
	Custom map[string]float64
}

// NewState returns a zero-valued State with Nsc/Isc defaulted to 1 (the
// ACTUS "no scaling applied yet" identity) and an empty Custom map.
func NewState() State {
	return State{
		NotionalScaling: 1,
		InterestScaling: 1,
		Performance:     PF,
		Custom:          map[string]float64{},
	}
}

// Clone returns a deep copy so callers may mutate the Custom map of the
// copy without affecting the original snapshot held by a prior event.
func (s State) Clone() State {
	c := s
	c.Custom = make(map[string]float64, len(s.Custom))
	for k, v := range s.Custom {
		c.Custom[k] = v
	}
	return c
}
