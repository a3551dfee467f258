package contract

import "time"

// Kind is an ACTUS event kind.
type Kind string

const (
	KindAD    Kind = "AD"    // Analysis
	KindIED   Kind = "IED"   // Initial Exchange
	KindPR    Kind = "PR"    // Principal Redemption
	KindIP    Kind = "IP"    // Interest Payment
	KindIPCI  Kind = "IPCI"  // Interest Capitalization
	KindRR    Kind = "RR"    // Rate Reset
	KindIPCB  Kind = "IPCB"  // Interest Calculation Base (re)set
	KindSC    Kind = "SC"    // Scaling
	KindFP    Kind = "FP"    // Fee Payment
	KindPRD   Kind = "PRD"   // Purchase
	KindTD    Kind = "TD"    // Termination
	KindMD    Kind = "MD"    // Maturity
	KindSTD   Kind = "STD"   // Settlement
	KindXD    Kind = "XD"    // Exercise
	KindDV    Kind = "DV"    // Dividend
	KindPP    Kind = "PP"    // Prepayment
	KindPY    Kind = "PY"    // Penalty
	KindRRF   Kind = "RRF"   // Rate Reset Fixing
)

// priority implements the spec.md §4.6 tie-break table: lower runs first
// among events sharing the same event_time.
var priority = map[Kind]int{
	KindAD:   1,
	KindIED:  2,
	KindPR:   3,
	KindIP:   4,
	KindIPCI: 5,
	KindRR:   6,
	KindIPCB: 7,
	KindSC:   8,
	KindFP:   9,
	KindPRD:  10,
	KindTD:   11,
	KindMD:   12,
	KindSTD:  13,
	KindXD:   14,
	KindDV:   15,
	// PP and PY are triggered alongside PR/FP respectively in priority;
	// they settle at the same point in the cycle as the events they modify.
	KindPP: 3,
	KindPY: 9,
}

// Priority returns the tie-break rank for k (lower sorts first).
func Priority(k Kind) int {
	if p, ok := priority[k]; ok {
		return p
	}
	return 1 << 30
}

// Event is a single materialized (or, pre-simulation, scheduled) contract
// event. calculation_time differs from event_time under calculate-shift
// business-day conventions: accrual uses calculation_time; reporting and
// settlement use event_time.
type Event struct {
	EventTime       time.Time
	CalculationTime time.Time
	Kind            Kind
	Sequence        int
	Payoff          float64
	StatePre        State
	StatePost       State
	Currency        string
	RunID           string

	// FromCallout marks an event injected by a Behavioral observer
	// (schedule.MergeCallouts): its Payoff is the callout's fixed
	// PayoffHint rather than a value the variant's POF computes, so the
	// engine uses it directly and skips the POF dispatch for this event.
	FromCallout bool
}

// Less orders events by (event_time, priority_rank, sequence), the
// universal invariant of spec.md §3/§8.
func Less(a, b Event) bool {
	if !a.EventTime.Equal(b.EventTime) {
		return a.EventTime.Before(b.EventTime)
	}
	pa, pb := Priority(a.Kind), Priority(b.Kind)
	if pa != pb {
		return pa < pb
	}
	return a.Sequence < b.Sequence
}

// SortEvents sorts events in place by the universal ordering.
func SortEvents(events []Event) {
	// insertion sort: schedules are already nearly sorted per family, and
	// this keeps the sort stable without importing sort.Slice's
	// indirection for what is, in practice, a small merge of few families.
	for i := 1; i < len(events); i++ {
		j := i
		for j > 0 && Less(events[j], events[j-1]) {
			events[j], events[j-1] = events[j-1], events[j]
			j--
		}
	}
}
