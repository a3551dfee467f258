package contract

import (
	"fmt"
	"time"
)

// ErrorKind discriminates the error taxonomy of spec.md §7.
type ErrorKind string

const (
	ErrInvalidAttributes ErrorKind = "InvalidAttributes"
	ErrInvalidSchedule   ErrorKind = "InvalidSchedule"
	ErrCyclicStructure   ErrorKind = "CyclicStructure"
	ErrMissingChild      ErrorKind = "MissingChild"
	ErrNumericDomain     ErrorKind = "NumericDomain"
	ErrObserverFailure   ErrorKind = "ObserverFailure"
)

// Error is the engine's single typed error. Simulation-stage errors carry
// the event context (contract id, event time, event kind) that produced
// them; factory-stage errors (raised before any event is emitted) leave
// EventTime/EventKind zero.
type Error struct {
	Kind       ErrorKind
	ContractID string
	EventTime  time.Time
	EventKind  Kind
	Msg        string
	Cause      error
}

func (e *Error) Error() string {
	if e.EventKind != "" {
		return fmt.Sprintf("actus: %s [%s %s @ %s]: %s", e.Kind, e.ContractID, e.EventKind, e.EventTime.Format("2006-01-02"), e.Msg)
	}
	return fmt.Sprintf("actus: %s [%s]: %s", e.Kind, e.ContractID, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewAttributesError builds a factory-stage InvalidAttributes error.
func NewAttributesError(contractID, msg string) *Error {
	return &Error{Kind: ErrInvalidAttributes, ContractID: contractID, Msg: msg}
}

// NewScheduleError builds a factory-stage InvalidSchedule error.
func NewScheduleError(contractID, msg string) *Error {
	return &Error{Kind: ErrInvalidSchedule, ContractID: contractID, Msg: msg}
}

// NewCyclicStructureError builds a CyclicStructure error for a composite
// whose contract_structure references form a cycle.
func NewCyclicStructureError(contractID, msg string) *Error {
	return &Error{Kind: ErrCyclicStructure, ContractID: contractID, Msg: msg}
}

// NewMissingChildError builds a MissingChild error for a composite
// referencing an id not registered in its child observer.
func NewMissingChildError(contractID, childID string) *Error {
	return &Error{Kind: ErrMissingChild, ContractID: contractID, Msg: "child not registered: " + childID}
}

// NewNumericDomainError builds a simulation-stage NumericDomain error,
// carrying the event context it occurred in.
func NewNumericDomainError(contractID string, eventTime time.Time, kind Kind, msg string) *Error {
	return &Error{Kind: ErrNumericDomain, ContractID: contractID, EventTime: eventTime, EventKind: kind, Msg: msg}
}

// NewObserverFailureError wraps an observer's own reported failure
// unchanged, attaching the event context it surfaced at.
func NewObserverFailureError(contractID string, eventTime time.Time, kind Kind, cause error) *Error {
	return &Error{Kind: ErrObserverFailure, ContractID: contractID, EventTime: eventTime, EventKind: kind, Msg: cause.Error(), Cause: cause}
}
