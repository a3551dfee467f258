package contract_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/meenmo/actuskit/contract"
)

func TestNewAttributesErrorKindAndMessage(t *testing.T) {
	t.Parallel()
	err := contract.NewAttributesError("C1", "currency is required")
	var e *contract.Error
	if !errors.As(err, &e) {
		t.Fatalf("NewAttributesError does not satisfy errors.As(*contract.Error)")
	}
	if e.Kind != contract.ErrInvalidAttributes {
		t.Fatalf("Kind = %s, want InvalidAttributes", e.Kind)
	}
	if e.EventKind != "" {
		t.Fatalf("factory-stage error carries a non-zero EventKind: %s", e.EventKind)
	}
}

func TestNumericDomainErrorCarriesEventContext(t *testing.T) {
	t.Parallel()
	et := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	err := contract.NewNumericDomainError("C1", et, contract.KindIP, "negative notional")
	if err.EventTime != et || err.EventKind != contract.KindIP {
		t.Fatalf("event context not preserved: %+v", err)
	}
	msg := err.Error()
	if msg == "" {
		t.Fatalf("Error() returned empty string")
	}
}

func TestObserverFailureErrorUnwraps(t *testing.T) {
	t.Parallel()
	cause := errors.New("market data unavailable")
	err := contract.NewObserverFailureError("C1", time.Now().UTC(), contract.KindRR, cause)
	if !errors.Is(err, cause) {
		t.Fatalf("errors.Is(err, cause) = false, want true via Unwrap")
	}
}

func TestMissingChildErrorNamesTheChild(t *testing.T) {
	t.Parallel()
	err := contract.NewMissingChildError("SWAP1", "LEG2")
	if err.Kind != contract.ErrMissingChild {
		t.Fatalf("Kind = %s, want MissingChild", err.Kind)
	}
	if !strings.Contains(err.Error(), "LEG2") {
		t.Fatalf("Error() = %q, want it to name the missing child LEG2", err.Error())
	}
}

func TestCyclicStructureErrorKind(t *testing.T) {
	t.Parallel()
	err := contract.NewCyclicStructureError("SWAP1", "cycle detected: SWAP1 -> LEG1 -> SWAP1")
	if err.Kind != contract.ErrCyclicStructure {
		t.Fatalf("Kind = %s, want CyclicStructure", err.Kind)
	}
}
