package observer_test

import (
	"testing"
	"time"

	"github.com/meenmo/actuskit/contract"
	"github.com/meenmo/actuskit/observer"
)

func TestMapChildRegisterAndEvents(t *testing.T) {
	t.Parallel()
	m := observer.NewMapChild()
	events := []contract.Event{{EventTime: date(2024, time.January, 1), Kind: contract.KindIED}}
	if err := m.Register("LEG1", events, nil); err != nil {
		t.Fatalf("Register: unexpected error %v", err)
	}
	got, err := m.Events("LEG1")
	if err != nil {
		t.Fatalf("Events: unexpected error %v", err)
	}
	if len(got) != 1 || got[0].Kind != contract.KindIED {
		t.Fatalf("Events = %+v, want one IED event", got)
	}
}

func TestMapChildEventsUnknownChild(t *testing.T) {
	t.Parallel()
	m := observer.NewMapChild()
	if _, err := m.Events("GHOST"); err == nil {
		t.Fatalf("Events on unknown child: expected error")
	}
}

func TestMapChildRegisterAfterFreezeFails(t *testing.T) {
	t.Parallel()
	m := observer.NewMapChild()
	m.Freeze()
	if err := m.Register("LEG1", nil, nil); err == nil {
		t.Fatalf("Register after Freeze: expected error")
	}
}

func TestMapChildStateAtBeforeFirstEventReturnsStatePre(t *testing.T) {
	t.Parallel()
	m := observer.NewMapChild()
	pre := contract.State{Notional: 1000}
	post := contract.State{Notional: 900}
	events := []contract.Event{
		{EventTime: date(2024, time.June, 1), StatePre: pre, StatePost: post},
	}
	if err := m.Register("LEG1", events, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := m.StateAt("LEG1", date(2024, time.January, 1))
	if err != nil {
		t.Fatalf("StateAt: %v", err)
	}
	if got.Notional != 1000 {
		t.Fatalf("StateAt before first event = %v, want state_pre's 1000", got.Notional)
	}
}

func TestMapChildStateAtUsesLastEventAtOrBeforeT(t *testing.T) {
	t.Parallel()
	m := observer.NewMapChild()
	events := []contract.Event{
		{EventTime: date(2024, time.January, 1), StatePre: contract.State{Notional: 1000}, StatePost: contract.State{Notional: 1000}},
		{EventTime: date(2024, time.July, 1), StatePre: contract.State{Notional: 1000}, StatePost: contract.State{Notional: 900}},
		{EventTime: date(2025, time.January, 1), StatePre: contract.State{Notional: 900}, StatePost: contract.State{Notional: 800}},
	}
	if err := m.Register("LEG1", events, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, err := m.StateAt("LEG1", date(2024, time.September, 1))
	if err != nil {
		t.Fatalf("StateAt: %v", err)
	}
	if got.Notional != 900 {
		t.Fatalf("StateAt = %v, want 900 (state_post as of the July event)", got.Notional)
	}
}

func TestMapChildAttribute(t *testing.T) {
	t.Parallel()
	m := observer.NewMapChild()
	if err := m.Register("LEG1", nil, map[string]string{"contract_role": "RPA"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	v, ok := m.Attribute("LEG1", "contract_role")
	if !ok || v != "RPA" {
		t.Fatalf("Attribute = (%v, %v), want (RPA, true)", v, ok)
	}
	if _, ok := m.Attribute("LEG1", "missing"); ok {
		t.Fatalf("Attribute(missing) reported found")
	}
	if _, ok := m.Attribute("GHOST", "contract_role"); ok {
		t.Fatalf("Attribute on unknown child reported found")
	}
}
