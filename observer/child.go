package observer

import (
	"fmt"
	"time"

	"github.com/meenmo/actuskit/contract"
)

// Child is the child-contract observer used by composite resolution:
// Events/StateAt/Attribute for a referenced child, by id. Implementations
// must be frozen once the parent starts simulating (§4.7): Register
// returns an error after Freeze.
type Child interface {
	Events(id string) ([]contract.Event, error)
	StateAt(id string, t time.Time) (contract.State, error)
	Attribute(id, name string) (string, bool)
}

// MapChild is a map-backed Child observer populated by the composite
// resolver once all referenced children have been simulated.
type MapChild struct {
	events     map[string][]contract.Event
	attributes map[string]map[string]string
	frozen     bool
}

// NewMapChild returns an empty, unfrozen MapChild.
func NewMapChild() *MapChild {
	return &MapChild{
		events:     map[string][]contract.Event{},
		attributes: map[string]map[string]string{},
	}
}

// Register installs a child's simulated events and (optionally) a flat
// attribute bag under id. It returns an error if the observer has already
// been frozen.
func (m *MapChild) Register(id string, events []contract.Event, attrs map[string]string) error {
	if m.frozen {
		return fmt.Errorf("observer: cannot register child %q on a frozen child observer", id)
	}
	m.events[id] = events
	m.attributes[id] = attrs
	return nil
}

// Freeze marks the observer read-only; subsequent Register calls fail.
func (m *MapChild) Freeze() { m.frozen = true }

func (m *MapChild) Events(id string) ([]contract.Event, error) {
	events, ok := m.events[id]
	if !ok {
		return nil, fmt.Errorf("observer: unknown child %q", id)
	}
	return events, nil
}

// StateAt returns the state_post of the last child event at or before t,
// or state_pre of the first event if t precedes every event.
func (m *MapChild) StateAt(id string, t time.Time) (contract.State, error) {
	events, ok := m.events[id]
	if !ok || len(events) == 0 {
		return contract.State{}, fmt.Errorf("observer: unknown child %q", id)
	}
	if t.Before(events[0].EventTime) {
		return events[0].StatePre, nil
	}
	result := events[0].StatePost
	for _, e := range events {
		if e.EventTime.After(t) {
			break
		}
		result = e.StatePost
	}
	return result, nil
}

func (m *MapChild) Attribute(id, name string) (string, bool) {
	bag, ok := m.attributes[id]
	if !ok {
		return "", false
	}
	v, ok := bag[name]
	return v, ok
}
