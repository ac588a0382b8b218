package statemachine

import (
	"fmt"
	"strings"

	"foodapp-api/errs"
	"foodapp-api/models"
)

// Event is an action that moves an order between states
type Event string

const (
	EventCheckout Event = "checkout"
	EventCancel   Event = "cancel"
)

// Transition defines a valid state change and the event that triggers it
type Transition struct {
	From  models.OrderStatus `json:"from"`
	To    models.OrderStatus `json:"to"`
	Event Event              `json:"event"`
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Mock payment succeeds immediately
	{From: models.StatusCreated, To: models.StatusPaid, Event: EventCheckout},
	{From: models.StatusCreated, To: models.StatusCancelled, Event: EventCancel},
	{From: models.StatusPaid, To: models.StatusCancelled, Event: EventCancel},
}

// rejections are the reasons reported when an event does not apply to the current state
var rejections = map[Event]string{
	EventCheckout: "Order not in CREATED state",
	EventCancel:   "Already cancelled",
}

type transitionKey struct {
	From  models.OrderStatus
	Event Event
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]models.OrderStatus {
	m := make(map[transitionKey]models.OrderStatus)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.Event}] = t.To
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// SourcesFor lists the states from which event may fire
func SourcesFor(event Event) []models.OrderStatus {
	var from []models.OrderStatus
	for _, t := range validTransitions {
		if t.Event == event {
			from = append(from, t.From)
		}
	}
	return from
}

// CanTransition returns the state event leads to from the given state,
// or an invalid-state error when the event does not apply.
func CanTransition(from models.OrderStatus, event Event) (models.OrderStatus, error) {
	if to, ok := transitionMap[transitionKey{From: from, Event: event}]; ok {
		return to, nil
	}
	if reason, ok := rejections[event]; ok {
		return "", errs.InvalidState(reason)
	}
	return "", errs.InvalidState(fmt.Sprintf(
		"invalid transition: %s from %s. Valid transitions from %s are: %s",
		event, from, from, describeValidFrom(from),
	))
}

// IsTerminal reports whether no event leaves the state
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	out := make([]Transition, len(validTransitions))
	copy(out, validTransitions)
	return out
}
