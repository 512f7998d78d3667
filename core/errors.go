package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDiscount is returned for discount factors outside (0, 1).
	// A discount of exactly 1 is rejected because the stopping bound
	// eps*(1-gamma)/gamma divides by 1-gamma.
	ErrInvalidDiscount = errors.New("discount factor must be in (0, 1)")

	// ErrInvalidErrorRate is returned for non-positive error rates.
	ErrInvalidErrorRate = errors.New("maximum error rate must be positive")

	// ErrNoFeasibleAction is returned when a non-terminal state has an
	// empty action set.
	ErrNoFeasibleAction = errors.New("no feasible action")

	// ErrUnknownState is returned when an action is requested for a state
	// the computed policy does not cover.
	ErrUnknownState = errors.New("state not covered by policy")
)

// MalformedTransitionError reports a transition distribution whose
// probabilities do not sum to 1 within tolerance, or contain a negative
// entry.
type MalformedTransitionError struct {
	State  string
	Action string
	Sum    float64
}

func (e *MalformedTransitionError) Error() string {
	return fmt.Sprintf("transition probabilities for state %q action %q sum to %g, want 1", e.State, e.Action, e.Sum)
}
