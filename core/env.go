package core

// State is an opaque state identifier. The environment owns the state set;
// the solver only reads states and keys its tables by Hash.
type State interface {
	Hash() string
}

// Action is an opaque action identifier.
type Action interface {
	Hash() string
}

// Distribution is a probability distribution over successor states, keyed by
// state hash. States absent from the map have probability zero.
type Distribution map[string]float64

// Environment supplies a finite MDP. The state and action sets are fixed for
// the lifetime of a solve; Reward and Transition must be pure.
type Environment interface {
	// States returns the full state set. The enumeration order is the order
	// sweeps visit states in and the order ties between equal-utility
	// actions break in, so it must be stable across calls.
	States() []State
	// Actions returns the actions available in the given state, in a stable
	// order. May be empty for final states.
	Actions(State) []Action
	// IsFinal reports whether the state is absorbing. Final states are
	// pinned to their reward on every sweep.
	IsFinal(State) bool
	Reward(State) float64
	Transition(State, Action) Distribution
}
