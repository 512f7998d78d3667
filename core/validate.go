package core

import "math"

// ProbabilityTolerance is how far a transition row's total mass may drift
// from 1 before it is considered malformed.
const ProbabilityTolerance = 1e-6

// ValidateTransitions checks every (state, action) pair of the environment
// eagerly, so a broken model fails the solve up front instead of deep inside
// a sweep. It returns a *MalformedTransitionError for the first row whose
// probabilities are negative or do not sum to 1 within tolerance.
func ValidateTransitions(env Environment) error {
	for _, state := range env.States() {
		for _, action := range env.Actions(state) {
			row := env.Transition(state, action)
			for _, p := range row {
				if p < 0 {
					return &MalformedTransitionError{
						State:  state.Hash(),
						Action: action.Hash(),
						Sum:    row.Sum(),
					}
				}
			}
			if sum := row.Sum(); math.Abs(sum-1) > ProbabilityTolerance {
				return &MalformedTransitionError{
					State:  state.Hash(),
					Action: action.Hash(),
					Sum:    sum,
				}
			}
		}
	}
	return nil
}
