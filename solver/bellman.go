package solver

import (
	"fmt"
	"math"

	"github.com/zeu5/finite-mdp/core"
)

// BestAction returns the action with the greatest expected utility under the
// given value function, together with that utility. Ties break to the first
// action in the environment's enumeration order: only a strictly greater
// utility displaces the current best, so runs are reproducible whenever the
// environment enumerates actions in a stable order.
func BestAction(env core.Environment, state core.State, vf core.ValueFunction) (core.Action, float64, error) {
	actions := env.Actions(state)
	if len(actions) == 0 {
		return nil, 0, fmt.Errorf("state %q: %w", state.Hash(), core.ErrNoFeasibleAction)
	}

	var best core.Action
	bestUtility := math.Inf(-1)
	for _, action := range actions {
		utility := env.Transition(state, action).Expected(vf)
		if utility > bestUtility {
			best = action
			bestUtility = utility
		}
	}
	return best, bestUtility, nil
}
