package solver

import "github.com/zeu5/finite-mdp/core"

// ExtractPolicy runs one best-action pass per state against a frozen value
// function and records the greedy choice. It never updates values. Final
// states that still offer actions are covered like any other state; final
// states with an empty action set are omitted from the policy.
func ExtractPolicy(env core.Environment, vf core.ValueFunction) (core.Policy, error) {
	states := env.States()
	policy := make(core.Policy, len(states))
	for _, state := range states {
		if env.IsFinal(state) && len(env.Actions(state)) == 0 {
			continue
		}
		action, _, err := BestAction(env, state, vf)
		if err != nil {
			return nil, err
		}
		policy[state.Hash()] = action
	}
	return policy, nil
}
