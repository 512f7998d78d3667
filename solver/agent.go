package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeu5/finite-mdp/core"
)

// ErrNotSolved is returned when an action is requested before Solve ran.
var ErrNotSolved = errors.New("agent not solved yet")

// Agent plans over a finite MDP: Solve runs value iteration to convergence
// and extracts the greedy policy, after which GetAction is a constant-time
// lookup. Construction only validates; the (potentially long) solve is an
// explicit step so callers see where the work happens and can cancel it.
type Agent struct {
	env core.Environment
	vi  *ValueIteration

	vf     core.ValueFunction
	policy core.Policy
}

// NewAgent validates the configuration and the environment's transition
// model eagerly and returns an unsolved agent. A discount factor outside
// (0, 1) or a non-positive error rate fails here, before any sweep runs, as
// does a transition row whose probabilities do not sum to 1.
func NewAgent(env core.Environment, config Config) (*Agent, error) {
	vi, err := NewValueIteration(env, config)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateTransitions(env); err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}
	return &Agent{env: env, vi: vi}, nil
}

// AddObserver registers a per-sweep observer. Must be called before Solve.
func (a *Agent) AddObserver(o Observer) {
	a.vi.AddObserver(o)
}

// Solve runs value iteration to convergence and freezes the greedy policy.
// It can run at most once per agent.
func (a *Agent) Solve(ctx context.Context) error {
	vf, err := a.vi.Solve(ctx)
	if err != nil {
		return err
	}
	policy, err := ExtractPolicy(a.env, vf)
	if err != nil {
		return err
	}
	a.vf = vf
	a.policy = policy
	return nil
}

// GetAction returns the greedy action for the state. It fails with
// ErrUnknownState for states the policy does not cover, including final
// states without actions.
func (a *Agent) GetAction(state core.State) (core.Action, error) {
	if a.policy == nil {
		return nil, ErrNotSolved
	}
	action, ok := a.policy[state.Hash()]
	if !ok {
		return nil, fmt.Errorf("state %q: %w", state.Hash(), core.ErrUnknownState)
	}
	return action, nil
}

// ValueFunction returns a copy of the converged value function, or nil
// before Solve.
func (a *Agent) ValueFunction() core.ValueFunction {
	if a.vf == nil {
		return nil
	}
	return a.vf.Copy()
}

// Policy returns a copy of the greedy policy, or nil before Solve.
func (a *Agent) Policy() core.Policy {
	if a.policy == nil {
		return nil
	}
	return a.policy.Copy()
}

// Iterations returns the number of sweeps the solve took.
func (a *Agent) Iterations() int {
	return a.vi.Iterations()
}
