package solver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeu5/finite-mdp/core"
	"github.com/zeu5/finite-mdp/solver"
)

func TestAgentSolveAndLookup(t *testing.T) {
	agent, err := solver.NewAgent(twoStateChain(), solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.NoError(t, err)
	require.NoError(t, agent.Solve(context.Background()))

	action, err := agent.GetAction(testState("s0"))
	require.NoError(t, err)
	require.Equal(t, "go", action.Hash())

	// s1 is terminal with no actions, so the policy omits it.
	_, err = agent.GetAction(testState("s1"))
	require.ErrorIs(t, err, core.ErrUnknownState)

	_, err = agent.GetAction(testState("nowhere"))
	require.ErrorIs(t, err, core.ErrUnknownState)
}

func TestAgentNotSolved(t *testing.T) {
	agent, err := solver.NewAgent(twoStateChain(), solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.NoError(t, err)

	_, err = agent.GetAction(testState("s0"))
	require.ErrorIs(t, err, solver.ErrNotSolved)
	require.Nil(t, agent.Policy())
	require.Nil(t, agent.ValueFunction())
}

func TestAgentRejectsInvalidDiscountBeforeSweeps(t *testing.T) {
	_, err := solver.NewAgent(twoStateChain(), solver.Config{DiscountFactor: 1, MaxErrorRate: 0.01})
	require.Error(t, err)
	require.True(t, errors.Is(err, core.ErrInvalidDiscount))
}

func TestAgentRejectsMalformedTransitions(t *testing.T) {
	env := twoStateChain()
	env.trans["s0"]["go"] = core.Distribution{"s1": 0.5}

	_, err := solver.NewAgent(env, solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.Error(t, err)
	var mte *core.MalformedTransitionError
	require.True(t, errors.As(err, &mte))
	require.Equal(t, "s0", mte.State)
	require.Equal(t, "go", mte.Action)
	require.InDelta(t, 0.5, mte.Sum, 1e-12)
}

func TestPolicyGreediness(t *testing.T) {
	env := slipperyChain()
	agent, err := solver.NewAgent(env, solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.001})
	require.NoError(t, err)
	require.NoError(t, agent.Solve(context.Background()))

	vf := agent.ValueFunction()
	policy := agent.Policy()
	for _, state := range env.States() {
		if env.IsFinal(state) {
			continue
		}
		chosen := policy[state.Hash()]
		require.NotNil(t, chosen)
		chosenUtility := env.Transition(state, chosen).Expected(vf)
		for _, action := range env.Actions(state) {
			utility := env.Transition(state, action).Expected(vf)
			require.LessOrEqual(t, utility, chosenUtility,
				"action %q beats chosen %q in state %q", action.Hash(), chosen.Hash(), state.Hash())
		}
	}
}

func TestAgentValueFunctionIsACopy(t *testing.T) {
	agent, err := solver.NewAgent(twoStateChain(), solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.NoError(t, err)
	require.NoError(t, agent.Solve(context.Background()))

	vf := agent.ValueFunction()
	vf["s0"] = -1
	require.InDelta(t, 9.0, agent.ValueFunction()["s0"], 1e-9)
}
