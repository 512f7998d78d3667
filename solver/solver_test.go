package solver_test

import (
	"github.com/zeu5/finite-mdp/core"
)

type testState string

func (s testState) Hash() string { return string(s) }

type testAction string

func (a testAction) Hash() string { return string(a) }

// testEnv is a hand-wired finite MDP for solver tests.
type testEnv struct {
	states  []core.State
	actions map[string][]core.Action
	final   map[string]bool
	rewards map[string]float64
	trans   map[string]map[string]core.Distribution
}

var _ core.Environment = &testEnv{}

func (e *testEnv) States() []core.State { return e.states }

func (e *testEnv) Actions(s core.State) []core.Action { return e.actions[s.Hash()] }

func (e *testEnv) IsFinal(s core.State) bool { return e.final[s.Hash()] }

func (e *testEnv) Reward(s core.State) float64 { return e.rewards[s.Hash()] }

func (e *testEnv) Transition(s core.State, a core.Action) core.Distribution {
	return e.trans[s.Hash()][a.Hash()]
}

// twoStateChain is the smallest absorbing MDP: s0 deterministically moves to
// the terminal s1 with reward 10.
func twoStateChain() *testEnv {
	return &testEnv{
		states: []core.State{testState("s0"), testState("s1")},
		actions: map[string][]core.Action{
			"s0": {testAction("go")},
		},
		final:   map[string]bool{"s1": true},
		rewards: map[string]float64{"s0": 0, "s1": 10},
		trans: map[string]map[string]core.Distribution{
			"s0": {"go": core.Distribution{"s1": 1}},
		},
	}
}

// slipperyChain has two actions in s0: "go" reaches the goal with
// probability 0.8, "stall" loops back. Used for greediness checks.
func slipperyChain() *testEnv {
	return &testEnv{
		states: []core.State{testState("s0"), testState("s1")},
		actions: map[string][]core.Action{
			"s0": {testAction("stall"), testAction("go")},
		},
		final:   map[string]bool{"s1": true},
		rewards: map[string]float64{"s0": 0, "s1": 10},
		trans: map[string]map[string]core.Distribution{
			"s0": {
				"stall": core.Distribution{"s0": 1},
				"go":    core.Distribution{"s1": 0.8, "s0": 0.2},
			},
		},
	}
}
