package envs

import (
	"strconv"

	"github.com/zeu5/finite-mdp/core"
)

// ChainState is a position on the chain.
type ChainState int

func (s ChainState) Hash() string {
	return "s" + strconv.Itoa(int(s))
}

type ChainAction string

func (a ChainAction) Hash() string {
	return string(a)
}

// Advance is the chain's only action.
const Advance = ChainAction("advance")

type ChainConfig struct {
	// Length is the number of states; the last one is the absorbing goal.
	Length int
	// Slip is the probability that Advance leaves the agent in place.
	Slip float64
	// GoalReward is the reward of the final state.
	GoalReward float64
	// StepReward is the reward of every other state.
	StepReward float64
}

// Chain is an absorbing chain of states: Advance moves one step towards the
// goal, slipping in place with the configured probability. The smallest
// useful benchmark for the solver.
type Chain struct {
	config ChainConfig
	states []core.State
}

var _ core.Environment = &Chain{}

func NewChain(config ChainConfig) *Chain {
	states := make([]core.State, config.Length)
	for i := range states {
		states[i] = ChainState(i)
	}
	return &Chain{config: config, states: states}
}

func (c *Chain) States() []core.State {
	return c.states
}

func (c *Chain) Actions(state core.State) []core.Action {
	if c.IsFinal(state) {
		return nil
	}
	return []core.Action{Advance}
}

func (c *Chain) IsFinal(state core.State) bool {
	return int(state.(ChainState)) == c.config.Length-1
}

func (c *Chain) Reward(state core.State) float64 {
	if c.IsFinal(state) {
		return c.config.GoalReward
	}
	return c.config.StepReward
}

func (c *Chain) Transition(state core.State, _ core.Action) core.Distribution {
	i := int(state.(ChainState))
	next := ChainState(i + 1)
	if c.config.Slip <= 0 {
		return core.Distribution{next.Hash(): 1}
	}
	return core.Distribution{
		next.Hash():          1 - c.config.Slip,
		ChainState(i).Hash(): c.config.Slip,
	}
}

// Start is the far end of the chain.
func (c *Chain) Start() core.State {
	return ChainState(0)
}
