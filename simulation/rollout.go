package simulation

import (
	"errors"
	"fmt"
	"sort"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/finite-mdp/core"
)

// ErrNoMass is returned when a transition distribution has nothing to
// sample from.
var ErrNoMass = errors.New("transition distribution has no mass")

type Config struct {
	// Horizon caps the number of steps when no final state is reached.
	Horizon int
	// Discount weighs later rewards in the accumulated return.
	Discount float64
	// Seed makes trajectories reproducible.
	Seed uint64
}

type Step struct {
	State  core.State
	Action core.Action
	Next   core.State
}

// Result is one trajectory through the environment.
type Result struct {
	Steps        []*Step
	Return       float64
	ReachedFinal bool
}

// Rollout walks the policy through the environment from start, sampling each
// successor from the transition distribution, until it reaches a final state
// or exhausts the horizon. Rewards are accumulated with the given discount.
func Rollout(env core.Environment, policy core.Policy, start core.State, config Config) (*Result, error) {
	index := make(map[string]core.State)
	for _, s := range env.States() {
		index[s.Hash()] = s
	}

	src := erand.NewSource(config.Seed)
	result := &Result{Steps: make([]*Step, 0)}
	state := start
	discount := 1.0
	for step := 0; step < config.Horizon; step++ {
		result.Return += discount * env.Reward(state)
		if env.IsFinal(state) {
			result.ReachedFinal = true
			return result, nil
		}

		action, ok := policy[state.Hash()]
		if !ok {
			return nil, fmt.Errorf("state %q: %w", state.Hash(), core.ErrUnknownState)
		}
		next, err := sample(env.Transition(state, action), index, src)
		if err != nil {
			return nil, err
		}

		result.Steps = append(result.Steps, &Step{State: state, Action: action, Next: next})
		state = next
		discount *= config.Discount
	}
	return result, nil
}

// sample draws one successor state. Weights are laid out in sorted hash
// order so a fixed seed yields the same trajectory on every run.
func sample(dist core.Distribution, index map[string]core.State, src erand.Source) (core.State, error) {
	hashes := make([]string, 0, len(dist))
	for h := range dist {
		hashes = append(hashes, h)
	}
	sort.Strings(hashes)

	weights := make([]float64, len(hashes))
	for i, h := range hashes {
		weights[i] = dist[h]
	}

	i, ok := sampleuv.NewWeighted(weights, src).Take()
	if !ok {
		return nil, ErrNoMass
	}
	next, ok := index[hashes[i]]
	if !ok {
		return nil, fmt.Errorf("successor %q not in state set", hashes[i])
	}
	return next, nil
}
