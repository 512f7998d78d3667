package solver

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/zeu5/finite-mdp/core"
	"github.com/zeu5/finite-mdp/util"
)

// ErrSolved is returned when Solve is called on an instance that already
// ran. Converged is a terminal phase; re-solving needs a fresh instance.
var ErrSolved = errors.New("already solved")

type Config struct {
	// DiscountFactor weighs future utility, must be in (0, 1).
	DiscountFactor float64
	// MaxErrorRate is the target optimality gap epsilon. Iteration stops
	// once a sweep changes no state by more than
	// epsilon*(1-gamma)/gamma, which leaves the value function within
	// epsilon of optimal.
	MaxErrorRate float64
	// Workers is the number of goroutines computing per-state updates
	// within a sweep. Values below 2 keep sweeps serial. Sweeps themselves
	// are always sequential: every update reads the previous sweep's
	// frozen snapshot.
	Workers int
}

func DefaultConfig() Config {
	return Config{
		DiscountFactor: 0.999,
		MaxErrorRate:   0.01,
		Workers:        1,
	}
}

func (c Config) Validate() error {
	if c.DiscountFactor <= 0 || c.DiscountFactor >= 1 {
		return fmt.Errorf("discount factor %g: %w", c.DiscountFactor, core.ErrInvalidDiscount)
	}
	if c.MaxErrorRate <= 0 {
		return fmt.Errorf("error rate %g: %w", c.MaxErrorRate, core.ErrInvalidErrorRate)
	}
	return nil
}

type phase int

const (
	phaseInitializing phase = iota
	phaseIterating
	phaseConverged
)

// ValueIteration runs synchronous value iteration sweeps until the maximum
// value change drops to the stopping bound. Each sweep computes the new
// value of every state strictly from the previous sweep's snapshot.
type ValueIteration struct {
	env       core.Environment
	config    Config
	observers []Observer

	phase      phase
	iterations int
	vf         core.ValueFunction
}

func NewValueIteration(env core.Environment, config Config) (*ValueIteration, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &ValueIteration{
		env:       env,
		config:    config,
		observers: make([]Observer, 0),
	}, nil
}

// AddObserver registers an observer invoked after every sweep. Observers
// must be added before Solve.
func (vi *ValueIteration) AddObserver(o Observer) {
	vi.observers = append(vi.observers, o)
}

// Iterations returns the number of sweeps run so far.
func (vi *ValueIteration) Iterations() int {
	return vi.iterations
}

// ValueFunction returns the converged snapshot, or nil before convergence.
func (vi *ValueIteration) ValueFunction() core.ValueFunction {
	if vi.phase != phaseConverged {
		return nil
	}
	return vi.vf
}

// Solve iterates to convergence and returns the frozen value function.
// Cancelling the context aborts between sweeps.
func (vi *ValueIteration) Solve(ctx context.Context) (core.ValueFunction, error) {
	if vi.phase != phaseInitializing {
		return nil, ErrSolved
	}

	states := vi.env.States()
	vf := make(core.ValueFunction, len(states))
	for _, state := range states {
		vf[state.Hash()] = 0
	}
	vi.phase = phaseIterating

	threshold := vi.config.MaxErrorRate * (1 - vi.config.DiscountFactor) / vi.config.DiscountFactor
	delta := math.Inf(1)
	for delta > threshold {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		next, sweepDelta, err := vi.sweep(states, vf)
		if err != nil {
			return nil, err
		}
		vf = next
		delta = sweepDelta

		for _, o := range vi.observers {
			o.Observe(vi.iterations, vf, delta)
		}
		vi.iterations++
	}

	vi.phase = phaseConverged
	vi.vf = vf
	return vf, nil
}

type stateUpdate struct {
	hash  string
	value float64
	err   error
}

// sweep computes the next snapshot from prev and the maximum absolute value
// change across all states. Final states are pinned to their reward, so they
// only contribute to the delta on the sweep that first pins them.
func (vi *ValueIteration) sweep(states []core.State, prev core.ValueFunction) (core.ValueFunction, float64, error) {
	updates := make([]stateUpdate, len(states))
	if vi.config.Workers > 1 {
		vi.sweepParallel(states, prev, updates)
	} else {
		for i, state := range states {
			updates[i] = vi.update(state, prev)
		}
	}

	next := make(core.ValueFunction, len(states))
	delta := 0.0
	for _, u := range updates {
		if u.err != nil {
			return nil, 0, u.err
		}
		next[u.hash] = u.value
		delta = util.MaxFloat(delta, math.Abs(prev[u.hash]-u.value))
	}
	return next, delta, nil
}

func (vi *ValueIteration) update(state core.State, prev core.ValueFunction) stateUpdate {
	hash := state.Hash()
	if vi.env.IsFinal(state) {
		return stateUpdate{hash: hash, value: vi.env.Reward(state)}
	}
	_, utility, err := BestAction(vi.env, state, prev)
	if err != nil {
		return stateUpdate{hash: hash, err: err}
	}
	return stateUpdate{
		hash:  hash,
		value: vi.env.Reward(state) + vi.config.DiscountFactor*utility,
	}
}

// sweepParallel fans the per-state updates over a worker pool. Workers read
// only the frozen prev snapshot and each writes its own slot of updates, so
// the WaitGroup join is the only synchronization needed.
func (vi *ValueIteration) sweepParallel(states []core.State, prev core.ValueFunction, updates []stateUpdate) {
	indexCh := make(chan int, len(states))
	wg := new(sync.WaitGroup)

	for w := 0; w < vi.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				updates[i] = vi.update(states[i], prev)
			}
		}()
	}

	for i := range states {
		indexCh <- i
	}
	close(indexCh)
	wg.Wait()
}
