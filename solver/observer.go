package solver

import "github.com/zeu5/finite-mdp/core"

// Observer is notified once per sweep, on the controlling goroutine, after
// all per-state updates have joined. The value function it receives is the
// finished snapshot for that sweep and must not be mutated; observers cannot
// influence the solve.
type Observer interface {
	Observe(iteration int, vf core.ValueFunction, delta float64)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(iteration int, vf core.ValueFunction, delta float64)

func (f ObserverFunc) Observe(iteration int, vf core.ValueFunction, delta float64) {
	f(iteration, vf, delta)
}
