package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/zeu5/finite-mdp/analysis"
	"github.com/zeu5/finite-mdp/core"
	"github.com/zeu5/finite-mdp/simulation"
	"github.com/zeu5/finite-mdp/solver"
)

// runSolve solves the environment, saves the sweep history and rolls the
// greedy policy out from start. The solve aborts on interrupt.
func runSolve(env core.Environment, start core.State, render analysis.Renderer) (*solver.Agent, error) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt) // channel for interrupts from os

	doneCh := make(chan struct{}) // channel for done signal from application

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-sigCh:
		case <-doneCh:
		}
		cancel()
	}()
	defer close(doneCh)

	agent, err := solver.NewAgent(env, solver.Config{
		DiscountFactor: flags.DiscountFactor,
		MaxErrorRate:   flags.MaxErrorRate,
		Workers:        flags.Workers,
	})
	if err != nil {
		return nil, err
	}

	recorder := analysis.NewRecorder()
	agent.AddObserver(recorder)
	if flags.Live {
		term := analysis.NewTerminalObserver(render)
		term.Start()
		defer term.Stop()
		agent.AddObserver(term)
	}

	if err := agent.Solve(ctx); err != nil {
		return nil, err
	}
	fmt.Printf("converged after %d sweeps\n", agent.Iterations())

	if err := recorder.Save(path.Join(flags.SavePath, "sweeps.json")); err != nil {
		return nil, err
	}

	policy := agent.Policy()
	for i := 0; i < flags.Rollouts; i++ {
		result, err := simulation.Rollout(env, policy, start, simulation.Config{
			Horizon:  flags.Horizon,
			Discount: flags.DiscountFactor,
			Seed:     flags.Seed + uint64(i),
		})
		if err != nil {
			return nil, err
		}
		fmt.Printf(
			"rollout %d: %d steps, return %.3f, reached goal: %v\n",
			i, len(result.Steps), result.Return, result.ReachedFinal,
		)
	}

	return agent, nil
}
