package analysis_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeu5/finite-mdp/analysis"
	"github.com/zeu5/finite-mdp/envs"
	"github.com/zeu5/finite-mdp/solver"
)

func TestRecorderCapturesEverySweep(t *testing.T) {
	env := envs.NewChain(envs.ChainConfig{Length: 4, GoalReward: 10})
	agent, err := solver.NewAgent(env, solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.NoError(t, err)

	recorder := analysis.NewRecorder()
	agent.AddObserver(recorder)
	require.NoError(t, agent.Solve(context.Background()))

	records := recorder.Records()
	require.Len(t, records, agent.Iterations())
	for i, record := range records {
		require.Equal(t, i, record.Iteration)
		require.InDelta(t, 10.0, record.Values["s3"], 1e-12, "terminal pinned in sweep %d", i)
	}
	// The last sweep is the converged snapshot.
	last := records[len(records)-1]
	require.InDelta(t, agent.ValueFunction()["s0"], last.Values["s0"], 1e-12)
}

func TestRecorderSnapshotsAreIndependent(t *testing.T) {
	env := envs.NewChain(envs.ChainConfig{Length: 3, GoalReward: 5})
	agent, err := solver.NewAgent(env, solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.NoError(t, err)

	recorder := analysis.NewRecorder()
	agent.AddObserver(recorder)
	require.NoError(t, agent.Solve(context.Background()))

	records := recorder.Records()
	require.Greater(t, len(records), 1)
	// Early sweeps must keep their own values, not alias the final map.
	require.NotEqual(t, records[0].Values["s0"], records[len(records)-1].Values["s0"])
}

func TestRecorderSave(t *testing.T) {
	env := envs.NewChain(envs.ChainConfig{Length: 3, GoalReward: 10})
	agent, err := solver.NewAgent(env, solver.Config{DiscountFactor: 0.9, MaxErrorRate: 0.01})
	require.NoError(t, err)

	recorder := analysis.NewRecorder()
	agent.AddObserver(recorder)
	require.NoError(t, agent.Solve(context.Background()))

	path := filepath.Join(t.TempDir(), "out", "sweeps.json")
	require.NoError(t, recorder.Save(path))

	bs, err := os.ReadFile(path)
	require.NoError(t, err)
	loaded := make([]*analysis.SweepRecord, 0)
	require.NoError(t, json.Unmarshal(bs, &loaded))
	require.Len(t, loaded, len(recorder.Records()))
}
