package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeu5/finite-mdp/core"
)

func TestDistributionExpected(t *testing.T) {
	dist := core.Distribution{"a": 0.5, "b": 0.3, "c": 0.2}
	vf := core.ValueFunction{"a": 10, "b": -5}

	// c is missing from the value function and contributes zero.
	require.InDelta(t, 0.5*10+0.3*-5, dist.Expected(vf), 1e-12)
}

func TestDistributionSum(t *testing.T) {
	require.InDelta(t, 1.0, core.Distribution{"a": 0.5, "b": 0.5}.Sum(), 1e-12)
	require.Zero(t, core.Distribution{}.Sum())
}

func TestValueFunctionCopy(t *testing.T) {
	vf := core.ValueFunction{"a": 1}
	cp := vf.Copy()
	cp["a"] = 2
	require.InDelta(t, 1.0, vf["a"], 0)
}

func TestPolicyCopy(t *testing.T) {
	p := core.Policy{"a": id("go")}
	cp := p.Copy()
	cp["a"] = id("stop")
	require.Equal(t, "go", p["a"].Hash())
}
