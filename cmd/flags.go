package cmd

import (
	"path"

	"github.com/zeu5/finite-mdp/util"
)

type Flags struct {
	SolveFlags
	RolloutFlags
	ChainFlags

	GridworldFile string
	SavePath      string
	Live          bool
}

type SolveFlags struct {
	DiscountFactor float64
	MaxErrorRate   float64
	Workers        int
}

type RolloutFlags struct {
	Rollouts int
	Horizon  int
	Seed     uint64
}

type ChainFlags struct {
	ChainLength     int
	ChainSlip       float64
	ChainGoalReward float64
	ChainStepReward float64
}

func DefaultFlags() *Flags {
	return &Flags{
		SolveFlags: SolveFlags{
			DiscountFactor: 0.999,
			MaxErrorRate:   0.01,
			Workers:        1,
		},
		RolloutFlags: RolloutFlags{
			Rollouts: 3,
			Horizon:  100,
			Seed:     1,
		},
		ChainFlags: ChainFlags{
			ChainLength:     5,
			ChainSlip:       0.1,
			ChainGoalReward: 10,
			ChainStepReward: 0,
		},
		GridworldFile: "gridworld.yaml",
		SavePath:      "results",
		Live:          false,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
