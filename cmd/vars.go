package cmd

import "github.com/spf13/cobra"

var (
	flags *Flags = DefaultFlags()

	discountFactor float64
	maxErrorRate   float64
	workers        int

	rollouts int
	horizon  int
	seed     uint64

	chainLength     int
	chainSlip       float64
	chainGoalReward float64
	chainStepReward float64

	gridworldFile string
	savePath      string
	live          bool
)

func AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Float64Var(&discountFactor, "discount", flags.DiscountFactor, "Discount factor, in (0,1)")
	cmd.PersistentFlags().Float64Var(&maxErrorRate, "error-rate", flags.MaxErrorRate, "Target optimality gap epsilon")
	cmd.PersistentFlags().IntVar(&workers, "workers", flags.Workers, "Goroutines per sweep")

	cmd.PersistentFlags().IntVar(&rollouts, "rollouts", flags.Rollouts, "Number of greedy rollouts after solving")
	cmd.PersistentFlags().IntVar(&horizon, "horizon", flags.Horizon, "Maximum rollout length")
	cmd.PersistentFlags().Uint64Var(&seed, "seed", flags.Seed, "Rollout sampling seed")

	cmd.PersistentFlags().IntVar(&chainLength, "chain-length", flags.ChainLength, "Number of chain states")
	cmd.PersistentFlags().Float64Var(&chainSlip, "chain-slip", flags.ChainSlip, "Probability an advance slips in place")
	cmd.PersistentFlags().Float64Var(&chainGoalReward, "chain-goal-reward", flags.ChainGoalReward, "Reward of the chain goal")
	cmd.PersistentFlags().Float64Var(&chainStepReward, "chain-step-reward", flags.ChainStepReward, "Reward of non-goal chain states")

	cmd.PersistentFlags().StringVar(&gridworldFile, "gridworld-file", flags.GridworldFile, "Path to the gridworld YAML definition")
	cmd.PersistentFlags().StringVar(&savePath, "save-path", flags.SavePath, "Path to save results")
	cmd.PersistentFlags().BoolVar(&live, "live", flags.Live, "Show the value function live while solving")
}

func UpdateFlags() {
	flags.DiscountFactor = discountFactor
	flags.MaxErrorRate = maxErrorRate
	flags.Workers = workers

	flags.Rollouts = rollouts
	flags.Horizon = horizon
	flags.Seed = seed

	flags.ChainLength = chainLength
	flags.ChainSlip = chainSlip
	flags.ChainGoalReward = chainGoalReward
	flags.ChainStepReward = chainStepReward

	flags.GridworldFile = gridworldFile
	flags.SavePath = savePath
	flags.Live = live
}
