package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/zeu5/finite-mdp/envs"
)

func ChainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "Solve the absorbing chain benchmark",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := envs.NewChain(envs.ChainConfig{
				Length:     flags.ChainLength,
				Slip:       flags.ChainSlip,
				GoalReward: flags.ChainGoalReward,
				StepReward: flags.ChainStepReward,
			})

			agent, err := runSolve(env, env.Start(), nil)
			if err != nil {
				return err
			}

			vf := agent.ValueFunction()
			hashes := make([]string, 0, len(vf))
			for h := range vf {
				hashes = append(hashes, h)
			}
			sort.Strings(hashes)
			for _, h := range hashes {
				fmt.Printf("%s: %.4f\n", h, vf[h])
			}
			return nil
		},
	}

	return cmd
}
