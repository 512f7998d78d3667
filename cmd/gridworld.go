package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeu5/finite-mdp/envs/gridworld"
)

func GridworldCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridworld",
		Short: "Solve a windy gridworld defined in a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := gridworld.LoadConfig(flags.GridworldFile)
			if err != nil {
				return err
			}
			env, err := gridworld.New(config)
			if err != nil {
				return err
			}

			agent, err := runSolve(env, env.Start(), env.RenderValues)
			if err != nil {
				return err
			}

			fmt.Println("value function:")
			fmt.Print(env.RenderValues(agent.ValueFunction()))
			fmt.Println("greedy policy:")
			fmt.Print(env.RenderPolicy(agent.Policy()))
			return nil
		},
	}

	return cmd
}
