package cmd

import "github.com/spf13/cobra"

func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finite-mdp",
		Short: "Solve finite MDPs with epsilon-optimal value iteration",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			UpdateFlags()
			flags.Record()
		},
	}
	AddFlags(cmd)

	cmd.AddCommand(
		ChainCommand(),
		GridworldCommand(),
	)

	return cmd
}
