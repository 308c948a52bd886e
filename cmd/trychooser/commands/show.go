package commands

import (
	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var groups bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the try syntax for the current selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := appCtx.Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			if err := printSnapshot(cmd.OutOrStdout(), snap); err != nil {
				return err
			}
			if groups && !jsonOutput {
				printGroups(cmd.OutOrStdout(), snap)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&groups, "groups", false, "also print each group's all/none/mixed state")
	return cmd
}
