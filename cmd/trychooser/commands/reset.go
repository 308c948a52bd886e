package commands

import (
	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the current selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := appCtx.Reset(cmd.Context())
			if err != nil {
				return err
			}
			return printSnapshot(cmd.OutOrStdout(), snap)
		},
	}
}
