package commands

import (
	"github.com/spf13/cobra"

	"trychooser/internal/domain"
)

func selectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <radio> <value>",
		Short: "Choose a value for a radio control (e.g. select b o)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := appCtx.Apply(cmd.Context(), domain.Select(args[0], args[1]))
			if err != nil {
				return err
			}
			return printSnapshot(cmd.OutOrStdout(), snap)
		},
	}
}
