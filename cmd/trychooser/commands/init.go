package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Start a fresh selection from the definition's initial state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			def, fp, err := appCtx.Definition(ctx)
			if err != nil {
				return err
			}
			snap, err := appCtx.Reset(ctx)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), snap)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Definition: %s\nFingerprint: %s\n", def.Title, fp)
			return printSnapshot(out, snap)
		},
	}
}
