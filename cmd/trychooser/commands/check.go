package commands

import (
	"github.com/spf13/cobra"

	"trychooser/internal/domain"
)

// check <id>...: check controls, in order.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <control>...",
		Short: "Check controls (options, group all/none selectors, subgroups, filters, profile)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyControls(cmd, args, domain.Check)
		},
	}
}

// uncheck <id>...: uncheck controls, in order.
func uncheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncheck <control>...",
		Short: "Uncheck controls",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return applyControls(cmd, args, domain.Uncheck)
		},
	}
}

func applyControls(cmd *cobra.Command, args []string, event func(domain.ControlID) domain.Event) error {
	events := make([]domain.Event, 0, len(args))
	for _, id := range args {
		events = append(events, event(domain.ControlID(id)))
	}
	snap, err := appCtx.Apply(cmd.Context(), events...)
	if err != nil {
		return err
	}
	return printSnapshot(cmd.OutOrStdout(), snap)
}
