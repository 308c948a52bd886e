package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trychooser/internal/domain"
)

func controlsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "controls",
		Short: "List every control of the definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			controls, err := appCtx.Controls(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), controls)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CONTROL\tKIND\tSECTION\tVALUE\t")
			for _, c := range controls {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Kind, section(c), c.Value, note(c))
			}
			return tw.Flush()
		},
	}
}

func section(c domain.ControlInfo) string {
	if c.Section == "" {
		return "-"
	}
	return "-" + c.Section
}

func note(c domain.ControlInfo) string {
	switch {
	case c.Nondefault:
		return "(not run by default)"
	case c.Project != "":
		return "project " + c.Project
	default:
		return ""
	}
}
