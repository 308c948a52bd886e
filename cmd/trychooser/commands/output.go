package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"trychooser/internal/domain"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printSnapshot writes the compiled syntax followed by notes a user would
// otherwise only see as greyed-out controls.
func printSnapshot(w io.Writer, snap domain.Snapshot) error {
	if jsonOutput {
		return printJSON(w, snap)
	}
	fmt.Fprintln(w, snap.Result.Syntax)
	if snap.Session != "" {
		fmt.Fprintf(w, "session: %s\n", snap.Session)
	}
	for _, gate := range snap.Result.Filters {
		if gate.Disabled {
			fmt.Fprintf(w, "note: -%s filters are ignored while an android or b2g option is selected\n", gate.Section)
		}
	}
	if snap.Result.NoneChosen {
		fmt.Fprintln(w, "note: the primary section is set to none, so no jobs would run")
	}
	return nil
}

func printGroups(w io.Writer, snap domain.Snapshot) {
	names := make([]string, 0, len(snap.Groups))
	for name := range snap.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-12s %s\n", name, snap.Groups[name])
	}
}
