package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"multiselect/internal/terminal"
	"multiselect/internal/ui"
	"multiselect/internal/ui/input"
)

func newKeysCmd() *cobra.Command {
	var noPager bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			keys := input.DefaultKeyMap()
			if noPager || !terminal.IsTerminal(os.Stdout) {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), ui.KeyReference(keys))
				return err
			}
			return ui.ShowKeysInPager(keys)
		},
	}

	cmd.Flags().BoolVar(&noPager, "no-pager", false, "Print the reference instead of paging it")
	return cmd
}
