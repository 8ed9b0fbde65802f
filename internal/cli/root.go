package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// ErrNoItems is returned when there is nothing to select from
	ErrNoItems = errors.New("no items to select from")
	// ErrCancelled is returned when the user quits without submitting
	ErrCancelled = errors.New("selection cancelled")
)

const rootCmdExample = `  # pick from flags, print the chosen values
  multiselect --item "Apple=apple" --item "Banana=banana"

  # scroll through a long list five rows at a time
  multiselect --config fruits.toml --limit 5

  # remember the choice for next time
  multiselect --config fruits.toml --save

  # draw directly on the terminal instead of a full-screen program
  multiselect --raw --item one --item two`

type rootOptions struct {
	configPath   string
	title        string
	limit        int
	initialIndex int
	items        []string
	raw          bool
	logLevel     string
	logFile      string
	save         bool
	jsonOutput   bool
}

// NewRootCmd creates the root command
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "multiselect",
		Short: "Pick several items from a list in the terminal",
		Long: `multiselect shows a list of items and lets you toggle any number of them
with the keyboard. Submitted values are printed to stdout, one per line.

Keys: ↑/k and ↓/j move, space toggles, enter submits, esc cancels.`,
		Version:       version,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSelect(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to the config file (default $XDG_CONFIG_HOME/multiselect/config.toml)")
	flags.StringVarP(&opts.title, "title", "t", "", "Title shown above the list")
	flags.IntVarP(&opts.limit, "limit", "l", 0, "Maximum number of visible rows, 0 for all")
	flags.IntVar(&opts.initialIndex, "initial-index", 0, "Row highlighted at start")
	flags.StringArrayVarP(&opts.items, "item", "i", nil, "Item as label or label=value, repeatable; replaces configured items")
	flags.BoolVar(&opts.raw, "raw", false, "Draw inline on the terminal instead of a full-screen program")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "Log file (default a temp file)")
	flags.BoolVar(&opts.save, "save", false, "Store the submitted values as the next default selection")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Print the submitted items as JSON")

	cmd.AddCommand(newKeysCmd())
	return cmd
}

// Execute runs the root command and exits with a non-zero status on failure
func Execute(ctx context.Context, version string) {
	cmd := NewRootCmd(version)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, ErrCancelled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
