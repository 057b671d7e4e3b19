package cli

import (
	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandRun CommandType = iota
	CommandVersion
)

// Options contains the parsed command-line arguments
type Options struct {
	Type     CommandType
	NoUI     bool
	Input    string
	Capacity int
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type: CommandRun,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(buildVersionCommand(result))

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "antigravity",
		Short: "Debug console for the Antigravity Manager telemetry stream",
		Long: `Antigravity's debug console: ingests structured log events from stdin
or a tailed file, keeps a bounded window of them, and supports live
level/search filtering, auto-follow, clipboard copy, and JSONL export.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandRun
		},
	}

	cmd.PersistentFlags().BoolVar(&result.NoUI, "no-ui", false, "Run without TUI, printing entries to stdout")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")
	cmd.Flags().StringVarP(&result.Input, "input", "i", "", "Tail a log file instead of reading stdin")
	cmd.Flags().IntVarP(&result.Capacity, "capacity", "n", 0, "Override the console buffer capacity")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
