// Package cli provides the command-line interface for chatmine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/giada-balinzo/chatmine/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "chatmine",
		Short: "Mine statistics from exported chat transcripts",
		Long: `chatmine analyzes a folder of exported chat transcripts (.txt files)
and reports communication statistics:

  - message volume, sent/received split and ratio
  - hourly activity histogram
  - ranked word frequencies
  - response latency per conversation side (sender-switch based)

It understands the common export dialects: dash-separated single-line
headers, bracketed single-line headers, and bracketed two-line headers,
including multi-line message bodies and system notices.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
