package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giada-balinzo/chatmine/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	SampleSize int
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <transcript-file>",
		Short: "Detect the dialect of a transcript file",
		Long: `Detect which export dialect a transcript file uses by sampling its
first lines and scoring them against the known header shapes:

  - Dash-separated single-line (12/31/23, 21:05 - Name: message)
  - Bracketed single-line      ([31.12.2023, 21:05:12] Name: message)
  - Bracketed two-line header  ([31.12.2023, 21:05:12] alone, payload on the next line)

Useful to verify a file will parse before running analyze.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", 100, "Number of lines to sample")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))
	result, err := d.DetectFromFile(ctx, args[0])
	if err != nil {
		return fmt.Errorf("detecting dialect: %w", err)
	}

	w := cmd.OutOrStdout()

	if !result.HasMatch() {
		fmt.Fprintf(w, "No known dialect matched in %d sampled line(s).\n", result.SampledLines)
		fmt.Fprintln(w, "The file may not be a chat export, or uses an unsupported format.")
		return nil
	}

	fmt.Fprintf(w, "Sampled %d line(s), %d header line(s) in the best dialect.\n\n",
		result.SampledLines, result.HeaderLines)

	for i, m := range result.Matches {
		marker := "   "
		if i == 0 {
			marker = "-> "
		}
		fmt.Fprintf(w, "%s%s: %d match(es), confidence %.0f%%\n",
			marker, m.Dialect.Name, m.MatchCount, m.Confidence*100)
		fmt.Fprintf(w, "   sample: %s\n", m.SampleLine)
	}

	if result.AmbiguityNote != "" {
		fmt.Fprintf(w, "\nWARNING: %s\n", result.AmbiguityNote)
	}

	return nil
}
