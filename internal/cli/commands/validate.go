package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giada-balinzo/chatmine/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long:  "Validate the syntax and semantics of a chatmine configuration file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(ctx, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Configuration is valid: %s\n", args[0])
			if len(cfg.SelfNames) > 0 {
				fmt.Fprintf(w, "  self names:      %d configured\n", len(cfg.SelfNames))
			} else {
				fmt.Fprintln(w, "  self names:      none (will be inferred)")
			}
			if cfg.ReactionCutoff > 0 {
				fmt.Fprintf(w, "  reaction cutoff: %s\n", cfg.ReactionCutoff)
			} else {
				fmt.Fprintln(w, "  reaction cutoff: disabled")
			}
			fmt.Fprintf(w, "  top words:       %d\n", cfg.TopWords)
			fmt.Fprintf(w, "  webhooks:        %d\n", len(cfg.Webhooks))
			return nil
		},
	}
}
