package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/giada-balinzo/chatmine/pkg/config"
	"github.com/giada-balinzo/chatmine/pkg/output"
	"github.com/giada-balinzo/chatmine/pkg/parser"
	"github.com/giada-balinzo/chatmine/pkg/stats"
	"github.com/giada-balinzo/chatmine/pkg/webhook"
)

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	ConfigFile string
	SelfNames  []string
	Cutoff     time.Duration
	TopWords   int
	BarWidth   int
	Output     string
	Verbose    bool
	Quiet      bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [directory]",
		Short: "Analyze a folder of chat transcripts",
		Long: `Analyze every .txt transcript in a directory (default: current directory).

Each file is parsed and summarized on its own, followed by an aggregate
summary computed over the concatenation of all files.

Exit codes:
  0 - Analysis completed (including "no transcripts found")
  2 - Bad directory, configuration or runtime error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringSliceVar(&opts.SelfNames, "self", nil, "Display name counted as \"sent\" (can be repeated)")
	cmd.Flags().DurationVar(&opts.Cutoff, "cutoff", config.DefaultReactionCutoff, "Reaction-time cutoff (0 disables)")
	cmd.Flags().IntVar(&opts.TopWords, "top-words", config.DefaultTopWords, "Number of words in the frequency table")
	cmd.Flags().IntVar(&opts.BarWidth, "bar-width", config.DefaultHourBarWidth, "Width of the hourly histogram bars")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include run metadata in the report")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "always", "When to fire webhook (always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving directory: %w", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("not a folder: %s", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", dir)
	}

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	files, err := parser.ListTranscripts(dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No .txt files found in: %s\n", dir)
		return nil
	}

	engine := stats.NewEngine(stats.Options{
		SelfNames:  cfg.SelfNames,
		Cutoff:     cfg.ReactionCutoff,
		TopWords:   cfg.TopWords,
		TopSenders: cfg.TopSenders,
	})

	start := time.Now()

	// Per-file results, plus the growing all-files sequence. The aggregate
	// is recomputed over the merged messages; per-file summaries are not
	// merged (mean/median/top-N do not compose).
	var (
		allMessages []*parser.Message
		fileReports []*output.FileReport
	)
	for _, path := range files {
		content, err := parser.ReadTranscript(path)
		if err != nil {
			return err
		}
		msgs := parser.ParseTranscript(content)
		allMessages = append(allMessages, msgs...)

		label := "FILE: " + filepath.Base(path)
		fileReports = append(fileReports, &output.FileReport{
			File:  path,
			Stats: engine.Compute(label, msgs),
		})
	}

	total := engine.Compute("TOTAL (ALL FILES)", allMessages)

	report := output.NewReport(fileReports, total, output.Metadata{
		Directory:  dir,
		Cutoff:     cfg.ReactionCutoff,
		AnalyzedAt: time.Now(),
		Duration:   time.Since(start),
	})

	formatter, err := createFormatter(opts, cfg)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (errors logged but don't fail analysis)
	sendWebhooks(ctx, cfg, opts, report)

	return nil
}

// resolveConfig loads the config file (or defaults) and applies explicit
// flag overrides on top.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *AnalyzeOptions) (*config.Config, error) {
	var cfg *config.Config
	if opts.ConfigFile != "" {
		loaded, err := config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("self") {
		cfg.SelfNames = opts.SelfNames
	}
	if flags.Changed("cutoff") {
		cfg.ReactionCutoff = opts.Cutoff
	}
	if flags.Changed("top-words") {
		cfg.TopWords = opts.TopWords
	}
	if flags.Changed("bar-width") {
		cfg.HourBarWidth = opts.BarWidth
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func createFormatter(opts *AnalyzeOptions, cfg *config.Config) (output.Formatter, error) {
	formatOpts := output.FormatOptions{
		Verbose:  opts.Verbose,
		Quiet:    opts.Quiet,
		BarWidth: cfg.HourBarWidth,
	}

	switch opts.Output {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the analysis.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *AnalyzeOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)

	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if wh.Trigger == config.WebhookTriggerNever {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerAlways
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}
