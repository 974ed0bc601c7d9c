package output

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/giada-balinzo/chatmine/pkg/stats"
)

const timestampDisplay = "2006-01-02 15:04:05"

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	if opts.BarWidth < 1 {
		opts.BarWidth = 40
	}
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "chatmine: %d file(s), %d messages (%d sent / %d received)\n",
		report.Summary.Files,
		report.Summary.TotalMessages,
		report.Total.Sent,
		report.Total.Received)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, fr := range report.Files {
		f.formatResult(fr.Stats, report.Metadata.Cutoff, w)
	}
	f.formatResult(report.Total, report.Metadata.Cutoff, w)

	if f.opts.Verbose {
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Directory: %s\n", report.Metadata.Directory)
		fmt.Fprintf(w, "Files analyzed: %d\n", report.Summary.Files)
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))
	}

	return nil
}

func (f *TextFormatter) formatResult(r *stats.Result, cutoff time.Duration, w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "==============================")
	fmt.Fprintln(w, r.Label)
	fmt.Fprintln(w, "==============================")

	if r.InferredSelf != "" {
		fmt.Fprintf(w, "NOTE: self names not configured -> guessed %q\n", r.InferredSelf)
	}
	if len(r.SelfNames) > 0 {
		fmt.Fprintf(w, "Self names: %s\n", strings.Join(r.SelfNames, ", "))
	}

	if r.HasSpan {
		fmt.Fprintf(w, "First message: %s\n", r.FirstMessage.Format(timestampDisplay))
		fmt.Fprintf(w, "Last message:  %s\n", r.LastMessage.Format(timestampDisplay))
		fmt.Fprintf(w, "Time span:     %s\n", FormatDuration(r.Span))
	} else {
		fmt.Fprintln(w, "Time span:     n/a (no messages)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Counts ---")
	fmt.Fprintf(w, "Total messages: %d\n", r.TotalMessages)
	fmt.Fprintf(w, "System notices: %d\n", r.SystemMessages)
	fmt.Fprintf(w, "Sent (self):    %d\n", r.Sent)
	fmt.Fprintf(w, "Received:       %d\n", r.Received)
	if r.HasRatio {
		fmt.Fprintf(w, "Sent/Received:  %.3f\n", r.Ratio)
	} else {
		fmt.Fprintln(w, "Sent/Received:  n/a (no received messages)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Top senders ---")
	for _, sc := range r.TopSenders {
		fmt.Fprintf(w, "%s: %d\n", sc.Sender, sc.Count)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Messages per hour ---")
	f.formatHistogram(r.HourCounts, w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Reaction times (sender switch, within cutoff) ---")
	if cutoff > 0 {
		fmt.Fprintf(w, "Cutoff: <= %s\n", FormatDuration(cutoff))
	} else {
		fmt.Fprintln(w, "Cutoff: no cutoff")
	}
	fmt.Fprintf(w, "Self reaction:  %s\n", formatReaction(r.SelfReaction))
	fmt.Fprintf(w, "Other reaction: %s\n", formatReaction(r.OtherReaction))

	fmt.Fprintln(w)
	fmt.Fprintf(w, "--- Top %d words ---\n", len(r.TopWords))
	for _, wc := range r.TopWords {
		fmt.Fprintf(w, "%s: %d\n", wc.Word, wc.Count)
	}
}

// formatHistogram prints 24 hour buckets with bars proportional to the
// largest bucket.
func (f *TextFormatter) formatHistogram(counts [24]int, w io.Writer) {
	max := 0
	for _, v := range counts {
		if v > max {
			max = v
		}
	}

	for h := 0; h < 24; h++ {
		barLen := 0
		if max > 0 {
			barLen = counts[h] * f.opts.BarWidth / max
		}
		fmt.Fprintf(w, "%02d: %6d %s\n", h, counts[h], strings.Repeat("█", barLen))
	}
}

func formatReaction(r stats.ReactionStats) string {
	if r.Count == 0 {
		return "avg=n/a  med=n/a  n=0"
	}
	return fmt.Sprintf("avg=%s  med=%s  n=%d",
		FormatDuration(r.Mean), FormatDuration(r.Median), r.Count)
}

// FormatDuration renders a duration in coarse human-readable bands:
// "Ns", "Nm Ns", "Nh Nm", and "Nd Nh" past 48 hours.
func FormatDuration(d time.Duration) string {
	s := int(d.Seconds())
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	m, s := s/60, s%60
	if m < 60 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h, m := m/60, m%60
	if h < 48 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dd %dh", h/24, h%24)
}
