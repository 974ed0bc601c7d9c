package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/giada-balinzo/chatmine/pkg/stats"
)

// JSONFormatter renders reports as machine-readable JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// reportDocument is the JSON rendering of a full report. Run metadata is
// attached only in verbose mode: timestamps and durations vary run to run,
// and the default document stays byte-stable for identical transcripts.
type reportDocument struct {
	Summary  Summary       `json:"summary"`
	Files    []*FileReport `json:"files"`
	Total    *stats.Result `json:"total"`
	Metadata *Metadata     `json:"metadata,omitempty"`
}

// quietDocument mirrors the one-line text summary.
type quietDocument struct {
	Summary  Summary `json:"summary"`
	Sent     int     `json:"sent"`
	Received int     `json:"received"`
}

// Format renders the report as indented JSON.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if f.opts.Quiet {
		return enc.Encode(quietDocument{
			Summary:  report.Summary,
			Sent:     report.Total.Sent,
			Received: report.Total.Received,
		})
	}

	doc := reportDocument{
		Summary: report.Summary,
		Files:   report.Files,
		Total:   report.Total,
	}
	if f.opts.Verbose {
		doc.Metadata = &report.Metadata
	}
	return enc.Encode(doc)
}
