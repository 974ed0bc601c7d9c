// Package output provides formatting and output generation for analysis reports.
package output

import (
	"time"

	"github.com/giada-balinzo/chatmine/pkg/stats"
)

// Report is the complete analysis output: one statistics result per
// transcript file followed by one aggregate result over all files.
type Report struct {
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`

	// Files contains one result per transcript, in name order.
	Files []*FileReport `json:"files"`

	// Total is the result over the concatenation of all transcripts.
	Total *stats.Result `json:"total"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// FileReport pairs a transcript file with its statistics.
type FileReport struct {
	File  string        `json:"file"`
	Stats *stats.Result `json:"stats"`
}

// Summary provides aggregate counts.
type Summary struct {
	// Files is the number of transcripts analyzed.
	Files int `json:"files"`

	// TotalMessages is the authored message count across all files.
	TotalMessages int `json:"total_messages"`

	// SystemMessages is the system notice count across all files.
	SystemMessages int `json:"system_messages"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Directory is the transcript directory that was analyzed.
	Directory string `json:"directory"`

	// Cutoff is the reaction-time cutoff in effect (zero means disabled).
	Cutoff time.Duration `json:"cutoff"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from per-file and aggregate results.
func NewReport(files []*FileReport, total *stats.Result, meta Metadata) *Report {
	return &Report{
		Files:    files,
		Total:    total,
		Metadata: meta,
		Summary: Summary{
			Files:          len(files),
			TotalMessages:  total.TotalMessages,
			SystemMessages: total.SystemMessages,
		},
	}
}
