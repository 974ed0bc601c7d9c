// Package stats computes communication statistics over parsed transcripts.
package stats

import "time"

// Result is an immutable statistics snapshot for one message sequence,
// computed fresh per scope (one per transcript file, plus one for the
// concatenation of all files).
type Result struct {
	// Label identifies the scope, e.g. "FILE: chat.txt" or "TOTAL (ALL FILES)".
	Label string `json:"label"`

	// SelfNames is the identity set used for the sent/received split,
	// sorted for display.
	SelfNames []string `json:"self_names,omitempty"`

	// InferredSelf is set when no identity was configured and the most
	// frequent sender was assumed to be "self".
	InferredSelf string `json:"inferred_self,omitempty"`

	// FirstMessage and LastMessage bound the observed time span. Zero when
	// no timestamped messages exist; check HasSpan before using Span.
	FirstMessage time.Time     `json:"first_message"`
	LastMessage  time.Time     `json:"last_message"`
	Span         time.Duration `json:"span"`
	HasSpan      bool          `json:"has_span"`

	// TotalMessages counts authored messages with a known sender. System
	// notices are tracked separately and excluded from every per-sender,
	// lexical and latency metric.
	TotalMessages  int `json:"total_messages"`
	SystemMessages int `json:"system_messages"`

	Sent     int `json:"sent"`
	Received int `json:"received"`

	// Ratio is Sent/Received; undefined (HasRatio false) when nothing was
	// received.
	Ratio    float64 `json:"ratio"`
	HasRatio bool    `json:"has_ratio"`

	// TopWords ranks token frequencies descending, ties broken by first
	// appearance, truncated to the configured top-N.
	TopWords []WordCount `json:"top_words"`

	// HourCounts buckets authored messages by local hour of day (0-23),
	// using timestamps exactly as parsed.
	HourCounts [24]int `json:"hour_counts"`

	// SelfReaction samples them-then-self sender switches, OtherReaction
	// the reverse direction.
	SelfReaction  ReactionStats `json:"self_reaction"`
	OtherReaction ReactionStats `json:"other_reaction"`

	// TopSenders ranks per-sender message counts for diagnostic display.
	TopSenders []SenderCount `json:"top_senders"`
}

// WordCount is one entry of the ranked word-frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SenderCount is one entry of the ranked per-sender message counts.
type SenderCount struct {
	Sender string `json:"sender"`
	Count  int    `json:"count"`
}

// ReactionStats summarizes one response-latency sample set. Mean and Median
// are meaningful only when Count > 0.
type ReactionStats struct {
	Mean   time.Duration `json:"mean"`
	Median time.Duration `json:"median"`
	Count  int           `json:"count"`
}
