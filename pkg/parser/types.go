// Package parser converts exported chat transcripts into message records.
package parser

import "time"

// Message represents a single transcript entry.
type Message struct {
	// Timestamp is the absolute point in time the entry was written.
	// Messages whose timestamp could not be resolved are dropped during
	// assembly and never reach callers.
	Timestamp time.Time

	// Sender is the display name of the author. Empty for system notices.
	Sender string

	// Text is the message body. Continuation lines are joined with "\n".
	Text string

	// System marks export notices (membership changes, encryption banners)
	// as opposed to authored messages.
	System bool
}
