package parser

import (
	"strings"
	"time"
)

// assembler accumulates lines into messages for one transcript traversal.
// It holds at most one in-progress message and at most one pending
// timestamp from a lone bracketed header line.
type assembler struct {
	messages []*Message
	current  *Message
	pending  time.Time
	hasPend  bool
}

// ParseTranscript converts the decoded content of one transcript file into
// its message sequence, in file-appearance order. Multi-line bodies are
// joined with "\n". Messages whose date/time tokens never resolved to a
// timestamp are dropped before returning; file order is otherwise preserved
// even when the export contains out-of-order timestamps.
func ParseTranscript(content string) []*Message {
	a := &assembler{}
	// A final newline terminates the last line rather than starting an
	// empty one; interior blank lines are real and join open bodies.
	content = strings.TrimSuffix(content, "\n")
	for _, line := range strings.Split(content, "\n") {
		a.feed(strings.TrimSuffix(line, "\r"))
	}
	a.flush()

	kept := a.messages[:0]
	for _, m := range a.messages {
		if !m.Timestamp.IsZero() {
			kept = append(kept, m)
		}
	}
	return kept
}

// feed classifies one raw line and advances the state machine. The rules are
// tried in order and the first match wins:
//
//  1. a pending bracketed timestamp binds this line as "sender: text", or
//     failing that, as a system notice under that timestamp
//  2. a bracketed timestamp-only line flushes and goes pending
//  3. authored single-line headers, then system single-line headers
//  4. anything else continues the open message, or is dropped
func (a *assembler) feed(line string) {
	if a.hasPend {
		ts := a.pending
		a.hasPend = false
		if g := groups(senderOnly, line); g != nil {
			a.open(&Message{
				Timestamp: ts,
				Sender:    strings.TrimSpace(g["sender"]),
				Text:      g["text"],
			})
			return
		}
		// Lenient by policy: any non-conforming line after a lone
		// bracketed timestamp is taken as a system notice, not rejected.
		a.open(&Message{Timestamp: ts, Text: line, System: true})
		return
	}

	if g := groups(bracketTimestampOnly, line); g != nil {
		if ts, ok := ParseDateTime(g["date"], g["time"]); ok {
			a.flush()
			a.pending = ts
			a.hasPend = true
		}
		return
	}

	for _, hp := range headerPatterns {
		g := groups(hp.re, line)
		if g == nil {
			continue
		}
		// An unresolved timestamp still opens the message; the final
		// filter in ParseTranscript discards it.
		ts, _ := ParseDateTime(g["date"], g["time"])
		a.open(&Message{
			Timestamp: ts,
			Sender:    strings.TrimSpace(g["sender"]),
			Text:      g["text"],
			System:    hp.system,
		})
		return
	}

	// Continuation line of a multi-line body. Dropped when nothing is open.
	if a.current != nil {
		a.current.Text += "\n" + line
	}
}

// open flushes any in-progress message and starts a new one.
func (a *assembler) open(m *Message) {
	a.flush()
	a.current = m
}

// flush emits the in-progress message, if any.
func (a *assembler) flush() {
	if a.current != nil {
		a.messages = append(a.messages, a.current)
		a.current = nil
	}
}
