package output

import (
	"context"
	"io"
)

// Formatter renders analysis reports in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose includes run metadata in the output.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool

	// BarWidth is the width of the tallest hourly histogram bar.
	BarWidth int
}
