package detector

import "regexp"

// Dialect represents a known transcript line dialect for detection.
type Dialect struct {
	Name       string         // Human-readable name
	Pattern    *regexp.Regexp // Compiled regex (set during init)
	PatternStr string         // Pattern string for display
	TwoLine    bool           // True when the header spans two lines
	Examples   []string       // Example header lines
}

// Dialect patterns match header shapes only; they deliberately accept both
// authored and system payloads since detection cares about the timestamp
// framing, not the payload.
const (
	dateStamp = `\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4}`
	timeStamp = `\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM|am|pm)?`
)

// DefaultDialects returns the built-in transcript dialects to detect,
// ordered by specificity (the two-line header shape is the narrowest).
func DefaultDialects() []*Dialect {
	dialects := []*Dialect{
		{
			Name:       "Bracketed two-line header",
			PatternStr: `^\[(` + dateStamp + `)(?:,\s+|\s+)` + timeStamp + `\]\s*$`,
			TwoLine:    true,
			Examples:   []string{"[15.04.2020, 16:20:56]", "[15.04.2020 16:20:56]"},
		},
		{
			Name:       "Bracketed single-line",
			PatternStr: `^\[(` + dateStamp + `)(?:,\s+|\s+)` + timeStamp + `\]\s+\S`,
			Examples:   []string{"[12/31/23, 21:05:12] Name: message"},
		},
		{
			Name:       "Dash-separated single-line",
			PatternStr: `^(` + dateStamp + `),?\s+` + timeStamp + `\s+-\s+`,
			Examples:   []string{"12/31/23, 21:05 - Name: message"},
		},
	}

	// Compile all patterns
	for _, d := range dialects {
		d.Pattern = regexp.MustCompile(d.PatternStr)
	}

	return dialects
}
