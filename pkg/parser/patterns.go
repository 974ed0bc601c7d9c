package parser

import "regexp"

// Transcript exports come in two line dialects:
//
//	dash form:      12/31/23, 21:05 - Name: message
//	bracketed form: [31.12.2023, 21:05:12] Name: message
//
// plus a two-line variant where a bracketed timestamp stands alone and the
// following line carries "Name: message". Dates accept "/", "." and "-"
// separators with 2- or 4-digit years; times accept optional seconds and an
// optional am/pm suffix.

const (
	datePart = `(?P<date>\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})`
	timePart = `(?P<time>\d{1,2}:\d{2}(?::\d{2})?\s*(?:AM|PM|am|pm)?)`
)

// headerPattern pairs a header regexp with the classification it yields.
// Dispatch is first-match-wins over an ordered list; reordering changes
// observable disambiguation and is a breaking change.
type headerPattern struct {
	re     *regexp.Regexp
	system bool
}

// headerPatterns is tried in order for single-line headers: authored shapes
// first (dash form, then bracketed form), system-notice shapes after. The
// system shapes are strict supersets of the authored ones, so they only
// match lines whose payload has no "sender:" prefix.
var headerPatterns = []headerPattern{
	{re: regexp.MustCompile(`^` + datePart + `,?\s+` + timePart + `\s+-\s+(?P<sender>[^:]+):\s*(?P<text>.*)$`)},
	{re: regexp.MustCompile(`^\[` + datePart + `(?:,\s+|\s+)` + timePart + `\]\s+(?P<sender>[^:]+):\s*(?P<text>.*)$`)},
	{re: regexp.MustCompile(`^` + datePart + `,?\s+` + timePart + `\s+-\s+(?P<text>.*)$`), system: true},
	{re: regexp.MustCompile(`^\[` + datePart + `(?:,\s+|\s+)` + timePart + `\]\s+(?P<text>.*)$`), system: true},
}

// bracketTimestampOnly matches a bracketed timestamp with no trailing
// content, the first half of a two-line header.
var bracketTimestampOnly = regexp.MustCompile(`^\[` + datePart + `(?:,\s+|\s+)` + timePart + `\]\s*$`)

// senderOnly matches the "Name: message" second half of a two-line header.
var senderOnly = regexp.MustCompile(`^(?P<sender>[^:]+):\s*(?P<text>.*)$`)

// groups maps a regexp's named capture groups for one match.
func groups(re *regexp.Regexp, line string) map[string]string {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	out := make(map[string]string)
	for i, name := range re.SubexpNames() {
		if name != "" {
			out[name] = m[i]
		}
	}
	return out
}
