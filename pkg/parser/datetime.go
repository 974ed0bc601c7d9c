package parser

import (
	"strings"
	"time"
)

// dateTimeLayouts is the ordered list of calendar/time templates tried when
// resolving a transcript timestamp. Order is load-bearing: day-first numeric
// dates are tried before month-first, so an ambiguous "01/02/23" resolves as
// day=01 month=02. 24-hour clocks are tried before 12-hour ones; within each
// group, 2-digit years come before 4-digit and minutes-only before seconds.
var dateTimeLayouts = []string{
	// day/month, 24-hour
	"2/1/06 15:04",
	"2/1/2006 15:04",
	"2/1/06 15:04:05",
	"2/1/2006 15:04:05",
	"2.1.06 15:04",
	"2.1.2006 15:04",
	"2.1.06 15:04:05",
	"2.1.2006 15:04:05",
	"2-1-06 15:04",
	"2-1-2006 15:04",
	"2-1-06 15:04:05",
	"2-1-2006 15:04:05",
	// month/day, 24-hour
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/06 15:04:05",
	"1/2/2006 15:04:05",
	// 12-hour variants
	"2/1/06 3:04 PM",
	"2/1/2006 3:04 PM",
	"2/1/06 3:04:05 PM",
	"2/1/2006 3:04:05 PM",
	"1/2/06 3:04 PM",
	"1/2/2006 3:04 PM",
	"1/2/06 3:04:05 PM",
	"1/2/2006 3:04:05 PM",
	"2.1.06 3:04 PM",
	"2.1.2006 3:04 PM",
	"2.1.06 3:04:05 PM",
	"2.1.2006 3:04:05 PM",
}

// ParseDateTime interprets a (date, time) token pair extracted from a header
// line as a single absolute timestamp. The tokens are joined, internal
// whitespace is collapsed, and each layout is tried in order; the first
// successful parse wins. Returns false when no layout matches; callers must
// treat that as "timestamp unknown", not as a parse failure.
func ParseDateTime(dateStr, timeStr string) (time.Time, bool) {
	s := strings.TrimSpace(dateStr + " " + timeStr)
	s = strings.Join(strings.Fields(s), " ")
	// Tokens are numeric apart from an optional am/pm suffix, so upcasing
	// the whole string normalizes the meridiem for the "PM" layouts.
	s = strings.ToUpper(s)

	for _, layout := range dateTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
