// Package detector identifies which transcript dialect a chat export uses.
package detector

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/giada-balinzo/chatmine/pkg/parser"
)

// DetectionResult holds the result of analyzing a transcript file.
type DetectionResult struct {
	Matches       []DialectMatch // Dialects that matched, sorted by confidence descending
	SampledLines  int            // Number of lines sampled
	HeaderLines   int            // Number of lines matching the best dialect
	AmbiguityNote string         // Warning about day/month ordering if applicable
}

// DialectMatch represents a dialect that matched with its confidence score.
type DialectMatch struct {
	Dialect    *Dialect
	Confidence float64 // 0.0 to 1.0 (share of sampled lines matched)
	MatchCount int     // Number of lines that matched
	SampleLine string  // Example line that matched
}

// Detector analyzes transcript files to identify their line dialect.
type Detector struct {
	dialects   []*Dialect
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a new Detector with the default dialects.
func New(opts ...Option) *Detector {
	d := &Detector{
		dialects:   DefaultDialects(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile analyzes a transcript file and returns detected dialects.
// The file goes through the same encoding fallback chain as analysis.
func (d *Detector) DetectFromFile(_ context.Context, path string) (*DetectionResult, error) {
	content, err := parser.ReadTranscript(path)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if len(lines) >= d.sampleSize {
			break
		}
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
	}

	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of transcript lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type dialectStats struct {
		dialect    *Dialect
		matchCount int
		sampleLine string
		ambiguous  bool
	}

	stats := make(map[string]*dialectStats)

	for _, line := range lines {
		for _, dialect := range d.dialects {
			m := dialect.Pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}

			s := stats[dialect.Name]
			if s == nil {
				s = &dialectStats{dialect: dialect, sampleLine: line}
				stats[dialect.Name] = s
			}
			s.matchCount++
			if len(m) > 1 && dateIsAmbiguous(m[1]) {
				s.ambiguous = true
			}
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, DialectMatch{
			Dialect:    s.dialect,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
		})
	}

	// Sort by confidence descending, then by pattern length (more specific first)
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Dialect.PatternStr) > len(result.Matches[j].Dialect.PatternStr)
	})

	if len(result.Matches) > 0 {
		best := result.Matches[0]
		result.HeaderLines = best.MatchCount
		if s := stats[best.Dialect.Name]; s != nil && s.ambiguous {
			result.AmbiguityNote = "Dates in this file are day/month ambiguous (both fields <= 12). " +
				"They are interpreted day-first; verify against a known date in the chat."
		}
	}

	return result
}

var dateFieldSep = regexp.MustCompile(`[/.\-]`)

// dateIsAmbiguous reports whether a numeric date could be read as either
// day-first or month-first.
func dateIsAmbiguous(date string) bool {
	fields := dateFieldSep.Split(date, -1)
	if len(fields) < 2 {
		return false
	}
	first, err1 := strconv.Atoi(fields[0])
	second, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return false
	}
	return first >= 1 && first <= 12 && second >= 1 && second <= 12 && first != second
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *DialectMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one dialect matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
