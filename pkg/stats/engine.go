package stats

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/giada-balinzo/chatmine/pkg/parser"
)

// wordPattern extracts tokens as maximal runs of letters, including the
// accented set seen in exports. Punctuation and digits separate tokens.
var wordPattern = regexp.MustCompile(`[a-zàèéìòùäöüßçñ]+`)

// Options configures the statistics engine. The zero value of Cutoff
// disables the reaction-time cutoff entirely.
type Options struct {
	// SelfNames are the display names whose messages count as "sent".
	// When empty, the most frequent sender is inferred as self.
	SelfNames []string

	// Cutoff is the maximum sender-switch gap still counted as a
	// reaction; larger gaps are treated as conversational breaks.
	Cutoff time.Duration

	// TopWords and TopSenders truncate the ranked tables.
	TopWords   int
	TopSenders int
}

// Engine computes statistics over message sequences. An Engine is stateless
// across Compute calls and safe to reuse.
type Engine struct {
	opts Options
}

// NewEngine creates a statistics engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// Compute derives a Result for one message sequence. The sequence is not
// modified; reaction latency works on a stable timestamp-sorted copy since
// file order is not guaranteed to be chronological.
func (e *Engine) Compute(label string, msgs []*parser.Message) *Result {
	r := &Result{Label: label}

	var authored []*parser.Message
	for _, m := range msgs {
		if m.System {
			r.SystemMessages++
			continue
		}
		if m.Sender != "" {
			authored = append(authored, m)
		}
	}
	r.TotalMessages = len(authored)

	e.computeSpan(r, authored, msgs)

	senders := newRankedCounter()
	for _, m := range authored {
		senders.add(m.Sender)
	}

	selfSet := e.selfSet(r, senders)

	for _, m := range authored {
		if selfSet[m.Sender] {
			r.Sent++
		}
	}
	r.Received = r.TotalMessages - r.Sent
	if r.Received > 0 {
		r.Ratio = float64(r.Sent) / float64(r.Received)
		r.HasRatio = true
	}

	e.computeWords(r, authored)

	for _, m := range authored {
		r.HourCounts[m.Timestamp.Hour()]++
	}

	e.computeReactions(r, authored, selfSet)

	for _, sc := range senders.ranked() {
		r.TopSenders = append(r.TopSenders, SenderCount{Sender: sc.key, Count: sc.count})
		if e.opts.TopSenders > 0 && len(r.TopSenders) >= e.opts.TopSenders {
			break
		}
	}

	return r
}

// computeSpan bounds the observed time span, preferring authored messages
// and falling back to the full sequence (system notices included).
func (e *Engine) computeSpan(r *Result, authored, all []*parser.Message) {
	scope := authored
	if len(scope) == 0 {
		scope = all
	}
	for _, m := range scope {
		if !r.HasSpan {
			r.FirstMessage, r.LastMessage = m.Timestamp, m.Timestamp
			r.HasSpan = true
			continue
		}
		if m.Timestamp.Before(r.FirstMessage) {
			r.FirstMessage = m.Timestamp
		}
		if m.Timestamp.After(r.LastMessage) {
			r.LastMessage = m.Timestamp
		}
	}
	if r.HasSpan {
		r.Span = r.LastMessage.Sub(r.FirstMessage)
	}
}

// selfSet resolves the effective self-identity set, inferring the most
// frequent sender when none is configured.
func (e *Engine) selfSet(r *Result, senders *rankedCounter) map[string]bool {
	set := make(map[string]bool)
	for _, name := range e.opts.SelfNames {
		set[name] = true
	}

	if len(set) == 0 {
		if top := senders.ranked(); len(top) > 0 {
			r.InferredSelf = top[0].key
			set[r.InferredSelf] = true
		}
	}

	for name := range set {
		r.SelfNames = append(r.SelfNames, name)
	}
	sort.Strings(r.SelfNames)

	return set
}

func (e *Engine) computeWords(r *Result, authored []*parser.Message) {
	texts := make([]string, len(authored))
	for i, m := range authored {
		texts[i] = m.Text
	}
	all := strings.ToLower(strings.Join(texts, " "))

	words := newRankedCounter()
	for _, w := range wordPattern.FindAllString(all, -1) {
		words.add(w)
	}

	for _, wc := range words.ranked() {
		r.TopWords = append(r.TopWords, WordCount{Word: wc.key, Count: wc.count})
		if e.opts.TopWords > 0 && len(r.TopWords) >= e.opts.TopWords {
			break
		}
	}
}

// computeReactions samples response latencies over adjacent sender switches
// in timestamp order. The sort is stable so equal timestamps keep their
// file order. A pair exactly at the cutoff is still counted; negative gaps
// (corrected timestamps) contribute nothing.
func (e *Engine) computeReactions(r *Result, authored []*parser.Message, selfSet map[string]bool) {
	ordered := make([]*parser.Message, len(authored))
	copy(ordered, authored)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	var selfSamples, otherSamples []time.Duration
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		gap := cur.Timestamp.Sub(prev.Timestamp)
		if gap < 0 {
			continue
		}
		if e.opts.Cutoff > 0 && gap > e.opts.Cutoff {
			continue
		}

		prevSelf, curSelf := selfSet[prev.Sender], selfSet[cur.Sender]
		switch {
		case !prevSelf && curSelf:
			selfSamples = append(selfSamples, gap)
		case prevSelf && !curSelf:
			otherSamples = append(otherSamples, gap)
		}
	}

	r.SelfReaction = summarize(selfSamples)
	r.OtherReaction = summarize(otherSamples)
}

// summarize reduces a latency sample set to mean, median and count.
func summarize(samples []time.Duration) ReactionStats {
	s := ReactionStats{Count: len(samples)}
	if s.Count == 0 {
		return s
	}

	var sum time.Duration
	for _, d := range samples {
		sum += d
	}
	s.Mean = sum / time.Duration(s.Count)

	ordered := make([]time.Duration, len(samples))
	copy(ordered, samples)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	mid := len(ordered) / 2
	if len(ordered)%2 == 1 {
		s.Median = ordered[mid]
	} else {
		s.Median = (ordered[mid-1] + ordered[mid]) / 2
	}

	return s
}

// rankedCounter counts string keys while remembering first-seen order, so
// ranking ties break deterministically by first appearance.
type rankedCounter struct {
	counts map[string]int
	order  []string
}

type rankedEntry struct {
	key   string
	count int
}

func newRankedCounter() *rankedCounter {
	return &rankedCounter{counts: make(map[string]int)}
}

func (c *rankedCounter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked returns entries sorted by descending count, ties in first-seen order.
func (c *rankedCounter) ranked() []rankedEntry {
	entries := make([]rankedEntry, len(c.order))
	for i, key := range c.order {
		entries[i] = rankedEntry{key: key, count: c.counts[key]}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	return entries
}
