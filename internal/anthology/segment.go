// Package anthology splits a combined episode title into its component
// segment titles and assigns each segment an episode number, optionally
// confirmed against an authoritative episode list.
package anthology

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/log"

	"github.com/mediafmt/mediafmt/internal/assist"
)

const defaultMaxSegments = 10

// Separators tried in order; the first one present in the fragment wins.
var segmentSeparators = []string{" & ", ", ", " + ", " - ", " and "}

// Segmenter splits anthology episode titles. The zero value works and uses
// only the deterministic path; set Assistant to enable assisted splitting.
type Segmenter struct {
	// MaxSegments clamps how many segments one episode may yield.
	MaxSegments int
	// Assistant, when non-nil, is consulted before the deterministic
	// split. Any assistant failure falls back to the deterministic path.
	Assistant assist.TextAssistant
	// Timeout bounds a single assistant call. Zero means the caller's
	// context is the only bound.
	Timeout time.Duration
	Logger  *log.Logger
}

// SplitSegments is the deterministic split: the first known separator
// present divides the fragment, empty parts are dropped. Fragments with
// more than six words and no separator go through a capitalization
// heuristic. Anything else is a single segment.
func SplitSegments(fragment string) []string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil
	}

	for _, sep := range segmentSeparators {
		if !strings.Contains(fragment, sep) {
			continue
		}
		parts := strings.Split(fragment, sep)
		segments := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				segments = append(segments, part)
			}
		}
		if len(segments) > 0 {
			return segments
		}
		return nil
	}

	if len(strings.Fields(fragment)) > 6 {
		if segments := splitByCapitalization(fragment); len(segments) > 1 {
			return segments
		}
	}
	return []string{fragment}
}

// splitByCapitalization scans word by word and starts a new segment
// whenever a capitalized word follows at least two accumulated words.
func splitByCapitalization(fragment string) []string {
	var segments []string
	var current []string
	for _, word := range strings.Fields(fragment) {
		if len(current) >= 2 && startsUpper(word) {
			segments = append(segments, strings.Join(current, " "))
			current = []string{word}
			continue
		}
		current = append(current, word)
	}
	if len(current) > 0 {
		segments = append(segments, strings.Join(current, " "))
	}
	return segments
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// DetectSegments returns the segment titles of a combined episode title.
// With an assistant configured, its response is filtered and used when it
// yields anything; every failure mode degrades to SplitSegments. The
// result never exceeds the configured maximum.
func (s *Segmenter) DetectSegments(ctx context.Context, fragment string) []string {
	maxSegments := s.MaxSegments
	if maxSegments <= 0 {
		maxSegments = defaultMaxSegments
	}

	if s.Assistant == nil {
		return clampSegments(SplitSegments(fragment), maxSegments)
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	raw, err := s.Assistant.Generate(ctx, segmentPrompt(fragment, maxSegments))
	if err != nil {
		s.logger().Warn("assistant unavailable, falling back to deterministic split", "error", err)
		return clampSegments(SplitSegments(fragment), maxSegments)
	}

	segments := ParseSegments(raw, maxSegments)
	if len(segments) == 0 {
		return clampSegments(SplitSegments(fragment), maxSegments)
	}
	return segments
}

func segmentPrompt(fragment string, maxSegments int) string {
	return fmt.Sprintf(
		"The following text is the combined title of an anthology TV episode containing up to %d short story segments. "+
			"Reply with each segment title on its own line, in order, without numbering, bullets, or commentary. "+
			"If you cannot identify the segments, reply with the single word unknown.\n\nTitle: %s",
		maxSegments, fragment)
}

func clampSegments(segments []string, maxSegments int) []string {
	if len(segments) > maxSegments {
		return segments[:maxSegments]
	}
	return segments
}

func (s *Segmenter) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}

// Segment is one entry of a SegmentMap.
type Segment struct {
	Number int
	Title  string
}

// SegmentMap records the episode numbers assigned to an anthology
// episode's segments, together with the show and season they were detected
// under. Entries stay sorted by number.
type SegmentMap struct {
	ShowName string
	Season   int
	Segments []Segment
}

// NewSegmentMap assigns provisional numbers base, base+1, ... to the given
// segment titles in order.
func NewSegmentMap(showName string, season int, titles []string, base int) SegmentMap {
	segments := make([]Segment, 0, len(titles))
	for i, title := range titles {
		segments = append(segments, Segment{Number: base + i, Title: title})
	}
	return SegmentMap{ShowName: showName, Season: season, Segments: segments}
}

// Titles returns the segment titles in number order.
func (m SegmentMap) Titles() []string {
	titles := make([]string, 0, len(m.Segments))
	for _, seg := range m.Segments {
		titles = append(titles, seg.Title)
	}
	return titles
}

// ApplyMatches replaces provisional numbers with confirmed ones for every
// segment title present in matches. Unmatched segments keep their
// provisional number. Entries are re-sorted afterwards.
func (m *SegmentMap) ApplyMatches(matches map[string]int) {
	if len(matches) == 0 {
		return
	}
	for i, seg := range m.Segments {
		if number, ok := matches[seg.Title]; ok {
			m.Segments[i].Number = number
		}
	}
	sort.SliceStable(m.Segments, func(i, j int) bool {
		return m.Segments[i].Number < m.Segments[j].Number
	})
}
