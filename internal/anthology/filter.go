package anthology

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Reasoning sections some models wrap in sentinel tags. The whole
	// section, tags included, is removed before line parsing.
	thinkingRe = regexp.MustCompile(`(?is)<think(?:ing)?>.*?</think(?:ing)?>`)

	// Bullet or numbering prefixes on response lines.
	bulletPrefixRe = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)
)

// Lines matching any of these are model commentary, not segment titles.
var metaCommentaryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^segment titles`),
	regexp.MustCompile(`(?i)^here (is|are)`),
	regexp.MustCompile(`(?i)^based on`),
	regexp.MustCompile(`(?i)please note`),
	regexp.MustCompile(`(?i)^note:`),
	regexp.MustCompile(`(?i)this (assumption|interpretation)`),
}

// StripThinking removes sentinel-tagged reasoning sections from a raw
// assistant response.
func StripThinking(raw string) string {
	return thinkingRe.ReplaceAllString(raw, "")
}

// ParseSegments turns a raw assistant response into segment titles: one
// per line, with bullets, numbering, and surrounding quotes stripped, and
// commentary lines discarded. When filtering leaves nothing but the
// response admitted it does not know, placeholder segments
// "Unknown 1..maxSegments" are synthesized instead of returning empty.
func ParseSegments(raw string, maxSegments int) []string {
	text := StripThinking(raw)

	var segments []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = bulletPrefixRe.ReplaceAllString(line, "")
		line = strings.Trim(line, `"'`)
		line = strings.TrimSpace(line)

		if utf8.RuneCountInString(line) < 2 {
			continue
		}
		if isMetaCommentary(line) || strings.EqualFold(line, "unknown") {
			continue
		}
		segments = append(segments, line)
	}

	if len(segments) == 0 && strings.Contains(strings.ToLower(raw), "unknown") {
		segments = make([]string, 0, maxSegments)
		for i := 1; i <= maxSegments; i++ {
			segments = append(segments, fmt.Sprintf("Unknown %d", i))
		}
	}

	return clampSegments(segments, maxSegments)
}

func isMetaCommentary(line string) bool {
	for _, re := range metaCommentaryRes {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
