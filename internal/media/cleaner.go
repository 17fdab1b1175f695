package media

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	multiSpaceRe = regexp.MustCompile(`\s+`)

	// Residual structural tokens stripped from episode-title fragments.
	residualMarkerRe = regexp.MustCompile(`(?i)\b(?:S\d{1,2})?E\d{1,3}\b|\b\d{1,2}x\d{1,2}\b`)

	// Connecting words left behind when a multi-episode marker was split
	// out of the fragment.
	connectorRe = regexp.MustCompile(`(?i)^\s*(?:to|and|&|\+|,)\s+|\s+(?:to|and|&|\+|,)\s*$`)

	titleCaser = cases.Title(language.English, cases.NoLower)
)

// CleanTitle normalizes a raw title fragment: separators become spaces,
// runs of whitespace collapse, and each word is display-cased.
func CleanTitle(raw string) string {
	cleaned := replaceSeparators(raw)
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}
	return titleCaser.String(cleaned)
}

// CleanEpisodeTitle normalizes an episode-title fragment. When the fragment
// accompanied more than one episode, leftover markers and connecting words
// from the multi-episode notation are removed as well.
func CleanEpisodeTitle(raw string, multiEpisode bool) string {
	cleaned := replaceSeparators(raw)
	if multiEpisode {
		cleaned = residualMarkerRe.ReplaceAllString(cleaned, " ")
		for {
			next := connectorRe.ReplaceAllString(cleaned, " ")
			if next == cleaned {
				break
			}
			cleaned = next
		}
	}
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

func replaceSeparators(s string) string {
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return s
}

// Stem returns the filename without its extension, and the extension with
// its leading dot. Files without a dot yield an empty extension.
func Stem(filename string) (string, string) {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[:idx], filename[idx:]
	}
	return filename, ""
}
