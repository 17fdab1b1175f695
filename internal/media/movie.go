package media

import (
	"regexp"
	"strings"
)

// Year-bearing movie patterns, most explicit first. Parenthesized years are
// the strongest convention, bracketed ones slightly weaker, and a bare
// separator-delimited year is the loosest accepted form.
var moviePatterns = []struct {
	re         *regexp.Regexp
	confidence float64
	cleanName  bool
}{
	{regexp.MustCompile(`(?i)^(.*?)\s*\((\d{4})\)(?:.*)?$`), 0.95, false},
	{regexp.MustCompile(`(?i)^(.*?)\s*\[(\d{4})\](?:.*)?$`), 0.9, false},
	{regexp.MustCompile(`(?i)^(.*?)[. _-]+(19\d{2}|20\d{2})(?:[. _-]+(?:.*))?$`), 0.85, true},
}

// parseMovie builds a ParsedMediaName for movie filenames. The quality tag
// is extracted independently of the year pattern so either may appear
// without the other.
func parseMovie(filename string) (ParsedMediaName, error) {
	namePart, ext := Stem(filename)
	p := ParsedMediaName{
		MediaType:  MediaTypeMovie,
		Extension:  ext,
		Confidence: 0.8,
	}

	for _, re := range qualityPatterns {
		if m := re.FindStringSubmatch(namePart); m != nil {
			p.Quality = m[1]
			break
		}
	}

	for _, pattern := range moviePatterns {
		m := pattern.re.FindStringSubmatch(namePart)
		if m == nil {
			continue
		}
		if pattern.cleanName {
			p.Title = CleanTitle(m[1])
		} else {
			p.Title = strings.TrimSpace(m[1])
		}
		p.Year = atoi(m[2])
		p.Confidence = pattern.confidence
		return p, nil
	}

	// No year found; treat the whole stem as a best-effort title.
	p.Title = CleanTitle(namePart)
	p.Confidence = 0.6
	return p, nil
}
