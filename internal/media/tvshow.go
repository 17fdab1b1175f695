package media

import (
	"regexp"
	"strings"
)

// tvPattern couples a structural pattern with its confidence and an
// extractor that fills the parse result from the match. Patterns run in
// order, first match wins, so the list itself encodes parse priority.
type tvPattern struct {
	re         *regexp.Regexp
	confidence float64
	extract    func(m []string, p *ParsedMediaName) error
}

var (
	// Fully specified dash form carrying a quality tag:
	// "Show - S01E02 - Title - 720p HDTV".
	tvDashQualityRe = regexp.MustCompile(`(?i)^(.*?)\s+-\s+s(\d{1,2})e(\d{1,2})\s+-\s+(.*?)\s+-\s+(.*?)$`)

	// Dash form without quality: "Show - S01E02 - Title".
	tvDashRe = regexp.MustCompile(`(?i)^(.*?)\s+-\s+s(\d{1,2})e(\d{1,2})\s+-\s+(.*?)(?:\s+-\s+.*)?$`)
)

var tvPatterns = []tvPattern{
	// Hyphenated range: Show.S01E02-E04.Title.
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+s(\d{1,2})(e\d{1,3}-e?\d{1,3})(?:[. _-]+(.*))?$`),
		confidence: 0.9,
		extract:    extractTVEpisodes,
	},
	// Concatenated markers: Show.S01E01E02E03.Title.
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+s(\d{1,2})(e\d{1,3}(?:e\d{1,3})+)(?:[. _-]+(.*))?$`),
		confidence: 0.95,
		extract:    extractTVEpisodes,
	},
	// Compound markers mixing ranges and lists: Show.S01E01-E03E05E07-E09.Title.
	// Two or more units, each a single episode or a hyphenated range, so the
	// whole block reaches the resolver intact.
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+s(\d{1,2})((?:e\d{1,3}(?:-e?\d{1,3})?){2,})(?:[. _-]+(.*))?$`),
		confidence: 0.9,
		extract:    extractTVEpisodes,
	},
	// Standard single marker: Show.S01E02.Title.
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+s(\d{1,2})(e\d{1,3})(?:[. _-]+(.*))?$`),
		confidence: 0.95,
		extract:    extractTVEpisodes,
	},
	// Alternate numbering: Show.1x02.Title.
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+(\d{1,2})x(\d{1,3})(?:[. _-]+(.*))?$`),
		confidence: 0.85,
		extract: func(m []string, p *ParsedMediaName) error {
			p.Title = CleanTitle(m[1])
			p.Season = atoi(m[2])
			p.Episodes = []int{atoi(m[3])}
			p.EpisodeTitle = CleanEpisodeTitle(m[4], false)
			return nil
		},
	},
	// Verbose form: "Show Season 1 Episode 2 Title".
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+season[. _-]+(\d{1,2})[. _-]+episode[. _-]+(\d{1,3})(?:[. _-]+(.*))?$`),
		confidence: 0.8,
		extract: func(m []string, p *ParsedMediaName) error {
			p.Title = CleanTitle(m[1])
			p.Season = atoi(m[2])
			p.Episodes = []int{atoi(m[3])}
			p.EpisodeTitle = CleanEpisodeTitle(m[4], false)
			return nil
		},
	},
	// Period separated marker: Show.S01.E02.Title.
	{
		re:         regexp.MustCompile(`(?i)^(.*?)[. _-]+s(\d{1,2})\.(e\d{1,3})(?:[. _-]+(.*))?$`),
		confidence: 0.8,
		extract:    extractTVEpisodes,
	},
}

// extractTVEpisodes handles every SxxExx-shaped pattern: the episode
// fragment (match group 3) is handed to the range resolver so ranges,
// concatenations, and lists all expand the same way.
func extractTVEpisodes(m []string, p *ParsedMediaName) error {
	episodes, err := ResolveEpisodes("S" + m[2] + m[3])
	if err != nil {
		return err
	}
	p.Title = CleanTitle(m[1])
	p.Season = atoi(m[2])
	p.Episodes = episodes
	p.EpisodeTitle = CleanEpisodeTitle(m[4], len(episodes) > 1)
	return nil
}

// parseTVShow builds a ParsedMediaName for TV shows and TV specials.
// Specials route through the special detector first and only fall back to
// the numbered-episode pipeline when no special marker is present.
func parseTVShow(filename string, mediaType MediaType) (ParsedMediaName, error) {
	namePart, ext := Stem(filename)
	p := ParsedMediaName{
		MediaType:  mediaType,
		Extension:  ext,
		Season:     1,
		Confidence: 0.8,
	}

	if mediaType == MediaTypeTVSpecial {
		if info, ok := DetectSpecial(namePart); ok {
			return buildTVSpecial(p, namePart, info), nil
		}
	}

	// Dash forms carry their quality inline and are matched before any
	// quality stripping.
	if m := tvDashQualityRe.FindStringSubmatch(namePart); m != nil {
		p.Title = strings.TrimSpace(m[1])
		p.Season = atoi(m[2])
		p.Episodes = []int{atoi(m[3])}
		p.EpisodeTitle = strings.TrimSpace(m[4])
		p.Quality = strings.TrimSpace(m[5])
		p.Confidence = 0.95
		return p, nil
	}

	quality, stripped := extractQuality(namePart)
	p.Quality = quality
	stripped = strings.TrimRight(stripped, ".-_ ")

	if m := tvDashRe.FindStringSubmatch(stripped); m != nil {
		p.Title = strings.TrimSpace(m[1])
		p.Season = atoi(m[2])
		p.Episodes = []int{atoi(m[3])}
		p.EpisodeTitle = strings.TrimSpace(m[4])
		p.Confidence = 0.95
		return p, nil
	}

	for _, pattern := range tvPatterns {
		m := pattern.re.FindStringSubmatch(stripped)
		if m == nil {
			continue
		}
		if err := pattern.extract(m, &p); err != nil {
			return ParsedMediaName{}, err
		}
		p.Confidence = pattern.confidence
		return p, nil
	}

	// Nothing structural matched; keep the cleaned name as the title so
	// callers still get something renderable.
	p.Title = CleanTitle(stripped)
	return p, nil
}

var specialKeywordStripRe = regexp.MustCompile(`(?i)\b(?:specials?|ova|movie|film)\b\.?\s*\d*`)

func buildTVSpecial(p ParsedMediaName, namePart string, info SpecialInfo) ParsedMediaName {
	p.Season = 0
	p.SpecialType = info.Type
	p.SpecialNumber = info.Number
	if p.SpecialNumber == 0 {
		p.SpecialNumber = 1
	}
	p.Confidence = 0.9

	quality, stripped := extractQuality(namePart)
	p.Quality = quality

	if episodes, err := ResolveEpisodes(stripped); err == nil && len(episodes) > 0 {
		p.Episodes = episodes
	}

	// Title is whatever precedes the first structural or special marker.
	cut := len(stripped)
	if idx := seasonZeroRe.FindStringIndex(stripped); idx != nil && idx[0] < cut {
		cut = idx[0]
	}
	if idx := specialKeywordStripRe.FindStringIndex(stripped); idx != nil && idx[0] < cut {
		cut = idx[0]
	}
	p.Title = CleanTitle(strings.TrimRight(stripped[:cut], ".-_ "))
	return p
}
