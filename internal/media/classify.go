package media

import (
	"regexp"
	"strings"
)

// classRule pairs a compiled pattern with the media type it indicates.
// Rules are evaluated top to bottom and the first match wins, so order
// encodes priority: anime special markers outrank plain anime markers,
// which outrank TV markers, which outrank the loose movie-year patterns.
type classRule struct {
	mediaType MediaType
	re        *regexp.Regexp
}

var classRules = []classRule{
	// Fansub specials: [Group] Show - OVA [1080p]
	{MediaTypeAnimeSpecial, regexp.MustCompile(`^\[.*?\].*?OVA\d*\s*\[`)},

	// Anime markers. The bracketed group prefix is the strongest signal;
	// the classify step below refines to AnimeSpecial when an OVA/Special
	// keyword is also present.
	{MediaTypeAnime, regexp.MustCompile(`^\[([^\]]+)\]`)},
	{MediaTypeAnime, regexp.MustCompile(` - \d{1,2}(v\d)? \[`)},
	{MediaTypeAnime, regexp.MustCompile(` - (OVA|Special)\d* \[`)},

	// TV specials.
	{MediaTypeTVSpecial, regexp.MustCompile(`[sS]\d{1,2}\.5x[Ss]pecial`)},
	{MediaTypeTVSpecial, regexp.MustCompile(`[Ss]pecial\s+[Ee]pisode`)},
	{MediaTypeTVSpecial, regexp.MustCompile(`(?i)\bS00E\d{1,2}\b`)},
	{MediaTypeTVSpecial, regexp.MustCompile(`OVA\d*`)},

	// TV shows.
	{MediaTypeTVShow, regexp.MustCompile(`[sS]\d{1,2}[eE]\d{1,2}`)},
	{MediaTypeTVShow, regexp.MustCompile(`\d{1,2}x\d{1,2}`)},
	{MediaTypeTVShow, regexp.MustCompile(`[Ss]eason\s+\d{1,2}\s+[Ee]pisode\s+\d{1,2}`)},
	{MediaTypeTVShow, regexp.MustCompile(`[sS]\d{1,2}\.[eE]\d{1,2}`)},

	// Movies, identified by a four digit year.
	{MediaTypeMovie, regexp.MustCompile(`\(\d{4}\)`)},
	{MediaTypeMovie, regexp.MustCompile(`\[\d{4}\]`)},
	{MediaTypeMovie, regexp.MustCompile(`[. _-]+(19|20)\d{2}[. _-]`)},
	{MediaTypeMovie, regexp.MustCompile(`\b(19|20)\d{2}\b.*\d+p`)},
	{MediaTypeMovie, regexp.MustCompile(`(19|20)\d{2}(\.|$|\s)`)},
}

// Classify determines the media type of a filename. It is a total function:
// every input maps to exactly one MediaType, with Unknown as the fallback
// when no pattern matches.
func Classify(name string) MediaType {
	for _, rule := range classRules {
		if !rule.re.MatchString(name) {
			continue
		}
		if rule.mediaType == MediaTypeAnime && containsSpecialKeyword(name) {
			return MediaTypeAnimeSpecial
		}
		return rule.mediaType
	}
	return MediaTypeUnknown
}

func containsSpecialKeyword(name string) bool {
	return strings.Contains(name, "OVA") || strings.Contains(name, "Special")
}
