package media

import (
	"regexp"
	"strings"
)

var (
	// Leading [Group] tag. Only the first bracket group names the release
	// group, later bracket tags carry quality or checksums.
	animeGroupRe = regexp.MustCompile(`^\[([^\]]+)\]`)

	// Bracketed resolution tag anywhere in the name: [720p].
	animeQualityRe = regexp.MustCompile(`\[(\d{3,4}p)\]`)

	// Standard fansub episode: [Group] Title - 01v2 [720p].
	animeStandardRe = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*?)\s*-\s*(\d{1,3})(v\d+)?\s*(?:\[.*?)\]`)

	// Fansub special: [Group] Title - OVA1 [1080p].
	animeSpecialRe = regexp.MustCompile(`^\[([^\]]+)\]\s*(.*?)\s*-\s*(OVA|Special)(\d*)\s*(?:\[.*?)\]`)

	// Loose fallback: bracketed prefix, a title, and a bare number.
	animeBasicRe = regexp.MustCompile(`^\[.*?\]\s*(.*?)\s*-\s*(\d{1,3})`)
)

// parseAnime builds a ParsedMediaName for fansub-style anime filenames.
// When classification already marked the name as an anime special the
// special forms are preferred and the generic numbered path is only a
// fallback.
func parseAnime(filename string, mediaType MediaType) (ParsedMediaName, error) {
	namePart, ext := Stem(filename)
	p := ParsedMediaName{
		MediaType:  mediaType,
		Extension:  ext,
		Confidence: 0.8,
	}

	if m := animeGroupRe.FindStringSubmatch(namePart); m != nil {
		p.Group = m[1]
	}
	if m := animeQualityRe.FindStringSubmatch(namePart); m != nil {
		p.Quality = m[1]
	}

	if mediaType == MediaTypeAnimeSpecial {
		if m := animeSpecialRe.FindStringSubmatch(namePart); m != nil {
			p.Group = m[1]
			p.Title = strings.TrimSpace(m[2])
			p.SpecialType = specialTypeFromKeyword(m[3])
			p.SpecialNumber = 1
			if m[4] != "" {
				p.SpecialNumber = atoi(m[4])
			}
			p.Confidence = 0.85
			return p, nil
		}
		if info, ok := DetectSpecial(namePart); ok {
			p.SpecialType = info.Type
			p.SpecialNumber = info.Number
			if p.SpecialNumber == 0 {
				p.SpecialNumber = 1
			}
			if m := animeBasicRe.FindStringSubmatch(namePart); m != nil {
				p.Title = strings.TrimSpace(m[1])
			}
			p.Confidence = 0.7
			return p, nil
		}
	}

	if m := animeStandardRe.FindStringSubmatch(namePart); m != nil {
		p.Group = m[1]
		p.Title = strings.TrimSpace(m[2])
		p.Episodes = []int{atoi(m[3])}
		if m[4] != "" {
			p.Version = atoi(m[4][1:])
		}
		p.Confidence = 0.9
		return p, nil
	}

	if m := animeBasicRe.FindStringSubmatch(namePart); m != nil {
		p.Title = strings.TrimSpace(m[1])
		p.Episodes = []int{atoi(m[2])}
		p.Confidence = 0.6
		return p, nil
	}

	return p, nil
}

func specialTypeFromKeyword(keyword string) SpecialType {
	switch strings.ToLower(keyword) {
	case "ova":
		return SpecialTypeOVA
	case "movie", "film":
		return SpecialTypeMovie
	default:
		return SpecialTypeSpecial
	}
}
