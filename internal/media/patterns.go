package media

import "regexp"

// Quality markers are searched independently so resolution, source, and
// codec tags are picked up in any order. The combined form is listed first
// so "720p HDTV" is captured as one tag instead of two.
var qualityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{3,4}p\s+(?:HDTV|WEB-DL|BluRay|BRRip))`),
	regexp.MustCompile(`(?i)(\d{3,4}p)`),
	regexp.MustCompile(`(?i)\b(HDTV|WEB-DL|BluRay|BRRip)\b`),
	regexp.MustCompile(`(?i)\b(x264|x265|HEVC)\b`),
}

// extractQuality pulls the first matching quality tag out of a name part
// and returns the tag together with the name part with every matched tag
// removed.
func extractQuality(namePart string) (string, string) {
	quality := ""
	for _, re := range qualityPatterns {
		if m := re.FindStringSubmatch(namePart); m != nil {
			if quality == "" {
				quality = m[1]
			}
			namePart = re.ReplaceAllString(namePart, "")
		}
	}
	return quality, namePart
}
