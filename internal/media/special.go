package media

import (
	"regexp"
	"strconv"
)

// SpecialInfo describes a detected out-of-season episode marker.
// Number is 0 when the marker carried no ordinal.
type SpecialInfo struct {
	Type   SpecialType
	Number int
}

var (
	// Season zero is the most reliable marker and always wins.
	seasonZeroRe = regexp.MustCompile(`(?i)S00E(\d+)`)

	// Dotted ordinal forms.
	ovaDotRe     = regexp.MustCompile(`(?i)OVA\.(\d+)`)
	movieDotRe   = regexp.MustCompile(`(?i)Movie\.(\d+)|Film\.(\d+)`)
	specialDotRe = regexp.MustCompile(`(?i)Special\.(\d+)`)
)

// keyword forms, checked after the dotted forms. The ordinal is optional
// and may land in any capture group; the first non-empty numeric group wins.
var specialKeywordRules = []struct {
	specialType SpecialType
	re          *regexp.Regexp
}{
	{SpecialTypeSpecial, regexp.MustCompile(`(?i)Special(?:s)?(?:\s*(\d+)|\.(\d+))?`)},
	{SpecialTypeOVA, regexp.MustCompile(`(?i)OVA(?:\s*(\d+))?`)},
	{SpecialTypeMovie, regexp.MustCompile(`(?i)Movie(?:\s*(\d+))?|Film(?:\s*(\d+))?`)},
}

// DetectSpecial recognizes special/OVA/movie markers in a filename. It
// returns false when no marker exists. Callers run this before general
// numbered-episode parsing, since a special would otherwise be mis-read as
// a regular episode.
func DetectSpecial(name string) (SpecialInfo, bool) {
	if m := seasonZeroRe.FindStringSubmatch(name); m != nil {
		return SpecialInfo{Type: SpecialTypeSpecial, Number: atoi(m[1])}, true
	}
	if m := ovaDotRe.FindStringSubmatch(name); m != nil {
		return SpecialInfo{Type: SpecialTypeOVA, Number: atoi(m[1])}, true
	}
	if m := movieDotRe.FindStringSubmatch(name); m != nil {
		return SpecialInfo{Type: SpecialTypeMovie, Number: firstNumericGroup(m)}, true
	}
	if m := specialDotRe.FindStringSubmatch(name); m != nil {
		return SpecialInfo{Type: SpecialTypeSpecial, Number: atoi(m[1])}, true
	}

	for _, rule := range specialKeywordRules {
		if m := rule.re.FindStringSubmatch(name); m != nil {
			return SpecialInfo{Type: rule.specialType, Number: firstNumericGroup(m)}, true
		}
	}
	return SpecialInfo{}, false
}

func firstNumericGroup(match []string) int {
	for _, group := range match[1:] {
		if group == "" {
			continue
		}
		if n, err := strconv.Atoi(group); err == nil {
			return n
		}
	}
	return 0
}
