package media

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxRangeSize caps how many episodes a single range marker may expand to.
// A marker like E01-E99 is truncated rather than rejected so a malformed
// release name cannot blow up downstream episode lists.
const MaxRangeSize = 20

// RangeError reports an episode range that cannot be expanded: a bound
// below one, or an end before its start. It signals a malformed fragment
// reaching the resolver, not a recoverable parse condition.
type RangeError struct {
	Start int
	End   int
}

func (e *RangeError) Error() string {
	if e.Start <= 0 || e.End <= 0 {
		return fmt.Sprintf("episode numbers must be positive: %d-%d", e.Start, e.End)
	}
	return fmt.Sprintf("invalid episode range: %d to %d", e.Start, e.End)
}

var (
	// Compound form mixing two ranges with interstitial singles:
	// S01E01-E03E05E07-E09.
	mixedRangesRe = regexp.MustCompile(`(?i)S\d+E(\d+)-E(\d+)E(\d+)E(\d+)-E(\d+)`)

	// Concatenated markers: S01E01E02E03.
	concatRe = regexp.MustCompile(`(?i)S(\d+)E(\d+)(?:E(\d+))+`)

	// Hyphenated range, with or without a repeated marker: S01E01-E02, S01E01-02.
	hyphenRangeRe = regexp.MustCompile(`(?i)S\d+E(\d+)-(?:E)?(\d+)`)

	// Space separated list: S01E01 E02 E03.
	spaceListRe = regexp.MustCompile(`(?i)S\d+E(\d+)(?:\s+E\d+)+`)

	// Textual separators: S01E01 to E03, S01E01 & E02, S01E01+E02, S01E01,E02.
	textSepRe = regexp.MustCompile(`(?i)S\d+E(\d+)\s*(to|&|\+|,)\s*E(\d+)`)

	// Alternate anime numbering: 01x02, optionally ranged 01x02-04.
	xFormRe = regexp.MustCompile(`(?i)(\d+)x(\d+)(?:-(\d+))?`)

	// Bare single marker: S01E05.
	singleEpisodeRe = regexp.MustCompile(`(?i)S\d+E(\d+)`)

	episodeMarkerRe = regexp.MustCompile(`(?i)E(\d+)`)
)

// ResolveEpisodes extracts every episode number referenced by a filename
// fragment. Patterns are tried most specific first; the result is ascending
// and de-duplicated. A fragment with no recognizable marker resolves to an
// empty list, not an error. A *RangeError is returned only for markers whose
// bounds are non-positive or inverted.
func ResolveEpisodes(fragment string) ([]int, error) {
	episodes, err := resolveEpisodes(fragment)
	if err != nil {
		return nil, err
	}
	return normalizeEpisodes(episodes), nil
}

func resolveEpisodes(fragment string) ([]int, error) {
	if m := mixedRangesRe.FindStringSubmatch(fragment); m != nil {
		firstStart, firstEnd := atoi(m[1]), atoi(m[2])
		single, secondStart, secondEnd := atoi(m[3]), atoi(m[4]), atoi(m[5])

		first, err := ExpandRange(firstStart, firstEnd)
		if err != nil {
			return nil, err
		}
		second, err := ExpandRange(secondStart, secondEnd)
		if err != nil {
			return nil, err
		}
		result := append(first, single)
		return append(result, second...), nil
	}

	if concatRe.MatchString(fragment) {
		return allEpisodeMarkers(fragment), nil
	}

	if m := hyphenRangeRe.FindStringSubmatch(fragment); m != nil {
		return ExpandRange(atoi(m[1]), atoi(m[2]))
	}

	if spaceListRe.MatchString(fragment) {
		return allEpisodeMarkers(fragment), nil
	}

	if m := textSepRe.FindStringSubmatch(fragment); m != nil {
		start, end := atoi(m[1]), atoi(m[3])
		// "to" implies an inclusive range, the list separators name
		// exactly the episodes they mention.
		if strings.EqualFold(m[2], "to") {
			return ExpandRange(start, end)
		}
		return []int{start, end}, nil
	}

	if m := xFormRe.FindStringSubmatch(fragment); m != nil {
		if m[3] != "" {
			return ExpandRange(atoi(m[2]), atoi(m[3]))
		}
		return []int{atoi(m[2])}, nil
	}

	if m := singleEpisodeRe.FindStringSubmatch(fragment); m != nil {
		return []int{atoi(m[1])}, nil
	}

	return nil, nil
}

// ExpandRange returns every episode number in [start, end]. Ranges wider
// than MaxRangeSize are silently truncated at start+MaxRangeSize-1.
func ExpandRange(start, end int) ([]int, error) {
	if start <= 0 || end <= 0 {
		return nil, &RangeError{Start: start, End: end}
	}
	if end < start {
		return nil, &RangeError{Start: start, End: end}
	}
	if end-start > MaxRangeSize-1 {
		end = start + MaxRangeSize - 1
	}

	episodes := make([]int, 0, end-start+1)
	for ep := start; ep <= end; ep++ {
		episodes = append(episodes, ep)
	}
	return episodes, nil
}

// AreSequential reports whether the list increments by exactly one at every
// step. Empty and single-element lists count as sequential.
func AreSequential(episodes []int) bool {
	for i := 1; i < len(episodes); i++ {
		if episodes[i] != episodes[i-1]+1 {
			return false
		}
	}
	return true
}

func allEpisodeMarkers(fragment string) []int {
	matches := episodeMarkerRe.FindAllStringSubmatch(fragment, -1)
	episodes := make([]int, 0, len(matches))
	for _, m := range matches {
		episodes = append(episodes, atoi(m[1]))
	}
	return episodes
}

func normalizeEpisodes(episodes []int) []int {
	if len(episodes) == 0 {
		return nil
	}
	sort.Ints(episodes)
	out := episodes[:1]
	for _, ep := range episodes[1:] {
		if ep != out[len(out)-1] {
			out = append(out, ep)
		}
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
