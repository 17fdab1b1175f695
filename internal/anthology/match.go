package anthology

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mediafmt/mediafmt/internal/episodedir"
)

// SimilarityThreshold is the minimum normalized edit-distance similarity
// for a fuzzy title match to be accepted.
const SimilarityThreshold = 0.8

// MatchTitles reconciles segment titles against an authoritative episode
// list. Exact case-insensitive matches win outright; otherwise the most
// similar authoritative title above SimilarityThreshold is used, with
// already-consumed episode numbers excluded from the candidates so a
// segment falls through to its best remaining title. Each authoritative
// episode number is consumed by at most one segment; an exact match may
// still displace an earlier fuzzy claim. Segments with no acceptable
// match are absent from the result; both inputs may be empty.
func MatchTitles(segments []string, authoritative []episodedir.Episode) map[string]int {
	matches := make(map[string]int)
	if len(segments) == 0 || len(authoritative) == 0 {
		return matches
	}

	// score and owner per consumed episode number
	scores := make(map[int]float64)
	owners := make(map[int]string)

	claim := func(segment string, number int, score float64) {
		if previous, taken := owners[number]; taken {
			if score <= scores[number] {
				return
			}
			delete(matches, previous)
		}
		matches[segment] = number
		scores[number] = score
		owners[number] = segment
	}

	for _, segment := range segments {
		exact := false
		for _, ep := range authoritative {
			if strings.EqualFold(segment, ep.Title) {
				// exact matches outrank any similarity score
				claim(segment, ep.Number, 2)
				exact = true
				break
			}
		}
		if exact {
			continue
		}

		bestScore := 0.0
		bestNumber := 0
		for _, ep := range authoritative {
			if _, taken := owners[ep.Number]; taken {
				// Consumed numbers are off the table; the segment should
				// land on its best remaining candidate instead.
				continue
			}
			score := similarity(segment, ep.Title)
			if score > bestScore {
				bestScore = score
				bestNumber = ep.Number
			}
		}
		if bestScore > SimilarityThreshold {
			claim(segment, bestNumber, bestScore)
		}
	}

	return matches
}

func similarity(a, b string) float64 {
	return levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), nil)
}
