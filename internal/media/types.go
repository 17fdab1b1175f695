package media

// MediaType represents the type of media content recognized in a filename.
type MediaType string

const (
	MediaTypeTVShow       MediaType = "tv_show"
	MediaTypeTVSpecial    MediaType = "tv_special"
	MediaTypeMovie        MediaType = "movie"
	MediaTypeAnime        MediaType = "anime"
	MediaTypeAnimeSpecial MediaType = "anime_special"
	MediaTypeUnknown      MediaType = "unknown"
)

// SpecialType classifies out-of-season episodes.
type SpecialType string

const (
	SpecialTypeSpecial SpecialType = "special"
	SpecialTypeOVA     SpecialType = "ova"
	SpecialTypeMovie   SpecialType = "movie"
)

// ParsedMediaName is the canonical structured form of a media filename.
// It is built fresh for every input and never mutated afterwards; callers
// that need a variant construct a new value.
//
// Which fields are meaningful depends on MediaType: Season/Episodes for TV
// types, Year for movies, Group/Version for anime, SpecialType/SpecialNumber
// for specials. Parsers leave the fields outside their cluster at their zero
// values.
type ParsedMediaName struct {
	MediaType MediaType
	Title     string
	Extension string // includes leading dot, may be empty
	Quality   string
	// Confidence reports how specific the matched pattern was, in [0, 1].
	Confidence float64

	// TV fields. Season 0 denotes specials.
	Season       int
	Episodes     []int
	EpisodeTitle string

	// Movie fields.
	Year int

	// Anime fields.
	Group   string
	Version int

	// Special fields.
	SpecialType   SpecialType
	SpecialNumber int

	// AdditionalInfo carries data no structured field models. The renderer
	// never interprets it.
	AdditionalInfo map[string]string
}

// HasEpisodes reports whether at least one episode number was recovered.
func (p ParsedMediaName) HasEpisodes() bool {
	return len(p.Episodes) > 0
}

// IsSpecial reports whether the parse identified an out-of-season episode.
func (p ParsedMediaName) IsSpecial() bool {
	return p.SpecialType != ""
}
