package media

// Parse converts a raw filename into its structured form. Classification
// picks the parser; an unrecognized name degrades to an Unknown result
// carrying just the stem and extension instead of failing. The only error
// surfaced is a *RangeError from an invalid episode range marker.
func Parse(filename string) (ParsedMediaName, error) {
	mediaType := Classify(filename)

	switch mediaType {
	case MediaTypeTVShow, MediaTypeTVSpecial:
		return parseTVShow(filename, mediaType)
	case MediaTypeMovie:
		return parseMovie(filename)
	case MediaTypeAnime, MediaTypeAnimeSpecial:
		return parseAnime(filename, mediaType)
	default:
		stem, ext := Stem(filename)
		return ParsedMediaName{
			MediaType:  MediaTypeUnknown,
			Title:      stem,
			Extension:  ext,
			Confidence: 0.2,
		}, nil
	}
}
