package anthology

import (
	"context"
	"sort"

	"github.com/mediafmt/mediafmt/internal/media"
)

// BatchFile is one input of an anthology batch after segmentation, with
// episode numbers assigned across the whole batch.
type BatchFile struct {
	Name     string
	Parsed   media.ParsedMediaName
	Segments SegmentMap
}

// PreprocessBatch segments every filename of a multi-file release and
// numbers the segments sequentially across files. Inputs are sorted
// lexicographically first so repeated runs over the same set are
// deterministic regardless of argument order. Numbering starts at 1.
//
// The only error surfaced is a parse failure; files that parse but yield
// no episode title still consume one episode number as a single untitled
// segment.
func (s *Segmenter) PreprocessBatch(ctx context.Context, names []string) ([]BatchFile, error) {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	batch := make([]BatchFile, 0, len(sorted))
	next := 1
	for _, name := range sorted {
		parsed, err := media.Parse(name)
		if err != nil {
			return nil, err
		}

		titles := s.DetectSegments(ctx, parsed.EpisodeTitle)
		if len(titles) == 0 {
			titles = []string{""}
		}

		batch = append(batch, BatchFile{
			Name:     name,
			Parsed:   parsed,
			Segments: NewSegmentMap(parsed.Title, parsed.Season, titles, next),
		})
		next += len(titles)
	}
	return batch, nil
}
