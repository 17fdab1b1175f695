package media

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveEpisodes(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     []int
	}{
		{"Single", "S01E05", []int{5}},
		{"Concatenated", "S01E01E02E03", []int{1, 2, 3}},
		{"HyphenRange", "S01E01-E03", []int{1, 2, 3}},
		{"HyphenRangeNoMarker", "S01E01-03", []int{1, 2, 3}},
		{"SpaceList", "S01E01 E02 E03", []int{1, 2, 3}},
		{"TextualTo", "S01E05 to E07", []int{5, 6, 7}},
		{"Ampersand", "S01E01 & E02", []int{1, 2}},
		{"Plus", "S01E01+E02", []int{1, 2}},
		{"Comma", "S01E01,E02", []int{1, 2}},
		{"XForm", "Show 01x02", []int{2}},
		{"XFormRange", "Show 01x02-04", []int{2, 3, 4}},
		{"MixedRanges", "S01E01-E03E05E07-E09", []int{1, 2, 3, 5, 7, 8, 9}},
		{"NoMarker", "Just a title", nil},
		{"Empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEpisodes(tt.fragment)
			if err != nil {
				t.Fatalf("ResolveEpisodes(%q) unexpected error: %v", tt.fragment, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ResolveEpisodes(%q) mismatch (-want +got):\n%s", tt.fragment, diff)
			}
		})
	}
}

func TestResolveEpisodesInvalidRange(t *testing.T) {
	_, err := ResolveEpisodes("S01E05-E02")
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("ResolveEpisodes(inverted) error = %v, want *RangeError", err)
	}
	if rangeErr.Start != 5 || rangeErr.End != 2 {
		t.Errorf("RangeError bounds = %d-%d, want 5-2", rangeErr.Start, rangeErr.End)
	}
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		wantLen    int
		wantErr    bool
	}{
		{"SingleMember", 3, 3, 1, false},
		{"ShortRange", 1, 5, 5, false},
		{"ExactlyMax", 1, 20, 20, false},
		{"TruncatedToMax", 1, 99, 20, false},
		{"ZeroStart", 0, 5, 0, true},
		{"NegativeEnd", 1, -2, 0, true},
		{"Inverted", 7, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRange(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpandRange(%d, %d) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("ExpandRange(%d, %d) returned %d members, want %d", tt.start, tt.end, len(got), tt.wantLen)
			}
			for i, ep := range got {
				if ep != tt.start+i {
					t.Errorf("ExpandRange(%d, %d)[%d] = %d, want %d", tt.start, tt.end, i, ep, tt.start+i)
				}
			}
		})
	}
}

// Property from the range contract: expansion yields exactly
// min(end, start+19) - start + 1 ascending members starting at start.
func TestExpandRangeLengthProperty(t *testing.T) {
	for start := 1; start <= 30; start++ {
		for end := start; end <= start+40; end += 7 {
			got, err := ExpandRange(start, end)
			if err != nil {
				t.Fatalf("ExpandRange(%d, %d) unexpected error: %v", start, end, err)
			}
			wantEnd := end
			if wantEnd > start+MaxRangeSize-1 {
				wantEnd = start + MaxRangeSize - 1
			}
			if len(got) != wantEnd-start+1 {
				t.Fatalf("ExpandRange(%d, %d) length = %d, want %d", start, end, len(got), wantEnd-start+1)
			}
			if got[0] != start {
				t.Fatalf("ExpandRange(%d, %d) starts at %d, want %d", start, end, got[0], start)
			}
		}
	}
}

func TestAreSequential(t *testing.T) {
	tests := []struct {
		name     string
		episodes []int
		want     bool
	}{
		{"Empty", nil, true},
		{"Single", []int{4}, true},
		{"Sequential", []int{1, 2, 3}, true},
		{"Gap", []int{1, 3, 4}, false},
		{"Descending", []int{3, 2, 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AreSequential(tt.episodes); got != tt.want {
				t.Errorf("AreSequential(%v) = %v, want %v", tt.episodes, got, tt.want)
			}
		})
	}
}
