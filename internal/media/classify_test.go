package media

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  MediaType
	}{
		{"StandardEpisode", "Show.Name.S01E02.Title.mp4", MediaTypeTVShow},
		{"MultiEpisode", "Show.S01E01E02.mkv", MediaTypeTVShow},
		{"AltNumbering", "Show.1x02.mkv", MediaTypeTVShow},
		{"VerboseForm", "Show Season 1 Episode 2.mp4", MediaTypeTVShow},
		{"PeriodSeparated", "Show.S01.E02.mp4", MediaTypeTVShow},
		{"SeasonZero", "Show.S00E01.Special.mp4", MediaTypeTVSpecial},
		{"SpecialEpisode", "Show Special Episode.mp4", MediaTypeTVSpecial},
		{"BareOVA", "Show OVA2.mkv", MediaTypeTVSpecial},
		{"MovieParenYear", "Movie Name (2020).mp4", MediaTypeMovie},
		{"MovieBracketYear", "Movie Name [2020].mp4", MediaTypeMovie},
		{"MovieSeparatorYear", "Movie.Name.2020.1080p.mp4", MediaTypeMovie},
		{"FansubEpisode", "[Group] Anime - 01 [720p].mkv", MediaTypeAnime},
		{"FansubVersioned", "[Group] Anime - 01v2 [720p].mkv", MediaTypeAnime},
		{"FansubOVA", "[Group] Show - OVA [1080p].mkv", MediaTypeAnimeSpecial},
		{"FansubNumberedOVA", "[Group] Show - OVA2 [1080p].mkv", MediaTypeAnimeSpecial},
		{"FansubSpecial", "[Group] Show - Special 1 [720p].mkv", MediaTypeAnimeSpecial},
		{"PlainName", "notes.txt", MediaTypeUnknown},
		{"Empty", "", MediaTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.input); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// Classification is a pure function, so repeated calls must agree.
func TestClassifyIdempotent(t *testing.T) {
	inputs := []string{
		"Show.S01E02.mp4",
		"[Group] Anime - 01 [720p].mkv",
		"Movie (2020).mp4",
		"garbage",
	}
	for _, input := range inputs {
		first := Classify(input)
		second := Classify(input)
		if first != second {
			t.Errorf("Classify(%q) not stable: %v then %v", input, first, second)
		}
	}
}

// Priority is load-bearing: a name carrying both anime and special
// indicators must land on the anime special type, never plain anime.
func TestClassifyPriority(t *testing.T) {
	got := Classify("[Group] Show - OVA [1080p].mkv")
	if got != MediaTypeAnimeSpecial {
		t.Errorf("Classify(OVA fansub) = %v, want %v", got, MediaTypeAnimeSpecial)
	}
}
