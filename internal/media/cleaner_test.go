package media

import "testing"

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Dots", "show.name", "Show Name"},
		{"Underscores", "show_name", "Show Name"},
		{"Mixed", "show.name_here", "Show Name Here"},
		{"CollapsesRuns", "show...name", "Show Name"},
		{"PreservesAcronyms", "NCIS.los.angeles", "NCIS Los Angeles"},
		{"TrimsEdges", ".show.name.", "Show Name"},
		{"Empty", "", ""},
		{"OnlySeparators", "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanTitle(tt.raw); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanEpisodeTitle(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		multi bool
		want  string
	}{
		{"Single", "The.Pilot", false, "The Pilot"},
		{"SingleKeepsMarkerWords", "Part.E01", false, "Part E01"},
		{"MultiStripsMarkers", "E02.and.E03.Finale", true, "Finale"},
		{"MultiStripsConnectors", "to.E04.Epilogue", true, "Epilogue"},
		{"MultiXForm", "1x02 Opening", true, "Opening"},
		{"Empty", "", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanEpisodeTitle(tt.raw, tt.multi); got != tt.want {
				t.Errorf("CleanEpisodeTitle(%q, %v) = %q, want %q", tt.raw, tt.multi, got, tt.want)
			}
		})
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantStem string
		wantExt  string
	}{
		{"Simple", "movie.mp4", "movie", ".mp4"},
		{"MultipleDots", "show.s01e01.mkv", "show.s01e01", ".mkv"},
		{"NoExtension", "README", "README", ""},
		{"Empty", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := Stem(tt.filename)
			if stem != tt.wantStem || ext != tt.wantExt {
				t.Errorf("Stem(%q) = (%q, %q), want (%q, %q)", tt.filename, stem, ext, tt.wantStem, tt.wantExt)
			}
		})
	}
}
