package render

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"clean name unchanged", "Show.Name.S01E02.mp4", "Show.Name.S01E02.mp4", false},
		{"invalid chars become spaces", "Show: The Return?.mkv", "Show The Return .mkv", false},
		{"runs collapse to one space", "A <> B", "A B", false},
		{"control chars stripped", "Show\tName", "Show Name", false},
		{"empty input", "", "", true},
		{"only invalid chars", "<>:?*", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Sanitize(%q) = %q, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Sanitize(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizePath(t *testing.T) {
	t.Parallel()
	got, err := SanitizePath("Show: Name/Season 01/Show S01E02.mp4")
	if err != nil {
		t.Fatalf("SanitizePath error: %v", err)
	}
	want := "Show Name/Season 01/Show S01E02.mp4"
	if got != want {
		t.Errorf("SanitizePath = %q, want %q", got, want)
	}

	if _, err := SanitizePath(""); err == nil {
		t.Error("SanitizePath(\"\") expected error")
	}
}
