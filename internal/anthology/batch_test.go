package anthology

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPreprocessBatchSequentialNumbering(t *testing.T) {
	s := &Segmenter{}
	// Given out of order; numbering must follow the sorted order.
	names := []string{
		"Show.S01E02.Third.Story.and.Fourth.Story.mp4",
		"Show.S01E01.First.Story.and.Second.Story.mp4",
	}

	batch, err := s.PreprocessBatch(context.Background(), names)
	if err != nil {
		t.Fatalf("PreprocessBatch returned error: %v", err)
	}
	if len(batch) != 2 {
		t.Fatalf("batch length = %d, want 2", len(batch))
	}

	if batch[0].Name != "Show.S01E01.First.Story.and.Second.Story.mp4" {
		t.Errorf("batch[0].Name = %q, want lexicographically first input", batch[0].Name)
	}

	wantFirst := []Segment{
		{Number: 1, Title: "First Story"},
		{Number: 2, Title: "Second Story"},
	}
	if diff := cmp.Diff(wantFirst, batch[0].Segments.Segments); diff != "" {
		t.Errorf("first file segments mismatch (-want +got):\n%s", diff)
	}

	wantSecond := []Segment{
		{Number: 3, Title: "Third Story"},
		{Number: 4, Title: "Fourth Story"},
	}
	if diff := cmp.Diff(wantSecond, batch[1].Segments.Segments); diff != "" {
		t.Errorf("second file segments mismatch (-want +got):\n%s", diff)
	}
}

func TestPreprocessBatchDeterministicAcrossOrderings(t *testing.T) {
	s := &Segmenter{}
	names := []string{
		"Show.S01E01.Alpha.and.Beta.mp4",
		"Show.S01E02.Gamma.mp4",
		"Show.S01E03.Delta.and.Epsilon.mp4",
	}
	reversed := []string{names[2], names[1], names[0]}

	first, err := s.PreprocessBatch(context.Background(), names)
	if err != nil {
		t.Fatalf("PreprocessBatch returned error: %v", err)
	}
	second, err := s.PreprocessBatch(context.Background(), reversed)
	if err != nil {
		t.Fatalf("PreprocessBatch(reversed) returned error: %v", err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("batch differs across input orderings (-first +second):\n%s", diff)
	}
}

func TestPreprocessBatchCapturesShowContext(t *testing.T) {
	s := &Segmenter{}
	batch, err := s.PreprocessBatch(context.Background(), []string{"Show.Name.S02E01.Alpha.and.Beta.mp4"})
	if err != nil {
		t.Fatalf("PreprocessBatch returned error: %v", err)
	}
	m := batch[0].Segments
	if m.ShowName != "Show Name" || m.Season != 2 {
		t.Errorf("segment map context = (%q, %d), want (Show Name, 2)", m.ShowName, m.Season)
	}
}

func TestPreprocessBatchUntitledFileConsumesOneNumber(t *testing.T) {
	s := &Segmenter{}
	batch, err := s.PreprocessBatch(context.Background(), []string{
		"Show.S01E01.mp4",
		"Show.S01E02.Alpha.and.Beta.mp4",
	})
	if err != nil {
		t.Fatalf("PreprocessBatch returned error: %v", err)
	}

	if got := batch[0].Segments.Segments; len(got) != 1 || got[0].Number != 1 {
		t.Errorf("untitled file segments = %v, want single segment numbered 1", got)
	}
	if got := batch[1].Segments.Segments; len(got) != 2 || got[0].Number != 2 {
		t.Errorf("second file segments = %v, want numbers starting at 2", got)
	}
}
