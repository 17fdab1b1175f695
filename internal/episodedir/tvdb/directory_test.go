package tvdb

import (
	"context"
	"errors"
	"testing"

	tvdbapi "github.com/dashotv/tvdb"
	"github.com/dashotv/tvdb/openapi/models/operations"

	"github.com/mediafmt/mediafmt/internal/episodedir"
)

type fakeClient struct {
	episodesFunc func(request operations.GetSeriesEpisodesRequest) (*tvdbapi.GetSeriesEpisodesResponse, error)
}

func (c *fakeClient) GetSeriesEpisodes(request operations.GetSeriesEpisodesRequest) (*tvdbapi.GetSeriesEpisodesResponse, error) {
	return c.episodesFunc(request)
}

func TestListEpisodesRequestShape(t *testing.T) {
	var got operations.GetSeriesEpisodesRequest
	client := &fakeClient{
		episodesFunc: func(request operations.GetSeriesEpisodesRequest) (*tvdbapi.GetSeriesEpisodesResponse, error) {
			got = request
			return nil, errors.New("404 not found")
		},
	}

	dir := NewWithClient(client)
	dir.ListEpisodes(context.Background(), "70327", 2)

	if got.ID != 70327 {
		t.Errorf("request ID = %v, want 70327", got.ID)
	}
	if got.SeasonType != "official" {
		t.Errorf("request SeasonType = %q, want official", got.SeasonType)
	}
	if got.Season == nil || *got.Season != 2 {
		t.Errorf("request Season = %v, want 2", got.Season)
	}
}

func TestListEpisodesNonNumericSeries(t *testing.T) {
	dir := NewWithClient(&fakeClient{})
	_, err := dir.ListEpisodes(context.Background(), "Breaking Bad", 1)
	var dirErr *episodedir.Error
	if !errors.As(err, &dirErr) {
		t.Fatalf("ListEpisodes error = %v, want *episodedir.Error", err)
	}
	if dirErr.Code != "INVALID_REQUEST" {
		t.Errorf("Code = %q, want INVALID_REQUEST", dirErr.Code)
	}
}

func TestListEpisodesNilResponse(t *testing.T) {
	client := &fakeClient{
		episodesFunc: func(request operations.GetSeriesEpisodesRequest) (*tvdbapi.GetSeriesEpisodesResponse, error) {
			return nil, nil
		},
	}

	dir := NewWithClient(client)
	_, err := dir.ListEpisodes(context.Background(), "70327", 1)
	if !episodedir.IsNotFound(err) {
		t.Fatalf("ListEpisodes error = %v, want NOT_FOUND", err)
	}
}

func TestListEpisodesCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := NewWithClient(&fakeClient{})
	if _, err := dir.ListEpisodes(ctx, "70327", 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("ListEpisodes error = %v, want context.Canceled", err)
	}
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"Unauthorized", errors.New("401 unauthorized"), "AUTH_FAILED"},
		{"RateLimited", errors.New("429 too many requests"), "RATE_LIMITED"},
		{"NotFound", errors.New("series not found"), "NOT_FOUND"},
		{"Unavailable", errors.New("503 service unavailable"), "UNAVAILABLE"},
		{"Other", errors.New("connection reset"), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapError(tt.err)
			var dirErr *episodedir.Error
			if !errors.As(mapped, &dirErr) {
				t.Fatalf("mapError(%v) = %v, want *episodedir.Error", tt.err, mapped)
			}
			if dirErr.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", dirErr.Code, tt.wantCode)
			}
		})
	}
}
