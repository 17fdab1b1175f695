// Package tvdb implements episodedir.Directory against TheTVDB v4 API.
package tvdb

import (
	"context"
	"sort"
	"strconv"
	"strings"

	tvdbapi "github.com/dashotv/tvdb"
	"github.com/dashotv/tvdb/openapi/models/operations"

	"github.com/mediafmt/mediafmt/internal/episodedir"
)

const providerName = "tvdb"

// Client captures the dashotv client methods used by this backend.
type Client interface {
	GetSeriesEpisodes(request operations.GetSeriesEpisodesRequest) (*tvdbapi.GetSeriesEpisodesResponse, error)
}

// Directory lists season episodes from TVDB. The series identifier passed
// to ListEpisodes must be a numeric TVDB series ID.
type Directory struct {
	client Client
}

// New authenticates against TVDB and returns a ready Directory.
func New(apiKey string) (*Directory, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, &episodedir.Error{Provider: providerName, Code: "AUTH_FAILED", Message: "api key is required"}
	}
	client, err := tvdbapi.Login(apiKey)
	if err != nil {
		return nil, mapError(err)
	}
	return &Directory{client: client}, nil
}

// NewWithClient wires an existing client, primarily for tests.
func NewWithClient(client Client) *Directory {
	return &Directory{client: client}
}

func (d *Directory) ListEpisodes(ctx context.Context, series string, season int) ([]episodedir.Episode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(strings.TrimSpace(series))
	if err != nil {
		return nil, &episodedir.Error{Provider: providerName, Code: "INVALID_REQUEST", Message: "series must be a numeric TVDB id: " + series}
	}
	if season < 0 {
		return nil, &episodedir.Error{Provider: providerName, Code: "INVALID_REQUEST", Message: "season must be non-negative"}
	}

	seasonNum := int64(season)
	resp, err := d.client.GetSeriesEpisodes(operations.GetSeriesEpisodesRequest{
		ID:         float64(id),
		SeasonType: "official",
		Season:     &seasonNum,
		Page:       0,
	})
	if err != nil {
		return nil, mapError(err)
	}
	if resp == nil || resp.Data == nil {
		return nil, &episodedir.Error{Provider: providerName, Code: "NOT_FOUND", Message: "season not found"}
	}

	episodes := make([]episodedir.Episode, 0, len(resp.Data.Episodes))
	for _, e := range resp.Data.Episodes {
		if e.Number == nil {
			continue
		}
		title := ""
		if e.Name != nil {
			title = strings.TrimSpace(*e.Name)
		}
		episodes = append(episodes, episodedir.Episode{Number: int(*e.Number), Title: title})
	}
	sort.Slice(episodes, func(i, j int) bool { return episodes[i].Number < episodes[j].Number })
	return episodes, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case strings.Contains(lower, "401"), strings.Contains(lower, "unauthorized"), strings.Contains(lower, "apikey"):
		return &episodedir.Error{Provider: providerName, Code: "AUTH_FAILED", Message: "TVDB authentication failed: " + msg}
	case strings.Contains(lower, "429"), strings.Contains(lower, "too many"):
		return &episodedir.Error{Provider: providerName, Code: "RATE_LIMITED", Message: msg, Retry: true}
	case strings.Contains(lower, "404"), strings.Contains(lower, "not found"):
		return &episodedir.Error{Provider: providerName, Code: "NOT_FOUND", Message: msg}
	case strings.Contains(lower, "503"), strings.Contains(lower, "unavailable"):
		return &episodedir.Error{Provider: providerName, Code: "UNAVAILABLE", Message: msg, Retry: true}
	default:
		return &episodedir.Error{Provider: providerName, Code: "UNKNOWN", Message: msg}
	}
}
