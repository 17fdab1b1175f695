// Package tmdb implements episodedir.Directory against The Movie Database.
package tmdb

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ryanbradynd05/go-tmdb"

	"github.com/mediafmt/mediafmt/internal/episodedir"
)

const providerName = "tmdb"

// Client captures the go-tmdb methods used by this backend. It matches
// *tmdb.TMDb exactly so the real client satisfies it directly.
type Client interface {
	SearchTv(name string, options map[string]string) (*tmdb.TvSearchResults, error)
	GetTvSeasonInfo(showID, seasonID int, options map[string]string) (*tmdb.TvSeason, error)
}

// Directory lists season episodes from TMDB. The series identifier passed
// to ListEpisodes is a show name query; the first search result is used.
type Directory struct {
	client   Client
	language string
	limiter  *rateLimiter
}

// New builds a Directory for the given API key. Language defaults to
// en-US when empty.
func New(apiKey, language string) *Directory {
	if language == "" {
		language = "en-US"
	}
	client := tmdb.Init(tmdb.Config{APIKey: apiKey, Proxies: nil, UseProxy: false})
	return &Directory{
		client:   client,
		language: language,
		limiter:  newRateLimiter(38, rateWindow),
	}
}

// NewWithClient wires an existing client, primarily for tests.
func NewWithClient(client Client, language string) *Directory {
	if language == "" {
		language = "en-US"
	}
	return &Directory{client: client, language: language, limiter: newRateLimiter(38, rateWindow)}
}

func (d *Directory) ListEpisodes(ctx context.Context, series string, season int) ([]episodedir.Episode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	series = strings.TrimSpace(series)
	if series == "" {
		return nil, &episodedir.Error{Provider: providerName, Code: "INVALID_REQUEST", Message: "series name is required"}
	}

	options := map[string]string{"language": d.language}

	d.limiter.wait()
	results, err := d.client.SearchTv(series, options)
	if err != nil {
		return nil, mapError(err)
	}
	if results == nil || len(results.Results) == 0 {
		return nil, &episodedir.Error{Provider: providerName, Code: "NOT_FOUND", Message: "no results found for show: " + series}
	}
	showID := results.Results[0].ID

	d.limiter.wait()
	seasonInfo, err := d.client.GetTvSeasonInfo(showID, season, options)
	if err != nil {
		return nil, mapError(err)
	}
	if seasonInfo == nil {
		return nil, &episodedir.Error{Provider: providerName, Code: "NOT_FOUND", Message: fmt.Sprintf("season %d not found", season)}
	}

	episodes := make([]episodedir.Episode, 0, len(seasonInfo.Episodes))
	for _, e := range seasonInfo.Episodes {
		episodes = append(episodes, episodedir.Episode{
			Number: e.EpisodeNumber,
			Title:  strings.TrimSpace(e.Name),
		})
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
	case strings.Contains(lower, "401"), strings.Contains(lower, "unauthorized"), strings.Contains(lower, "invalid api key"):
		return &episodedir.Error{Provider: providerName, Code: "AUTH_FAILED", Message: "TMDB authentication failed: " + msg}
	case strings.Contains(lower, "429"), strings.Contains(lower, "too many"):
		return &episodedir.Error{Provider: providerName, Code: "RATE_LIMITED", Message: msg, Retry: true}
	case strings.Contains(lower, "404"), strings.Contains(lower, "not found"):
		return &episodedir.Error{Provider: providerName, Code: "NOT_FOUND", Message: msg}
	default:
		return &episodedir.Error{Provider: providerName, Code: "UNKNOWN", Message: msg}
	}
}
