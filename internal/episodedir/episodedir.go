// Package episodedir defines the authoritative-episode-list collaborator
// used to confirm anthology segment numbering, together with TVDB and TMDB
// backed implementations in subpackages and a caching decorator.
package episodedir

import (
	"context"
	"fmt"
)

// Episode is one entry of an authoritative episode list for a season.
type Episode struct {
	Number int
	Title  string
}

// Directory lists the episodes of one season of a series. The series
// argument is backend-specific: a numeric series ID for TVDB, a show name
// query for TMDB. Callers resolve the identifier themselves.
type Directory interface {
	ListEpisodes(ctx context.Context, series string, season int) ([]Episode, error)
}

// Error is a structured failure from a directory backend.
type Error struct {
	Provider string
	Code     string
	Message  string
	Retry    bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("episodedir(%s) %s: %s", e.Provider, e.Code, e.Message)
}

// IsNotFound reports whether err is a directory miss rather than a
// transport or auth failure.
func IsNotFound(err error) bool {
	dirErr, ok := err.(*Error)
	return ok && dirErr.Code == "NOT_FOUND"
}
