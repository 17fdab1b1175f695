package episodedir

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedDirectory memoizes season listings from an inner Directory.
// Errors are never cached, so a transient backend failure does not poison
// later lookups.
type CachedDirectory struct {
	inner Directory
	cache *cache.Cache
}

// NewCached wraps inner with a TTL cache. Season listings rarely change,
// so TTLs in the hours are reasonable.
func NewCached(inner Directory, ttl time.Duration) *CachedDirectory {
	return &CachedDirectory{
		inner: inner,
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (d *CachedDirectory) ListEpisodes(ctx context.Context, series string, season int) ([]Episode, error) {
	key := fmt.Sprintf("%s|%d", series, season)
	if cached, found := d.cache.Get(key); found {
		if episodes, ok := cached.([]Episode); ok {
			return episodes, nil
		}
	}

	episodes, err := d.inner.ListEpisodes(ctx, series, season)
	if err != nil {
		return nil, err
	}
	d.cache.Set(key, episodes, cache.DefaultExpiration)
	return episodes, nil
}
