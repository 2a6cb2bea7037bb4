package power

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// snapshotTTL bounds how long one registry query serves attribute reads, so
// a Reading of six attributes costs one query instead of six.
const snapshotTTL = 500 * time.Millisecond

// snapshots caches the latest query result per service name.
type snapshots struct {
	cache *cache.Cache
}

func newSnapshots(ttl time.Duration) *snapshots {
	// Expired entries are replaced on the next get; no janitor needed.
	return &snapshots{cache: cache.New(ttl, 0)}
}

// get returns the cached snapshot of name, calling fetch when there is none
// or it expired. Failed fetches are not cached.
func (s *snapshots) get(name string, fetch func() (any, error)) (any, error) {
	if v, found := s.cache.Get(name); found {
		return v, nil
	}

	v, err := fetch()
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, v, cache.DefaultExpiration)

	return v, nil
}

func (s *snapshots) forget(name string) {
	s.cache.Delete(name)
}
