package memory

import (
	"time"

	"matchmaker-be/internal/entity"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MatchCache keeps recently used matches by id. Matches never change after
// creation, so entries only expire to bound memory.
type MatchCache struct {
	cache *cache.Cache
}

func NewMatchCache(ttl time.Duration) *MatchCache {
	return &MatchCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *MatchCache) Save(match *entity.Match) {
	if match == nil {
		return
	}
	copied := *match
	c.cache.Set(match.Id.String(), &copied, cache.DefaultExpiration)
}

func (c *MatchCache) Get(matchId uuid.UUID) (*entity.Match, bool) {
	if x, found := c.cache.Get(matchId.String()); found {
		copied := *x.(*entity.Match)
		return &copied, true
	}
	return nil, false
}

func (c *MatchCache) Delete(matchId uuid.UUID) {
	c.cache.Delete(matchId.String())
}

func (c *MatchCache) Len() int {
	return c.cache.ItemCount()
}
