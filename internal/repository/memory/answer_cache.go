package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// AnswerCache remembers successful rewrites so repeated questions do not pay
// the provider twice. Entries expire on a TTL; a miss is always safe.
type AnswerCache struct {
	cache *cache.Cache
}

func NewAnswerCache(ttl time.Duration) *AnswerCache {
	c := cache.New(ttl, 10*time.Minute)
	return &AnswerCache{
		cache: c,
	}
}

func (r *AnswerCache) key(entryId, question string) string {
	return fmt.Sprintf("%s::%s", entryId, question)
}

func (r *AnswerCache) Save(entryId, question, answer string) {
	r.cache.Set(r.key(entryId, question), answer, cache.DefaultExpiration)
}

func (r *AnswerCache) Get(entryId, question string) (string, bool) {
	if x, found := r.cache.Get(r.key(entryId, question)); found {
		return x.(string), true
	}
	return "", false
}
