package auth

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

// DefaultSessionCacheTTL bounds how long a resolved session is served from
// memory before redis is asked again.
const DefaultSessionCacheTTL = time.Minute

// SessionCache keeps resolved sessions in process memory for a short time,
// sparing a redis round trip on every request.
type SessionCache struct {
	cache *freecache.Cache
	ttl   time.Duration
}

func NewSessionCache(sizeMB int, ttl time.Duration) *SessionCache {
	return &SessionCache{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   ttl,
	}
}

func (c *SessionCache) Get(token string) (Session, bool) {
	if c == nil {
		return Session{}, false
	}

	val, err := c.cache.Get([]byte(token))
	if err != nil {
		if !errors.Is(err, freecache.ErrNotFound) {
			log.Errorf("session cache get: %s", err)
		}
		return Session{}, false
	}

	var session Session
	if err := json.Unmarshal(val, &session); err != nil {
		log.Errorf("session cache unmarshal: %s", err)
		c.cache.Del([]byte(token))
		return Session{}, false
	}

	return session, true
}

// Set caches the session for the cache ttl, or for remaining when that is
// shorter. Sessions with less than a second left are not cached.
func (c *SessionCache) Set(token string, session Session, remaining time.Duration) {
	if c == nil {
		return
	}

	expireSeconds := int(min(c.ttl, remaining).Seconds())
	if expireSeconds <= 0 {
		return
	}

	val, err := json.Marshal(session)
	if err != nil {
		log.Errorf("session cache marshal: %s", err)
		return
	}

	if err := c.cache.Set([]byte(token), val, expireSeconds); err != nil {
		log.Errorf("session cache set: %s", err)
	}
}

func (c *SessionCache) Del(token string) {
	if c == nil {
		return
	}
	c.cache.Del([]byte(token))
}

func (c *SessionCache) EntryCount() int64 {
	if c == nil {
		return 0
	}
	return c.cache.EntryCount()
}
