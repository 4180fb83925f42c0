package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

const (
	DefaultTTL           = 24 * 3 * time.Hour
	DefaultCleanupPeriod = 8 * time.Hour
	sessionKeyPrefix     = "fittrack-session||"
	tokensSetKey         = "fittrack-sessions"
	tokenLength          = 35
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the value stored in redis under the session key.
type Session struct {
	UserID    int    `json:"userId"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	cache       *SessionCache
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	NowFunc        func() time.Time
}

// NewService creates the session service. cache may be nil.
func NewService(
	ttl time.Duration,
	redisClient *redis.Client,
	cache *SessionCache,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		cache:          cache,
		RandStringFunc: pkg.GenerateRandomString,
		NowFunc:        time.Now,
	}
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Create stores a new session for the identity and returns its token.
func (s *Service) Create(ctx context.Context, identity Identity) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", identity.UserID))

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	sessionJson, err := json.Marshal(Session{
		UserID:    identity.UserID,
		Name:      identity.Name,
		CreatedAt: s.NowFunc().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	if err := s.redisClient.Set(ctx, sessionKeyPrefix+token, string(sessionJson), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to the set of sessions, used by the cleanup sweep
	if err := s.redisClient.SAdd(ctx, tokensSetKey, token).Err(); err != nil {
		return "", fmt.Errorf("index session: %w", err)
	}

	return token, nil
}

// Resolve returns the identity behind the token, or ErrSessionNotFound.
func (s *Service) Resolve(ctx context.Context, token string) (_ *Identity, err error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	if session, ok := s.cache.Get(token); ok {
		if !s.expired(&session) {
			return &Identity{UserID: session.UserID, Name: session.Name}, nil
		}
		s.cache.Del(token)
		return nil, ErrSessionNotFound
	}

	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.resolve")
	defer func() {
		if errors.Is(err, ErrSessionNotFound) {
			span.End()
			return
		}
		tracing.EndSpanWithErrCheck(span, err)
	}()

	session, err := s.get(ctx, token)
	if err != nil {
		return nil, err
	}

	if s.expired(session) {
		return nil, ErrSessionNotFound
	}

	s.cache.Set(token, *session, s.remaining(session))

	identity := Identity{UserID: session.UserID, Name: session.Name}

	return &identity, nil
}

// Destroy removes the session. Unknown tokens are not an error.
func (s *Service) Destroy(ctx context.Context, token string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.session.destroy")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.cache.Del(token)
	if token == "" {
		return nil
	}

	if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
		return fmt.Errorf("unindex session: %w", err)
	}

	return nil
}

func (s *Service) get(ctx context.Context, token string) (*Session, error) {
	val, err := s.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return &session, nil
}

func (s *Service) expired(session *Session) bool {
	return s.remaining(session) < 0
}

// remaining is the lifetime left to the session, negative once expired.
func (s *Service) remaining(session *Session) time.Duration {
	createdAt := time.Unix(session.CreatedAt, 0)
	return s.ttl - s.NowFunc().Sub(createdAt)
}

// ScanAndClean will run through all indexed sessions and drop the ones that
// are expired, or whose redis key is already gone.
func (s *Service) ScanAndClean(ctx context.Context) {
	sessionTokens, err := s.redisClient.SMembers(ctx, tokensSetKey).Result()
	if err != nil {
		log.Errorf("auth service, scan and clean, get sessions: %s", err)
		return
	}

	if len(sessionTokens) == 0 {
		log.Debugln("auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		session, err := s.get(ctx, token)
		if err != nil {
			if errors.Is(err, ErrSessionNotFound) {
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("auth service, scan and clean token: %s", err)
			continue
		}

		if s.expired(session) {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		s.cache.Del(token)

		if err := s.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("auth service, clean token: %s", err)
			continue
		}

		if err := s.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("auth service, clean token: %s", err)
			continue
		}
	}

	log.Debugf("auth service, scan and clean done, removed %d sessions", len(toRemove))
}

// RunCleanup calls ScanAndClean every period until ctx is done.
func (s *Service) RunCleanup(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugln("auth service, cleanup stopped")
			return
		case <-ticker.C:
			s.ScanAndClean(ctx)
		}
	}
}
