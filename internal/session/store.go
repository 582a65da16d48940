// Package session implements server-side session identity. A session is an
// opaque token handed to the browser in a cookie; the token maps to a user id
// in Redis (or an in-process store when Redis is unavailable). Logout deletes
// the mapping, and an unknown or expired token is treated as anonymous.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the fixed cookie under which the session token travels.
const CookieName = "warbler_session"

// Sign produces the cookie value for a token: the token followed by an
// HMAC-SHA256 tag keyed with the session secret. The store only ever sees
// bare tokens; signing and verification happen at the cookie boundary.
func Sign(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signed cookie value and returns the bare token. A value
// with a missing, malformed, or forged tag returns ok=false.
func Verify(value, secret string) (token string, ok bool) {
	token, tag, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	got, err := hex.DecodeString(tag)
	if err != nil {
		return "", false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	if !hmac.Equal(got, mac.Sum(nil)) {
		return "", false
	}
	return token, true
}

const keyPrefix = "session:%s"

// Store persists the token -> user id mapping for logged-in sessions.
type Store interface {
	// Create registers a new session for the user and returns its token.
	Create(ctx context.Context, userID uint) (string, error)
	// Lookup resolves a token to a user id. A missing or expired token
	// returns (0, false, nil); it is not an error.
	Lookup(ctx context.Context, token string) (uint, bool, error)
	// Destroy removes the session. Destroying an unknown token is a no-op.
	Destroy(ctx context.Context, token string) error
}

func sessionKey(token string) string {
	return fmt.Sprintf(keyPrefix, token)
}

// redisStore keeps sessions in Redis so they survive restarts and are shared
// across instances.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore returns a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *redisStore) Lookup(ctx context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	id, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		// Corrupt value; treat as anonymous rather than failing the request.
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *redisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// memoryStore is the single-process fallback used when Redis is unreachable
// and in tests. Expired entries are dropped lazily on lookup.
type memoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]memorySession
}

type memorySession struct {
	userID    uint
	expiresAt time.Time
}

// NewMemoryStore returns an in-process Store.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:      ttl,
		sessions: make(map[string]memorySession),
	}
}

func (s *memoryStore) Create(_ context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *memoryStore) Lookup(_ context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return 0, false, nil
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, token)
		return 0, false, nil
	}
	return sess.userID, true, nil
}

func (s *memoryStore) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
