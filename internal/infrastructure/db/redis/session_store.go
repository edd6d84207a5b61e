package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/insurance-system/internal/core/domain"
)

// SessionStore keeps issued sessions in Redis.
// Key format: session:<token>
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
// A ttl of zero keeps sessions until logout.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

type sessionValue struct {
	Email    string `json:"email"`
	Role     string `json:"role"`
	IssuedAt int64  `json:"issued_at"`
}

func (s *SessionStore) Put(ctx context.Context, session domain.Session) error {
	raw, err := encodeSession(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(session.Token), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session put: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Session{}, domain.ErrNotAuthenticated
		}
		return domain.Session{}, fmt.Errorf("session get: %w", err)
	}
	return decodeSession(token, raw)
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}

func encodeSession(session domain.Session) ([]byte, error) {
	raw, err := json.Marshal(sessionValue{
		Email:    session.Email,
		Role:     string(session.Role),
		IssuedAt: session.IssuedAt.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("session encode: %w", err)
	}
	return raw, nil
}

func decodeSession(token string, raw []byte) (domain.Session, error) {
	var v sessionValue
	if err := json.Unmarshal(raw, &v); err != nil || v.Email == "" {
		// an unreadable entry cannot authenticate anyone
		return domain.Session{}, domain.ErrNotAuthenticated
	}
	return domain.Session{
		Token:    token,
		Email:    v.Email,
		Role:     domain.Role(v.Role),
		IssuedAt: time.Unix(v.IssuedAt, 0).UTC(),
	}, nil
}
