// Package auth implements bearer-token sessions backed by Redis and the
// role guards used by the HTTP routes.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for unknown or expired tokens.
var ErrSessionNotFound = errors.New("session not found")

// Session is the authenticated principal attached to a request.
type Session struct {
	Token    string    `json:"-"`
	UserID   string    `json:"userId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IssuedAt time.Time `json:"issuedAt"`
}

// Store persists sessions in Redis under an opaque token with a sliding TTL.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore constructs a session store.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create issues a fresh token for the principal.
func (s *Store) Create(ctx context.Context, sess Session) (string, error) {
	token := uuid.NewString()
	sess.IssuedAt = time.Now()
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("auth: store session: %w", err)
	}
	return token, nil
}

// Get resolves a token and refreshes its TTL.
func (s *Store) Get(ctx context.Context, token string) (Session, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("auth: load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return Session{}, fmt.Errorf("auth: decode session: %w", err)
	}
	sess.Token = token
	_ = s.client.Expire(ctx, s.key(token), s.ttl).Err()
	return sess, nil
}

// Delete revokes a token. Unknown tokens are not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("auth: delete session: %w", err)
	}
	return nil
}

// TTL exposes the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

func (s *Store) key(token string) string {
	return "session:" + token
}
