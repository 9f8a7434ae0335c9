package cache

import (
	"context"
	"fmt"
	"time"

	apperrors "rsvp-service/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type SessionStore interface {
	// Create stores a new session for the user and returns its token.
	Create(ctx context.Context, userID int) (string, error)
	// Get resolves a session token to a user ID.
	Get(ctx context.Context, token string) (int, error)
	Delete(ctx context.Context, token string) error
}

type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisSessionStore) getKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

func (s *RedisSessionStore) Create(ctx context.Context, userID int) (string, error) {
	token := uuid.NewString()
	if err := s.client.Set(ctx, s.getKey(token), userID, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (int, error) {
	userID, err := s.client.Get(ctx, s.getKey(token)).Int()
	if err == redis.Nil {
		return 0, apperrors.ErrSessionNotFound
	}
	if err != nil {
		return 0, err
	}
	// sliding expiry: reads keep an active session alive
	_ = s.client.Expire(ctx, s.getKey(token), s.ttl).Err()
	return userID, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.getKey(token)).Err()
}
