package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"learnhub-api/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "session:"

// RedisStore holds sessions in Redis with a TTL matching each session's
// expiry, so abandoned sessions clean themselves up.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: defaultPrefix,
	}
}

func (s *RedisStore) Save(ctx context.Context, sess Session) error {
	if sess.ID == "" {
		return errs.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "failed to marshal session")
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl <= 0 {
		return errs.New("session is already expired")
	}

	return s.client.Set(ctx, s.prefix+sess.ID, data, ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrNotFound
	}

	data, err := s.client.Get(ctx, s.prefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Session{}, ErrNotFound
		}
		return Session{}, errs.Wrap(err, "failed to read session")
	}

	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return Session{}, errs.Wrap(err, "failed to unmarshal session")
	}

	// Redis TTL should have evicted this already; check anyway.
	if time.Now().After(sess.ExpiresAt) {
		if err := s.Delete(ctx, id); err != nil {
			return Session{}, errs.Wrap(err, "failed to clean up expired session")
		}
		return Session{}, ErrNotFound
	}

	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.client.Del(ctx, s.prefix+id).Err()
}
