// internal/repository/redisstore/session_repo.go
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotpromo-service/internal/domain/session"
	xerrors "hotpromo-service/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores each editor session as one JSON value. A save
// rewrites the whole snapshot with a single SET and refreshes its TTL.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	if s == nil || s.ID == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "session without id")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, r.sessionKey(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, xerrors.Wrap(xerrors.ErrNotFound, "session "+id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session from redis: %w", err)
	}

	var s session.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	n, err := r.client.Del(ctx, r.sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	if n == 0 {
		return xerrors.Wrap(xerrors.ErrNotFound, "session "+id)
	}
	return nil
}

func (r *SessionRepository) sessionKey(id string) string {
	return fmt.Sprintf("editor:session:%s", id)
}
