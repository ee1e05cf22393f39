// internal/repository/memory/session_repo.go
package memory

import (
	"context"
	"sync"
	"time"

	"hotpromo-service/internal/domain/session"
	xerrors "hotpromo-service/internal/pkg/errors"
)

// SessionRepository keeps editor sessions in process memory. Values are
// copied in and out, so callers never share a snapshot with the map.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*session.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Save stores s, replacing any earlier snapshot with the same ID.
func (r *SessionRepository) Save(ctx context.Context, s *session.Session) error {
	if s == nil || s.ID == "" {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "session without id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s.Clone()
	return nil
}

// FindByID returns a copy of the stored session. Sessions idle for longer
// than the TTL are treated as gone.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*session.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || r.expired(s) {
		return nil, xerrors.Wrap(xerrors.ErrNotFound, "session "+id)
	}
	return s.Clone(), nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return xerrors.Wrap(xerrors.ErrNotFound, "session "+id)
	}
	delete(r.sessions, id)
	return nil
}

// PurgeExpired drops idle sessions and returns how many were removed.
func (r *SessionRepository) PurgeExpired(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepository) expired(s *session.Session) bool {
	return r.ttl > 0 && r.now().Sub(s.UpdatedAt) > r.ttl
}
