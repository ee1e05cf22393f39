// internal/service/editor/editor.go
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"hotpromo-service/internal/domain/campaign"
	"hotpromo-service/internal/domain/session"
	"hotpromo-service/internal/pkg/cfglang"
	"hotpromo-service/internal/pkg/epoch"
	xerrors "hotpromo-service/internal/pkg/errors"
	"hotpromo-service/internal/service/document"

	"github.com/oklog/ulid/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// SessionRepository stores editor session snapshots.
type SessionRepository interface {
	Save(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}

// EditorService runs the campaign editor's operations against session
// snapshots. Each change reads a snapshot, builds the next one with the pure
// document and mission functions, and saves it whole.
type EditorService struct {
	sessionRepo SessionRepository
	logger      *zap.Logger
	now         func() time.Time

	// Changes to one session are applied one at a time.
	locks sync.Map
}

func NewEditorService(sessionRepo SessionRepository, logger *zap.Logger) *EditorService {
	return &EditorService{
		sessionRepo: sessionRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// ========== Session lifecycle ==========

// CreateSession opens an empty editing session.
func (s *EditorService) CreateSession(ctx context.Context) (*session.Session, error) {
	now := s.now().UTC()
	sess := &session.Session{
		ID:        ulid.Make().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.sessionRepo.Save(ctx, sess); err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("session created", zap.String("session_id", sess.ID))
	return sess, nil
}

func (s *EditorService) GetSession(ctx context.Context, id string) (*session.Session, error) {
	return s.sessionRepo.FindByID(ctx, id)
}

// CloseSession tears the session down.
func (s *EditorService) CloseSession(ctx context.Context, id string) error {
	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.locks.Delete(id)

	s.logger.Info("session closed", zap.String("session_id", id))
	return nil
}

// ========== Document ==========

func (s *EditorService) SetRawInput(ctx context.Context, id, raw string) (*session.Session, error) {
	return s.update(ctx, id, func(sess *session.Session) error {
		sess.RawInput = raw
		return nil
	})
}

// LoadDocument parses raw (or the stored raw input when raw is nil) and
// replaces the session's campaign. On failure the session is left as it was.
func (s *EditorService) LoadDocument(ctx context.Context, id string, raw *string) (*session.Session, error) {
	sess, err := s.update(ctx, id, func(sess *session.Session) error {
		if raw != nil {
			sess.RawInput = *raw
		}

		c, err := document.Load([]byte(sess.RawInput))
		if err != nil {
			return err
		}

		sess.Campaign = c
		sess.ExportJSON = ""
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to load document", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("document loaded",
		zap.String("session_id", id),
		zap.String("campaign_name", sess.Campaign.Name),
		zap.Int("missions", len(sess.Campaign.Missions)),
	)
	return sess, nil
}

// Export renders the loaded campaign as the wire document and keeps the
// result on the session.
func (s *EditorService) Export(ctx context.Context, id string) (string, error) {
	sess, err := s.update(ctx, id, func(sess *session.Session) error {
		out, err := document.ExportJSON(sess.Campaign)
		if err != nil {
			return err
		}
		sess.ExportJSON = string(out)
		return nil
	})
	if err != nil {
		s.logger.Warn("export rejected", zap.String("session_id", id), zap.Error(err))
		return "", err
	}

	s.logger.Info("document exported",
		zap.String("session_id", id),
		zap.Int("bytes", len(sess.ExportJSON)),
	)
	return sess.ExportJSON, nil
}

// UpdateCampaign applies the fields set in req to the loaded campaign.
func (s *EditorService) UpdateCampaign(ctx context.Context, id string, req *campaign.UpdateCampaignRequest) (*session.Session, error) {
	return s.updateCampaign(ctx, id, func(c *campaign.Campaign) error {
		if err := applyTime(&c.AcceptStartTime, req.AcceptStartTime); err != nil {
			return fmt.Errorf("accept_start_time: %w", err)
		}
		if err := applyTime(&c.StartTime, req.StartTime); err != nil {
			return fmt.Errorf("start_time: %w", err)
		}
		if err := applyTime(&c.ExpireTime, req.ExpireTime); err != nil {
			return fmt.Errorf("expire_time: %w", err)
		}
		if err := applyTime(&c.EndTime, req.EndTime); err != nil {
			return fmt.Errorf("end_time: %w", err)
		}

		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.PolicyID != nil {
			c.PolicyID = *req.PolicyID
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.TermsHTML != nil {
			c.TermsHTML = *req.TermsHTML
		}
		if req.BannerURL != nil {
			c.BannerURL = *req.BannerURL
		}
		if req.IconURL != nil {
			c.IconURL = *req.IconURL
		}
		if req.Segment != nil {
			c.IncludeSegments = campaign.SplitSegments(*req.Segment)
		}
		if req.ExcludeSegment != nil {
			c.ExcludeSegments = campaign.SplitSegments(*req.ExcludeSegment)
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		if req.Quantity != nil {
			c.Quantity = *req.Quantity
		}
		if req.TopRewardAmount != nil {
			c.TopRewardAmount = *req.TopRewardAmount
		}
		if req.AllowDirectClaim != nil {
			c.AllowDirectClaim = *req.AllowDirectClaim
		}
		return nil
	})
}

// applyTime leaves dst alone when raw is empty, clears it on null and
// otherwise reads raw as an epoch value in seconds or milliseconds.
func applyTime(dst **time.Time, raw json.RawMessage) error {
	if len(raw) == 0 {
		return nil
	}
	v := gjson.ParseBytes(raw)
	if v.Type == gjson.Null {
		*dst = nil
		return nil
	}
	t, ok := epoch.ToCalendarTime(v.Value())
	if !ok {
		return xerrors.Wrap(xerrors.ErrInvalidInput, string(raw)+" is not an epoch value")
	}
	*dst = &t
	return nil
}

// ========== Missions ==========

func (s *EditorService) AddMission(ctx context.Context, id string) (*session.Session, error) {
	return s.updateMissions(ctx, id, func(ms campaign.Missions) (campaign.Missions, error) {
		return ms.Add(), nil
	})
}

func (s *EditorService) RemoveMission(ctx context.Context, id string, index int) (*session.Session, error) {
	return s.updateMissions(ctx, id, func(ms campaign.Missions) (campaign.Missions, error) {
		return ms.Remove(index)
	})
}

func (s *EditorService) DuplicateMission(ctx context.Context, id string, index int) (*session.Session, error) {
	return s.updateMissions(ctx, id, func(ms campaign.Missions) (campaign.Missions, error) {
		return ms.Duplicate(index)
	})
}

func (s *EditorService) ReorderMission(ctx context.Context, id string, from, to int) (*session.Session, error) {
	return s.updateMissions(ctx, id, func(ms campaign.Missions) (campaign.Missions, error) {
		return ms.Reorder(from, to)
	})
}

// UpdateMission applies the fields set in req to the mission at index.
func (s *EditorService) UpdateMission(ctx context.Context, id string, index int, req *campaign.UpdateMissionRequest) (*session.Session, error) {
	return s.updateMission(ctx, id, index, func(m campaign.Mission) (campaign.Mission, error) {
		if req.Milestone != nil && *req.Milestone < 0 ||
			req.Quantity != nil && *req.Quantity < 0 ||
			req.RewardAmount != nil && *req.RewardAmount < 0 {
			return m, xerrors.Wrap(xerrors.ErrInvalidInput, "mission amounts must not be negative")
		}

		if req.Name != nil {
			m.Name = *req.Name
		}
		if req.Description != nil {
			m.Description = *req.Description
		}
		if req.Milestone != nil {
			m.Milestone = *req.Milestone
		}
		if req.Quantity != nil {
			m.Quantity = *req.Quantity
		}
		if req.RewardAmount != nil {
			m.RewardAmount = *req.RewardAmount
		}
		if req.PointType != nil {
			m.PointType = *req.PointType
		}
		return m, nil
	})
}

// SetMissionConfigText replaces one config list of a mission with the parse
// of the operator's inline text.
func (s *EditorService) SetMissionConfigText(ctx context.Context, id string, index int, kind cfglang.Kind, text string) (*session.Session, error) {
	return s.updateMission(ctx, id, index, func(m campaign.Mission) (campaign.Mission, error) {
		return m.WithConfigText(kind, text), nil
	})
}

// SetMissionConfigRows replaces one config list of a mission with rows from
// the structured editor, given as a JSON array in wire shape.
func (s *EditorService) SetMissionConfigRows(ctx context.Context, id string, index int, kind cfglang.Kind, rows []byte) (*session.Session, error) {
	if !gjson.ValidBytes(rows) || !gjson.ParseBytes(rows).IsArray() {
		return nil, xerrors.Wrap(xerrors.ErrInvalidInput, "config rows must be a JSON array")
	}
	return s.updateMission(ctx, id, index, func(m campaign.Mission) (campaign.Mission, error) {
		return m.WithConfigRows(kind, gjson.ParseBytes(rows)), nil
	})
}

// ========== Snapshot plumbing ==========

// update applies fn to a copy of the stored session and saves the copy. If
// fn fails nothing is written.
func (s *EditorService) update(ctx context.Context, id string, fn func(*session.Session) error) (*session.Session, error) {
	// Unknown IDs never get a lock entry.
	if _, err := s.sessionRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	current, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			s.locks.Delete(id)
		}
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = s.now().UTC()

	if err := s.sessionRepo.Save(ctx, next); err != nil {
		s.logger.Error("failed to save session", zap.String("session_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return next, nil
}

func (s *EditorService) updateCampaign(ctx context.Context, id string, fn func(*campaign.Campaign) error) (*session.Session, error) {
	return s.update(ctx, id, func(sess *session.Session) error {
		if sess.Campaign == nil {
			return xerrors.ErrNoCampaign
		}
		return fn(sess.Campaign)
	})
}

func (s *EditorService) updateMissions(ctx context.Context, id string, fn func(campaign.Missions) (campaign.Missions, error)) (*session.Session, error) {
	return s.updateCampaign(ctx, id, func(c *campaign.Campaign) error {
		next, err := fn(c.Missions)
		if err != nil {
			return err
		}
		c.Missions = next
		return nil
	})
}

func (s *EditorService) updateMission(ctx context.Context, id string, index int, fn func(campaign.Mission) (campaign.Mission, error)) (*session.Session, error) {
	return s.updateMissions(ctx, id, func(ms campaign.Missions) (campaign.Missions, error) {
		m, err := ms.At(index)
		if err != nil {
			return nil, err
		}
		m, err = fn(m)
		if err != nil {
			return nil, err
		}
		return ms.Replace(index, m)
	})
}

// PruneLocks drops the lock of every session the store no longer has, such
// as sessions that expired, and returns how many were dropped.
func (s *EditorService) PruneLocks(ctx context.Context) int {
	pruned := 0
	s.locks.Range(func(key, _ any) bool {
		id := key.(string)
		if _, err := s.sessionRepo.FindByID(ctx, id); xerrors.Is(err, xerrors.ErrNotFound) {
			s.locks.Delete(id)
			pruned++
		}
		return ctx.Err() == nil
	})
	return pruned
}

func (s *EditorService) lockFor(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
