// internal/domain/session/entity.go
package session

import (
	"strings"
	"time"

	"hotpromo-service/internal/domain/campaign"
)

// Session is one operator's editing context: the raw document they pasted,
// the campaign loaded from it and the last export. It is created empty and
// discarded when the operator leaves the editor.
type Session struct {
	ID         string             `json:"id"`
	RawInput   string             `json:"raw_input"`
	Campaign   *campaign.Campaign `json:"campaign,omitempty"`
	ExportJSON string             `json:"export_json,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

// HasUnsavedChanges reports whether leaving now would lose work.
func (s *Session) HasUnsavedChanges() bool {
	if s.Campaign != nil {
		return true
	}
	return strings.TrimSpace(s.RawInput) != ""
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Campaign = s.Campaign.Clone()
	return &cp
}
