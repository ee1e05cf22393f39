// internal/domain/campaign/entity.go
package campaign

import (
	"slices"
	"strings"
	"time"

	"hotpromo-service/internal/pkg/cfglang"
)

// Campaign is the flat, field-by-field editable form of a campaign document.
type Campaign struct {
	// Schedule
	AcceptStartTime *time.Time `json:"accept_start_time"`
	StartTime       *time.Time `json:"start_time"`
	ExpireTime      *time.Time `json:"expire_time"`
	EndTime         *time.Time `json:"end_time"`

	// Content
	Name        string `json:"name"`
	PolicyID    string `json:"policy_id"`
	Description string `json:"description"`
	TermsHTML   string `json:"term_and_conditions"`
	BannerURL   string `json:"banner_url"`
	IconURL     string `json:"icon_url"`

	// Targeting
	IncludeSegments []string `json:"segment"`
	ExcludeSegments []string `json:"exclude_segment"`

	Status           int64 `json:"status"`
	Quantity         int64 `json:"quantity"`
	TopRewardAmount  int64 `json:"top_reward_amount"`
	AllowDirectClaim bool  `json:"is_allow_directly_claim"`

	Missions Missions `json:"missions"`
}

// Clone returns a deep copy of c.
func (c *Campaign) Clone() *Campaign {
	if c == nil {
		return nil
	}
	cp := *c
	cp.AcceptStartTime = cloneTime(c.AcceptStartTime)
	cp.StartTime = cloneTime(c.StartTime)
	cp.ExpireTime = cloneTime(c.ExpireTime)
	cp.EndTime = cloneTime(c.EndTime)
	cp.IncludeSegments = slices.Clone(c.IncludeSegments)
	cp.ExcludeSegments = slices.Clone(c.ExcludeSegments)
	cp.Missions = c.Missions.Clone()
	return &cp
}

// Mission is one step of a campaign.
type Mission struct {
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Milestone     int64                 `json:"milestone"`
	Quantity      int64                 `json:"quantity"`
	RewardAmount  int64                 `json:"reward_amount"`
	PointType     string                `json:"point_type"`
	NumberConfigs []cfglang.NumberEntry `json:"list_number_cfg"`
	RangeConfigs  []cfglang.RangeEntry  `json:"range_cfg"`
	StringConfigs []cfglang.StringEntry `json:"list_string_cfg"`
}

// NewMission returns the blank mission appended by "add".
func NewMission() Mission {
	return Mission{
		NumberConfigs: []cfglang.NumberEntry{},
		RangeConfigs:  []cfglang.RangeEntry{},
		StringConfigs: []cfglang.StringEntry{},
	}
}

// Clone returns a structural copy of m; no slice is shared with m.
func (m Mission) Clone() Mission {
	cp := m
	cp.NumberConfigs = slices.Clone(m.NumberConfigs)
	for i := range cp.NumberConfigs {
		cp.NumberConfigs[i] = cp.NumberConfigs[i].Clone()
	}
	cp.RangeConfigs = slices.Clone(m.RangeConfigs)
	cp.StringConfigs = slices.Clone(m.StringConfigs)
	for i := range cp.StringConfigs {
		cp.StringConfigs[i] = cp.StringConfigs[i].Clone()
	}
	return cp
}

// ConfigText renders one of the mission's config lists in its inline text form.
func (m Mission) ConfigText(kind cfglang.Kind) string {
	switch kind {
	case cfglang.KindNumber:
		return cfglang.SerializeNumber(m.NumberConfigs)
	case cfglang.KindRange:
		return cfglang.SerializeRange(m.RangeConfigs)
	case cfglang.KindString:
		return cfglang.SerializeString(m.StringConfigs)
	}
	return ""
}

// WithConfigText returns a copy of m whose list of the given kind is replaced
// by the parse of text.
func (m Mission) WithConfigText(kind cfglang.Kind, text string) Mission {
	cp := m.Clone()
	switch kind {
	case cfglang.KindNumber:
		cp.NumberConfigs = cfglang.ParseNumber(text)
	case cfglang.KindRange:
		cp.RangeConfigs = cfglang.ParseRange(text)
	case cfglang.KindString:
		cp.StringConfigs = cfglang.ParseString(text)
	}
	return cp
}

// SegmentsText joins segments the way the editor displays them.
func SegmentsText(segments []string) string {
	return strings.Join(segments, ", ")
}

// SplitSegments turns comma-joined segment text back into a list, trimming
// every item and dropping empty ones.
func SplitSegments(text string) []string {
	out := []string{}
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
