// internal/domain/campaign/dto.go
package campaign

import (
	"encoding/json"

	"hotpromo-service/internal/pkg/cfglang"
)

// RewardTypeBonus is the only reward type the consuming service accepts.
const RewardTypeBonus = "bonus"

// ========== Wire document ==========

// Document is the nested JSON exchanged with the consuming service. Field
// order is the export key order.
type Document struct {
	AcceptStartTime *int64 `json:"accept_start_time"`
	StartTime       *int64 `json:"start_time"`
	ExpireTime      *int64 `json:"expire_time"`
	EndTime         *int64 `json:"end_time"`

	Name              string `json:"name"`
	Description       string `json:"description"`
	TermAndConditions string `json:"term_and_conditions"`
	IconURL           string `json:"icon_url"`
	BannerURL         string `json:"banner_url"`
	PolicyID          string `json:"policy_id"`

	Segment              []string `json:"segment"`
	ExcludeSegment       []string `json:"exclude_segment"`
	IsAllowDirectlyClaim bool     `json:"is_allow_directly_claim"`

	// Omitted when zero.
	Status             int64               `json:"status,omitempty"`
	Quantity           int64               `json:"quantity,omitempty"`
	BonusAccountReward *BonusAccountReward `json:"bonus_account_reward,omitempty"`

	Missions []DocumentMission `json:"missions"`
}

type BonusAccountReward struct {
	BonusAccountAmount int64  `json:"bonus_account_amount"`
	RewardType         string `json:"reward_type"`
}

type DocumentMission struct {
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Milestone          int64              `json:"milestone"`
	Quantity           int64              `json:"quantity"`
	BonusAccountReward BonusAccountReward `json:"bonus_account_reward"`
	OrderPointCfg      OrderPointCfg      `json:"order_point_cfg"`
}

// OrderPointCfg always carries point_type; the lists only when non-empty.
type OrderPointCfg struct {
	PointType     string                `json:"point_type"`
	ListNumberCfg []cfglang.NumberEntry `json:"list_number_cfg,omitempty"`
	RangeCfg      []cfglang.RangeEntry  `json:"range_cfg,omitempty"`
	ListStringCfg []cfglang.StringEntry `json:"list_string_cfg,omitempty"`
}

// ========== API requests ==========

type RawInputRequest struct {
	RawInput string `json:"raw_input"`
}

// LoadDocumentRequest loads RawInput when set, otherwise the session's
// stored raw input.
type LoadDocumentRequest struct {
	RawInput *string `json:"raw_input"`
}

// UpdateCampaignRequest patches top-level fields. Timestamps take an epoch
// value in seconds or milliseconds, or null to clear. Segments take the
// comma-joined editor text.
type UpdateCampaignRequest struct {
	AcceptStartTime json.RawMessage `json:"accept_start_time"`
	StartTime       json.RawMessage `json:"start_time"`
	ExpireTime      json.RawMessage `json:"expire_time"`
	EndTime         json.RawMessage `json:"end_time"`

	Name        *string `json:"name" binding:"omitempty,max=255"`
	PolicyID    *string `json:"policy_id"`
	Description *string `json:"description"`
	TermsHTML   *string `json:"term_and_conditions"`
	BannerURL   *string `json:"banner_url"`
	IconURL     *string `json:"icon_url"`

	Segment        *string `json:"segment"`
	ExcludeSegment *string `json:"exclude_segment"`

	Status           *int64 `json:"status"`
	Quantity         *int64 `json:"quantity"`
	TopRewardAmount  *int64 `json:"top_reward_amount"`
	AllowDirectClaim *bool  `json:"is_allow_directly_claim"`
}

type UpdateMissionRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Milestone    *int64  `json:"milestone" binding:"omitempty,min=0"`
	Quantity     *int64  `json:"quantity" binding:"omitempty,min=0"`
	RewardAmount *int64  `json:"reward_amount" binding:"omitempty,min=0"`
	PointType    *string `json:"point_type"`
}

type ReorderMissionRequest struct {
	From *int `json:"from" binding:"required,min=0"`
	To   *int `json:"to" binding:"required,min=0"`
}

type ConfigTextRequest struct {
	Text string `json:"text"`
}

// ========== API responses ==========

// MissionView is a mission together with the inline text of its lists.
type MissionView struct {
	Mission
	NumberText string `json:"number_text"`
	RangeText  string `json:"range_text"`
	StringText string `json:"string_text"`
}

func NewMissionView(m Mission) MissionView {
	return MissionView{
		Mission:    m,
		NumberText: m.ConfigText(cfglang.KindNumber),
		RangeText:  m.ConfigText(cfglang.KindRange),
		StringText: m.ConfigText(cfglang.KindString),
	}
}

type OptionsResponse struct {
	NumberConfigNames []string `json:"number_cfg"`
	RangeConfigNames  []string `json:"range_cfg"`
	StringConfigNames []string `json:"string_cfg"`
	PointTypes        []string `json:"point_types"`
}
