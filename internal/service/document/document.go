// internal/service/document/document.go
package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"hotpromo-service/internal/domain/campaign"
	"hotpromo-service/internal/pkg/cfglang"
	"hotpromo-service/internal/pkg/epoch"
	xerrors "hotpromo-service/internal/pkg/errors"

	"github.com/tidwall/gjson"
)

// ========== Load ==========

// Load maps a wire document onto the flat campaign model. It fails only when
// raw is not a JSON object; every missing or odd field inside a valid object
// falls back to its zero value. Blank input is read as "{}".
func Load(raw []byte) (*campaign.Campaign, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed JSON", xerrors.ErrInvalidDocument)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top level is %s", xerrors.ErrInvalidDocument, kindOf(doc))
	}

	c := &campaign.Campaign{
		AcceptStartTime: timeField(doc.Get("accept_start_time")),
		StartTime:       timeField(doc.Get("start_time")),
		ExpireTime:      timeField(doc.Get("expire_time")),
		EndTime:         timeField(doc.Get("end_time")),

		Name:        stringField(doc.Get("name")),
		PolicyID:    stringField(doc.Get("policy_id")),
		Description: stringField(doc.Get("description")),
		TermsHTML:   stringField(doc.Get("term_and_conditions")),
		BannerURL:   stringField(doc.Get("banner_url")),
		IconURL:     stringField(doc.Get("icon_url")),

		IncludeSegments: segmentsField(doc.Get("segment")),
		ExcludeSegments: segmentsField(doc.Get("exclude_segment")),

		Status:           intField(doc.Get("status")),
		Quantity:         intField(doc.Get("quantity")),
		TopRewardAmount:  intField(doc.Get("bonus_account_reward.bonus_account_amount")),
		AllowDirectClaim: truthy(doc.Get("is_allow_directly_claim")),

		Missions: campaign.Missions{},
	}

	if missions := doc.Get("missions"); missions.IsArray() {
		missions.ForEach(func(_, m gjson.Result) bool {
			c.Missions = append(c.Missions, loadMission(m))
			return true
		})
	}

	return c, nil
}

func loadMission(m gjson.Result) campaign.Mission {
	cfg := m.Get("order_point_cfg")
	return campaign.Mission{
		Name:          stringField(m.Get("name")),
		Description:   stringField(m.Get("description")),
		Milestone:     intField(m.Get("milestone")),
		Quantity:      intField(m.Get("quantity")),
		RewardAmount:  intField(m.Get("bonus_account_reward.bonus_account_amount")),
		PointType:     stringField(cfg.Get("point_type")),
		NumberConfigs: cfglang.NormalizeNumber(cfg.Get("list_number_cfg")),
		RangeConfigs:  cfglang.NormalizeRange(cfg.Get("range_cfg")),
		StringConfigs: cfglang.NormalizeString(cfg.Get("list_string_cfg")),
	}
}

func timeField(r gjson.Result) *time.Time {
	t, ok := epoch.ToCalendarTime(r.Value())
	if !ok {
		return nil
	}
	return &t
}

// intField reads an integer, accepting numeric strings. Numbers an int64
// cannot hold read as 0 rather than wrapping around.
func intField(r gjson.Result) int64 {
	var text string
	switch r.Type {
	case gjson.Number:
		text = r.Raw
	case gjson.String:
		text = strings.TrimSpace(r.Str)
	default:
		return r.Int()
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
		return 0
	}
	return int64(f)
}

func stringField(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

// segmentsField copies a segment array. A comma-joined string is accepted
// too, as that is how the editor holds segments.
func segmentsField(r gjson.Result) []string {
	out := []string{}
	switch {
	case r.IsArray():
		r.ForEach(func(_, el gjson.Result) bool {
			if el.Type != gjson.Null {
				out = append(out, el.String())
			}
			return true
		})
	case r.Type == gjson.String:
		out = campaign.SplitSegments(r.Str)
	}
	return out
}

// truthy follows JavaScript truthiness, which is what producers of these
// documents assume for is_allow_directly_claim.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	case gjson.JSON:
		return true
	default:
		return false
	}
}

func kindOf(r gjson.Result) string {
	if r.IsArray() {
		return "an array"
	}
	return r.Type.String()
}

// ========== Export ==========

// Export maps the flat model back to the wire document. A nil campaign means
// nothing was loaded and yields ErrNoCampaign.
func Export(c *campaign.Campaign) (*campaign.Document, error) {
	if c == nil {
		return nil, xerrors.ErrNoCampaign
	}

	doc := &campaign.Document{
		AcceptStartTime: epoch.ToEpochSeconds(c.AcceptStartTime),
		StartTime:       epoch.ToEpochSeconds(c.StartTime),
		ExpireTime:      epoch.ToEpochSeconds(c.ExpireTime),
		EndTime:         epoch.ToEpochSeconds(c.EndTime),

		Name:              c.Name,
		Description:       c.Description,
		TermAndConditions: c.TermsHTML,
		IconURL:           c.IconURL,
		BannerURL:         c.BannerURL,
		PolicyID:          c.PolicyID,

		Segment:              campaign.SplitSegments(strings.Join(c.IncludeSegments, ",")),
		ExcludeSegment:       campaign.SplitSegments(strings.Join(c.ExcludeSegments, ",")),
		IsAllowDirectlyClaim: c.AllowDirectClaim,

		Status:   c.Status,
		Quantity: c.Quantity,

		Missions: make([]campaign.DocumentMission, 0, len(c.Missions)),
	}

	if c.TopRewardAmount > 0 {
		doc.BonusAccountReward = &campaign.BonusAccountReward{
			BonusAccountAmount: c.TopRewardAmount,
			RewardType:         campaign.RewardTypeBonus,
		}
	}

	for _, m := range c.Missions {
		doc.Missions = append(doc.Missions, exportMission(m))
	}

	return doc, nil
}

func exportMission(m campaign.Mission) campaign.DocumentMission {
	return campaign.DocumentMission{
		Name:        m.Name,
		Description: m.Description,
		Milestone:   m.Milestone,
		Quantity:    m.Quantity,
		// Always present on missions, even for a zero amount.
		BonusAccountReward: campaign.BonusAccountReward{
			BonusAccountAmount: m.RewardAmount,
			RewardType:         campaign.RewardTypeBonus,
		},
		OrderPointCfg: campaign.OrderPointCfg{
			PointType:     m.PointType,
			ListNumberCfg: numberList(m.NumberConfigs),
			RangeCfg:      m.RangeConfigs,
			ListStringCfg: stringList(m.StringConfigs),
		},
	}
}

// numberList and stringList make sure every entry renders "value": [] rather
// than null.
func numberList(in []cfglang.NumberEntry) []cfglang.NumberEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]cfglang.NumberEntry, len(in))
	for i, e := range in {
		out[i] = e.Clone()
		if out[i].Values == nil {
			out[i].Values = []int64{}
		}
	}
	return out
}

func stringList(in []cfglang.StringEntry) []cfglang.StringEntry {
	if len(in) == 0 {
		return nil
	}
	out := make([]cfglang.StringEntry, len(in))
	for i, e := range in {
		out[i] = e.Clone()
		if out[i].Values == nil {
			out[i].Values = []string{}
		}
	}
	return out
}

// Marshal renders doc with two-space indentation. HTML in
// term_and_conditions is written as-is, not \u-escaped.
func Marshal(doc *campaign.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// ExportJSON is Export followed by Marshal.
func ExportJSON(c *campaign.Campaign) ([]byte, error) {
	doc, err := Export(c)
	if err != nil {
		return nil, err
	}
	return Marshal(doc)
}
