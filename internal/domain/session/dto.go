package session

import "hotpromo-service/internal/domain/campaign"

// SessionResponse is what the editor UI renders.
type SessionResponse struct {
	*Session
	HasUnsavedChanges bool                   `json:"has_unsaved_changes"`
	Missions          []campaign.MissionView `json:"missions"`
	SegmentText       string                 `json:"segment_text"`
	ExcludeText       string                 `json:"exclude_segment_text"`
}

func NewSessionResponse(s *Session) SessionResponse {
	resp := SessionResponse{
		Session:           s,
		HasUnsavedChanges: s.HasUnsavedChanges(),
		Missions:          []campaign.MissionView{},
	}
	if s.Campaign != nil {
		for _, m := range s.Campaign.Missions {
			resp.Missions = append(resp.Missions, campaign.NewMissionView(m))
		}
		resp.SegmentText = campaign.SegmentsText(s.Campaign.IncludeSegments)
		resp.ExcludeText = campaign.SegmentsText(s.Campaign.ExcludeSegments)
	}
	return resp
}
