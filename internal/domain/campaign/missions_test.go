package campaign

import (
	"testing"

	"hotpromo-service/internal/pkg/cfglang"
	xerrors "hotpromo-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func sampleMissions() Missions {
	return Missions{
		{Name: "first", Milestone: 1, NumberConfigs: []cfglang.NumberEntry{{Name: "RATING", Values: []int64{5}}}},
		{
			Name:          "second",
			Milestone:     2,
			NumberConfigs: []cfglang.NumberEntry{{Name: "SUCCESS_STP", Values: []int64{1, 2}}},
			RangeConfigs:  []cfglang.RangeEntry{{Name: "DISTANCE", Min: 0, Max: 500}},
			StringConfigs: []cfglang.StringEntry{{Name: "CITY", Values: []string{"HCM"}}},
		},
		{Name: "third", Milestone: 3},
	}
}

func names(ms Missions) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func TestMissionsAdd(t *testing.T) {
	ms := sampleMissions()
	got := ms.Add()

	require.Len(t, got, 4)
	assert.Len(t, ms, 3)
	assert.Equal(t, NewMission(), got[3])
}

func TestMissionsRemove(t *testing.T) {
	ms := sampleMissions()

	got, err := ms.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "third"}, names(got))
	assert.Equal(t, []string{"first", "second", "third"}, names(ms))

	_, err = ms.Remove(3)
	assert.ErrorIs(t, err, xerrors.ErrIndexOutOfRange)
	_, err = ms.Remove(-1)
	assert.ErrorIs(t, err, xerrors.ErrIndexOutOfRange)
}

func TestMissionsDuplicateInsertionPoint(t *testing.T) {
	ms := sampleMissions()

	got, err := ms.Duplicate(1)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second", "second (Copy)", "third"}, names(got))
	assert.Equal(t, ms[1].NumberConfigs, got[2].NumberConfigs)
	assert.Equal(t, ms[1].RangeConfigs, got[2].RangeConfigs)
	assert.Equal(t, ms[1].StringConfigs, got[2].StringConfigs)
	assert.Equal(t, ms[2], got[3])
}

func TestMissionsDuplicateDoesNotAlias(t *testing.T) {
	ms := sampleMissions()
	got, err := ms.Duplicate(1)
	require.NoError(t, err)

	got[2].NumberConfigs[0].Values[0] = 99
	got[2].RangeConfigs[0].Max = 1
	got[2].StringConfigs[0].Values[0] = "HN"

	assert.Equal(t, int64(1), got[1].NumberConfigs[0].Values[0])
	assert.Equal(t, int64(500), got[1].RangeConfigs[0].Max)
	assert.Equal(t, "HCM", got[1].StringConfigs[0].Values[0])
	assert.Equal(t, int64(1), ms[1].NumberConfigs[0].Values[0])
}

func TestMissionsReorder(t *testing.T) {
	ms := Missions{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}

	tests := []struct {
		from, to int
		want     []string
	}{
		{0, 2, []string{"b", "c", "a", "d"}},
		{3, 0, []string{"d", "a", "b", "c"}},
		{1, 1, []string{"a", "b", "c", "d"}},
		{2, 3, []string{"a", "b", "d", "c"}},
	}
	for _, tt := range tests {
		got, err := ms.Reorder(tt.from, tt.to)
		require.NoError(t, err)
		assert.Equal(t, tt.want, names(got))
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(ms))

	_, err := ms.Reorder(0, 4)
	assert.ErrorIs(t, err, xerrors.ErrIndexOutOfRange)
}

func TestMissionsReplaceAndAt(t *testing.T) {
	ms := sampleMissions()

	m, err := ms.At(2)
	require.NoError(t, err)
	m.Name = "renamed"
	assert.Equal(t, "third", ms[2].Name)

	got, err := ms.Replace(2, m)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got[2].Name)
	assert.Equal(t, "third", ms[2].Name)
}

func TestMissionConfigText(t *testing.T) {
	m := NewMission().
		WithConfigText(cfglang.KindNumber, "RATING: 4,5").
		WithConfigText(cfglang.KindRange, "DISTANCE:0-500 | BAD").
		WithConfigText(cfglang.KindString, "CITY: HCM, HN")

	assert.Equal(t, "RATING: 4,5", m.ConfigText(cfglang.KindNumber))
	assert.Equal(t, "DISTANCE:0-500", m.ConfigText(cfglang.KindRange))
	assert.Equal(t, "CITY: HCM, HN", m.ConfigText(cfglang.KindString))

	cleared := m.WithConfigText(cfglang.KindRange, "")
	assert.Empty(t, cleared.RangeConfigs)
	assert.Len(t, m.RangeConfigs, 1)
}

func TestMissionConfigRows(t *testing.T) {
	m := NewMission().
		WithConfigRows(cfglang.KindNumber, gjson.Parse(`[{"name":" RATING ","value":["4","x",5]}]`)).
		WithConfigRows(cfglang.KindRange, gjson.Parse(`[{"name":"","min":1,"max":2},{"name":"AMOUNT","min":"10","max":20},{"name":"X","min":1}]`)).
		WithConfigRows(cfglang.KindString, gjson.Parse(`[{"name":"","value":["a"]},{"name":"CITY","value":[" HCM ",""]}]`))

	assert.Equal(t, []cfglang.NumberEntry{{Name: "RATING", Values: []int64{4, 5}}}, m.NumberConfigs)
	assert.Equal(t, []cfglang.RangeEntry{{Name: "AMOUNT", Min: 10, Max: 20}}, m.RangeConfigs)
	assert.Equal(t, []cfglang.StringEntry{{Name: "CITY", Values: []string{"HCM"}}}, m.StringConfigs)
}

func TestSegments(t *testing.T) {
	assert.Equal(t, []string{"vip", "new user"}, SplitSegments(" vip ,, new user ,"))
	assert.Equal(t, []string{}, SplitSegments(""))
	assert.Equal(t, "vip, new", SegmentsText([]string{"vip", "new"}))
}

func TestCampaignClone(t *testing.T) {
	c := &Campaign{
		Name:            "c",
		IncludeSegments: []string{"a"},
		Missions:        sampleMissions(),
	}
	cp := c.Clone()
	cp.IncludeSegments[0] = "z"
	cp.Missions[0].NumberConfigs[0].Values[0] = 42

	assert.Equal(t, "a", c.IncludeSegments[0])
	assert.Equal(t, int64(5), c.Missions[0].NumberConfigs[0].Values[0])

	var nilCampaign *Campaign
	assert.Nil(t, nilCampaign.Clone())
}
