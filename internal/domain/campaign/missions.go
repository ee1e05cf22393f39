// internal/domain/campaign/missions.go
package campaign

import (
	"fmt"

	"hotpromo-service/internal/pkg/cfglang"
	xerrors "hotpromo-service/internal/pkg/errors"

	"github.com/tidwall/gjson"
)

// CopySuffix is appended to the name of a duplicated mission.
const CopySuffix = " (Copy)"

// Missions is an ordered mission sequence. Every operation returns a new
// sequence and leaves the receiver untouched, so a snapshot handed to a
// reader never changes underneath it.
type Missions []Mission

// Clone returns a deep copy of ms.
func (ms Missions) Clone() Missions {
	if ms == nil {
		return nil
	}
	out := make(Missions, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}

// Add appends a blank mission.
func (ms Missions) Add() Missions {
	out := ms.Clone()
	return append(out, NewMission())
}

// Remove deletes the mission at index.
func (ms Missions) Remove(index int) (Missions, error) {
	if err := ms.checkIndex(index); err != nil {
		return nil, err
	}
	out := make(Missions, 0, len(ms)-1)
	for i, m := range ms {
		if i != index {
			out = append(out, m.Clone())
		}
	}
	return out, nil
}

// Duplicate inserts a deep copy of the mission at index right after it. The
// copy's name gets CopySuffix.
func (ms Missions) Duplicate(index int) (Missions, error) {
	if err := ms.checkIndex(index); err != nil {
		return nil, err
	}
	dup := ms[index].Clone()
	dup.Name += CopySuffix

	out := make(Missions, 0, len(ms)+1)
	for i, m := range ms {
		out = append(out, m.Clone())
		if i == index {
			out = append(out, dup)
		}
	}
	return out, nil
}

// Reorder moves the mission at from to position to. All other missions keep
// their relative order.
func (ms Missions) Reorder(from, to int) (Missions, error) {
	if err := ms.checkIndex(from); err != nil {
		return nil, err
	}
	if err := ms.checkIndex(to); err != nil {
		return nil, err
	}

	out := ms.Clone()
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append(Missions{moved}, out[to:]...)...)
	return out, nil
}

// Replace swaps the mission at index for m.
func (ms Missions) Replace(index int, m Mission) (Missions, error) {
	if err := ms.checkIndex(index); err != nil {
		return nil, err
	}
	out := ms.Clone()
	out[index] = m.Clone()
	return out, nil
}

// At returns a copy of the mission at index.
func (ms Missions) At(index int) (Mission, error) {
	if err := ms.checkIndex(index); err != nil {
		return Mission{}, err
	}
	return ms[index].Clone(), nil
}

func (ms Missions) checkIndex(index int) error {
	if index < 0 || index >= len(ms) {
		return fmt.Errorf("mission %d of %d: %w", index, len(ms), xerrors.ErrIndexOutOfRange)
	}
	return nil
}

// WithConfigRows returns a copy of m whose list of the given kind is replaced
// by rows from the structured editor. Rows go through the same normalization
// as loaded documents; range and string rows without a name are discarded.
func (m Mission) WithConfigRows(kind cfglang.Kind, rows gjson.Result) Mission {
	cp := m.Clone()
	switch kind {
	case cfglang.KindNumber:
		cp.NumberConfigs = cfglang.NormalizeNumber(rows)
	case cfglang.KindRange:
		cp.RangeConfigs = []cfglang.RangeEntry{}
		for _, e := range cfglang.NormalizeRange(rows) {
			if e.Name != "" {
				cp.RangeConfigs = append(cp.RangeConfigs, e)
			}
		}
	case cfglang.KindString:
		cp.StringConfigs = []cfglang.StringEntry{}
		for _, e := range cfglang.NormalizeString(rows) {
			if e.Name != "" {
				cp.StringConfigs = append(cp.StringConfigs, e)
			}
		}
	}
	return cp
}
