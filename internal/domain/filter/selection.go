package filter

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Selection is one filter dimension's chosen value(s): absent, a single id,
// or a set of ids. The single/multi shape is part of the value; scrubbing a
// multi selection down to one surviving id keeps it a multi selection.
type Selection struct {
	kind SelectionKind
	ids  []string
}

type SelectionKind int

const (
	SelectionNone SelectionKind = iota
	SelectionSingle
	SelectionMulti
)

// NoSelection means "unscoped": role defaults apply at resolution time.
func NoSelection() Selection {
	return Selection{kind: SelectionNone}
}

func Single(id string) Selection {
	return Selection{kind: SelectionSingle, ids: []string{id}}
}

func Multi(ids []string) Selection {
	if len(ids) == 0 {
		return NoSelection()
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return Selection{kind: SelectionMulti, ids: out}
}

func (s Selection) Kind() SelectionKind { return s.kind }

func (s Selection) IsNone() bool { return s.kind == SelectionNone }

// IDs returns the selected ids; nil when no selection
func (s Selection) IDs() []string {
	if s.kind == SelectionNone {
		return nil
	}
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// SortedIDs returns the selected ids in sorted order; nil when no selection
func (s Selection) SortedIDs() []string {
	ids := s.IDs()
	sort.Strings(ids)
	return ids
}

// Equal compares by value: kind plus the id set (order-insensitive).
func (s Selection) Equal(other Selection) bool {
	if s.kind != other.kind {
		return false
	}
	a, b := s.SortedIDs(), other.SortedIDs()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Scrub drops every id for which valid returns false. The single/multi shape
// of whatever remains is preserved; a selection left with no valid ids
// becomes NoSelection. Scrub is idempotent.
func (s Selection) Scrub(valid func(id string) bool) Selection {
	if s.kind == SelectionNone {
		return s
	}
	kept := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		if valid(id) {
			kept = append(kept, id)
		}
	}
	if len(kept) == 0 {
		return NoSelection()
	}
	return Selection{kind: s.kind, ids: kept}
}

// MarshalJSON encodes none as null, single as a scalar string, multi as an
// array, the same array-or-scalar wire shape the dashboard persists and serves.
func (s Selection) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case SelectionSingle:
		return json.Marshal(s.ids[0])
	case SelectionMulti:
		return json.Marshal(s.ids)
	default:
		return []byte("null"), nil
	}
}

func (s *Selection) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = NoSelection()
		return nil
	}
	if trimmed[0] == '[' {
		var ids []string
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return err
		}
		*s = Multi(ids)
		return nil
	}
	var id string
	if err := json.Unmarshal(trimmed, &id); err != nil {
		return err
	}
	if id == "" {
		*s = NoSelection()
		return nil
	}
	*s = Single(id)
	return nil
}
