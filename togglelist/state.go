package togglelist

import (
	"encoding/json"
	"sort"
)

// Entry is one tracked list element: a display name and an active flag.
// Name is the reconciliation key; entries sharing a name collapse to
// last-write-wins under reconciliation.
type Entry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// State holds an ordered sequence of entries with per-entry active flags.
// It is a plain value object: single owner, no internal locking.
type State struct {
	entries []Entry
}

// New creates an empty state
func New() *State {
	return &State{}
}

// NewFromNames creates a state with one active entry per name, in order
func NewFromNames(names []string) *State {
	s := &State{entries: make([]Entry, 0, len(names))}
	for _, name := range names {
		s.entries = append(s.entries, Entry{Name: name, Active: true})
	}
	return s
}

// NewFromRaw creates a state from a raw item list (any form Parse accepts).
// Unparsable input degrades to an empty state rather than returning an
// error; this path feeds interactive sessions where a hard failure would
// be more disruptive than an empty list.
func NewFromRaw(raw string) *State {
	names, err := Parse(raw)
	if err != nil {
		return New()
	}
	return NewFromNames(names)
}

// NewFromValues creates a state from already-decoded values, coercing each
// to its string form
func NewFromValues(values []any) *State {
	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, Stringify(v))
	}
	return NewFromNames(names)
}

// Len returns the total number of entries
func (s *State) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entry sequence
func (s *State) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Reconcile re-derives the entry sequence from a new name list, in the new
// order. Prior active flags are carried forward by name; names that no
// longer appear are dropped silently, new names default to active.
func (s *State) Reconcile(names []string) {
	prior := make(map[string]bool, len(s.entries))
	for _, e := range s.entries {
		prior[e.Name] = e.Active
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		active, seen := prior[name]
		if !seen {
			active = true
		}
		entries = append(entries, Entry{Name: name, Active: active})
	}
	s.entries = entries
}

// ReconcileRaw is Reconcile over a raw item list. Unparsable input
// reconciles against an empty list, mirroring NewFromRaw.
func (s *State) ReconcileRaw(raw string) {
	names, err := Parse(raw)
	if err != nil {
		names = nil
	}
	s.Reconcile(names)
}

// Toggle flips the active flag of the first entry with the given name and
// returns the new value. Returns ErrEntryNotFound if no entry matches;
// callers should treat that as a no-op since click targets can race a
// concurrent reconcile.
func (s *State) Toggle(name string) (bool, error) {
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Active = !s.entries[i].Active
			return s.entries[i].Active, nil
		}
	}
	return false, ErrEntryNotFound
}

// ToggleIndex flips the active flag of the entry at the given position
func (s *State) ToggleIndex(i int) (bool, error) {
	if i < 0 || i >= len(s.entries) {
		return false, ErrEntryNotFound
	}
	s.entries[i].Active = !s.entries[i].Active
	return s.entries[i].Active, nil
}

// SelectAll marks every entry active
func (s *State) SelectAll() {
	for i := range s.entries {
		s.entries[i].Active = true
	}
}

// DeselectAll marks every entry inactive
func (s *State) DeselectAll() {
	for i := range s.entries {
		s.entries[i].Active = false
	}
}

// ActiveNames returns the names of active entries in current order.
// This is the filtered output exposed to downstream consumers.
func (s *State) ActiveNames() []string {
	names := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Active {
			names = append(names, e.Name)
		}
	}
	return names
}

// Count returns the number of active entries
func (s *State) Count() int {
	n := 0
	for _, e := range s.entries {
		if e.Active {
			n++
		}
	}
	return n
}

// SelectedIndices returns the positions of active entries in ascending
// order, for the legacy index-based selection contract
func (s *State) SelectedIndices() []int {
	indices := make([]int, 0, len(s.entries))
	for i, e := range s.entries {
		if e.Active {
			indices = append(indices, i)
		}
	}
	sort.Ints(indices)
	return indices
}

// Serialize encodes the state as a JSON entry array. The format matches
// the node property bag the original extension stored, so saved workflows
// restore unchanged.
func (s *State) Serialize() string {
	if len(s.entries) == 0 {
		return "[]"
	}
	data, err := json.Marshal(s.entries)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Deserialize reconstructs a state from a serialized entry array.
// Malformed or empty input yields an empty state, never an error; this
// path runs during session restore where surfacing a failure would reset
// more than it saves.
func Deserialize(data string) *State {
	var entries []Entry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return New()
	}
	return &State{entries: entries}
}

// Equal reports whether two states hold the same entries in the same
// order with the same flags
func (s *State) Equal(other *State) bool {
	if other == nil || len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}
