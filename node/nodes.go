// Package node implements the graph-node contracts of the list filter:
// each node takes declared string inputs and produces declared outputs, so
// a host's input-keyed execution cache invalidates naturally. Toggle state
// travels through the contract as a first-class input/output pair rather
// than a hidden property bag.
package node

import (
	"encoding/json"

	"github.com/xiaoyuanzhu-com/list-filter/togglelist"
)

// ToggleResult is the output tuple of the toggle node
type ToggleResult struct {
	FilteredJSON string
	Count        int
	StateJSON    string
}

// ListFilterToggle filters an item list by toggle state.
//
// Inputs: the raw item list (JSON array or comma-separated string) and the
// serialized toggle state from the previous evaluation. The state is
// reconciled against the current items before filtering, so upstream list
// changes preserve prior flags by name. Outputs: the active subset as a
// JSON array, its count, and the updated serialized state.
type ListFilterToggle struct{}

// Evaluate runs the toggle node
func (ListFilterToggle) Evaluate(itemsRaw, stateJSON string) ToggleResult {
	state := togglelist.Deserialize(stateJSON)
	state.ReconcileRaw(itemsRaw)

	return ToggleResult{
		FilteredJSON: marshalNames(state.ActiveNames()),
		Count:        state.Count(),
		StateJSON:    state.Serialize(),
	}
}

// ListFilterInput passes a validated item list downstream.
//
// Deprecated: use ListFilterToggle instead.
type ListFilterInput struct{}

// Evaluate returns the input unchanged when it is a JSON array, "[]" otherwise
func (ListFilterInput) Evaluate(itemsJSON string) string {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return "[]"
	}
	return itemsJSON
}

// ListFilterOutput exposes a filtered list and its count as final outputs.
//
// Deprecated: use ListFilterToggle instead.
type ListFilterOutput struct{}

// Evaluate returns the list unchanged with its length, or ("[]", 0) when
// the input is not a JSON array
func (ListFilterOutput) Evaluate(filteredJSON string) (string, int) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(filteredJSON), &items); err != nil {
		return "[]", 0
	}
	return filteredJSON, len(items)
}

func marshalNames(names []string) string {
	if len(names) == 0 {
		return "[]"
	}
	data, err := json.Marshal(names)
	if err != nil {
		return "[]"
	}
	return string(data)
}
