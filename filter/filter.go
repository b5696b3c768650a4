// Package filter implements the legacy index-based list filter contract:
// project a list onto a selected set of positions, preserving the list's
// original order and duplicating entries for duplicate indices.
package filter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrItemsNotArray is returned when the items payload is not a JSON array
	ErrItemsNotArray = errors.New("items must be a list")

	// ErrIndicesNotArray is returned when selected_indices is not a JSON array
	ErrIndicesNotArray = errors.New("selected_indices must be a list")

	// ErrIndexNotInteger is returned when a selected index is not an integer
	ErrIndexNotInteger = errors.New("selected index must be an integer")

	// ErrIndexOutOfRange is returned when a selected index falls outside the items list
	ErrIndexOutOfRange = errors.New("selected index out of range")
)

// Result is the filtered projection of an apply request
type Result struct {
	Filtered []json.RawMessage `json:"filtered"`
	Count    int               `json:"count"`
}

// Apply validates the selected indices against the items list and returns
// the items at those positions. Output follows the items list's original
// order regardless of the order indices arrive in; duplicate indices
// produce duplicate output entries. Any out-of-range or non-integer index
// rejects the whole request.
func Apply(itemsJSON, indicesJSON json.RawMessage) (*Result, error) {
	items, err := decodeItems(itemsJSON)
	if err != nil {
		return nil, err
	}

	indices, err := decodeIndices(indicesJSON, len(items))
	if err != nil {
		return nil, err
	}

	// Ascending application keeps output in items order; duplicates stay
	sort.Ints(indices)

	filtered := make([]json.RawMessage, 0, len(indices))
	for _, idx := range indices {
		filtered = append(filtered, items[idx])
	}

	return &Result{Filtered: filtered, Count: len(filtered)}, nil
}

func decodeItems(raw json.RawMessage) ([]json.RawMessage, error) {
	if isAbsent(raw) {
		return nil, ErrItemsNotArray
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrItemsNotArray
	}
	return items, nil
}

func decodeIndices(raw json.RawMessage, itemCount int) ([]int, error) {
	if isAbsent(raw) {
		return nil, ErrIndicesNotArray
	}

	// Decode as raw numbers first so a non-integer produces a validation
	// error instead of a generic unmarshal failure
	var values []json.Number
	if err := json.Unmarshal(raw, &values); err != nil {
		// Distinguish "not an array" from "array of non-numbers"
		var probe []json.RawMessage
		if arrErr := json.Unmarshal(raw, &probe); arrErr != nil {
			return nil, ErrIndicesNotArray
		}
		return nil, ErrIndexNotInteger
	}

	indices := make([]int, 0, len(values))
	for _, v := range values {
		idx, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotInteger, v.String())
		}
		if idx < 0 || idx >= int64(itemCount) {
			return nil, fmt.Errorf("%w: %d (items length %d)", ErrIndexOutOfRange, idx, itemCount)
		}
		indices = append(indices, int(idx))
	}
	return indices, nil
}

// isAbsent reports whether a raw field is missing or JSON null
func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || string(bytes.TrimSpace(raw)) == "null"
}
