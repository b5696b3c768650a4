package togglelist

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Parse decodes a raw item list into entry names.
// Accepted forms, first successful decode wins:
//  1. a JSON array (elements of any type, coerced to strings)
//  2. a comma-separated string ("a, b, c")
//
// Returns ErrUnparsable when neither form yields at least one entry.
func Parse(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrUnparsable
	}

	if names, ok := parseJSONArray(trimmed); ok {
		return names, nil
	}

	// Fallback: comma-separated plain text, no JSON quoting required
	parts := strings.Split(trimmed, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil, ErrUnparsable
	}
	return names, nil
}

// parseJSONArray decodes a JSON array and stringifies each element
func parseJSONArray(raw string) ([]string, bool) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var values []any
	if err := dec.Decode(&values); err != nil {
		return nil, false
	}

	names := make([]string, 0, len(values))
	for _, v := range values {
		names = append(names, Stringify(v))
	}
	return names, true
}

// Stringify coerces an arbitrary decoded JSON value to its display string.
// Strings pass through unquoted; numbers keep their source representation;
// nested structures are re-encoded as compact JSON.
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		if val {
			return "true"
		}
		return "false"
	case nil:
		return "null"
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(val); err != nil {
			return ""
		}
		return strings.TrimSuffix(buf.String(), "\n")
	}
}
