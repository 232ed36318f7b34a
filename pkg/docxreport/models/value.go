package models

import (
	"bytes"
	"encoding/json"
)

const (
	// Placeholder is substituted for any absent scalar field.
	Placeholder = "N/A"
	// DefaultTitle is used when the report has no title.
	DefaultTitle = "未命名报告"
)

// ValueOrDefault returns *v, or def when v is nil.
func ValueOrDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

// String returns a pointer to s. Handy for building records in code.
func String(s string) *string {
	return &s
}

// decodeScalar converts a raw JSON member into an optional string.
// Only JSON strings are kept, exactly as decoded; anything else (absent,
// null, number, boolean, object, array) is nil.
func decodeScalar(msg json.RawMessage) *string {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || msg[0] != '"' {
		return nil
	}

	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return nil
	}
	return &s
}
