// Package models defines the input records rendered into a report.
package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrNotObject indicates the input document is valid JSON but not a JSON object.
var ErrNotObject = errors.New("report must be a JSON object")

// Report is the top-level input record.
type Report struct {
	// Title is the report title (nil when absent).
	Title *string `json:"title,omitempty"`
	// Employee is the employee profile. Missing or non-object input yields a zero Employee.
	Employee Employee `json:"employee"`
	// Projects is the ordered project list. Missing or non-array input yields an empty list.
	Projects []Project `json:"projects"`
}

// TitleText returns the title or DefaultTitle when absent.
func (r *Report) TitleText() string {
	return ValueOrDefault(r.Title, DefaultTitle)
}

// HasProjects reports whether the report carries at least one project entry.
func (r *Report) HasProjects() bool {
	return len(r.Projects) > 0
}

// UnmarshalJSON decodes a report leniently: wrong-typed members are treated as absent.
func (r *Report) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return ErrNotObject
		}
		return err
	}
	if raw == nil {
		// literal null
		return ErrNotObject
	}

	*r = Report{
		Title: decodeScalar(raw["title"]),
	}

	if fields, ok := decodeObject(raw["employee"]); ok {
		r.Employee = employeeFromFields(fields)
	}

	var items []json.RawMessage
	if msg := raw["projects"]; len(msg) > 0 && json.Unmarshal(msg, &items) == nil {
		r.Projects = make([]Project, 0, len(items))
		for _, item := range items {
			fields, _ := decodeObject(item)
			r.Projects = append(r.Projects, projectFromFields(fields))
		}
	}

	return nil
}

// Decode parses a JSON document into a Report.
// Syntax errors and non-object documents are returned as errors; everything
// else is accepted.
func Decode(data []byte) (*Report, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, ErrNotObject
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// decodeObject decodes msg as a JSON object. ok is false for absent or non-object values.
func decodeObject(msg json.RawMessage) (map[string]json.RawMessage, bool) {
	if len(msg) == 0 {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(msg, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}
