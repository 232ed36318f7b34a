package models

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeFull(t *testing.T) {
	data := []byte(`{
		"title": "员工季度报告",
		"employee": {
			"name": "张三",
			"position": "工程师",
			"department": "研发部",
			"start_date": "2021-03-01",
			"email": "zhangsan@example.com",
			"extra": "ignored"
		},
		"projects": [
			{"name": "Alpha", "status": "进行中", "leader": "李四"},
			{"name": "Beta"}
		]
	}`)

	r, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.TitleText() != "员工季度报告" {
		t.Errorf("Expected title %q, got %q", "员工季度报告", r.TitleText())
	}

	wantFields := []string{"张三", "工程师", "研发部", "2021-03-01", "zhangsan@example.com"}
	var gotFields []string
	for _, f := range r.Employee.Fields() {
		gotFields = append(gotFields, f.Value)
	}
	if diff := cmp.Diff(wantFields, gotFields); diff != "" {
		t.Errorf("Employee fields mismatch (-want +got):\n%s", diff)
	}

	wantRows := [][]string{
		{"Alpha", "进行中", "李四"},
		{"Beta", "N/A", "N/A"},
	}
	var gotRows [][]string
	for _, p := range r.Projects {
		gotRows = append(gotRows, p.Row())
	}
	if diff := cmp.Diff(wantRows, gotRows); diff != "" {
		t.Errorf("Project rows mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDefaults(t *testing.T) {
	r, err := Decode([]byte(`{}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if r.TitleText() != DefaultTitle {
		t.Errorf("Expected default title, got %q", r.TitleText())
	}
	for _, f := range r.Employee.Fields() {
		if f.Value != Placeholder {
			t.Errorf("Expected %s for %s, got %q", Placeholder, f.Key, f.Value)
		}
	}
	if r.HasProjects() {
		t.Error("Expected no projects")
	}
}

func TestDecodeLenientTypes(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantTitle    string
		wantName     string
		wantProjects [][]string
	}{
		{
			name:      "employee is a string",
			input:     `{"employee": "nobody"}`,
			wantTitle: DefaultTitle,
			wantName:  Placeholder,
		},
		{
			name:      "projects is an object",
			input:     `{"projects": {"name": "x"}}`,
			wantTitle: DefaultTitle,
			wantName:  Placeholder,
		},
		{
			name:         "project entry is not an object",
			input:        `{"projects": ["x", {"leader": "王五"}]}`,
			wantTitle:    DefaultTitle,
			wantName:     Placeholder,
			wantProjects: [][]string{{"N/A", "N/A", "N/A"}, {"N/A", "N/A", "王五"}},
		},
		{
			name:      "null values are absent",
			input:     `{"title": null, "employee": {"name": null}, "projects": null}`,
			wantTitle: DefaultTitle,
			wantName:  Placeholder,
		},
		{
			name:         "numbers and booleans are absent",
			input:        `{"title": 2024, "employee": {"name": true, "position": 1.50}, "projects": [{"name": 1.50, "status": false}]}`,
			wantTitle:    DefaultTitle,
			wantName:     Placeholder,
			wantProjects: [][]string{{"N/A", "N/A", "N/A"}},
		},
		{
			name:      "nested containers are absent",
			input:     `{"title": ["a"], "employee": {"name": {"first": "a"}}}`,
			wantTitle: DefaultTitle,
			wantName:  Placeholder,
		},
		{
			name:      "explicit empty string is kept",
			input:     `{"title": "", "employee": {"name": ""}}`,
			wantTitle: "",
			wantName:  "",
		},
		{
			name:      "byte order mark is skipped",
			input:     "\xef\xbb\xbf{\"title\": \"T\"}",
			wantTitle: "T",
			wantName:  Placeholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Decode([]byte(tt.input))
			if err != nil {
				t.Fatalf("Decode(%q) failed: %v", tt.input, err)
			}
			if got := r.TitleText(); got != tt.wantTitle {
				t.Errorf("title = %q, expected %q", got, tt.wantTitle)
			}
			if got := ValueOrDefault(r.Employee.Name, Placeholder); got != tt.wantName {
				t.Errorf("name = %q, expected %q", got, tt.wantName)
			}
			var gotProjects [][]string
			for _, p := range r.Projects {
				gotProjects = append(gotProjects, p.Row())
			}
			if diff := cmp.Diff(tt.wantProjects, gotProjects); diff != "" {
				t.Errorf("projects mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		input     string
		notObject bool
	}{
		{`{not valid json`, false},
		{``, false},
		{`[1, 2]`, true},
		{`"text"`, true},
		{`42`, true},
		{`null`, true},
	}

	for _, tt := range tests {
		_, err := Decode([]byte(tt.input))
		if err == nil {
			t.Errorf("Decode(%q) expected error", tt.input)
			continue
		}
		if got := errors.Is(err, ErrNotObject); got != tt.notObject {
			t.Errorf("Decode(%q) ErrNotObject = %v, expected %v (err: %v)", tt.input, got, tt.notObject, err)
		}
	}
}

func TestDecodeKeepsStringsVerbatim(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"{\"title\": \"Cafe\u0301\"}", "Cafe\u0301"},
		{`{"title": "Caf\u00e9"}`, "Caf\u00e9"},
		{`{"title": "  spaced\ttab\nline  "}`, "  spaced\ttab\nline  "},
		{`{"title": "a\u0001b"}`, "a\u0001b"},
	}

	for _, tt := range tests {
		r, err := Decode([]byte(tt.input))
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", tt.input, err)
		}
		if got := r.TitleText(); got != tt.expected {
			t.Errorf("Decode(%q) title = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestValueOrDefault(t *testing.T) {
	if got := ValueOrDefault(nil, "x"); got != "x" {
		t.Errorf("ValueOrDefault(nil) = %q, expected %q", got, "x")
	}
	if got := ValueOrDefault(String("v"), "x"); got != "v" {
		t.Errorf("ValueOrDefault(v) = %q, expected %q", got, "v")
	}
}
