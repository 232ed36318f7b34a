package models

import "encoding/json"

// Project is a single entry of the project list.
type Project struct {
	// Name is the project name.
	Name *string `json:"name,omitempty"`
	// Status is the free-form project status.
	Status *string `json:"status,omitempty"`
	// Leader is the project lead.
	Leader *string `json:"leader,omitempty"`
}

// ProjectColumns are the table header labels, in column order.
var ProjectColumns = []string{"项目名称", "状态", "项目负责人"}

// Row returns the project cells in column order with Placeholder for absent values.
func (p Project) Row() []string {
	return []string{
		ValueOrDefault(p.Name, Placeholder),
		ValueOrDefault(p.Status, Placeholder),
		ValueOrDefault(p.Leader, Placeholder),
	}
}

func projectFromFields(fields map[string]json.RawMessage) Project {
	return Project{
		Name:   decodeScalar(fields["name"]),
		Status: decodeScalar(fields["status"]),
		Leader: decodeScalar(fields["leader"]),
	}
}
