package models

import "encoding/json"

// Employee is a flat record of optional identity and position fields.
type Employee struct {
	// Name is the employee name.
	Name *string `json:"name,omitempty"`
	// Position is the job title.
	Position *string `json:"position,omitempty"`
	// Department is the owning department.
	Department *string `json:"department,omitempty"`
	// StartDate is the hire date, kept verbatim.
	StartDate *string `json:"start_date,omitempty"`
	// Email is the contact address.
	Email *string `json:"email,omitempty"`
}

// EmployeeField is one labeled employee attribute in render order.
type EmployeeField struct {
	Key   string
	Label string
	Value string
}

// Fields returns the five employee attributes in fixed render order with
// Placeholder substituted for absent values.
func (e Employee) Fields() []EmployeeField {
	return []EmployeeField{
		{Key: "name", Label: "姓名", Value: ValueOrDefault(e.Name, Placeholder)},
		{Key: "position", Label: "职位", Value: ValueOrDefault(e.Position, Placeholder)},
		{Key: "department", Label: "部门", Value: ValueOrDefault(e.Department, Placeholder)},
		{Key: "start_date", Label: "入职日期", Value: ValueOrDefault(e.StartDate, Placeholder)},
		{Key: "email", Label: "电子邮件", Value: ValueOrDefault(e.Email, Placeholder)},
	}
}

func employeeFromFields(fields map[string]json.RawMessage) Employee {
	return Employee{
		Name:       decodeScalar(fields["name"]),
		Position:   decodeScalar(fields["position"]),
		Department: decodeScalar(fields["department"]),
		StartDate:  decodeScalar(fields["start_date"]),
		Email:      decodeScalar(fields["email"]),
	}
}
