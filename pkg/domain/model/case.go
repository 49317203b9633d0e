package model

import (
	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

// EmployeeCase is one row of the offboarding tracking table.
// Progress is entered by hand and is not derived from Status or Tasks.
type EmployeeCase struct {
	Name     string
	Role     string
	ExitDate string
	Status   types.CaseStatus
	Progress int
	Tasks    []string // task icon identifiers, display only
}

// Copy returns a deep copy of the case
func (c *EmployeeCase) Copy() *EmployeeCase {
	tasks := make([]string, len(c.Tasks))
	copy(tasks, c.Tasks)

	return &EmployeeCase{
		Name:     c.Name,
		Role:     c.Role,
		ExitDate: c.ExitDate,
		Status:   c.Status,
		Progress: c.Progress,
		Tasks:    tasks,
	}
}

// CopyCases deep-copies every case, preserving order
func CopyCases(cases []*EmployeeCase) []*EmployeeCase {
	copied := make([]*EmployeeCase, len(cases))
	for i, c := range cases {
		copied[i] = c.Copy()
	}
	return copied
}
