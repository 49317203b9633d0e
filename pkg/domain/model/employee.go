package model

import "strings"

// EmployeeRecord is a directory entry used to auto-fill offboarding drafts
type EmployeeRecord struct {
	ID         string
	Name       string
	Role       string
	Department string
	Manager    string
}

// MatchName reports whether name equals the record name, ignoring case
func (e *EmployeeRecord) MatchName(name string) bool {
	return strings.EqualFold(e.Name, name)
}
