package types

import "github.com/m-mizutani/goerr/v2"

// CaseStatus represents the offboarding progress of an employee case
type CaseStatus string

const (
	CaseStatusUpcoming   CaseStatus = "upcoming"
	CaseStatusInProgress CaseStatus = "in-progress"
	CaseStatusOverdue    CaseStatus = "overdue"
	CaseStatusCompleted  CaseStatus = "completed"
)

// AllCaseStatuses returns all valid case statuses in table order
func AllCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusUpcoming,
		CaseStatusInProgress,
		CaseStatusOverdue,
		CaseStatusCompleted,
	}
}

// TrackedCaseStatuses returns the statuses shown as sidebar segments.
// Upcoming is only listed in the main table.
func TrackedCaseStatuses() []CaseStatus {
	return []CaseStatus{
		CaseStatusCompleted,
		CaseStatusInProgress,
		CaseStatusOverdue,
	}
}

// IsValid checks if the case status is valid
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusUpcoming,
		CaseStatusInProgress,
		CaseStatusOverdue,
		CaseStatusCompleted:
		return true
	default:
		return false
	}
}

// Label returns the badge text for the status. Unknown statuses are
// returned verbatim.
func (s CaseStatus) Label() string {
	switch s {
	case CaseStatusUpcoming:
		return "Upcoming"
	case CaseStatusInProgress:
		return "In Progress"
	case CaseStatusOverdue:
		return "Overdue"
	case CaseStatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// String returns the string representation of the case status
func (s CaseStatus) String() string {
	return string(s)
}

// ParseCaseStatus parses a string into a CaseStatus
func ParseCaseStatus(s string) (CaseStatus, error) {
	status := CaseStatus(s)
	if !status.IsValid() {
		return "", goerr.New("invalid case status", goerr.V("status", s))
	}
	return status, nil
}
