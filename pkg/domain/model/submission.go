package model

import (
	"net/url"
	"strings"
	"time"

	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

// Wire keys of a submitted offboarding request
const (
	KeyEmployeeName     = "employeeName"
	KeyEmployeeID       = "employeeId"
	KeyJobTitle         = "jobTitle"
	KeyDepartment       = "department"
	KeyManagerName      = "managerName"
	KeyOffboardingType  = "offboardingType"
	KeyExitDate         = "exitDate"
	KeyReason           = "reason"
	KeyNoticeDays       = "noticeDays"
	KeyOffboardingNotes = "offboardingNotes"
	KeyComments         = "comments"
	KeyNotifyTeams      = "notifyTeams"
	KeySubmittedAt      = "submittedAt"
	KeySource           = "source"
)

// SubmittedAtLayout renders timestamps as ISO-8601 UTC with milliseconds
const SubmittedAtLayout = "2006-01-02T15:04:05.000Z"

// Submission is the frozen content of a confirmed draft
type Submission struct {
	EmployeeName     string
	EmployeeID       string
	JobTitle         string
	Department       string
	ManagerName      string
	OffboardingType  string
	ExitDate         string
	Reason           string
	NoticeDays       string
	OffboardingNotes string
	Comments         string
	NotifyTeams      []types.Team
	SubmittedAt      time.Time
	Source           string
}

// Values encodes the submission with exactly the wire key set
func (s *Submission) Values() url.Values {
	teams := make([]string, len(s.NotifyTeams))
	for i, t := range s.NotifyTeams {
		teams[i] = t.String()
	}

	v := url.Values{}
	v.Set(KeyEmployeeName, s.EmployeeName)
	v.Set(KeyEmployeeID, s.EmployeeID)
	v.Set(KeyJobTitle, s.JobTitle)
	v.Set(KeyDepartment, s.Department)
	v.Set(KeyManagerName, s.ManagerName)
	v.Set(KeyOffboardingType, s.OffboardingType)
	v.Set(KeyExitDate, s.ExitDate)
	v.Set(KeyReason, s.Reason)
	v.Set(KeyNoticeDays, s.NoticeDays)
	v.Set(KeyOffboardingNotes, s.OffboardingNotes)
	v.Set(KeyComments, s.Comments)
	v.Set(KeyNotifyTeams, strings.Join(teams, ","))
	v.Set(KeySubmittedAt, s.SubmittedAt.UTC().Format(SubmittedAtLayout))
	v.Set(KeySource, s.Source)
	return v
}
