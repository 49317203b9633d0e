package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
)

// DraftID is a UUID-based identifier for an offboarding draft
type DraftID string

// NewDraftID generates a new UUID v4 DraftID
func NewDraftID() DraftID {
	return DraftID(uuid.New().String())
}

func (id DraftID) String() string {
	return string(id)
}

// DraftField names an editable free-form field of a draft. Names follow the
// submission wire keys.
type DraftField string

const (
	FieldEmployeeName     DraftField = "employeeName"
	FieldEmployeeID       DraftField = "employeeId"
	FieldJobTitle         DraftField = "jobTitle"
	FieldDepartment       DraftField = "department"
	FieldManagerName      DraftField = "managerName"
	FieldOffboardingType  DraftField = "offboardingType"
	FieldExitDate         DraftField = "exitDate"
	FieldReason           DraftField = "reason"
	FieldNoticeDays       DraftField = "noticeDays"
	FieldOffboardingNotes DraftField = "offboardingNotes"
	FieldComments         DraftField = "comments"
)

// ErrUnknownField is returned when a field name is not editable
var ErrUnknownField = goerr.New("unknown draft field")

// OffboardingDraft is the in-flight offboarding request being edited.
//
// Teams is kept as an ordered set. Generation is bumped every time the
// draft content is reset, so an outcome computed from an older snapshot can
// be recognized as stale.
type OffboardingDraft struct {
	ID           DraftID
	State        types.DraftState
	UseDirectory bool

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
	Teams            []types.Team

	Generation int64
	UpdatedAt  time.Time
}

// NewOffboardingDraft creates a draft with a fresh ID and default values
func NewOffboardingDraft() *OffboardingDraft {
	d := &OffboardingDraft{
		ID:           NewDraftID(),
		UseDirectory: true,
	}
	d.applyDefaults()
	return d
}

func (d *OffboardingDraft) applyDefaults() {
	d.State = types.DraftStateEditing
	d.EmployeeName = ""
	d.EmployeeID = ""
	d.JobTitle = ""
	d.Department = ""
	d.ManagerName = ""
	d.OffboardingType = types.OffboardingTypeResignation
	d.ExitDate = ""
	d.Reason = types.ReasonPersonal
	d.NoticeDays = ""
	d.OffboardingNotes = ""
	d.Comments = ""
	d.Teams = types.DefaultNotifyTeams()
}

// Reset restores every field to its default, returns to editing and bumps
// the generation. ID and the directory toggle are kept.
func (d *OffboardingDraft) Reset() {
	d.applyDefaults()
	d.Generation++
}

// SetField assigns value to a free-form field
func (d *OffboardingDraft) SetField(field DraftField, value string) error {
	switch field {
	case FieldEmployeeName:
		d.EmployeeName = value
	case FieldEmployeeID:
		d.EmployeeID = value
	case FieldJobTitle:
		d.JobTitle = value
	case FieldDepartment:
		d.Department = value
	case FieldManagerName:
		d.ManagerName = value
	case FieldOffboardingType:
		d.OffboardingType = value
	case FieldExitDate:
		d.ExitDate = value
	case FieldReason:
		d.Reason = value
	case FieldNoticeDays:
		d.NoticeDays = value
	case FieldOffboardingNotes:
		d.OffboardingNotes = value
	case FieldComments:
		d.Comments = value
	default:
		return goerr.Wrap(ErrUnknownField, "cannot set draft field", goerr.V("field", field))
	}
	return nil
}

// ApplyDirectory overwrites the identity fields with the directory record
func (d *OffboardingDraft) ApplyDirectory(rec *EmployeeRecord) {
	d.EmployeeID = rec.ID
	d.JobTitle = rec.Role
	d.Department = rec.Department
	d.ManagerName = rec.Manager
}

// HasTeam reports whether team is selected
func (d *OffboardingDraft) HasTeam(team types.Team) bool {
	return slices.Contains(d.Teams, team)
}

// AddTeam selects team. Returns false when it was already selected.
func (d *OffboardingDraft) AddTeam(team types.Team) bool {
	if d.HasTeam(team) {
		return false
	}
	d.Teams = append(d.Teams, team)
	return true
}

// RemoveTeam deselects team without touching other selections.
// Returns false when it was not selected.
func (d *OffboardingDraft) RemoveTeam(team types.Team) bool {
	idx := slices.Index(d.Teams, team)
	if idx < 0 {
		return false
	}
	d.Teams = slices.Delete(slices.Clone(d.Teams), idx, idx+1)
	return true
}

// Copy returns a deep copy of the draft
func (d *OffboardingDraft) Copy() *OffboardingDraft {
	copied := *d
	copied.Teams = slices.Clone(d.Teams)
	if copied.Teams == nil {
		copied.Teams = []types.Team{}
	}
	return &copied
}

// Snapshot freezes the draft content into a submission stamped with
// submittedAt and source
func (d *OffboardingDraft) Snapshot(submittedAt time.Time, source string) *Submission {
	return &Submission{
		EmployeeName:     d.EmployeeName,
		EmployeeID:       d.EmployeeID,
		JobTitle:         d.JobTitle,
		Department:       d.Department,
		ManagerName:      d.ManagerName,
		OffboardingType:  d.OffboardingType,
		ExitDate:         d.ExitDate,
		Reason:           d.Reason,
		NoticeDays:       d.NoticeDays,
		OffboardingNotes: d.OffboardingNotes,
		Comments:         d.Comments,
		NotifyTeams:      slices.Clone(d.Teams),
		SubmittedAt:      submittedAt,
		Source:           source,
	}
}
