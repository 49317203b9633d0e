package usecase

import (
	"errors"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// Sentinel errors for use case layer
var (
	// Not found errors
	ErrDraftNotFound = errors.New("draft not found")
	ErrCaseNotFound  = errors.New("case not found")

	// State errors
	ErrInvalidTransition = errors.New("invalid draft transition")
	ErrDraftSubmitting   = errors.New("draft is being submitted")

	// Input errors
	ErrInvalidFilter = errors.New("invalid status filter")
	ErrUnknownField  = model.ErrUnknownField
)

// Context keys for error values
const (
	DraftIDKey      = "draft_id"
	DraftStateKey   = "state"
	EmployeeNameKey = "employee_name"
)

// Notification messages shown to the user
const (
	MsgSubmitted           = "Offboarding request submitted"
	MsgSubmitFailed        = "Submit failed."
	MsgProxiedSubmitFailed = "Submit failed (form)."
	MsgNotConfigured       = "Endpoint not configured"
	MsgListRefreshed       = "List refreshed"
	MsgReminderSent        = "Reminder sent successfully!"
)
