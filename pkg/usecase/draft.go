package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/interfaces"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/service/notification"
	"github.com/secmon-lab/offboarding/pkg/service/transport"
	"github.com/secmon-lab/offboarding/pkg/utils/errutil"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
)

// NavigateDashboard tells the client to switch to the dashboard screen
const NavigateDashboard = "dashboard"

// ConfirmResult is the outcome of confirming a draft
type ConfirmResult struct {
	// Submitted is true when the transport accepted the submission
	Submitted bool
	// NavigateTo is set after a successful submission
	NavigateTo string
	// Stale is true when the draft was reset or discarded while the
	// submission was in flight. The outcome is not applied.
	Stale bool
	// Failure is the transport error of a failed submission
	Failure error

	Draft        *model.OffboardingDraft
	Notification model.Notification
}

type DraftUseCase struct {
	repo      interfaces.Repository
	directory *DirectoryUseCase
	transport transport.Service
	notifier  *notification.Notifier
	source    string
	now       func() time.Time

	// mu serializes load-modify-store of drafts. It is not held while a
	// submission is in flight.
	mu sync.Mutex
}

func NewDraftUseCase(repo interfaces.Repository, directory *DirectoryUseCase, svc transport.Service, notifier *notification.Notifier, source string, now func() time.Time) *DraftUseCase {
	return &DraftUseCase{
		repo:      repo,
		directory: directory,
		transport: svc,
		notifier:  notifier,
		source:    source,
		now:       now,
	}
}

// Create opens a new draft with default values
func (uc *DraftUseCase) Create(ctx context.Context) (*model.OffboardingDraft, error) {
	draft := model.NewOffboardingDraft()
	if err := uc.repo.Draft().Put(ctx, draft); err != nil {
		return nil, goerr.Wrap(err, "failed to store draft", goerr.V(DraftIDKey, draft.ID))
	}
	return draft, nil
}

func (uc *DraftUseCase) Get(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error) {
	return uc.load(ctx, id)
}

// Discard drops the draft without submitting it
func (uc *DraftUseCase) Discard(ctx context.Context, id model.DraftID) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Draft().Delete(ctx, id); err != nil {
		return goerr.Wrap(ErrDraftNotFound, "draft not found", goerr.V(DraftIDKey, id))
	}
	return nil
}

// SetField assigns a free-form field. employeeName goes through
// SetEmployeeName semantics.
func (uc *DraftUseCase) SetField(ctx context.Context, id model.DraftID, field model.DraftField, value string) (*model.OffboardingDraft, error) {
	return uc.SetFields(ctx, id, map[model.DraftField]string{field: value})
}

// SetFields assigns several fields at once. Either all are applied or none.
// employeeName is applied first so explicit identity fields in the same
// call win over directory auto-fill.
func (uc *DraftUseCase) SetFields(ctx context.Context, id model.DraftID, fields map[model.DraftField]string) (*model.OffboardingDraft, error) {
	return uc.Patch(ctx, id, nil, fields)
}

// Patch sets the directory toggle when useDirectory is non-nil, then
// assigns fields as SetFields does. Nothing is stored if any part fails.
func (uc *DraftUseCase) Patch(ctx context.Context, id model.DraftID, useDirectory *bool, fields map[model.DraftField]string) (*model.OffboardingDraft, error) {
	return uc.edit(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		if useDirectory != nil {
			d.UseDirectory = *useDirectory
		}
		return uc.applyFields(ctx, d, fields)
	})
}

func (uc *DraftUseCase) applyFields(ctx context.Context, d *model.OffboardingDraft, fields map[model.DraftField]string) error {
	if name, ok := fields[model.FieldEmployeeName]; ok {
		if err := uc.applyEmployeeName(ctx, d, name); err != nil {
			return err
		}
	}
	for field, value := range fields {
		if field == model.FieldEmployeeName {
			continue
		}
		if err := d.SetField(field, value); err != nil {
			return err
		}
	}
	return nil
}

// SetEmployeeName stores name. When the directory toggle is on and the
// directory has an entry with that name, the identity fields are
// overwritten from it.
func (uc *DraftUseCase) SetEmployeeName(ctx context.Context, id model.DraftID, name string) (*model.OffboardingDraft, error) {
	return uc.edit(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		return uc.applyEmployeeName(ctx, d, name)
	})
}

func (uc *DraftUseCase) applyEmployeeName(ctx context.Context, d *model.OffboardingDraft, name string) error {
	d.EmployeeName = name
	if !d.UseDirectory {
		return nil
	}

	rec, found, err := uc.directory.Lookup(ctx, name)
	if err != nil {
		return err
	}
	if found {
		d.ApplyDirectory(rec)
	}
	return nil
}

// SetUseDirectory switches directory suggestions and auto-fill on or off
func (uc *DraftUseCase) SetUseDirectory(ctx context.Context, id model.DraftID, enabled bool) (*model.OffboardingDraft, error) {
	return uc.edit(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		d.UseDirectory = enabled
		return nil
	})
}

func (uc *DraftUseCase) AddTeam(ctx context.Context, id model.DraftID, team types.Team) (*model.OffboardingDraft, error) {
	return uc.edit(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		d.AddTeam(team)
		return nil
	})
}

func (uc *DraftUseCase) RemoveTeam(ctx context.Context, id model.DraftID, team types.Team) (*model.OffboardingDraft, error) {
	return uc.edit(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		d.RemoveTeam(team)
		return nil
	})
}

// Review moves an editing draft to reviewing. There is no validation gate.
// Reviewing again is a no-op.
func (uc *DraftUseCase) Review(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error) {
	return uc.mutate(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		switch d.State {
		case types.DraftStateEditing, types.DraftStateReviewing:
			d.State = types.DraftStateReviewing
			return nil
		default:
			return goerr.Wrap(ErrInvalidTransition, "cannot review draft",
				goerr.V(DraftIDKey, d.ID), goerr.V(DraftStateKey, d.State))
		}
	})
}

// Back returns a reviewing draft to editing with all fields kept
func (uc *DraftUseCase) Back(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error) {
	return uc.mutate(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		if d.State != types.DraftStateReviewing {
			return goerr.Wrap(ErrInvalidTransition, "cannot go back to editing",
				goerr.V(DraftIDKey, d.ID), goerr.V(DraftStateKey, d.State))
		}
		d.State = types.DraftStateEditing
		return nil
	})
}

// Clear resets the draft to defaults in any state. A submission in flight
// keeps running but its outcome is dropped.
func (uc *DraftUseCase) Clear(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error) {
	return uc.mutate(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		d.Reset()
		return nil
	})
}

// Confirm submits a reviewing draft.
//
// On success the draft is reset and the caller is told to navigate to the
// dashboard. On failure the draft returns to reviewing with its fields
// untouched. Either way the outcome is reported through the notifier. If
// the draft was reset or discarded while the submission was in flight, the
// outcome is logged and dropped.
func (uc *DraftUseCase) Confirm(ctx context.Context, id model.DraftID) (*ConfirmResult, error) {
	sub, generation, err := uc.beginSubmit(ctx, id)
	if err != nil {
		return nil, err
	}

	sendErr := uc.transport.Submit(ctx, sub)

	uc.mu.Lock()
	defer uc.mu.Unlock()

	logger := logging.From(ctx).With(DraftIDKey, id)

	draft, err := uc.repo.Draft().Get(ctx, id)
	if err != nil {
		logger.Info("draft discarded during submission, dropping outcome", "submitted", sendErr == nil)
		return &ConfirmResult{Submitted: sendErr == nil, Stale: true, Failure: sendErr}, nil
	}
	if draft.Generation != generation {
		logger.Info("draft reset during submission, dropping outcome",
			"submitted", sendErr == nil,
			"generation", generation,
			"current_generation", draft.Generation,
		)
		return &ConfirmResult{Submitted: sendErr == nil, Stale: true, Failure: sendErr, Draft: draft}, nil
	}

	if sendErr != nil {
		draft.State = types.DraftStateReviewing
		if err := uc.repo.Draft().Put(ctx, draft); err != nil {
			return nil, goerr.Wrap(err, "failed to restore draft after failed submission", goerr.V(DraftIDKey, id))
		}

		errutil.Handle(ctx, sendErr, "offboarding submission failed")
		n := uc.notifier.Show(ctx, uc.failureMessage(sendErr))
		return &ConfirmResult{Failure: sendErr, Draft: draft, Notification: n}, nil
	}

	draft.Reset()
	if err := uc.repo.Draft().Put(ctx, draft); err != nil {
		return nil, goerr.Wrap(err, "failed to reset draft after submission", goerr.V(DraftIDKey, id))
	}

	logger.Info("offboarding request submitted", "transport", uc.transport.Kind())
	n := uc.notifier.Show(ctx, MsgSubmitted)
	return &ConfirmResult{
		Submitted:    true,
		NavigateTo:   NavigateDashboard,
		Draft:        draft,
		Notification: n,
	}, nil
}

// beginSubmit moves the draft to submitting and freezes its content
func (uc *DraftUseCase) beginSubmit(ctx context.Context, id model.DraftID) (*model.Submission, int64, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	draft, err := uc.load(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	switch draft.State {
	case types.DraftStateReviewing:
	case types.DraftStateSubmitting:
		return nil, 0, goerr.Wrap(ErrDraftSubmitting, "draft is already being submitted", goerr.V(DraftIDKey, id))
	default:
		return nil, 0, goerr.Wrap(ErrInvalidTransition, "only a reviewed draft can be confirmed",
			goerr.V(DraftIDKey, id), goerr.V(DraftStateKey, draft.State))
	}

	sub := draft.Snapshot(uc.now().UTC(), uc.source)
	draft.State = types.DraftStateSubmitting
	if err := uc.repo.Draft().Put(ctx, draft); err != nil {
		return nil, 0, goerr.Wrap(err, "failed to store draft", goerr.V(DraftIDKey, id))
	}
	return sub, draft.Generation, nil
}

func (uc *DraftUseCase) failureMessage(err error) string {
	switch {
	case errors.Is(err, transport.ErrNotConfigured):
		return MsgNotConfigured
	case uc.transport.Kind() == transport.KindProxied:
		return MsgProxiedSubmitFailed
	default:
		return MsgSubmitFailed
	}
}

func (uc *DraftUseCase) load(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error) {
	draft, err := uc.repo.Draft().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(ErrDraftNotFound, "draft not found", goerr.V(DraftIDKey, id))
	}
	return draft, nil
}

func (uc *DraftUseCase) mutate(ctx context.Context, id model.DraftID, fn func(context.Context, *model.OffboardingDraft) error) (*model.OffboardingDraft, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	draft, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(ctx, draft); err != nil {
		return nil, err
	}
	if err := uc.repo.Draft().Put(ctx, draft); err != nil {
		return nil, goerr.Wrap(err, "failed to store draft", goerr.V(DraftIDKey, id))
	}
	return draft, nil
}

// edit is mutate restricted to states accepting field edits
func (uc *DraftUseCase) edit(ctx context.Context, id model.DraftID, fn func(context.Context, *model.OffboardingDraft) error) (*model.OffboardingDraft, error) {
	return uc.mutate(ctx, id, func(ctx context.Context, d *model.OffboardingDraft) error {
		if !d.State.IsEditable() {
			return goerr.Wrap(ErrDraftSubmitting, "draft cannot be edited while submitting",
				goerr.V(DraftIDKey, d.ID))
		}
		return fn(ctx, d)
	})
}
