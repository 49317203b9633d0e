package interfaces

import (
	"context"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// DraftRepository keeps offboarding drafts for the lifetime of the process
type DraftRepository interface {
	Put(ctx context.Context, draft *model.OffboardingDraft) error
	Get(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error)
	Delete(ctx context.Context, id model.DraftID) error
}
