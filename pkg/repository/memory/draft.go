package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

type draftRepository struct {
	mu     sync.RWMutex
	drafts map[model.DraftID]*model.OffboardingDraft
}

func newDraftRepository() *draftRepository {
	return &draftRepository{
		drafts: make(map[model.DraftID]*model.OffboardingDraft),
	}
}

func (r *draftRepository) Put(ctx context.Context, draft *model.OffboardingDraft) error {
	if draft.ID == "" {
		return goerr.New("draft ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := draft.Copy()
	stored.UpdatedAt = time.Now().UTC()
	r.drafts[stored.ID] = stored
	return nil
}

func (r *draftRepository) Get(ctx context.Context, id model.DraftID) (*model.OffboardingDraft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, exists := r.drafts[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "draft not found", goerr.V("id", id))
	}
	return d.Copy(), nil
}

func (r *draftRepository) Delete(ctx context.Context, id model.DraftID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drafts[id]; !exists {
		return goerr.Wrap(ErrNotFound, "draft not found", goerr.V("id", id))
	}
	delete(r.drafts, id)
	return nil
}
