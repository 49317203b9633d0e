package memory

import (
	"context"
	"sync"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

type caseRepository struct {
	mu    sync.RWMutex
	seed  []*model.EmployeeCase
	cases []*model.EmployeeCase
}

func newCaseRepository(seed []*model.EmployeeCase) *caseRepository {
	frozen := model.CopyCases(seed)
	return &caseRepository{
		seed:  frozen,
		cases: model.CopyCases(frozen),
	}
}

func (r *caseRepository) List(ctx context.Context) ([]*model.EmployeeCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return model.CopyCases(r.cases), nil
}

func (r *caseRepository) GetByName(ctx context.Context, name string) (*model.EmployeeCase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.cases {
		if c.Name == name {
			return c.Copy(), nil
		}
	}
	return nil, nil
}

func (r *caseRepository) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cases = model.CopyCases(r.seed)
	return nil
}
