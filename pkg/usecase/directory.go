package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/interfaces"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

type DirectoryUseCase struct {
	repo interfaces.Repository
}

func NewDirectoryUseCase(repo interfaces.Repository) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo}
}

// Lookup finds the directory record whose name equals name ignoring case.
// A miss returns nil and false without error.
func (uc *DirectoryUseCase) Lookup(ctx context.Context, name string) (*model.EmployeeRecord, bool, error) {
	rec, err := uc.repo.Directory().FindByName(ctx, name)
	if err != nil {
		return nil, false, goerr.Wrap(err, "failed to look up directory", goerr.V(EmployeeNameKey, name))
	}
	if rec == nil {
		return nil, false, nil
	}
	return rec, true, nil
}

// Suggest returns records whose name contains query ignoring case, in
// directory order. An empty query returns the whole directory.
func (uc *DirectoryUseCase) Suggest(ctx context.Context, query string) ([]*model.EmployeeRecord, error) {
	records, err := uc.repo.Directory().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory")
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records, nil
	}

	matched := make([]*model.EmployeeRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Name), q) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}
