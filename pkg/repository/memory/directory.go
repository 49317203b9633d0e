package memory

import (
	"context"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// directoryRepository is read-only after construction, so no lock is needed
type directoryRepository struct {
	records []*model.EmployeeRecord
}

func copyRecord(r *model.EmployeeRecord) *model.EmployeeRecord {
	copied := *r
	return &copied
}

func newDirectoryRepository(records []*model.EmployeeRecord) *directoryRepository {
	copied := make([]*model.EmployeeRecord, len(records))
	for i, r := range records {
		copied[i] = copyRecord(r)
	}
	return &directoryRepository{records: copied}
}

func (r *directoryRepository) List(ctx context.Context) ([]*model.EmployeeRecord, error) {
	records := make([]*model.EmployeeRecord, len(r.records))
	for i, rec := range r.records {
		records[i] = copyRecord(rec)
	}
	return records, nil
}

func (r *directoryRepository) FindByName(ctx context.Context, name string) (*model.EmployeeRecord, error) {
	for _, rec := range r.records {
		if rec.MatchName(name) {
			return copyRecord(rec), nil
		}
	}
	return nil, nil
}
