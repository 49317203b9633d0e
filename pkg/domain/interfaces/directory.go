package interfaces

import (
	"context"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// DirectoryRepository is the read-only employee directory
type DirectoryRepository interface {
	// List returns every record in directory order
	List(ctx context.Context) ([]*model.EmployeeRecord, error)

	// FindByName returns the record whose name matches case-insensitively.
	// Returns nil, nil on a miss.
	FindByName(ctx context.Context, name string) (*model.EmployeeRecord, error)
}
