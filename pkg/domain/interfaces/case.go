package interfaces

import (
	"context"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// CaseRepository holds the offboarding tracking rows
type CaseRepository interface {
	// List returns copies of all cases in seed order
	List(ctx context.Context) ([]*model.EmployeeCase, error)

	// GetByName returns the first case with the given name.
	// Returns nil, nil if none exists.
	GetByName(ctx context.Context, name string) (*model.EmployeeCase, error)

	// Reset replaces the whole collection with a fresh copy of the seed
	Reset(ctx context.Context) error
}
