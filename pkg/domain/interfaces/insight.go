package interfaces

import (
	"context"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

// InsightRepository serves the static sidebar alerts and KPIs
type InsightRepository interface {
	Alerts(ctx context.Context) ([]string, error)
	KPIs(ctx context.Context) ([]model.KPI, error)
}
