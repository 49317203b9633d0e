package memory

import (
	"context"
	"slices"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
)

type insightRepository struct {
	alerts []string
	kpis   []model.KPI
}

func newInsightRepository(alerts []string, kpis []model.KPI) *insightRepository {
	return &insightRepository{
		alerts: slices.Clone(alerts),
		kpis:   slices.Clone(kpis),
	}
}

func (r *insightRepository) Alerts(ctx context.Context) ([]string, error) {
	return slices.Clone(r.alerts), nil
}

func (r *insightRepository) KPIs(ctx context.Context) ([]model.KPI, error) {
	return slices.Clone(r.kpis), nil
}
