package usecase

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboarding/pkg/domain/interfaces"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/service/notification"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
)

// DashboardUseCase serves the case table and the sidebar. The status
// filter is a single process-wide slot.
type DashboardUseCase struct {
	repo     interfaces.Repository
	notifier *notification.Notifier

	mu     sync.RWMutex
	filter types.StatusFilter
}

func NewDashboardUseCase(repo interfaces.Repository, notifier *notification.Notifier) *DashboardUseCase {
	return &DashboardUseCase{
		repo:     repo,
		notifier: notifier,
		filter:   types.FilterAll,
	}
}

// Filter returns the current status filter
func (uc *DashboardUseCase) Filter() types.StatusFilter {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.filter
}

// SetFilter selects the status segment shown in the table
func (uc *DashboardUseCase) SetFilter(ctx context.Context, filter string) (types.StatusFilter, error) {
	f, err := types.ParseStatusFilter(filter)
	if err != nil {
		return "", goerr.Wrap(ErrInvalidFilter, "cannot set dashboard filter", goerr.V("filter", filter))
	}

	uc.mu.Lock()
	uc.filter = f
	uc.mu.Unlock()

	logging.From(ctx).Debug("dashboard filter changed", "filter", f)
	return f, nil
}

// View returns the rows passing the current filter
func (uc *DashboardUseCase) View(ctx context.Context) (*model.DashboardView, error) {
	return uc.ViewWith(ctx, uc.Filter())
}

// ViewWith returns the rows passing filter without changing the current one
func (uc *DashboardUseCase) ViewWith(ctx context.Context, filter types.StatusFilter) (*model.DashboardView, error) {
	cases, err := uc.repo.Case().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases")
	}
	return &model.DashboardView{
		Filter: filter.Normalize(),
		Rows:   model.VisibleRows(cases, filter),
	}, nil
}

// Cases returns every case regardless of the filter
func (uc *DashboardUseCase) Cases(ctx context.Context) ([]*model.EmployeeCase, error) {
	cases, err := uc.repo.Case().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list cases")
	}
	return cases, nil
}

// Refresh clears the filter and replaces the case list with a fresh copy
// of the seed
func (uc *DashboardUseCase) Refresh(ctx context.Context) (*model.DashboardView, error) {
	if err := uc.repo.Case().Reset(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to reset cases")
	}

	uc.mu.Lock()
	uc.filter = types.FilterAll
	uc.mu.Unlock()

	uc.notifier.Show(ctx, MsgListRefreshed)
	return uc.View(ctx)
}

// SendReminder acknowledges a reminder for the named case. No message is
// delivered and the case is not modified.
func (uc *DashboardUseCase) SendReminder(ctx context.Context, name string) (model.Notification, error) {
	c, err := uc.repo.Case().GetByName(ctx, name)
	if err != nil {
		return model.Notification{}, goerr.Wrap(err, "failed to get case", goerr.V(EmployeeNameKey, name))
	}
	if c == nil {
		return model.Notification{}, goerr.Wrap(ErrCaseNotFound, "case not found", goerr.V(EmployeeNameKey, name))
	}

	logging.From(ctx).Info("reminder requested", EmployeeNameKey, c.Name, "status", c.Status)
	return uc.notifier.Show(ctx, MsgReminderSent), nil
}

// Counts returns the number of cases per status
func (uc *DashboardUseCase) Counts(ctx context.Context) (model.StatusCounts, error) {
	cases, err := uc.Cases(ctx)
	if err != nil {
		return nil, err
	}
	return model.CountsFor(cases), nil
}

// Sidebar derives the status breakdown and adds the static alerts and KPIs
func (uc *DashboardUseCase) Sidebar(ctx context.Context) (*model.Sidebar, error) {
	cases, err := uc.Cases(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := uc.repo.Insight().Alerts(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get alerts")
	}
	kpis, err := uc.repo.Insight().KPIs(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get KPIs")
	}

	return &model.Sidebar{
		Percentages: model.PercentagesFor(cases),
		Alerts:      alerts,
		KPIs:        kpis,
	}, nil
}
