package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/domain/types"
	"github.com/secmon-lab/offboarding/pkg/repository/memory"
	"github.com/secmon-lab/offboarding/pkg/service/notification"
	"github.com/secmon-lab/offboarding/pkg/service/transport"
	"github.com/secmon-lab/offboarding/pkg/usecase"
)

var fixedNow = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func testSeed() *model.Seed {
	return &model.Seed{
		Directory: []*model.EmployeeRecord{
			{ID: "E1001", Name: "Jane Smith", Role: "Software Engineer", Department: "Engineering", Manager: "Laura Chen"},
			{ID: "E1002", Name: "John Doe", Role: "Product Manager", Department: "Product", Manager: "Akash Patel"},
			{ID: "E1003", Name: "Alice Brown", Role: "HR Specialist", Department: "Human Resources", Manager: "Maria Garcia"},
		},
		Cases: []*model.EmployeeCase{
			{Name: "Jane Smith", Role: "Software Engineer", ExitDate: "2024-07-15", Status: types.CaseStatusInProgress, Progress: 70},
			{Name: "John Doe", Role: "Product Manager", ExitDate: "2024-06-30", Status: types.CaseStatusOverdue, Progress: 40},
			{Name: "Alice Brown", Role: "HR Specialist", ExitDate: "2024-08-01", Status: types.CaseStatusUpcoming, Progress: 10},
			{Name: "Bob Johnson", Role: "Marketing Lead", ExitDate: "2024-05-20", Status: types.CaseStatusCompleted, Progress: 100},
		},
		Alerts: []string{"Overdue Asset: Laptop Return for John Doe."},
		KPIs:   []model.KPI{{Number: 15, Label: "DAYS", Subtitle: "AVG COMPLETION TIME"}},
	}
}

// fakeTransport records submissions and fails with err when set. onSubmit
// runs while the submission is in flight.
type fakeTransport struct {
	mu       sync.Mutex
	kind     transport.Kind
	err      error
	onSubmit func()
	subs     []*model.Submission
}

func (f *fakeTransport) Submit(ctx context.Context, sub *model.Submission) error {
	f.mu.Lock()
	f.subs = append(f.subs, sub)
	hook := f.onSubmit
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return f.err
}

func (f *fakeTransport) Configured() bool { return true }

func (f *fakeTransport) Kind() transport.Kind {
	if f.kind == "" {
		return transport.KindDirect
	}
	return f.kind
}

func (f *fakeTransport) submissions() []*model.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.subs
}

func newUseCases(svc transport.Service) *usecase.UseCases {
	opts := []usecase.Option{
		usecase.WithNotifier(notification.New(notification.WithDuration(time.Hour))),
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithSource("test-source"),
	}
	if svc != nil {
		opts = append(opts, usecase.WithTransport(svc))
	}
	return usecase.New(memory.New(testSeed()), opts...)
}
