package usecase

import (
	"time"

	"github.com/secmon-lab/offboarding/pkg/domain/interfaces"
	"github.com/secmon-lab/offboarding/pkg/service/notification"
	"github.com/secmon-lab/offboarding/pkg/service/transport"
)

// DefaultSource tags every submission sent by this service
const DefaultSource = "hr-dashboard-react"

type UseCases struct {
	repo      interfaces.Repository
	transport transport.Service
	notifier  *notification.Notifier
	source    string
	now       func() time.Time

	Directory *DirectoryUseCase
	Draft     *DraftUseCase
	Dashboard *DashboardUseCase
}

type Option func(*UseCases)

// WithTransport sets the submission transport. Without it every confirm
// fails with an unconfigured endpoint.
func WithTransport(svc transport.Service) Option {
	return func(uc *UseCases) {
		uc.transport = svc
	}
}

func WithNotifier(n *notification.Notifier) Option {
	return func(uc *UseCases) {
		uc.notifier = n
	}
}

// WithSource sets the source tag of submissions
func WithSource(source string) Option {
	return func(uc *UseCases) {
		uc.source = source
	}
}

// WithClock replaces time.Now for submission timestamps
func WithClock(now func() time.Time) Option {
	return func(uc *UseCases) {
		uc.now = now
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:   repo,
		source: DefaultSource,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.transport == nil {
		uc.transport = transport.New("")
	}
	if uc.notifier == nil {
		uc.notifier = notification.New()
	}

	uc.Directory = NewDirectoryUseCase(repo)
	uc.Draft = NewDraftUseCase(repo, uc.Directory, uc.transport, uc.notifier, uc.source, uc.now)
	uc.Dashboard = NewDashboardUseCase(repo, uc.notifier)

	return uc
}

// Notifier returns the notification slot shared by all use cases
func (uc *UseCases) Notifier() *notification.Notifier {
	return uc.notifier
}

// Transport returns the configured submission transport
func (uc *UseCases) Transport() transport.Service {
	return uc.transport
}
