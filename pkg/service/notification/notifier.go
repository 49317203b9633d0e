package notification

import (
	"context"
	"sync"
	"time"

	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/utils/logging"
)

// DefaultDuration is how long a message stays visible
const DefaultDuration = 3000 * time.Millisecond

// Timer is the handle of a scheduled auto-hide
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc satisfies it.
type Scheduler func(d time.Duration, f func()) Timer

func afterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Notifier holds the single transient message slot.
//
// Every Show and Hide bumps the slot version. An auto-hide timer carries the
// version it was armed for and clears the slot only if that version is still
// current, so an older timer firing late never hides a newer message.
type Notifier struct {
	duration time.Duration
	schedule Scheduler
	now      func() time.Time

	mu      sync.Mutex
	current model.Notification
	timer   Timer
	subs    map[int]chan model.Notification
	nextSub int
}

// Option is a functional option for Notifier configuration
type Option func(*Notifier)

// WithDuration sets the auto-hide delay
func WithDuration(d time.Duration) Option {
	return func(n *Notifier) {
		n.duration = d
	}
}

// WithScheduler replaces time.AfterFunc
func WithScheduler(s Scheduler) Option {
	return func(n *Notifier) {
		n.schedule = s
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) {
		n.now = now
	}
}

// New creates an empty notifier
func New(opts ...Option) *Notifier {
	n := &Notifier{
		duration: DefaultDuration,
		schedule: afterFunc,
		now:      time.Now,
		subs:     make(map[int]chan model.Notification),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces the current message and restarts the auto-hide timer.
// An empty message hides the slot.
func (n *Notifier) Show(ctx context.Context, message string) model.Notification {
	if message == "" {
		return n.Hide(ctx)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()
	n.current = model.Notification{
		Message: message,
		Version: n.current.Version + 1,
		ShownAt: n.now(),
	}

	version := n.current.Version
	n.timer = n.schedule(n.duration, func() { n.expire(version) })

	logging.From(ctx).Debug("notification shown", "message", message, "version", version)
	n.publish()
	return n.current
}

// Hide clears the slot immediately
func (n *Notifier) Hide(ctx context.Context) model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimer()
	n.clear()
	return n.current
}

// Current returns the slot content
func (n *Notifier) Current() model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Subscribe returns a channel receiving every slot change and a function to
// unsubscribe. Updates are dropped for subscribers that are not ready to
// receive.
func (n *Notifier) Subscribe() (<-chan model.Notification, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextSub
	n.nextSub++
	ch := make(chan model.Notification, 8)
	n.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (n *Notifier) expire(version uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current.Version != version {
		return
	}
	n.timer = nil
	n.clear()
}

// clear must be called with mu held
func (n *Notifier) clear() {
	if n.current.Message == "" {
		return
	}
	n.current = model.Notification{Version: n.current.Version + 1}
	n.publish()
}

// stopTimer must be called with mu held
func (n *Notifier) stopTimer() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}

// publish must be called with mu held
func (n *Notifier) publish() {
	for _, ch := range n.subs {
		select {
		case ch <- n.current:
		default:
		}
	}
}
