package notification_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/offboarding/pkg/domain/model"
	"github.com/secmon-lab/offboarding/pkg/service/notification"
)

// fakeTimer records a scheduled callback so tests decide when it fires
type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return true
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) schedule(d time.Duration, f func()) notification.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *fakeScheduler) at(i int) *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers[i]
}

func newNotifier() (*notification.Notifier, *fakeScheduler) {
	sched := &fakeScheduler{}
	return notification.New(notification.WithScheduler(sched.schedule)), sched
}

func TestNotifier_Show(t *testing.T) {
	ctx := context.Background()

	t.Run("message is visible and auto-hides after 3000ms", func(t *testing.T) {
		n, sched := newNotifier()

		shown := n.Show(ctx, "Reminder sent successfully!")
		gt.S(t, shown.Message).Equal("Reminder sent successfully!")
		gt.B(t, n.Current().Visible()).True()
		gt.Value(t, sched.at(0).d).Equal(3000 * time.Millisecond)

		sched.at(0).f()
		gt.B(t, n.Current().Visible()).False()
	})

	t.Run("second message preempts the first and its timer", func(t *testing.T) {
		n, sched := newNotifier()

		n.Show(ctx, "A")
		n.Show(ctx, "B")
		gt.S(t, n.Current().Message).Equal("B")
		gt.B(t, sched.at(0).stopped).True()

		// A's timer firing late must not hide B
		sched.at(0).f()
		gt.S(t, n.Current().Message).Equal("B")

		sched.at(1).f()
		gt.S(t, n.Current().Message).Equal("")
	})

	t.Run("versions increase monotonically", func(t *testing.T) {
		n, _ := newNotifier()
		a := n.Show(ctx, "A")
		b := n.Show(ctx, "B")
		h := n.Hide(ctx)
		gt.B(t, a.Version < b.Version).True()
		gt.B(t, b.Version < h.Version).True()
	})

	t.Run("empty message hides", func(t *testing.T) {
		n, _ := newNotifier()
		n.Show(ctx, "A")
		n.Show(ctx, "")
		gt.B(t, n.Current().Visible()).False()
	})
}

func TestNotifier_Hide(t *testing.T) {
	ctx := context.Background()
	n, sched := newNotifier()

	n.Show(ctx, "A")
	n.Hide(ctx)
	gt.B(t, n.Current().Visible()).False()
	gt.B(t, sched.at(0).stopped).True()

	// a stale timer after hide is harmless
	n.Show(ctx, "B")
	sched.at(0).f()
	gt.S(t, n.Current().Message).Equal("B")
}

func TestNotifier_Subscribe(t *testing.T) {
	ctx := context.Background()
	n, sched := newNotifier()

	ch, cancel := n.Subscribe()
	defer cancel()

	n.Show(ctx, "List refreshed")
	got := receive(t, ch)
	gt.S(t, got.Message).Equal("List refreshed")

	sched.at(0).f()
	got = receive(t, ch)
	gt.B(t, got.Visible()).False()

	cancel()
	_, ok := <-ch
	gt.B(t, ok).False()

	// cancel is idempotent and later shows do not panic on the closed channel
	cancel()
	n.Show(ctx, "after cancel")
}

func receive(t *testing.T, ch <-chan model.Notification) model.Notification {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("no notification received")
		return model.Notification{}
	}
}

func TestNotifier_RealTimer(t *testing.T) {
	ctx := context.Background()
	n := notification.New(notification.WithDuration(20 * time.Millisecond))

	ch, cancel := n.Subscribe()
	defer cancel()

	n.Show(ctx, "short lived")
	gt.S(t, receive(t, ch).Message).Equal("short lived")
	gt.B(t, receive(t, ch).Visible()).False()
}
