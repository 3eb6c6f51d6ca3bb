package ntopic

import (
	"context"
	"sync"
	"time"
)

// WaitSet drives a collection of subscriptions of different message
// types from one loop. It creates no goroutines itself: Spin runs on
// the caller's goroutine, and SpinOnce may be called from any number
// of workers; each subscription still executes serially.
type WaitSet struct {
	log      Logger
	interval time.Duration

	mx   sync.Mutex
	subs []SubscriptionBase
}

// NewWaitSet creates an empty wait set.
func NewWaitSet(opts ...Option) *WaitSet {
	opt := getOptions(opts)

	return &WaitSet{
		log:      opt.logger,
		interval: opt.spinInterval,
	}
}

// Add registers a subscription to be driven by the wait set.
func (w *WaitSet) Add(sub SubscriptionBase) {
	w.mx.Lock()
	defer w.mx.Unlock()

	w.subs = append(w.subs, sub)
}

// SpinOnce executes every subscription that currently reports
// readiness. Readiness can be spurious; executing a subscription that
// turns out empty is a no-op, not an error. The first real execute
// error aborts the pass.
func (w *WaitSet) SpinOnce() error {
	for _, sub := range w.snapshot() {
		if !sub.Handle().Ready() {
			continue
		}
		if err := sub.Execute(); err != nil {
			return err
		}
	}
	return nil
}

// Spin polls for readiness until ctx is done, executing subscriptions
// as data arrives. It returns the first execute error, or the context
// error once ctx is done.
func (w *WaitSet) Spin(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.SpinOnce(); err != nil {
				return err
			}
		}
	}
}

func (w *WaitSet) snapshot() []SubscriptionBase {
	w.mx.Lock()
	defer w.mx.Unlock()

	return append([]SubscriptionBase(nil), w.subs...)
}
