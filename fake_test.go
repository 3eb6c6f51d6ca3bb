package ntopic_test

import (
	"sync"

	"github.com/tehsphinx/ntopic/pubsub"
)

// fakeConn implements pubsub.Conn in-memory and records lifecycle
// calls, so tests can observe what reaches the middleware boundary.
type fakeConn struct {
	mx         sync.Mutex
	subErr     error
	subjects   []string
	subs       []*fakeSub
	closeCalls int
}

func (f *fakeConn) SubscribeSync(subject string, _ pubsub.SubscribeOptions) (pubsub.Subscription, error) {
	f.mx.Lock()
	defer f.mx.Unlock()

	f.subjects = append(f.subjects, subject)
	if f.subErr != nil {
		return nil, f.subErr
	}

	sub := &fakeSub{}
	f.subs = append(f.subs, sub)
	return sub, nil
}

func (f *fakeConn) Publish(pubsub.Message) error { return nil }

func (f *fakeConn) Flush() error { return nil }

func (f *fakeConn) Close() error {
	f.mx.Lock()
	defer f.mx.Unlock()

	f.closeCalls++
	return nil
}

func (f *fakeConn) subscribeAttempts() int {
	f.mx.Lock()
	defer f.mx.Unlock()

	return len(f.subjects)
}

func (f *fakeConn) closed() int {
	f.mx.Lock()
	defer f.mx.Unlock()

	return f.closeCalls
}

// fakeSub implements pubsub.Subscription over a slice. Setting ready
// fakes a readiness signal with nothing retrievable behind it; takeErr
// replaces the result of the next Take.
type fakeSub struct {
	mx        sync.Mutex
	queue     []pubsub.Message
	ready     bool
	takeErr   error
	unsubbeds int
}

func (f *fakeSub) Take() (pubsub.Message, error) {
	f.mx.Lock()
	defer f.mx.Unlock()

	if f.takeErr != nil {
		return pubsub.Message{}, f.takeErr
	}
	if len(f.queue) == 0 {
		return pubsub.Message{}, pubsub.ErrNoMessages
	}

	msg := f.queue[0]
	f.queue = f.queue[1:]
	return msg, nil
}

func (f *fakeSub) Pending() (int, error) {
	f.mx.Lock()
	defer f.mx.Unlock()

	if f.ready {
		return 1, nil
	}
	return len(f.queue), nil
}

func (f *fakeSub) Unsubscribe() error {
	f.mx.Lock()
	defer f.mx.Unlock()

	f.unsubbeds++
	return nil
}

func (f *fakeSub) unsubscribed() int {
	f.mx.Lock()
	defer f.mx.Unlock()

	return f.unsubbeds
}
