// Package pubsub defines the middleware boundary for ntopic.
// The interfaces defined here can be implemented for more pubsub
// solutions and then used with the ntopic package.
package pubsub

import "errors"

// ErrNoMessages signals that nothing is currently pending on a
// subscription. It is a normal outcome of Take, not a malfunction,
// and adapters must return it (possibly wrapped) for exactly that
// condition and nothing else.
var ErrNoMessages = errors.New("pubsub: no messages pending")

// Conn is a connection to a pubsub middleware.
type Conn interface {
	// SubscribeSync registers a buffering subscription on the given
	// subject. Messages accumulate in the subscription until taken.
	SubscribeSync(subject string, opts SubscribeOptions) (Subscription, error)
	Publish(msg Message) error
	Flush() error
	Close() error
}

// Subscription is a raw middleware subscription.
//
// Implementations are not required to be safe for concurrent use;
// callers serialize access themselves.
type Subscription interface {
	// Take returns one pending message without blocking. If nothing
	// is pending it returns ErrNoMessages.
	Take() (Message, error)
	// Pending reports the number of buffered messages.
	Pending() (int, error)
	Unsubscribe() error
}
