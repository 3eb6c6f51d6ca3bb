// Package nats adapts a NATS connection to the pubsub interfaces.
package nats

import (
	"github.com/nats-io/nats.go"
	"github.com/tehsphinx/ntopic/pubsub"
)

// Conn returns a NATS wrapper implementing the pubsub.Conn interface.
func Conn(nc *nats.Conn) pubsub.Conn {
	return &conn{nats: nc}
}

type conn struct {
	nats *nats.Conn
}

// SubscribeSync implements the pubsub.Conn interface. The returned
// subscription buffers incoming messages until they are taken.
func (s *conn) SubscribeSync(subject string, opts pubsub.SubscribeOptions) (pubsub.Subscription, error) {
	var (
		sub *nats.Subscription
		err error
	)
	if opts.Queue != "" {
		sub, err = s.nats.QueueSubscribeSync(subject, opts.Queue)
	} else {
		sub, err = s.nats.SubscribeSync(subject)
	}
	if err != nil {
		return nil, err
	}

	limit := opts.PendingLimit
	if limit <= 0 {
		limit = -1
	}
	if r := sub.SetPendingLimits(limit, -1); r != nil {
		_ = sub.Unsubscribe()
		return nil, r
	}

	return &subscription{sub: sub}, nil
}

// Publish implements the pubsub.Conn interface.
func (s *conn) Publish(msg pubsub.Message) error {
	return s.nats.Publish(msg.Subject, msg.Data)
}

// Flush implements the pubsub.Conn interface.
func (s *conn) Flush() error {
	return s.nats.Flush()
}

// Close implements the pubsub.Conn interface.
func (s *conn) Close() error {
	s.nats.Close()
	return nil
}
