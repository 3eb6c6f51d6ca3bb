package nats

import (
	"errors"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/tehsphinx/ntopic/pubsub"
)

// takeWait guards the window between the pending check and the buffered
// message being handed out. It is only waited on when that race is lost.
const takeWait = 10 * time.Millisecond

type subscription struct {
	sub *nats.Subscription
}

var _ pubsub.Subscription = (*subscription)(nil)

// Take implements the pubsub.Subscription interface. It never blocks
// waiting for new data: an empty buffer returns pubsub.ErrNoMessages
// immediately.
func (s *subscription) Take() (pubsub.Message, error) {
	pending, _, err := s.sub.Pending()
	if err != nil {
		return pubsub.Message{}, err
	}
	if pending == 0 {
		return pubsub.Message{}, pubsub.ErrNoMessages
	}

	msg, err := s.sub.NextMsg(takeWait)
	if err != nil {
		if errors.Is(err, nats.ErrTimeout) {
			return pubsub.Message{}, pubsub.ErrNoMessages
		}
		return pubsub.Message{}, err
	}

	return pubsub.Message{
		Subject: msg.Subject,
		Data:    msg.Data,
	}, nil
}

// Pending implements the pubsub.Subscription interface.
func (s *subscription) Pending() (int, error) {
	pending, _, err := s.sub.Pending()
	return pending, err
}

// Unsubscribe implements the pubsub.Subscription interface.
func (s *subscription) Unsubscribe() error {
	return s.sub.Unsubscribe()
}
