package ntopic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tehsphinx/ntopic/pubsub"
)

// ErrNoMessages signals that a take found nothing pending. This is a
// normal outcome: callers of Take see it directly, Execute treats it
// as success.
var ErrNoMessages = pubsub.ErrNoMessages

// ErrInvalidTopic is returned when a topic name cannot be represented
// by the middleware. It is reported before any middleware call.
var ErrInvalidTopic = errors.New("ntopic: invalid topic name")

// ErrClosed is returned when a subscription or publisher is used after
// its Close.
var ErrClosed = errors.New("ntopic: endpoint is closed")

func validateTopic(topic string) error {
	if topic == "" {
		return fmt.Errorf("%w: empty", ErrInvalidTopic)
	}
	if strings.ContainsRune(topic, 0) {
		return fmt.Errorf("%w: embedded null byte", ErrInvalidTopic)
	}
	return nil
}
