package ntopic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tehsphinx/ntopic/pubsub"
	"google.golang.org/protobuf/proto"
)

// Message constrains the types a subscription or publisher can carry:
// pointers to protobuf messages.
type Message[T any] interface {
	*T
	proto.Message
}

// SubscriptionBase is implemented by every Subscription regardless of
// its message type. A WaitSet stores and drives subscriptions through
// this interface only.
type SubscriptionBase interface {
	// Handle returns the resource handle, used for readiness polling.
	Handle() *SubscriptionHandle
	// Execute takes one pending message and hands it to the callback.
	// Finding nothing pending is a success without effect.
	Execute() error
}

// SubscriptionHandle owns the raw middleware subscription. It shares
// ownership of the node's connection so the connection stays alive at
// least as long as the subscription resource.
type SubscriptionHandle struct {
	node *nodeHandle
	log  Logger

	mx   sync.Mutex
	raw  pubsub.Subscription
	done bool
}

// Ready reports whether a take is expected to yield a message. The
// answer can be spurious: the message may be gone again by the time
// the take happens.
func (h *SubscriptionHandle) Ready() bool {
	h.mx.Lock()
	defer h.mx.Unlock()

	if h.done {
		return false
	}
	pending, err := h.raw.Pending()
	return err == nil && pending > 0
}

// take returns one pending wire message, or pubsub.ErrNoMessages when
// nothing is pending.
func (h *SubscriptionHandle) take() (pubsub.Message, error) {
	h.mx.Lock()
	defer h.mx.Unlock()

	if h.done {
		return pubsub.Message{}, ErrClosed
	}
	return h.raw.Take()
}

// close finalizes the raw subscription exactly once. The raw resource
// and the node connection are both held locked for the unsubscribe.
// Failures are logged, never returned.
func (h *SubscriptionHandle) close() {
	h.mx.Lock()
	defer h.mx.Unlock()

	if h.done {
		return
	}
	h.done = true

	h.node.mx.Lock()
	err := h.raw.Unsubscribe()
	h.node.mx.Unlock()
	if err != nil {
		h.log.Errorf("unsubscribing: %v", err)
	}

	if r := h.node.release(); r != nil {
		h.log.Errorf("releasing node connection: %v", r)
	}
}

// Subscription receives messages of one concrete type on a topic and
// hands them to a callback.
type Subscription[T any, PT Message[T]] struct {
	handle *SubscriptionHandle

	mxCallback sync.Mutex
	callback   func(PT)
}

// NewSubscription registers a subscription for message type T on the
// given topic. The callback runs once per received message and is never
// invoked concurrently with itself. It must stay valid for the
// subscription's entire lifetime.
func NewSubscription[T any, PT Message[T]](node *Node, topic string, qos QoSProfile, callback func(PT)) (*Subscription[T, PT], error) {
	if err := validateTopic(topic); err != nil {
		return nil, err
	}

	opts := qos.subscribeOptions(messageTypeName[T, PT]())

	// registering and retaining the node share one critical section,
	// so a node connection that is already torn down cannot come back
	var raw pubsub.Subscription
	if err := node.handle.tryRetain(func(conn pubsub.Conn) error {
		sub, r := conn.SubscribeSync(topic, opts)
		if r != nil {
			return r
		}
		raw = sub
		return nil
	}); err != nil {
		return nil, fmt.Errorf("ntopic: subscribing to %q: %w", topic, err)
	}

	return &Subscription[T, PT]{
		handle: &SubscriptionHandle{
			node: node.handle,
			log:  node.log,
			raw:  raw,
		},
		callback: callback,
	}, nil
}

// messageTypeName resolves the full protobuf name of T without needing
// a caller-supplied instance.
func messageTypeName[T any, PT Message[T]]() string {
	return string(PT(new(T)).ProtoReflect().Descriptor().FullName())
}

// Take fetches and decodes at most one pending message. It never
// blocks: with nothing pending it returns ErrNoMessages. Each call is
// independent; no partial state is kept between calls.
func (s *Subscription[T, PT]) Take() (PT, error) {
	wire, err := s.handle.take()
	if err != nil {
		return nil, err
	}

	msg := PT(new(T))
	if r := proto.Unmarshal(wire.Data, msg); r != nil {
		return nil, fmt.Errorf("ntopic: decoding message on %q: %w", wire.Subject, r)
	}
	return msg, nil
}

// Handle implements the SubscriptionBase interface.
func (s *Subscription[T, PT]) Handle() *SubscriptionHandle {
	return s.handle
}

// Execute implements the SubscriptionBase interface. A wait loop may
// report readiness even when nothing is retrievable anymore; such a
// spurious wakeup is not an error. All other take failures propagate
// to the caller.
func (s *Subscription[T, PT]) Execute() error {
	msg, err := s.Take()
	if errors.Is(err, ErrNoMessages) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mxCallback.Lock()
	defer s.mxCallback.Unlock()
	s.callback(msg)
	return nil
}

// Close finalizes the subscription resource. Only the first call has
// an effect; Close never fails outward.
func (s *Subscription[T, PT]) Close() {
	s.handle.close()
}
